package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"review-insights/dashboard-svc/internal/domain"
)

// FileListing reads listing summaries from a JSON file produced by the
// analysis pipeline. The file holds an array of records in any supported
// layout; only the listing fields are kept.
type FileListing struct {
	Path string
}

func NewFileListing(path string) *FileListing {
	return &FileListing{Path: path}
}

func (f *FileListing) ListSummaries() ([]domain.ListingSummary, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read listing file: %w", err)
	}
	var records []domain.RestaurantRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode listing file: %w", err)
	}

	summaries := make([]domain.ListingSummary, 0, len(records))
	for _, rec := range records {
		if rec.IsEmpty() {
			continue
		}
		summaries = append(summaries, domain.ListingSummary{
			ID:         rec.ID,
			Name:       rec.Name,
			Rating:     rec.AvgRating,
			Category:   rec.Category,
			PriceRange: rec.PriceRange,
		})
	}
	return summaries, nil
}

package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"review-insights/analyze-svc/internal/domain"
)

type AnalysisStore interface {
	GetAnalysis(id int) (*domain.Analysis, error)
}

// ReloadableStore is a store whose contents can be re-read at runtime.
type ReloadableStore interface {
	AnalysisStore
	Reload() ([]int, error)
}

type UpdatePublisher interface {
	PublishUpdate(ctx context.Context, msg domain.AnalysisUpdate) error
}

type AnalyzeServiceInterface interface {
	Get(idParam string) (*domain.Analysis, error)
	Reload(ctx context.Context) (int, error)
}

type AnalyzeService struct {
	store     AnalysisStore
	publisher UpdatePublisher
}

var _ AnalyzeServiceInterface = (*AnalyzeService)(nil)

func NewAnalyzeService(store AnalysisStore, publisher UpdatePublisher) *AnalyzeService {
	return &AnalyzeService{store: store, publisher: publisher}
}

// Get parses the path id and looks the record up. Any integer is a valid id;
// ids with no record are reported as not found.
func (s *AnalyzeService) Get(idParam string) (*domain.Analysis, error) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.store.GetAnalysis(id)
}

// Reload re-reads a reloadable store and announces every changed record so
// that readers can drop their cached copies. It returns the number of
// changed records.
func (s *AnalyzeService) Reload(ctx context.Context) (int, error) {
	store, ok := s.store.(ReloadableStore)
	if !ok {
		return 0, nil
	}
	changed, err := store.Reload()
	if err != nil {
		return 0, err
	}
	if s.publisher != nil {
		for _, id := range changed {
			_ = s.publisher.PublishUpdate(ctx, domain.AnalysisUpdate{
				Type:         domain.EventAnalysisUpdated,
				RestaurantID: id,
				Timestamp:    time.Now(),
			})
		}
	}
	log.Printf("Reloaded analysis data: %d records changed", len(changed))
	return len(changed), nil
}

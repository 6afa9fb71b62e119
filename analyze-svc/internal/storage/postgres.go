package storage

import (
	"database/sql"
	"encoding/json"
	"errors"

	"review-insights/analyze-svc/internal/domain"
)

// PostgresStore reads records from the analysis_results table, where the
// pipeline writes one jsonb document per restaurant.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) GetAnalysis(id int) (*domain.Analysis, error) {
	var payload []byte
	err := s.DB.QueryRow(
		"SELECT data FROM analysis_results WHERE restaurant_id = $1", id).
		Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.Analysis{RestaurantID: id, Payload: json.RawMessage(payload)}, nil
}

package storage

import (
	"database/sql"

	"review-insights/dashboard-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListSummaries() ([]domain.ListingSummary, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(rating, 0), COALESCE(category, ''), COALESCE(price_range, '')
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ListingSummary
	for rows.Next() {
		var s domain.ListingSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Rating, &s.Category, &s.PriceRange); err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

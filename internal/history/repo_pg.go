package history

import (
	"context"
	"database/sql"
)

// PGRepo stores predictions in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, p Prediction) error {
	const query = `
INSERT INTO predictions (id, bedrooms, bathrooms, lotarea, grade, condition, waterfront, views, predicted_rent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Bedrooms,
		p.Bathrooms,
		p.LotArea,
		p.Grade,
		p.Condition,
		p.Waterfront,
		p.Views,
		p.PredictedRent,
		p.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Prediction, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, bedrooms, bathrooms, lotarea, grade, condition, waterfront, views, predicted_rent, created_at
FROM predictions
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Prediction
	for rows.Next() {
		var p Prediction
		if err := rows.Scan(
			&p.ID,
			&p.Bedrooms,
			&p.Bathrooms,
			&p.LotArea,
			&p.Grade,
			&p.Condition,
			&p.Waterfront,
			&p.Views,
			&p.PredictedRent,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

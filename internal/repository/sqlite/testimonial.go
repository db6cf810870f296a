package sqlite

import (
	"context"

	"github.com/gigboard/gigboard/pkg/models"
)

func (r *SQLiteRepo) ListDisplayed(ctx context.Context, limit int) ([]models.Testimonial, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, content, to_display, created_at FROM testimonials WHERE to_display = 1 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.UserID, &t.Content, &t.ToDisplay, &t.Created); err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, rows.Err()
}

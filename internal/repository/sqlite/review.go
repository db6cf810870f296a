package sqlite

import (
	"context"

	"github.com/gigboard/gigboard/pkg/models"
)

func (r *SQLiteRepo) ListByReviewee(ctx context.Context, revieweeID int64) ([]models.Review, error) {
	return r.queryReviews(ctx, `SELECT r.id, r.reviewer_id, r.reviewee_id, r.comment, r.rating, r.created_at, u.name FROM reviews r JOIN users u ON u.id = r.reviewer_id WHERE r.reviewee_id = ? ORDER BY r.created_at DESC`, revieweeID)
}

func (r *SQLiteRepo) ListRecent(ctx context.Context, limit int) ([]models.Review, error) {
	return r.queryReviews(ctx, `SELECT r.id, r.reviewer_id, r.reviewee_id, r.comment, r.rating, r.created_at, u.name FROM reviews r JOIN users u ON u.id = r.reviewer_id ORDER BY r.created_at DESC LIMIT ?`, limit)
}

func (r *SQLiteRepo) queryReviews(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.ReviewerID, &rv.RevieweeID, &rv.Comment, &rv.Rating, &rv.Created, &rv.ReviewerName); err != nil {
			return nil, err
		}

		out = append(out, rv)
	}

	return out, rows.Err()
}

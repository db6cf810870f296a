package sqlite

import (
	"context"
	"fmt"

	"github.com/gigboard/gigboard/pkg/models"
)

func (r *SQLiteRepo) CreateTicket(ctx context.Context, t *models.SupportTicket) (int64, error) {
	if t == nil {
		return 0, fmt.Errorf("ticket is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO contact_messages (reference, user_id, category, email, content, status, created_at, modified_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Reference, t.UserID, t.Category, t.Email, t.Content, "Open", ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

package sqlite

import (
	"time"

	"github.com/gigboard/gigboard/internal/db"
	"github.com/gigboard/gigboard/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn *db.DB
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.JobRepo = (*SQLiteRepo)(nil)
var _ repository.ApplicationRepo = (*SQLiteRepo)(nil)
var _ repository.PaymentRepo = (*SQLiteRepo)(nil)
var _ repository.ReviewRepo = (*SQLiteRepo)(nil)
var _ repository.TestimonialRepo = (*SQLiteRepo)(nil)
var _ repository.SupportRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB) *SQLiteRepo {
	return &SQLiteRepo{conn: conn}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

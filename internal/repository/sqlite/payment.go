package sqlite

import (
	"context"

	"github.com/gigboard/gigboard/pkg/models"
)

// WorkerStats sums the worker's hours, paid earnings and pending payments.
// COALESCE keeps every aggregate at zero when no payment rows exist.
func (r *SQLiteRepo) WorkerStats(ctx context.Context, workerID int64) (*models.WorkerStats, error) {
	row := r.conn.QueryRow(ctx, `SELECT
		COALESCE(SUM(hours_worked), 0),
		COALESCE(SUM(CASE WHEN status = 'Paid' THEN amount ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'Pending' THEN amount ELSE 0 END), 0)
		FROM payments WHERE worker_id = ?`, workerID)

	var s models.WorkerStats
	if err := row.Scan(&s.TotalHoursWorked, &s.TotalEarnings, &s.PendingPayment); err != nil {
		return nil, err
	}

	return &s, nil
}

// EmployerStats sums hours worked and amounts paid out across all payments
// attached to the employer's jobs.
func (r *SQLiteRepo) EmployerStats(ctx context.Context, employerID int64) (*models.EmployerStats, error) {
	row := r.conn.QueryRow(ctx, `SELECT
		COALESCE(SUM(p.hours_worked), 0),
		COALESCE(SUM(CASE WHEN p.status = 'Paid' THEN p.amount ELSE 0 END), 0)
		FROM payments p JOIN jobs j ON j.id = p.job_id WHERE j.employer_id = ?`, employerID)

	var s models.EmployerStats
	if err := row.Scan(&s.TotalHoursWorked, &s.TotalPaid); err != nil {
		return nil, err
	}

	return &s, nil
}

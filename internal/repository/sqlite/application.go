package sqlite

import (
	"context"
	"fmt"

	"github.com/gigboard/gigboard/pkg/models"
)

func (r *SQLiteRepo) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("application is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO applications (job_id, worker_id, status, applied_at) VALUES (?, ?, ?, ?)`,
		a.JobID, a.WorkerID, "Pending", now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) HasApplied(ctx context.Context, jobID, workerID int64) (bool, error) {
	var count int
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM applications WHERE job_id = ? AND worker_id = ?`, jobID, workerID)
	if err := row.Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListByWorker returns the worker's applications joined with the job title
// and salary, newest first.
func (r *SQLiteRepo) ListByWorker(ctx context.Context, workerID int64) ([]models.Application, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT a.id, a.job_id, a.worker_id, a.status, a.applied_at, j.title, j.salary FROM applications a JOIN jobs j ON j.id = a.job_id WHERE a.worker_id = ? ORDER BY a.applied_at DESC`, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.WorkerID, &a.Status, &a.Applied, &a.JobTitle, &a.JobSalary); err != nil {
			return nil, err
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

// ListByEmployer returns applications received on the employer's jobs joined
// with the job title and the applicant's name, newest first.
func (r *SQLiteRepo) ListByEmployer(ctx context.Context, employerID int64) ([]models.Application, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT a.id, a.job_id, a.worker_id, a.status, a.applied_at, j.title, u.name FROM applications a JOIN jobs j ON j.id = a.job_id JOIN users u ON u.id = a.worker_id WHERE j.employer_id = ? ORDER BY a.applied_at DESC`, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.WorkerID, &a.Status, &a.Applied, &a.JobTitle, &a.WorkerName); err != nil {
			return nil, err
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

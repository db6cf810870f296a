package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gigboard/gigboard/pkg/models"
)

const jobColumns = `id, employer_id, title, description, salary, job_type, job_status, created_at`

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO jobs (employer_id, title, description, salary, job_type, job_status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.EmployerID, j.Title, j.Description, j.Salary, j.JobType, models.JobStatusOpen, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	var j models.Job
	if err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Salary, &j.JobType, &j.JobStatus, &j.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &j, nil
}

// SearchOpenJobs matches the query as a case-insensitive substring of title
// or description. sort is "salary" for salary descending; anything else
// orders by newest first.
func (r *SQLiteRepo) SearchOpenJobs(ctx context.Context, query, jobType, sort string) ([]models.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE job_status = ? AND (LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`
	args := []any{models.JobStatusOpen, likePattern(query), likePattern(query)}
	if jobType != "" {
		q += ` AND job_type = ?`
		args = append(args, jobType)
	}
	if sort == "salary" {
		q += ` ORDER BY salary DESC`
	} else {
		q += ` ORDER BY created_at DESC`
	}

	return r.queryJobs(ctx, q, args...)
}

func (r *SQLiteRepo) TopOpenJobsBySalary(ctx context.Context, limit int) ([]models.Job, error) {
	return r.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_status = ? ORDER BY salary DESC LIMIT ?`, models.JobStatusOpen, limit)
}

func (r *SQLiteRepo) NewestOpenJobs(ctx context.Context, limit int) ([]models.Job, error) {
	return r.queryJobs(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_status = ? ORDER BY created_at DESC LIMIT ?`, models.JobStatusOpen, limit)
}

func (r *SQLiteRepo) queryJobs(ctx context.Context, query string, args ...any) ([]models.Job, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Salary, &j.JobType, &j.JobStatus, &j.Created); err != nil {
			return nil, err
		}

		out = append(out, j)
	}

	return out, rows.Err()
}

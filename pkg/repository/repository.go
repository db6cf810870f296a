package repository

import (
	"context"

	"github.com/gigboard/gigboard/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	SearchOpenJobs(ctx context.Context, query, jobType, sort string) ([]models.Job, error)
	TopOpenJobsBySalary(ctx context.Context, limit int) ([]models.Job, error)
	NewestOpenJobs(ctx context.Context, limit int) ([]models.Job, error)
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, a *models.Application) (int64, error)
	HasApplied(ctx context.Context, jobID, workerID int64) (bool, error)
	ListByWorker(ctx context.Context, workerID int64) ([]models.Application, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]models.Application, error)
}

type PaymentRepo interface {
	WorkerStats(ctx context.Context, workerID int64) (*models.WorkerStats, error)
	EmployerStats(ctx context.Context, employerID int64) (*models.EmployerStats, error)
}

type ReviewRepo interface {
	ListByReviewee(ctx context.Context, revieweeID int64) ([]models.Review, error)
	ListRecent(ctx context.Context, limit int) ([]models.Review, error)
}

type TestimonialRepo interface {
	ListDisplayed(ctx context.Context, limit int) ([]models.Testimonial, error)
}

type SupportRepo interface {
	CreateTicket(ctx context.Context, t *models.SupportTicket) (int64, error)
}

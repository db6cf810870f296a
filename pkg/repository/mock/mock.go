package mock

import (
	"context"

	"github.com/gigboard/gigboard/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Users        *mockUserRepo
	Jobs         *mockJobRepo
	Applications *mockApplicationRepo
	Payments     *mockPaymentRepo
	Reviews      *mockReviewRepo
	Testimonials *mockTestimonialRepo
	Support      *mockSupportRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:        &mockUserRepo{},
		Jobs:         &mockJobRepo{},
		Applications: &mockApplicationRepo{},
		Payments:     &mockPaymentRepo{},
		Reviews:      &mockReviewRepo{},
		Testimonials: &mockTestimonialRepo{},
		Support:      &mockSupportRepo{},
	}
}

type mockUserRepo struct {
	Stored    *models.User
	CreateErr error
	GetErr    error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *u
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type mockJobRepo struct {
	Stored    []models.Job
	CreateErr error
	ListErr   error

	LastQuery   string
	LastJobType string
	LastSort    string
}

func (m *mockJobRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *j
	stored.ID = int64(len(m.Stored) + 1)
	stored.JobStatus = models.JobStatusOpen
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *mockJobRepo) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			return &m.Stored[i], nil
		}
	}
	return nil, nil
}

func (m *mockJobRepo) SearchOpenJobs(ctx context.Context, query, jobType, sort string) ([]models.Job, error) {
	m.LastQuery, m.LastJobType, m.LastSort = query, jobType, sort
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *mockJobRepo) TopOpenJobsBySalary(ctx context.Context, limit int) ([]models.Job, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if len(m.Stored) > limit {
		return m.Stored[:limit], nil
	}
	return m.Stored, nil
}

func (m *mockJobRepo) NewestOpenJobs(ctx context.Context, limit int) ([]models.Job, error) {
	return m.TopOpenJobsBySalary(ctx, limit)
}

type mockApplicationRepo struct {
	Stored    []models.Application
	Applied   bool
	CreateErr error
	ListErr   error
}

func (m *mockApplicationRepo) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *a
	stored.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *mockApplicationRepo) HasApplied(ctx context.Context, jobID, workerID int64) (bool, error) {
	return m.Applied, nil
}

func (m *mockApplicationRepo) ListByWorker(ctx context.Context, workerID int64) ([]models.Application, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

func (m *mockApplicationRepo) ListByEmployer(ctx context.Context, employerID int64) ([]models.Application, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Stored, nil
}

type mockPaymentRepo struct {
	Worker   models.WorkerStats
	Employer models.EmployerStats
	Err      error
}

func (m *mockPaymentRepo) WorkerStats(ctx context.Context, workerID int64) (*models.WorkerStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	s := m.Worker
	return &s, nil
}

func (m *mockPaymentRepo) EmployerStats(ctx context.Context, employerID int64) (*models.EmployerStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	s := m.Employer
	return &s, nil
}

type mockReviewRepo struct {
	Stored []models.Review
	Err    error
}

func (m *mockReviewRepo) ListByReviewee(ctx context.Context, revieweeID int64) ([]models.Review, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Stored, nil
}

func (m *mockReviewRepo) ListRecent(ctx context.Context, limit int) ([]models.Review, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Stored) > limit {
		return m.Stored[:limit], nil
	}
	return m.Stored, nil
}

type mockTestimonialRepo struct {
	Stored []models.Testimonial
	Err    error
}

func (m *mockTestimonialRepo) ListDisplayed(ctx context.Context, limit int) ([]models.Testimonial, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Stored) > limit {
		return m.Stored[:limit], nil
	}
	return m.Stored, nil
}

type mockSupportRepo struct {
	Stored    *models.SupportTicket
	CreateErr error
}

func (m *mockSupportRepo) CreateTicket(ctx context.Context, t *models.SupportTicket) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *t
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

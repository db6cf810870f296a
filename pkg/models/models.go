package models

// Domain models matching the database schema in db/migrations/0001_init.sql

const (
	AccountTypeWorker   = "Worker"
	AccountTypeEmployer = "Employer"
)

const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
)

type User struct {
	ID             int64   `json:"id" db:"id"`
	Name           string  `json:"name" db:"name" validate:"required"`
	Email          string  `json:"email" db:"email" validate:"required,email"`
	PasswordHash   string  `json:"-" db:"password_hash"`
	AccountType    string  `json:"account_type" db:"account_type"`
	Role           string  `json:"role,omitempty" db:"role"`
	Company        string  `json:"company,omitempty" db:"company"`
	Status         string  `json:"status" db:"status"`
	Rating         float64 `json:"rating" db:"rating"`
	ProfilePicture string  `json:"profile_picture,omitempty" db:"profile_picture"`
	Created        int64   `json:"created_at" db:"created_at"`
	Modified       int64   `json:"modified_at" db:"modified_at"`
}

type Job struct {
	ID          int64   `json:"id" db:"id"`
	EmployerID  int64   `json:"employer_id" db:"employer_id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Salary      float64 `json:"salary" db:"salary"`
	JobType     string  `json:"job_type,omitempty" db:"job_type"`
	JobStatus   string  `json:"job_status" db:"job_status"`
	Created     int64   `json:"created_at" db:"created_at"`
}

type Application struct {
	ID       int64  `json:"id" db:"id"`
	JobID    int64  `json:"job_id" db:"job_id"`
	WorkerID int64  `json:"worker_id" db:"worker_id"`
	Status   string `json:"status" db:"status"`
	Applied  int64  `json:"applied_at" db:"applied_at"`

	// Joined job fields, populated by list queries.
	JobTitle   string  `json:"job_title,omitempty" db:"title"`
	JobSalary  float64 `json:"job_salary,omitempty" db:"salary"`
	WorkerName string  `json:"worker_name,omitempty" db:"name"`
}

type Payment struct {
	ID          int64   `json:"id" db:"id"`
	WorkerID    int64   `json:"worker_id" db:"worker_id"`
	JobID       int64   `json:"job_id" db:"job_id"`
	HoursWorked float64 `json:"hours_worked" db:"hours_worked"`
	Amount      float64 `json:"amount" db:"amount"`
	Status      string  `json:"status" db:"status"`
}

// WorkerStats and EmployerStats hold the dashboard aggregates. Sums are
// COALESCE'd to zero in SQL so an account with no payments reads as 0.
type WorkerStats struct {
	TotalHoursWorked float64 `json:"total_hours_worked"`
	TotalEarnings    float64 `json:"total_earnings"`
	PendingPayment   float64 `json:"pending_payment"`
}

type EmployerStats struct {
	TotalHoursWorked float64 `json:"total_hours_worked"`
	TotalPaid        float64 `json:"total_paid"`
}

type Review struct {
	ID         int64  `json:"id" db:"id"`
	ReviewerID int64  `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID int64  `json:"reviewee_id" db:"reviewee_id"`
	Comment    string `json:"comment" db:"comment"`
	Rating     int    `json:"rating" db:"rating"`
	Created    int64  `json:"created_at" db:"created_at"`

	ReviewerName string `json:"reviewer_name,omitempty" db:"name"`
}

type Testimonial struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	Content   string `json:"content" db:"content"`
	ToDisplay bool   `json:"to_display" db:"to_display"`
	Created   int64  `json:"created_at" db:"created_at"`
}

type SupportTicket struct {
	ID        int64  `json:"id" db:"id"`
	Reference string `json:"reference" db:"reference"`
	UserID    *int64 `json:"user_id,omitempty" db:"user_id"`
	Category  string `json:"category" db:"category"`
	Email     string `json:"email" db:"email"`
	Content   string `json:"content" db:"content"`
	Status    string `json:"status" db:"status"`
	Created   int64  `json:"created_at" db:"created_at"`
	Modified  int64  `json:"modified_at" db:"modified_at"`
}

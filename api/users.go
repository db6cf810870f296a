package api

import (
	"net/http"

	"log/slog"

	"github.com/gigboard/gigboard/pkg/models"
	"github.com/gigboard/gigboard/pkg/repository"
)

type UsersHandler struct {
	userRepo        repository.UserRepo
	paymentRepo     repository.PaymentRepo
	reviewRepo      repository.ReviewRepo
	applicationRepo repository.ApplicationRepo
}

func NewUsersHandler(ur repository.UserRepo, pr repository.PaymentRepo, rr repository.ReviewRepo, ar repository.ApplicationRepo) *UsersHandler {
	return &UsersHandler{userRepo: ur, paymentRepo: pr, reviewRepo: rr, applicationRepo: ar}
}

type dashboardResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	AccountType    string  `json:"account_type"`
	Role           string  `json:"role,omitempty"`
	Company        string  `json:"company,omitempty"`
	Rating         float64 `json:"rating"`
	ProfilePicture string  `json:"profile_picture,omitempty"`

	// Worker aggregates
	TotalHoursWorked *float64 `json:"total_hours_worked,omitempty"`
	TotalEarnings    *float64 `json:"total_earnings,omitempty"`
	PendingPayment   *float64 `json:"pending_payment,omitempty"`

	// Employer aggregates
	TotalPaid *float64 `json:"total_paid,omitempty"`
}

// Dashboard returns the acting user's profile with role-branched payment
// aggregates. The aggregates are zero, not absent, for accounts with no
// payment rows.
func (h *UsersHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetByID(ctx, ident.UserID)
	if err != nil {
		logger.Error("get user", slog.Any("err", err))
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	resp := dashboardResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		AccountType:    user.AccountType,
		Role:           user.Role,
		Company:        user.Company,
		Rating:         user.Rating,
		ProfilePicture: user.ProfilePicture,
	}

	switch user.AccountType {
	case models.AccountTypeEmployer:
		stats, err := h.paymentRepo.EmployerStats(ctx, user.ID)
		if err != nil {
			logger.Error("employer stats", slog.Any("err", err))
			http.Error(w, "failed to load profile", http.StatusInternalServerError)
			return
		}
		resp.TotalHoursWorked = &stats.TotalHoursWorked
		resp.TotalPaid = &stats.TotalPaid
	default:
		stats, err := h.paymentRepo.WorkerStats(ctx, user.ID)
		if err != nil {
			logger.Error("worker stats", slog.Any("err", err))
			http.Error(w, "failed to load profile", http.StatusInternalServerError)
			return
		}
		resp.TotalHoursWorked = &stats.TotalHoursWorked
		resp.TotalEarnings = &stats.TotalEarnings
		resp.PendingPayment = &stats.PendingPayment
	}

	writeJSON(w, resp, http.StatusOK)
}

// MyReviews lists reviews written about the acting user.
func (h *UsersHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}

	reviews, err := h.reviewRepo.ListByReviewee(r.Context(), ident.UserID)
	if err != nil {
		logger.Error("list reviews", slog.Any("err", err))
		http.Error(w, "failed to list reviews", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	writeJSON(w, reviews, http.StatusOK)
}

// MyApplications lists applications the acting worker has submitted.
func (h *UsersHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}

	apps, err := h.applicationRepo.ListByWorker(r.Context(), ident.UserID)
	if err != nil {
		logger.Error("list applications", slog.Any("err", err))
		http.Error(w, "failed to list applications", http.StatusInternalServerError)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	writeJSON(w, apps, http.StatusOK)
}

// MyJobApplications lists applications received on the acting employer's jobs.
func (h *UsersHandler) MyJobApplications(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}

	apps, err := h.applicationRepo.ListByEmployer(r.Context(), ident.UserID)
	if err != nil {
		logger.Error("list job applications", slog.Any("err", err))
		http.Error(w, "failed to list applications", http.StatusInternalServerError)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	writeJSON(w, apps, http.StatusOK)
}

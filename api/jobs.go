package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/gigboard/gigboard/pkg/models"
	"github.com/gigboard/gigboard/pkg/repository"
	"github.com/gorilla/mux"
)

// topJobsLimit caps the public top-salary and newest listings.
const topJobsLimit = 3

type JobsHandler struct {
	jobRepo         repository.JobRepo
	applicationRepo repository.ApplicationRepo
}

func NewJobsHandler(jr repository.JobRepo, ar repository.ApplicationRepo) *JobsHandler {
	return &JobsHandler{jobRepo: jr, applicationRepo: ar}
}

// Search performs a case-insensitive substring search over Open jobs. An
// empty or missing query short-circuits to an empty list without touching
// the database.
func (h *JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("query"))
	if query == "" {
		writeJSON(w, []models.Job{}, http.StatusOK)
		return
	}

	sort := q.Get("sort")
	if sort != "salary" {
		sort = "newest"
	}

	jobs, err := h.jobRepo.SearchOpenJobs(r.Context(), query, q.Get("job_type"), sort)
	if err != nil {
		logger.Error("search jobs", slog.Any("err", err))
		http.Error(w, "failed to search jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) TopSalary(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobRepo.TopOpenJobsBySalary(r.Context(), topJobsLimit)
	if err != nil {
		logger.Error("top salary jobs", slog.Any("err", err))
		http.Error(w, "failed to list jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) Newest(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobRepo.NewestOpenJobs(r.Context(), topJobsLimit)
	if err != nil {
		logger.Error("newest jobs", slog.Any("err", err))
		http.Error(w, "failed to list jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	writeJSON(w, jobs, http.StatusOK)
}

type postJobRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Salary      float64 `json:"salary"`
	JobType     string  `json:"job_type"`
}

// Create posts a new Open job owned by the acting employer.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}
	if ident.AccountType != models.AccountTypeEmployer {
		http.Error(w, "Only employers can post jobs", http.StatusForbidden)
		return
	}

	var req postJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Description == "" || req.Salary <= 0 {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	job := models.Job{
		EmployerID:  ident.UserID,
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		JobType:     req.JobType,
	}
	id, err := h.jobRepo.CreateJob(r.Context(), &job)
	if err != nil {
		logger.Error("create job", slog.Any("err", err))
		http.Error(w, "failed to create job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"id": id}, http.StatusCreated)
}

// Apply records the acting worker's application to an Open job.
func (h *JobsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing identity", http.StatusUnauthorized)
		return
	}
	if ident.AccountType != models.AccountTypeWorker {
		http.Error(w, "Only workers can apply", http.StatusForbidden)
		return
	}

	jobID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || jobID <= 0 {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	job, err := h.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		logger.Error("get job", slog.Any("err", err))
		http.Error(w, "failed to apply", http.StatusInternalServerError)
		return
	}
	if job == nil {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	if job.JobStatus != models.JobStatusOpen {
		http.Error(w, "job is not open", http.StatusBadRequest)
		return
	}

	applied, err := h.applicationRepo.HasApplied(ctx, jobID, ident.UserID)
	if err != nil {
		logger.Error("check application", slog.Any("err", err))
		http.Error(w, "failed to apply", http.StatusInternalServerError)
		return
	}
	if applied {
		http.Error(w, "already applied", http.StatusBadRequest)
		return
	}

	app := models.Application{JobID: jobID, WorkerID: ident.UserID}
	id, err := h.applicationRepo.CreateApplication(ctx, &app)
	if err != nil {
		if isUniqueViolation(err) {
			http.Error(w, "already applied", http.StatusBadRequest)
			return
		}
		logger.Error("create application", slog.Any("err", err))
		http.Error(w, "failed to apply", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"id": id}, http.StatusCreated)
}

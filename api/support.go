package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"log/slog"

	"github.com/gigboard/gigboard/pkg/models"
	"github.com/gigboard/gigboard/pkg/repository"
	"github.com/google/uuid"
)

type SupportHandler struct {
	supportRepo repository.SupportRepo
	jwtSecret   string
}

func NewSupportHandler(sr repository.SupportRepo, jwtSecret string) *SupportHandler {
	return &SupportHandler{supportRepo: sr, jwtSecret: jwtSecret}
}

type supportRequest struct {
	Category string `json:"category"`
	Email    string `json:"email"`
	Content  string `json:"content"`
}

// Submit files a support ticket. A valid bearer token attaches the acting
// user; anonymous submissions are allowed, so a missing or bad token is not
// an error.
func (h *SupportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	req.Email = strings.TrimSpace(req.Email)
	req.Content = strings.TrimSpace(req.Content)
	if req.Category == "" || req.Email == "" || req.Content == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ticket := models.SupportTicket{
		Reference: uuid.NewString(),
		Category:  req.Category,
		Email:     req.Email,
		Content:   req.Content,
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if ident, err := identityFromHeader(h.jwtSecret, authHeader); err == nil {
			ticket.UserID = &ident.UserID
		}
	}

	if _, err := h.supportRepo.CreateTicket(r.Context(), &ticket); err != nil {
		logger.Error("create ticket", slog.Any("err", err))
		http.Error(w, "failed to submit ticket", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"reference": ticket.Reference}, http.StatusCreated)
}

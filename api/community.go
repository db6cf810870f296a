package api

import (
	"net/http"

	"log/slog"

	"github.com/gigboard/gigboard/pkg/models"
	"github.com/gigboard/gigboard/pkg/repository"
)

// communityLimit caps the public testimonial and review feeds.
const communityLimit = 4

type CommunityHandler struct {
	testimonialRepo repository.TestimonialRepo
	reviewRepo      repository.ReviewRepo
}

func NewCommunityHandler(tr repository.TestimonialRepo, rr repository.ReviewRepo) *CommunityHandler {
	return &CommunityHandler{testimonialRepo: tr, reviewRepo: rr}
}

// Testimonials lists the newest testimonials flagged for display.
func (h *CommunityHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.testimonialRepo.ListDisplayed(r.Context(), communityLimit)
	if err != nil {
		logger.Error("list testimonials", slog.Any("err", err))
		http.Error(w, "failed to list testimonials", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Testimonial{}
	}

	writeJSON(w, items, http.StatusOK)
}

// Reviews lists the newest reviews across all users.
func (h *CommunityHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	items, err := h.reviewRepo.ListRecent(r.Context(), communityLimit)
	if err != nil {
		logger.Error("list community reviews", slog.Any("err", err))
		http.Error(w, "failed to list reviews", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Review{}
	}

	writeJSON(w, items, http.StatusOK)
}

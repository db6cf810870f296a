package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gigboard/gigboard/api"
	"github.com/gigboard/gigboard/pkg/models"
	"github.com/gigboard/gigboard/pkg/repository/mock"
)

func TestCommunityTestimonials(t *testing.T) {
	mocks := mock.NewMocks()
	for i := 1; i <= 6; i++ {
		mocks.Testimonials.Stored = append(mocks.Testimonials.Stored, models.Testimonial{ID: int64(i), UserID: 1, Content: "nice", ToDisplay: true})
	}
	h := api.NewCommunityHandler(mocks.Testimonials, mocks.Reviews)

	req := httptest.NewRequest(http.MethodGet, "/api/community/testimonials", nil)
	w := httptest.NewRecorder()
	h.Testimonials(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var items []models.Testimonial
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) > 4 {
		t.Fatalf("expected at most 4 testimonials got %d", len(items))
	}
}

func TestCommunityReviews(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		mocks := mock.NewMocks()
		h := api.NewCommunityHandler(mocks.Testimonials, mocks.Reviews)

		req := httptest.NewRequest(http.MethodGet, "/api/community/reviews", nil)
		w := httptest.NewRecorder()
		h.Reviews(w, req)

		res := w.Result()
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
		var items []models.Review
		if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty list, got %#v", items)
		}
	})

	t.Run("LimitApplied", func(t *testing.T) {
		mocks := mock.NewMocks()
		for i := 1; i <= 6; i++ {
			mocks.Reviews.Stored = append(mocks.Reviews.Stored, models.Review{ID: int64(i), ReviewerID: 1, RevieweeID: 2, Rating: 4, ReviewerName: "Ana"})
		}
		h := api.NewCommunityHandler(mocks.Testimonials, mocks.Reviews)

		req := httptest.NewRequest(http.MethodGet, "/api/community/reviews", nil)
		w := httptest.NewRecorder()
		h.Reviews(w, req)

		res := w.Result()
		defer res.Body.Close()
		var items []models.Review
		if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(items) > 4 {
			t.Fatalf("expected at most 4 reviews got %d", len(items))
		}
		if items[0].ReviewerName != "Ana" {
			t.Fatalf("expected reviewer name in response: %#v", items[0])
		}
	})
}

package api

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/gigboard/gigboard/internal/db"
)

type SystemHandler struct {
	db *db.DB
}

func NewSystemHandler(db *db.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "gigboard API is running")
}

// CheckDBHandler pings the database and reports the current server time.
func (h *SystemHandler) CheckDBHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.Error("db ping failed", slog.Any("err", err))
		http.Error(w, "database unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"log/slog"
)

// isUniqueViolation reports whether err comes from a violated UNIQUE
// constraint. database/sql exposes no portable error code for this, so the
// driver message is matched.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

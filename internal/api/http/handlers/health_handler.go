package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	OK      bool     `json:"ok"`
	TS      string   `json:"ts"`
	Allowed []string `json:"allowed"`
}

// Health serves GET /api/health. allowed lists the CORS origins in effect.
func Health(allowed []string, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	origins := append([]string{}, allowed...)

	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			OK:      true,
			TS:      now().UTC().Format(time.RFC3339),
			Allowed: origins,
		})
	}
}

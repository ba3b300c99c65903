package handler

import (
	"context"
	"net/http"
)

// Pinger checks backing-store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	db Pinger
}

func NewHealth(db Pinger) *Health {
	return &Health{db: db}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		writeMessage(w, http.StatusInternalServerError, "database unreachable")
		return
	}
	writeMessage(w, http.StatusOK, "ok")
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/model"
)

// NotifyService sends reminder mails.
type NotifyService interface {
	Send(ctx context.Context, to, subject, message string) error
}

// Notify handles the reminder mail endpoint.
type Notify struct {
	service NotifyService
	ctxMgr  model.ContextManager
	logger  *logger.Logger
}

func NewNotify(service NotifyService, ctxMgr model.ContextManager, logger *logger.Logger) *Notify {
	return &Notify{service: service, ctxMgr: ctxMgr, logger: logger}
}

type notifyRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Notify) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ctxMgr.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := h.service.Send(r.Context(), req.To, req.Subject, req.Message); err != nil {
		h.logger.Error("Notify handler: send failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err, "recipient not found")
		return
	}

	writeMessage(w, http.StatusAccepted, "notification sent")
}

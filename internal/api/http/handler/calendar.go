package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ndanilova/calendar-server/internal/calendar"
	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/model"
)

// CellService renders laid-out calendar cells.
type CellService interface {
	Cell(ctx context.Context, userID int64, date string) ([]calendar.Line, error)
	Month(ctx context.Context, userID int64, year, month int) (map[string][]calendar.Line, error)
}

// Calendar handles the rendered-cell endpoints.
type Calendar struct {
	service CellService
	ctxMgr  model.ContextManager
	logger  *logger.Logger
}

func NewCalendar(service CellService, ctxMgr model.ContextManager, logger *logger.Logger) *Calendar {
	return &Calendar{service: service, ctxMgr: ctxMgr, logger: logger}
}

type cellResponse struct {
	Date  string          `json:"date"`
	Lines []calendar.Line `json:"lines"`
}

// Cell returns the laid-out lines of one date cell.
func (h *Calendar) Cell(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ctxMgr.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	date := r.PathValue("date")
	if _, err := time.Parse(calendar.DateLayout, date); err != nil {
		writeMessage(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	lines, err := h.service.Cell(r.Context(), userID, date)
	if err != nil {
		h.logger.Error("Calendar handler: cell render failed",
			"user_id", userID,
			"date", date,
			"error", err.Error())
		handleError(w, err, "date not found")
		return
	}

	writeJSON(w, http.StatusOK, cellResponse{Date: date, Lines: lines})
}

// Month returns laid-out cells for every date of the requested month that
// holds at least one item.
func (h *Calendar) Month(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ctxMgr.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		writeMessage(w, http.StatusBadRequest, "year and month query parameters are required")
		return
	}

	cells, err := h.service.Month(r.Context(), userID, year, month)
	if err != nil {
		h.logger.Error("Calendar handler: month render failed",
			"user_id", userID,
			"year", year,
			"month", month,
			"error", err.Error())
		handleError(w, err, "month not found")
		return
	}

	writeJSON(w, http.StatusOK, cells)
}

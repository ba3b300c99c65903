package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/model"
)

// CalendarService defines calendar item operations exposed over HTTP.
type CalendarService interface {
	List(ctx context.Context, userID int64, typ model.ItemType) ([]model.Item, error)
	Get(ctx context.Context, userID int64, id int64, typ model.ItemType) (model.Item, error)
	Create(ctx context.Context, item model.Item) (model.Item, error)
	Update(ctx context.Context, item model.Item) (model.Item, error)
	Delete(ctx context.Context, userID int64, id int64, typ model.ItemType) error
	DeleteByName(ctx context.Context, userID int64, name string, typ model.ItemType) error
}

const (
	eventDateLayout   = "2006-01-02"
	meetingDateLayout = "2006-01-02 15:04"
)

// itemWire fixes the legacy field names and messages of one item type.
type itemWire struct {
	typ        model.ItemType
	notFound   string
	deleted    string
	nameField  string
	dateField  string
	dateLayout string
	encode     func(model.Item) any
}

type eventDTO struct {
	ID          int64  `json:"idevents"`
	UserID      int64  `json:"idusers"`
	Name        string `json:"event_name"`
	Date        string `json:"event_date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type meetingDTO struct {
	ID          int64  `json:"idmeetings"`
	UserID      int64  `json:"idusers"`
	Name        string `json:"meeting_name"`
	Date        string `json:"meeting_date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

var eventWire = itemWire{
	typ:        model.ItemTypeEvent,
	notFound:   "Event not found",
	deleted:    "Event deleted successfully",
	nameField:  "event_name",
	dateField:  "event_date",
	dateLayout: eventDateLayout,
	encode: func(item model.Item) any {
		return eventDTO{
			ID:          item.ID,
			UserID:      item.UserID,
			Name:        item.Name,
			Date:        item.Date.UTC().Format(eventDateLayout),
			Description: item.Description,
			Location:    item.Location,
		}
	},
}

var meetingWire = itemWire{
	typ:        model.ItemTypeMeeting,
	notFound:   "Meeting not found",
	deleted:    "Meeting deleted successfully",
	nameField:  "meeting_name",
	dateField:  "meeting_date",
	dateLayout: meetingDateLayout,
	encode: func(item model.Item) any {
		return meetingDTO{
			ID:          item.ID,
			UserID:      item.UserID,
			Name:        item.Name,
			Date:        item.Date.UTC().Format(meetingDateLayout),
			Description: item.Description,
			Location:    item.Location,
		}
	},
}

// Items handles the REST endpoints of one calendar item type.
type Items struct {
	service CalendarService
	ctxMgr  model.ContextManager
	logger  *logger.Logger
	wire    itemWire
}

// NewEvents creates the handler for the /events endpoints.
func NewEvents(service CalendarService, ctxMgr model.ContextManager, logger *logger.Logger) *Items {
	return &Items{service: service, ctxMgr: ctxMgr, logger: logger, wire: eventWire}
}

// NewMeetings creates the handler for the /meetings endpoints.
func NewMeetings(service CalendarService, ctxMgr model.ContextManager, logger *logger.Logger) *Items {
	return &Items{service: service, ctxMgr: ctxMgr, logger: logger, wire: meetingWire}
}

func (h *Items) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := h.ctxMgr.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
	}
	return userID, ok
}

func (h *Items) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusNotFound, h.wire.notFound)
		return 0, false
	}
	return id, true
}

func (h *Items) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), userID, h.wire.typ)
	if err != nil {
		h.logger.Error("Items handler: list failed",
			"type", h.wire.typ,
			"error", err.Error())
		handleError(w, err, h.wire.notFound)
		return
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, h.wire.encode(item))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Items) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), userID, id, h.wire.typ)
	if err != nil {
		handleError(w, err, h.wire.notFound)
		return
	}

	writeJSON(w, http.StatusOK, h.wire.encode(item))
}

func (h *Items) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed form body")
		return
	}

	date, err := time.Parse(h.wire.dateLayout, r.PostForm.Get(h.wire.dateField))
	if err != nil {
		handleError(w, model.NewValidationError(h.wire.dateField), h.wire.notFound)
		return
	}

	item, err := h.service.Create(r.Context(), model.Item{
		UserID:      userID,
		Type:        h.wire.typ,
		Name:        r.PostForm.Get(h.wire.nameField),
		Date:        date,
		Description: r.PostForm.Get("description"),
		Location:    r.PostForm.Get("location"),
	})
	if err != nil {
		h.logger.Error("Items handler: create failed",
			"type", h.wire.typ,
			"user_id", userID,
			"error", err.Error())
		handleError(w, err, h.wire.notFound)
		return
	}

	writeJSON(w, http.StatusCreated, h.wire.encode(item))
}

// Update overlays the submitted form fields onto the stored row, so absent
// fields keep their current values.
func (h *Items) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed form body")
		return
	}

	item, err := h.service.Get(r.Context(), userID, id, h.wire.typ)
	if err != nil {
		handleError(w, err, h.wire.notFound)
		return
	}

	if r.PostForm.Has(h.wire.nameField) {
		item.Name = r.PostForm.Get(h.wire.nameField)
	}
	if r.PostForm.Has(h.wire.dateField) {
		date, err := time.Parse(h.wire.dateLayout, r.PostForm.Get(h.wire.dateField))
		if err != nil {
			handleError(w, model.NewValidationError(h.wire.dateField), h.wire.notFound)
			return
		}
		item.Date = date
	}
	if r.PostForm.Has("description") {
		item.Description = r.PostForm.Get("description")
	}
	if r.PostForm.Has("location") {
		item.Location = r.PostForm.Get("location")
	}

	updated, err := h.service.Update(r.Context(), item)
	if err != nil {
		h.logger.Error("Items handler: update failed",
			"type", h.wire.typ,
			"user_id", userID,
			"item_id", id,
			"error", err.Error())
		handleError(w, err, h.wire.notFound)
		return
	}

	writeJSON(w, http.StatusOK, h.wire.encode(updated))
}

func (h *Items) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id, h.wire.typ); err != nil {
		handleError(w, err, h.wire.notFound)
		return
	}

	writeMessage(w, http.StatusOK, h.wire.deleted)
}

// DeleteByName serves the legacy name-scoped delete. Ambiguous names are
// rejected with 409 instead of deleting an arbitrary row.
func (h *Items) DeleteByName(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")

	if err := h.service.DeleteByName(r.Context(), userID, name, h.wire.typ); err != nil {
		handleError(w, err, h.wire.notFound)
		return
	}

	writeMessage(w, http.StatusOK, h.wire.deleted)
}

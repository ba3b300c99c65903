package service

import (
	"context"
	"fmt"

	"github.com/ndanilova/calendar-server/internal/calendar"
	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/model"
)

// Calendar orchestrates item CRUD for one user session and keeps the derived
// date index consistent with the store: every mutation writes through the
// matching item store, then rebuilds the index from scratch. A failed write
// leaves the index untouched.
type Calendar struct {
	events   model.ItemStore
	meetings model.ItemStore
	logger   *logger.Logger
}

func NewCalendar(events, meetings model.ItemStore, logger *logger.Logger) *Calendar {
	return &Calendar{
		events:   events,
		meetings: meetings,
		logger:   logger,
	}
}

func (s *Calendar) storeFor(typ model.ItemType) model.ItemStore {
	if typ == model.ItemTypeMeeting {
		return s.meetings
	}
	return s.events
}

func (s *Calendar) List(ctx context.Context, userID int64, typ model.ItemType) ([]model.Item, error) {
	items, err := s.storeFor(typ).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *Calendar) Get(ctx context.Context, userID int64, id int64, typ model.ItemType) (model.Item, error) {
	return s.storeFor(typ).GetByID(ctx, id, userID)
}

func (s *Calendar) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if item.Name == "" {
		return model.Item{}, model.NewValidationError("name")
	}
	if item.Date.IsZero() {
		return model.Item{}, model.NewValidationError("date")
	}

	saved, err := s.storeFor(item.Type).Create(ctx, item)
	if err != nil {
		s.logger.Error("Calendar service: failed to create item",
			"type", item.Type,
			"user_id", item.UserID,
			"error", err.Error())
		return model.Item{}, err
	}

	if err := s.rebuild(ctx, item.UserID); err != nil {
		return model.Item{}, err
	}

	s.logger.Info("Calendar service: item created",
		"type", saved.Type,
		"user_id", saved.UserID,
		"item_id", saved.ID)

	return saved, nil
}

func (s *Calendar) Update(ctx context.Context, item model.Item) (model.Item, error) {
	if item.Name == "" {
		return model.Item{}, model.NewValidationError("name")
	}
	if item.Date.IsZero() {
		return model.Item{}, model.NewValidationError("date")
	}

	saved, err := s.storeFor(item.Type).Update(ctx, item)
	if err != nil {
		return model.Item{}, err
	}

	if err := s.rebuild(ctx, item.UserID); err != nil {
		return model.Item{}, err
	}

	s.logger.Info("Calendar service: item updated",
		"type", saved.Type,
		"user_id", saved.UserID,
		"item_id", saved.ID)

	return saved, nil
}

func (s *Calendar) Delete(ctx context.Context, userID int64, id int64, typ model.ItemType) error {
	if err := s.storeFor(typ).DeleteByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.rebuild(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("Calendar service: item deleted",
		"type", typ,
		"user_id", userID,
		"item_id", id)

	return nil
}

// DeleteByName removes the single item of the given type carrying the name.
// Zero matches signal ErrNotFound; more than one match is rejected with
// ErrAmbiguousName rather than deleting an arbitrary row.
func (s *Calendar) DeleteByName(ctx context.Context, userID int64, name string, typ model.ItemType) error {
	if name == "" {
		return model.NewValidationError("name")
	}

	matches, err := s.storeFor(typ).GetByName(ctx, name, userID)
	if err != nil {
		return fmt.Errorf("failed to get items by name: %w", err)
	}

	switch len(matches) {
	case 0:
		return model.ErrNotFound
	case 1:
		return s.Delete(ctx, userID, matches[0].ID, typ)
	default:
		s.logger.Info("Calendar service: ambiguous delete by name rejected",
			"type", typ,
			"user_id", userID,
			"name", name,
			"matches", len(matches))
		return model.ErrAmbiguousName
	}
}

// Cell returns the laid-out lines of one date cell.
func (s *Calendar) Cell(ctx context.Context, userID int64, date string) ([]calendar.Line, error) {
	idx, err := s.index(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, meetings := idx.Lookup(date)
	return calendar.LayoutCell(events, meetings), nil
}

// Month returns laid-out cells for every date of a month that holds items.
func (s *Calendar) Month(ctx context.Context, userID int64, year, month int) (map[string][]calendar.Line, error) {
	idx, err := s.index(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	cells := map[string][]calendar.Line{}
	for _, date := range idx.Dates() {
		if len(date) < len(prefix) || date[:len(prefix)] != prefix {
			continue
		}
		events, meetings := idx.Lookup(date)
		cells[date] = calendar.LayoutCell(events, meetings)
	}

	return cells, nil
}

func (s *Calendar) index(ctx context.Context, userID int64) (*calendar.Index, error) {
	idx := calendar.NewIndex(s.events, s.meetings)
	if err := idx.Rebuild(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return idx, nil
}

func (s *Calendar) rebuild(ctx context.Context, userID int64) error {
	idx, err := s.index(ctx, userID)
	if err != nil {
		return err
	}

	s.logger.Debug("Calendar service: index rebuilt",
		"user_id", userID,
		"dates", idx.Len())

	return nil
}

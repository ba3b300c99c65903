package model

import (
	"context"
	"time"
)

// ItemStore defines persistence operations for one calendar item table.
// Update and DeleteByID match rows by both id and owning user id, so one
// user can never mutate another user's items.
type ItemStore interface {
	ListByUser(ctx context.Context, userID int64) ([]Item, error)
	GetByID(ctx context.Context, id int64, userID int64) (Item, error)
	GetByName(ctx context.Context, name string, userID int64) ([]Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, item Item) (Item, error)
	DeleteByID(ctx context.Context, id int64, userID int64) error
}

// Item represents a user-owned calendar entry. Events carry a date only
// (midnight UTC), meetings a full timestamp.
type Item struct {
	ID          int64
	UserID      int64
	Type        ItemType
	Name        string
	Date        time.Time
	Description string
	Location    string
}

// ItemType enumerates calendar item kinds.
type ItemType string

const (
	// ItemTypeEvent is a date-only calendar entry.
	ItemTypeEvent ItemType = "event"
	// ItemTypeMeeting is a calendar entry with a time of day.
	ItemTypeMeeting ItemType = "meeting"
)

// Package calendar holds the date-indexed view of one user's items and the
// layout logic that places them inside calendar cells.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ndanilova/calendar-server/internal/model"
)

// DateLayout is the key format of the index, an ISO calendar date.
const DateLayout = "2006-01-02"

// Source yields all items of one type owned by a user.
type Source interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Item, error)
}

// Index maps calendar dates to the events and meetings falling on them.
// It is derived state: Rebuild discards everything and regroups from the
// sources, so the index always reflects the store as of the last rebuild.
type Index struct {
	events   Source
	meetings Source
	days     map[string]*day
}

type day struct {
	events   []model.Item
	meetings []model.Item
}

// NewIndex creates an empty index over the two item sources.
func NewIndex(events, meetings Source) *Index {
	return &Index{
		events:   events,
		meetings: meetings,
		days:     map[string]*day{},
	}
}

// Rebuild clears the index and regroups the user's items under their date
// keys, preserving fetch order within each date. Rebuilding twice without an
// intervening store change yields an identical index.
func (x *Index) Rebuild(ctx context.Context, userID int64) error {
	events, err := x.events.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	meetings, err := x.meetings.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load meetings: %w", err)
	}

	days := map[string]*day{}
	for _, item := range events {
		d := dayFor(days, item.Date)
		d.events = append(d.events, item)
	}
	for _, item := range meetings {
		d := dayFor(days, item.Date)
		d.meetings = append(d.meetings, item)
	}

	x.days = days
	return nil
}

func dayFor(days map[string]*day, date time.Time) *day {
	key := date.UTC().Format(DateLayout)
	d, ok := days[key]
	if !ok {
		d = &day{}
		days[key] = d
	}
	return d
}

// Lookup returns the events and meetings indexed under the given date key.
// Unknown dates yield empty slices.
func (x *Index) Lookup(date string) (events, meetings []model.Item) {
	d, ok := x.days[date]
	if !ok {
		return nil, nil
	}
	return d.events, d.meetings
}

// Dates returns the sorted date keys that have at least one item.
func (x *Index) Dates() []string {
	keys := make([]string, 0, len(x.days))
	for k := range x.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of dates with at least one item.
func (x *Index) Len() int {
	return len(x.days)
}

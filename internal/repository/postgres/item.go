package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndanilova/calendar-server/internal/model"
)

var _ model.ItemStore = (*ItemRepository)(nil)

// itemTable describes one of the two calendar item tables. The events and
// meetings tables share a shape but keep the legacy column names.
type itemTable struct {
	name    string
	idCol   string
	nameCol string
	dateCol string
	typ     model.ItemType
}

var (
	eventsTable = itemTable{
		name:    "events",
		idCol:   "idevents",
		nameCol: "event_name",
		dateCol: "event_date",
		typ:     model.ItemTypeEvent,
	}
	meetingsTable = itemTable{
		name:    "meetings",
		idCol:   "idmeetings",
		nameCol: "meeting_name",
		dateCol: "meeting_date",
		typ:     model.ItemTypeMeeting,
	}
)

// ItemRepository persists calendar items in one of the item tables.
type ItemRepository struct {
	db  DB
	tbl itemTable
}

// NewEventRepository creates a repository over the events table.
func NewEventRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db, tbl: eventsTable}
}

// NewMeetingRepository creates a repository over the meetings table.
func NewMeetingRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db, tbl: meetingsTable}
}

func (r *ItemRepository) columns() string {
	return fmt.Sprintf("%s, idusers, %s, %s, description, location",
		r.tbl.idCol, r.tbl.nameCol, r.tbl.dateCol)
}

func (r *ItemRepository) scan(row pgx.Row) (model.Item, error) {
	item := model.Item{Type: r.tbl.typ}
	err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.Date, &item.Description, &item.Location)
	return item, err
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID int64) ([]model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE idusers = $1 ORDER BY %s`,
		r.columns(), r.tbl.name, r.tbl.idCol)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.tbl.name, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.tbl.name, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64, userID int64) (model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND idusers = $2`,
		r.columns(), r.tbl.name, r.tbl.idCol)

	item, err := r.scan(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, fmt.Errorf("failed to get %s by id: %w", r.tbl.name, err)
	}

	return item, nil
}

func (r *ItemRepository) GetByName(ctx context.Context, name string, userID int64) ([]model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND idusers = $2 ORDER BY %s`,
		r.columns(), r.tbl.name, r.tbl.nameCol, r.tbl.idCol)

	rows, err := r.db.Query(ctx, query, name, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s by name: %w", r.tbl.name, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.tbl.name, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	query := fmt.Sprintf(`INSERT INTO %s (idusers, %s, %s, description, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		r.tbl.name, r.tbl.nameCol, r.tbl.dateCol, r.columns())

	saved, err := r.scan(r.db.QueryRow(ctx, query,
		item.UserID, item.Name, item.Date, item.Description, item.Location,
	))
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to create %s: %w", r.tbl.typ, err)
	}

	return saved, nil
}

func (r *ItemRepository) Update(ctx context.Context, item model.Item) (model.Item, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, description = $3, location = $4
		WHERE %s = $5 AND idusers = $6
		RETURNING %s`,
		r.tbl.name, r.tbl.nameCol, r.tbl.dateCol, r.tbl.idCol, r.columns())

	saved, err := r.scan(r.db.QueryRow(ctx, query,
		item.Name, item.Date, item.Description, item.Location, item.ID, item.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, fmt.Errorf("failed to update %s: %w", r.tbl.typ, err)
	}

	return saved, nil
}

func (r *ItemRepository) DeleteByID(ctx context.Context, id int64, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND idusers = $2`,
		r.tbl.name, r.tbl.idCol)

	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.tbl.typ, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

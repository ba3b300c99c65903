package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilova/calendar-server/internal/model"
)

var (
	eventColumns   = []string{"idevents", "idusers", "event_name", "event_date", "description", "location"}
	meetingColumns = []string{"idmeetings", "idusers", "meeting_name", "meeting_date", "description", "location"}
)

func TestItemRepository_ListByUser(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	first := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE idusers = \$1 ORDER BY idevents`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(eventColumns).
			AddRow(int64(1), int64(7), "Standup", first, "daily", "Room A").
			AddRow(int64(2), int64(7), "Demo", second, "", ""))

	repo := NewEventRepository(mock)

	items, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Standup", items[0].Name)
	assert.Equal(t, model.ItemTypeEvent, items[0].Type)
	assert.Equal(t, second, items[1].Date)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		date := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT (.+) FROM meetings WHERE idmeetings = \$1 AND idusers = \$2`).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(pgxmock.NewRows(meetingColumns).
				AddRow(int64(3), int64(7), "Review", date, "sprint review", "Zoom"))

		repo := NewMeetingRepository(mock)

		item, err := repo.GetByID(context.Background(), 3, 7)
		require.NoError(t, err)
		assert.Equal(t, model.ItemTypeMeeting, item.Type)
		assert.Equal(t, "Review", item.Name)
		assert.Equal(t, "Zoom", item.Location)
	})

	t.Run("wrong owner is not found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM meetings WHERE idmeetings = \$1 AND idusers = \$2`).
			WithArgs(int64(3), int64(8)).
			WillReturnRows(pgxmock.NewRows(meetingColumns))

		repo := NewMeetingRepository(mock)

		_, err = repo.GetByID(context.Background(), 3, 8)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestItemRepository_GetByName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE event_name = \$1 AND idusers = \$2 ORDER BY idevents`).
		WithArgs("Standup", int64(7)).
		WillReturnRows(pgxmock.NewRows(eventColumns).
			AddRow(int64(1), int64(7), "Standup", date, "", "").
			AddRow(int64(4), int64(7), "Standup", date, "", ""))

	repo := NewEventRepository(mock)

	items, err := repo.GetByName(context.Background(), "Standup", 7)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestItemRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs(int64(7), "Standup", date, "daily", "Room A").
		WillReturnRows(pgxmock.NewRows(eventColumns).
			AddRow(int64(10), int64(7), "Standup", date, "daily", "Room A"))

	repo := NewEventRepository(mock)

	saved, err := repo.Create(context.Background(), model.Item{
		UserID:      7,
		Name:        "Standup",
		Date:        date,
		Description: "daily",
		Location:    "Room A",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	assert.Equal(t, model.ItemTypeEvent, saved.Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update(t *testing.T) {
	t.Parallel()

	t.Run("updated", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		date := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`UPDATE events SET`).
			WithArgs("Standup", date, "moved", "Room B", int64(10), int64(7)).
			WillReturnRows(pgxmock.NewRows(eventColumns).
				AddRow(int64(10), int64(7), "Standup", date, "moved", "Room B"))

		repo := NewEventRepository(mock)

		saved, err := repo.Update(context.Background(), model.Item{
			ID:          10,
			UserID:      7,
			Name:        "Standup",
			Date:        date,
			Description: "moved",
			Location:    "Room B",
		})
		require.NoError(t, err)
		assert.Equal(t, "Room B", saved.Location)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		date := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`UPDATE events SET`).
			WithArgs("Standup", date, "", "", int64(9999), int64(7)).
			WillReturnRows(pgxmock.NewRows(eventColumns))

		repo := NewEventRepository(mock)

		_, err = repo.Update(context.Background(), model.Item{ID: 9999, UserID: 7, Name: "Standup", Date: date})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestItemRepository_DeleteByID(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM meetings WHERE idmeetings = \$1 AND idusers = \$2`).
			WithArgs(int64(3), int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := NewMeetingRepository(mock)

		require.NoError(t, repo.DeleteByID(context.Background(), 3, 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM meetings WHERE idmeetings = \$1 AND idusers = \$2`).
			WithArgs(int64(404), int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewMeetingRepository(mock)

		err = repo.DeleteByID(context.Background(), 404, 7)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

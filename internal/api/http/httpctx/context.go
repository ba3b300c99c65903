// Package httpctx carries the authenticated user id through request contexts.
package httpctx

import (
	"context"

	"github.com/ndanilova/calendar-server/internal/model"
)

type contextKey string

const userIDKey contextKey = "userID"

var _ model.ContextManager = (*Manager)(nil)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func (m *Manager) UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

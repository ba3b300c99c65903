package model

import (
	"context"
	"net"
)

// SecurityLayer produces the listener the server accepts connections on,
// either plain TCP or TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running network server with a graceful stop.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// ContextManager carries the authenticated user id through request contexts.
type ContextManager interface {
	SetUserID(ctx context.Context, userID int64) context.Context
	UserID(ctx context.Context) (int64, bool)
}

// Mailer submits a plain-text mail message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

package router

import (
	"net/http"

	"github.com/ndanilova/calendar-server/internal/api/http/handler"
	"github.com/ndanilova/calendar-server/internal/api/http/middleware"
	"github.com/ndanilova/calendar-server/internal/logger"
)

// Router assembles the REST surface: public auth endpoints, the
// token-gated item, calendar and notification endpoints, and health.
type Router struct {
	auth     *handler.Auth
	events   *handler.Items
	meetings *handler.Items
	calendar *handler.Calendar
	notify   *handler.Notify
	health   *handler.Health
	authMW   *middleware.Authenticate
	logMW    *middleware.Logging
}

func New(
	auth *handler.Auth,
	events *handler.Items,
	meetings *handler.Items,
	calendar *handler.Calendar,
	notify *handler.Notify,
	health *handler.Health,
	authMW *middleware.Authenticate,
	logger *logger.Logger,
) *Router {
	return &Router{
		auth:     auth,
		events:   events,
		meetings: meetings,
		calendar: calendar,
		notify:   notify,
		health:   health,
		authMW:   authMW,
		logMW:    middleware.NewLogging(logger),
	}
}

// Handler builds the request multiplexer.
func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", r.auth.Register)
	mux.HandleFunc("POST /api/login", r.auth.Login)
	mux.HandleFunc("POST /api/refresh", r.auth.Refresh)
	mux.HandleFunc("POST /api/logout", r.auth.Logout)
	mux.HandleFunc("GET /health", r.health.Check)

	protected := func(h http.HandlerFunc) http.Handler {
		return r.authMW.Wrap(h)
	}

	mux.Handle("GET /api/profile", protected(r.auth.Profile))

	for _, items := range []struct {
		prefix string
		h      *handler.Items
	}{
		{"/events", r.events},
		{"/meetings", r.meetings},
	} {
		mux.Handle("GET "+items.prefix, protected(items.h.List))
		mux.Handle("GET "+items.prefix+"/{id}", protected(items.h.Get))
		mux.Handle("POST "+items.prefix, protected(items.h.Create))
		mux.Handle("PUT "+items.prefix+"/{id}", protected(items.h.Update))
		mux.Handle("DELETE "+items.prefix+"/{id}", protected(items.h.Delete))
		mux.Handle("DELETE "+items.prefix, protected(items.h.DeleteByName))
	}

	mux.Handle("GET /calendar", protected(r.calendar.Month))
	mux.Handle("GET /calendar/{date}", protected(r.calendar.Cell))

	mux.Handle("POST /notify", protected(r.notify.Send))

	return r.logMW.Wrap(mux)
}

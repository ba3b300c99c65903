package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ndanilova/calendar-server/internal/api/http/handler"
	"github.com/ndanilova/calendar-server/internal/api/http/httpctx"
	"github.com/ndanilova/calendar-server/internal/api/http/middleware"
	"github.com/ndanilova/calendar-server/internal/api/http/router"
	httpServer "github.com/ndanilova/calendar-server/internal/api/http/server"
	"github.com/ndanilova/calendar-server/internal/config"
	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/mail"
	"github.com/ndanilova/calendar-server/internal/model"
	"github.com/ndanilova/calendar-server/internal/repository/postgres"
	"github.com/ndanilova/calendar-server/internal/server"
	"github.com/ndanilova/calendar-server/internal/service"
	"github.com/ndanilova/calendar-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	meetingRepo := postgres.NewMeetingRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	authService := service.NewAuth(userRepo, refreshTokenRepo, logger, tokenManager)
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, logger)
	calendarService := service.NewCalendar(eventRepo, meetingRepo, logger)
	notifyService := service.NewNotifier(mail.NewClient(cfg.SMTP), logger)
	ctxMgr := httpctx.NewManager()

	authHandler := handler.NewAuth(authService, tokenService, ctxMgr, logger)
	eventsHandler := handler.NewEvents(calendarService, ctxMgr, logger)
	meetingsHandler := handler.NewMeetings(calendarService, ctxMgr, logger)
	calendarHandler := handler.NewCalendar(calendarService, ctxMgr, logger)
	notifyHandler := handler.NewNotify(notifyService, ctxMgr, logger)
	healthHandler := handler.NewHealth(db)
	authMW := middleware.NewAuthenticate(tokenService, ctxMgr, logger)

	r := router.New(authHandler, eventsHandler, meetingsHandler, calendarHandler, notifyHandler, healthHandler, authMW, logger)
	srv := httpServer.NewHTTPServer(r.Handler(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

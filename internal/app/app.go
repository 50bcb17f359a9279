package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bengobox/test-scenarios/internal/config"
	"github.com/bengobox/test-scenarios/internal/httpapi"
	"github.com/bengobox/test-scenarios/internal/httpapi/handlers"
	"github.com/bengobox/test-scenarios/internal/scenario"
	"go.uber.org/zap"
)

// App wires a scenario's routes into a server and exposes lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	scenario   scenario.Scenario
	httpServer *http.Server
	listener   net.Listener
}

// New constructs the application. The clock may be nil.
func New(cfg *config.Config, logger *zap.Logger, sc scenario.Scenario, clock handlers.Clock) *App {
	if clock == nil {
		clock = handlers.SystemClock
	}

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Routes: sc.Routes(scenario.Deps{Config: cfg, Clock: clock, Logger: logger}),
		Logger: logger,
		CORS:   cfg.CORS,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		scenario:   sc,
		httpServer: server,
	}
}

// Handler exposes the routed handler.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Listen binds the listener and logs the startup banner with the bound port.
func (a *App) Listen() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err)
	}
	a.listener = ln

	port := ln.Addr().(*net.TCPAddr).Port
	a.logger.Info(a.scenario.Banner(a.cfg.HTTP.Host, port),
		zap.String("addr", ln.Addr().String()),
		zap.Int("port", port),
	)
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (a *App) Addr() string {
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return a.httpServer.Addr
}

// Serve accepts connections until Shutdown. A graceful close returns nil.
func (a *App) Serve() error {
	if a.listener == nil {
		return errors.New("serve called before listen")
	}
	if err := a.httpServer.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run binds and serves.
func (a *App) Run() error {
	if err := a.Listen(); err != nil {
		return err
	}
	return a.Serve()
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}

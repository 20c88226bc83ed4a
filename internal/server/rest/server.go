// Package rest exposes the account and food catalog services as a JSON API
// over HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sensitivv/internal/logging"
)

const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

type RESTServer struct {
	address         string
	handler         http.Handler
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewRESTServer(address string, l logging.Logger, accounts AccountService, food FoodItemService) *RESTServer {
	logger := l.With("module", "rest_server")
	return &RESTServer{
		address:         address,
		handler:         NewHandler(logger, accounts, food),
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *RESTServer) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *RESTServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *RESTServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-shutdownErr
}

package internal

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/langneg/pkg/logger"
)

// server owns one http.Server and its lifecycle hooks.
type server struct {
	cfg *runConfig
	srv *http.Server
	log *slog.Logger
}

func newServer(h http.Handler, cfg *runConfig) *server {
	if cfg.address == "" {
		cfg.address = ":8080"
	}
	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}

	return &server{
		cfg: cfg,
		log: log,
		srv: &http.Server{
			Addr:              cfg.address,
			Handler:           h,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}
}

// run blocks until the base context is done, a signal arrives or Serve fails.
func (s *server) run() error {
	base := s.cfg.baseCtx
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, hook := range s.cfg.startupHooks {
		if err := hook(ctx); err != nil {
			s.log.ErrorContext(ctx, "startup hook failed", slog.Any("error", err))
			return err
		}
	}

	ln := s.cfg.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.srv.Addr); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info("server starting",
			slog.String("address", ln.Addr().String()),
			slog.Bool("language_negotiation", s.cfg.negotiates),
		)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return s.shutdown()
}

// shutdown stops accepting requests, then runs the shutdown hooks in order
// under one shared deadline.
func (s *server) shutdown() error {
	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range s.cfg.shutdownHooks {
		if err := hook(ctx); err != nil {
			errs = append(errs, err)
			s.log.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.log.Error("shutdown completed with errors", slog.Int("errors", len(errs)))
		return err
	}
	s.log.Info("shutdown completed")
	return nil
}

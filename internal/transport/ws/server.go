package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	writeTimeout      = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
	drainInterval     = 20 * time.Millisecond
)

// server streams the live result feed to read-only websocket watchers.
type server struct {
	srv      *http.Server
	hub      domain.HubUseCase
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func New(addr string, hub domain.HubUseCase, logger *zap.Logger) *server {
	s := &server{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", s.serveFeed)
	mux.HandleFunc("GET /health", s.healthCheck)
	return mux
}

// ListenAndServe blocks until the server is shut down.
func (s *server) ListenAndServe() error {
	s.logger.Info("starting listening address: " + s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithMessage(err, "listen and serve")
	}
	return nil
}

// Shutdown closes the feed and waits until every watcher got what was queued for it,
// then stops the server. Watchers left when ctx is done are cut off.
func (s *server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()
	for s.hub.Subscribers() > 0 {
		select {
		case <-ctx.Done():
			s.logger.Warn("feed watchers not drained", zap.Int("subscribers", s.hub.Subscribers()))
			_ = s.srv.Close()
			return errors.WithMessage(ctx.Err(), "drain feed")
		case <-ticker.C:
		}
	}
	return s.srv.Shutdown(ctx)
}

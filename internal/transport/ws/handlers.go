package ws

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"go.uber.org/zap"
)

func (s *server) serveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	client := newClient(conn)
	id, msgs := s.hub.Subscribe()
	defer s.hub.Unsubscribe(id)
	defer client.Close()
	s.logger.Info("new feed connection", zap.String("subscriber", id), zap.String("remote", r.RemoteAddr))
	closed := client.WaitClosed()
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if err := client.WriteMessage(msg); err != nil {
				s.logger.Warn(err.Error(), zap.String("subscriber", id))
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func (s *server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	resp := domain.HealthCheckResponse{
		Subscribers: s.hub.Subscribers(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := jsoniter.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Warn(err.Error())
	}
}

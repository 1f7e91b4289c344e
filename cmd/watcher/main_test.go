package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_PrintsGamesUntilBatchFinished(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(domain.Message{Type: domain.GameFinished, Payload: domain.GameReport{
			ID:     "g1",
			Winner: "player1",
			Turns:  12,
			Players: []domain.PlayerResult{
				{Name: "player1", Strategy: "odds", Tiles: []domain.Tile{36, 30}, Score: 7},
			},
		}})
		_ = conn.WriteJSON(domain.Message{Type: domain.GameFinished, Payload: domain.GameReport{ID: "g2", Turns: 3}})
		_ = conn.WriteJSON(domain.Message{Type: domain.BatchFinished, Payload: domain.Summary{
			Games:      2,
			AvgTurns:   7.5,
			Strategies: map[string]*domain.StrategyStats{"odds": {Wins: 1}},
		}})
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	var out bytes.Buffer
	require.NoError(t, newWatcher(conn, &out).watch())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "#1 g1: player1 (odds) wins with 7 worms [36 30] after 12 turns", lines[0])
	assert.Equal(t, "#2 g2: no winner after 3 turns", lines[1])
	assert.Equal(t, "batch of 2 games finished, 7.5 turns per game", lines[2])
	assert.Equal(t, "  odds: 1 wins", lines[3])
}

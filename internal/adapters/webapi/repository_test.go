package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_PostsSummary(t *testing.T) {
	var got domain.Summary
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	summary := domain.Summary{
		Games:        3,
		WinsByPlayer: map[string]int{"player1": 2, "player2": 1},
		Strategies:   map[string]*domain.StrategyStats{"odds": {Players: 3, Wins: 2, AvgScore: 4.5}},
		NeverClaimed: map[domain.Tile]int{36: 3},
	}
	require.NoError(t, New(0).Publish(context.Background(), srv.URL, summary))
	assert.Equal(t, summary, got)
}

func TestPublish_RejectedSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := New(0).Publish(context.Background(), srv.URL, domain.Summary{})
	assert.ErrorContains(t, err, "400")
}

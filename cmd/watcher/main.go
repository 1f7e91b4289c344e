package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/pkg/utils"
	"github.com/pkg/errors"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "feed server address")
	flag.Parse()
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/feed"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial: " + err.Error())
	}
	defer func() {
		_ = conn.Close()
	}()
	if err := newWatcher(conn, os.Stdout).watch(); err != nil {
		log.Fatal(err)
	}
}

type watcher struct {
	conn  *websocket.Conn
	out   io.Writer
	games int
}

func newWatcher(conn *websocket.Conn, out io.Writer) *watcher {
	return &watcher{
		conn: conn,
		out:  out,
	}
}

func (w *watcher) watch() error {
	for {
		msg := new(domain.Message)
		if err := w.conn.ReadJSON(msg); err != nil {
			return errors.WithMessage(err, "read json msg")
		}
		switch msg.Type {
		case domain.GameFinished:
			if err := w.handleGameFinished(msg); err != nil {
				return errors.WithMessage(err, "handle game finished")
			}
		case domain.BatchFinished:
			return errors.WithMessage(w.handleBatchFinished(msg), "handle batch finished")
		}
	}
}

func (w *watcher) handleGameFinished(msg *domain.Message) error {
	report, err := utils.UnmarshalJson[domain.GameReport](msg.Payload)
	if err != nil {
		return err
	}
	w.games++
	winner, ok := report.WinnerResult()
	if !ok {
		fmt.Fprintf(w.out, "#%d %s: no winner after %d turns\n", w.games, report.ID, report.Turns)
		return nil
	}
	fmt.Fprintf(w.out, "#%d %s: %s (%s) wins with %d worms [%s] after %d turns\n",
		w.games, report.ID, winner.Name, winner.Strategy, winner.Score, joinTiles(winner.Tiles), report.Turns)
	return nil
}

func (w *watcher) handleBatchFinished(msg *domain.Message) error {
	summary, err := utils.UnmarshalJson[domain.Summary](msg.Payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(w.out, "batch of %d games finished, %.1f turns per game\n", summary.Games, summary.AvgTurns)
	ids := make([]string, 0, len(summary.Strategies))
	for id := range summary.Strategies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(w.out, "  %s: %d wins\n", id, summary.Strategies[id].Wins)
	}
	return nil
}

func joinTiles(tiles []domain.Tile) string {
	parts := make([]string, len(tiles))
	for i, tile := range tiles {
		parts[i] = tile.String()
	}
	return strings.Join(parts, " ")
}

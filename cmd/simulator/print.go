package main

import (
	"io"
	"slices"

	"github.com/kiryu-dev/heckmeck/internal/config"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printSummary(w io.Writer, cfg config.Config, summary domain.Summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "games: %d, players: %d, turns: %d (%.1f per game)\n",
		summary.Games, cfg.Players, summary.Turns, summary.AvgTurns)

	ids := make([]string, 0, len(summary.Strategies))
	for id := range summary.Strategies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	p.Fprintf(w, "\n%-22s %8s %8s %6s %10s %10s %8s\n", "strategy", "players", "wins", "win%", "avg score", "tiles lost", "busts")
	for _, id := range ids {
		s := summary.Strategies[id]
		p.Fprintf(w, "%-22s %8d %8d %5.1f%% %10.2f %10d %8d\n",
			id, s.Players, s.Wins, percent(s.Wins, summary.Games), s.AvgScore, s.TilesLost, s.Busts)
	}

	names := make([]string, 0, len(summary.WinsByPlayer))
	for name := range summary.WinsByPlayer {
		names = append(names, name)
	}
	slices.Sort(names)
	p.Fprintf(w, "\nwins by player:\n")
	for _, name := range names {
		p.Fprintf(w, "  %-12s %8d\n", name, summary.WinsByPlayer[name])
	}

	tiles := make([]domain.Tile, 0, len(summary.NeverClaimed))
	for tile := range summary.NeverClaimed {
		tiles = append(tiles, tile)
	}
	slices.Sort(tiles)
	p.Fprintf(w, "\nnever claimed:\n")
	for _, tile := range tiles {
		p.Fprintf(w, "  tile %2d %8d games\n", int(tile), summary.NeverClaimed[tile])
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

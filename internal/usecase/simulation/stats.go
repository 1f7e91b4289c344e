package simulation

import (
	"github.com/kiryu-dev/heckmeck/internal/domain"
)

func Aggregate(reports []domain.GameReport) domain.Summary {
	summary := domain.Summary{
		Games:        len(reports),
		WinsByPlayer: make(map[string]int),
		Strategies:   make(map[string]*domain.StrategyStats),
		NeverClaimed: make(map[domain.Tile]int),
	}
	scores := make(map[string]int)
	for _, report := range reports {
		summary.Turns += report.Turns
		if report.Winner != "" {
			summary.WinsByPlayer[report.Winner]++
		}
		for _, tile := range report.NeverClaimed {
			summary.NeverClaimed[tile]++
		}
		for _, p := range report.Players {
			stats, ok := summary.Strategies[p.Strategy]
			if !ok {
				stats = &domain.StrategyStats{}
				summary.Strategies[p.Strategy] = stats
			}
			stats.Players++
			stats.TilesLost += len(p.TilesLost)
			stats.Busts += p.Busts
			stats.Turns += p.Turns
			scores[p.Strategy] += p.Score
			if p.Name == report.Winner {
				stats.Wins++
			}
		}
	}
	for id, stats := range summary.Strategies {
		stats.AvgScore = float64(scores[id]) / float64(stats.Players)
	}
	if summary.Games > 0 {
		summary.AvgTurns = float64(summary.Turns) / float64(summary.Games)
	}
	return summary
}

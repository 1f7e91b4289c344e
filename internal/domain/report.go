package domain

type PlayerResult struct {
	Name      string `json:"name"`
	Strategy  string `json:"strategy"`
	Tiles     []Tile `json:"tiles"`
	Score     int    `json:"score"`
	TilesLost []Tile `json:"tiles_lost"`
	Turns     int    `json:"turns"`
	Busts     int    `json:"busts"`
}

// GameReport is what a finished game exposes to reporting.
type GameReport struct {
	ID           string         `json:"id"`
	Winner       string         `json:"winner"`
	Players      []PlayerResult `json:"players"`
	NeverClaimed []Tile         `json:"never_claimed"`
	Removed      []Tile         `json:"removed"`
	Turns        int            `json:"turns"`
}

func (r GameReport) WinnerResult() (PlayerResult, bool) {
	for _, p := range r.Players {
		if p.Name == r.Winner {
			return p, true
		}
	}
	return PlayerResult{}, false
}

type StrategyStats struct {
	Players   int     `json:"players"`
	Wins      int     `json:"wins"`
	AvgScore  float64 `json:"avg_score"`
	TilesLost int     `json:"tiles_lost"`
	Busts     int     `json:"busts"`
	Turns     int     `json:"turns"`
}

// Summary aggregates a batch of games.
type Summary struct {
	Games        int                       `json:"games"`
	Turns        int                       `json:"turns"`
	AvgTurns     float64                   `json:"avg_turns"`
	WinsByPlayer map[string]int            `json:"wins_by_player"`
	Strategies   map[string]*StrategyStats `json:"strategies"`
	NeverClaimed map[Tile]int              `json:"never_claimed"`
}

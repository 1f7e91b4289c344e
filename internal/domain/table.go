package domain

// Table is the game context a strategy sees while deciding.
type Table struct {
	Board   Board
	Players []*Player
	Current int
}

func (t Table) CurrentPlayer() *Player {
	if t.Current < 0 || t.Current >= len(t.Players) {
		return nil
	}
	return t.Players[t.Current]
}

// Claim is a tile a stopping player can take and, when stolen, whose stack it comes from.
type Claim struct {
	Tile   Tile
	Victim *Player
}

func (c Claim) Empty() bool {
	return c.Tile.IsNull()
}

func (c Claim) Stolen() bool {
	return c.Victim != nil && !c.Empty()
}

// BestStealable finds another player whose top tile equals total.
func (t Table) BestStealable(total int) Claim {
	for i, p := range t.Players {
		if i == t.Current {
			continue
		}
		if top := p.TopTile(); !top.IsNull() && int(top) == total {
			return Claim{Tile: top, Victim: p}
		}
	}
	return Claim{}
}

// BestObtainable picks between the board and a steal. Stealing only wins on a
// strictly higher score.
func (t Table) BestObtainable(total int) Claim {
	claim := Claim{Tile: t.Board.BestClaimable(total)}
	if steal := t.BestStealable(total); steal.Tile.Score() > claim.Tile.Score() {
		return steal
	}
	return claim
}

package engine

import (
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// MaxScore is the best possible score.
const MaxScore = 350

// Endgame bonus codes, named after the message shown for each ending.
const (
	BonusSplatter = 133 // Blast from the southwest end of the repository
	BonusLava     = 134 // Blast from the northeast end
	BonusSplashed = 135 // Blast anywhere else
)

const (
	pointsBase       = 2
	pointsFound      = 2
	pointsPerLife    = 10
	pointsNotQuit    = 4
	pointsDwarves    = 25
	pointsClosing    = 25
	pointsNoBlast    = 10
	pointsMagazine   = 1
	treasureLowTier  = 12
	treasureChest    = 14
	treasureHighTier = 16
)

var bonusPoints = map[int]int{
	BonusSplatter: 45,
	BonusLava:     30,
	BonusSplashed: 25,
}

// treasureValue is the full value of a treasure stored in the building.
func treasureValue(obj int) int {
	switch {
	case obj < world.Chest:
		return treasureLowTier
	case obj == world.Chest:
		return treasureChest
	default:
		return treasureHighTier
	}
}

// CalculateScore computes the score of gs. It has no side effects.
func CalculateScore(w *world.World, gs *state.GameState) int {
	score := pointsBase

	for _, obj := range w.Treasures() {
		if !gs.IsFound(obj) {
			continue
		}
		score += pointsFound
		if gs.Location(obj) == world.BuildingRoom && gs.PropValue(obj) == 0 {
			score += treasureValue(obj) - pointsFound
		}
	}

	score += pointsPerLife * max(0, gs.MaxDeaths-gs.Deaths)
	if !gs.GaveUp {
		score += pointsNotQuit
	}
	if gs.Dwarves.Met {
		score += pointsDwarves
	}
	if gs.Clocks.IsClosing || gs.Clocks.IsClosed {
		score += pointsClosing
	}
	if gs.Clocks.IsClosed {
		if pts, ok := bonusPoints[gs.Bonus]; ok {
			score += pts
		} else {
			score += pointsNoBlast
		}
	}
	if gs.Location(world.Magazine) == world.WittsEnd {
		score += pointsMagazine
	}
	for h, given := range gs.Hints.Given {
		if hint, ok := w.Hints[h]; ok && given {
			score -= hint.Penalty
		}
	}
	return score
}

// rank returns the class message earned by score.
func (e *Engine) rank(score int) string {
	classes := e.world.ClassMessages
	for _, c := range classes {
		if score <= c.Score {
			return c.Text
		}
	}
	if len(classes) > 0 {
		return classes[len(classes)-1].Text
	}
	return ""
}

// finalScore reports the score of a finished game.
func (e *Engine) finalScore(gs *state.GameState) string {
	score := CalculateScore(e.world, gs)
	return joinParagraphs(
		fmt.Sprintf("Your score: %d out of a possible %d, using %d turns.", score, MaxScore, gs.Turns),
		e.rank(score),
	)
}

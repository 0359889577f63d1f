package engine

import (
	"fmt"
	"sort"

	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// tickHints counts turns spent near each pending hint and offers the hint
// once its threshold is reached.
func (e *Engine) tickHints(gs *state.GameState) string {
	if gs.IsFinished {
		return ""
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil || room.HintNumber == 0 {
		return ""
	}
	h := room.HintNumber
	hint, ok := e.world.Hints[h]
	if !ok || gs.Hints.Given[h] || gs.Hints.Offered[h] {
		return ""
	}
	gs.Hints.Turns[h]++
	if gs.Hints.Turns[h] < hint.TurnsNeeded {
		return ""
	}
	gs.Hints.Offered[h] = true
	return joinParagraphs(hint.Question, fmt.Sprintf("Say HINT to hear my advice. It will cost you %d points.", hint.Penalty))
}

// hint gives the answer to an offered hint for the current room.
func (e *Engine) hint(gs *state.GameState, _ string) string {
	pending := e.offeredHints(gs)
	if len(pending) == 0 {
		return "I have no hints for you right now."
	}
	h := pending[0]
	gs.Hints.Given[h] = true
	delete(gs.Hints.Offered, h)
	e.logger.Debug("hint given", "game_id", gs.ID, "hint", h)
	return e.world.Hints[h].Answer
}

// offeredHints returns the offered, ungiven hints tied to the current room.
func (e *Engine) offeredHints(gs *state.GameState) []int {
	var out []int
	for h, offered := range gs.Hints.Offered {
		hint, ok := e.world.Hints[h]
		if !ok || !offered || gs.Hints.Given[h] {
			continue
		}
		for _, r := range hint.Rooms {
			if r == gs.CurrentRoom {
				out = append(out, h)
				break
			}
		}
	}
	sort.Ints(out)
	return out
}

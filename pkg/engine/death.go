package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	msgDied        = "You have died."
	msgGameOver    = "You have used all your resurrections. The game is over."
	msgResurrected = "I seem to recall you owe me a resurrection. Very well, you're alive again."
	msgTooLate     = "It looks as though you didn't make it out in time. The game is over."
)

// die kills the player. cause, if set, is shown first. The player is
// resurrected in the building until MaxDeaths is reached; dying
// while the cave closes always ends the game.
func (e *Engine) die(gs *state.GameState, cause string) string {
	gs.Deaths++
	e.logger.Debug("player died", "game_id", gs.ID, "room", gs.CurrentRoom, "deaths", gs.Deaths)

	if gs.Clocks.IsClosing || gs.Clocks.IsClosed {
		gs.IsFinished = true
		return joinParagraphs(cause, msgDied, msgTooLate, e.finalScore(gs))
	}
	if gs.Deaths >= gs.MaxDeaths {
		gs.IsFinished = true
		return joinParagraphs(cause, msgDied, msgGameOver, e.finalScore(gs))
	}

	for _, obj := range gs.CarriedObjects() {
		gs.Place(obj, world.BuildingRoom)
	}
	gs.Lamp.On = false
	gs.SetProp(world.Lamp, 0)
	gs.OldOldRoom = gs.CurrentRoom
	gs.OldRoom = world.BuildingRoom
	gs.CurrentRoom = world.BuildingRoom
	gs.Visited[world.BuildingRoom] = true
	return joinParagraphs(cause, msgDied, msgResurrected, e.describe(gs, true))
}

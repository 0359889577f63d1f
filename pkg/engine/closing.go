package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	lampDimAt       = 30
	batteryLife     = 2500
	msgLampDim      = "Your lamp is getting dim.  You'd best start wrapping this up, unless you can find some fresh batteries.  I seem to recall there's a vending machine in the maze.  Bring some coins with you."
	msgNewBatteries = "Your lamp is getting dim.  I'm taking the liberty of replacing the batteries."
	msgClosingSoon  = "A sepulchral voice reverberating through the cave, says, \"Cave closing soon.  All adventurers exit immediately through main office.\""
	msgCaveClosed   = "The sepulchral voice intones, \"The cave is now closed.\"  As the echoes fade, there is a blinding flash of light (and a small puff of orange smoke). . . .    As your eyes refocus, you look around and find..."
	msgNoDynamite   = "Blasting requires dynamite."
)

var blastMessages = map[int]string{
	BonusSplatter: "There is a loud explosion, and a twenty-foot hole appears in the far wall, burying the dwarves in the rubble.  You march through the hole and find yourself in the main office, where a cheering band of friendly elves carry the conquering adventurer off into the sunset.",
	BonusLava:     "There is a loud explosion, and a twenty-foot hole appears in the far wall, burying the snakes in the rubble.  A river of molten lava pours in through the hole, destroying everything in its path, including you!",
	BonusSplashed: "There is a loud explosion, and you are suddenly splashed across the walls of the room.",
}

// Final placements when the cave closes.
var (
	repositoryNEObjects = []int{world.Lamp, world.Bottle, world.Oyster, world.Plant, world.Rod2}
	repositorySWObjects = []int{world.Grate, world.Snake, world.Bird, world.Cage, world.Rod, world.Pillow}
)

// tickLamp burns one turn of lamp power. dark is true when the lamp has
// just died and left the player in darkness; the note is then the whole
// response for the turn.
func (e *Engine) tickLamp(gs *state.GameState) (note string, dark bool) {
	lamp := &gs.Lamp
	if !lamp.On {
		return "", false
	}
	lamp.Remaining--

	if lamp.Remaining <= 0 {
		lamp.Remaining = 0
		lamp.On = false
		gs.SetProp(world.Lamp, 0)
		e.logger.Debug("lamp exhausted", "game_id", gs.ID, "room", gs.CurrentRoom)
		if e.isDark(gs) {
			return joinParagraphs(msgLampOut, msgPitchDark), true
		}
		return msgLampOut, false
	}

	if lamp.Remaining <= lampDimAt && !lamp.Warned {
		lamp.Warned = true
		if e.isPresent(gs, world.Batteries) && gs.PropValue(world.Batteries) == 0 {
			lamp.Remaining += batteryLife
			lamp.Warned = false
			gs.SetProp(world.Batteries, 1)
			return msgNewBatteries, false
		}
		return msgLampDim, false
	}
	return "", false
}

// tickClocks advances the closing countdowns. It returns the announcement
// for a state change, if any.
func (e *Engine) tickClocks(gs *state.GameState) string {
	c := &gs.Clocks
	switch {
	case c.IsClosed:
		return ""
	case c.IsClosing:
		c.Clock2--
		if c.Clock2 <= 0 {
			return e.closeCave(gs)
		}
		return ""
	}

	if !e.allTreasuresFound(gs) || !isDeep(gs.CurrentRoom) {
		return ""
	}
	c.Clock1--
	if c.Clock1 <= 0 {
		return e.startClosing(gs)
	}
	return ""
}

func (e *Engine) allTreasuresFound(gs *state.GameState) bool {
	treasures := e.world.Treasures()
	if len(treasures) == 0 {
		return false
	}
	for _, obj := range treasures {
		if !gs.IsFound(obj) {
			return false
		}
	}
	return true
}

// startClosing begins the endgame. The dwarves and pirate leave, the grate
// and fissure bridge are reset and the phony troll takes over the chasm.
func (e *Engine) startClosing(gs *state.GameState) string {
	gs.Clocks.IsClosing = true
	gs.Dwarves.Stage = state.Dormant
	gs.Dwarves.Locations = nil
	gs.Dwarves.OldLocations = nil
	gs.Dwarves.Seen = nil
	gs.Pirate.Location = 0
	gs.SetProp(world.Grate, 0)
	gs.SetProp(world.Fissure, 0)
	gs.Place(world.Troll, state.Destroyed)
	gs.Place(world.Troll2, world.ChasmSouthWest)
	e.logger.Info("cave closing", "game_id", gs.ID, "turns", gs.Turns)
	return msgClosingSoon
}

// closeCave moves the player into the repository.
func (e *Engine) closeCave(gs *state.GameState) string {
	gs.Clocks.IsClosed = true
	for _, obj := range gs.CarriedObjects() {
		gs.Place(obj, state.Destroyed)
	}
	for _, obj := range repositoryNEObjects {
		gs.Place(obj, world.RepositoryNE)
	}
	for _, obj := range repositorySWObjects {
		gs.Place(obj, world.RepositorySW)
	}
	gs.SetProp(world.Bird, 1)
	gs.SetProp(world.Bottle, bottleEmpty)
	gs.Lamp.On = false
	gs.SetProp(world.Lamp, 0)

	gs.OldOldRoom = gs.OldRoom
	gs.OldRoom = gs.CurrentRoom
	gs.CurrentRoom = world.RepositoryNE
	gs.Visited[world.RepositoryNE] = true
	e.logger.Info("cave closed", "game_id", gs.ID, "turns", gs.Turns)
	return joinParagraphs(msgCaveClosed, e.describe(gs, true))
}

// blast sets off the dynamite in the closed cave and ends the game.
func (e *Engine) blast(gs *state.GameState, _ string) string {
	if !gs.Clocks.IsClosed || !e.isPresent(gs, world.Rod2) {
		return msgNoDynamite
	}
	switch gs.CurrentRoom {
	case world.RepositorySW:
		gs.Bonus = BonusSplatter
	case world.RepositoryNE:
		gs.Bonus = BonusLava
	default:
		gs.Bonus = BonusSplashed
	}
	gs.IsFinished = true
	e.logger.Info("game finished", "game_id", gs.ID, "bonus", gs.Bonus)
	return joinParagraphs(blastMessages[gs.Bonus], e.finalScore(gs))
}

package engine

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	pitChance      = 35 // Percent chance of a fatal fall when entering darkness
	maxForcedMoves = 10

	msgCantGo      = "You can't go that way."
	msgMysterious  = "You are in a mysterious place."
	msgExitClosed  = "A mysterious recorded voice groans into life and announces: \"This exit is closed.  Please leave via main office.\""
	msgPitDeath    = "You fell into a pit and broke every bone in your body!"
	msgNoMemory    = "Sorry, but I no longer seem to remember how it was you got here."
	msgStrange     = "Something strange happens..."
	msgNoWayAcross = "There is no longer any way across the chasm."
	msgTrollBlocks = "The troll refuses to let you cross."
	msgBridgeFalls = "Just as you reach the other side, the bridge buckles beneath the weight of the bear, which was still following you around.  You scrabble desperately for support, but as the bridge collapses you stumble back and fall into the chasm."
	msgEmeraldLeft = "The emerald slips from your grasp and is left behind."
)

// Special movement codes.
const (
	specialDeath  = 301
	specialPlover = 302
	specialTroll  = 303
)

// isDeep reports whether room lies below the surface area.
func isDeep(room int) bool {
	return room >= world.DeepRoom && room != world.Y2Room
}

// move walks the travel table of the current room for a motion.
func (e *Engine) move(gs *state.GameState, motion int) string {
	switch {
	case motion == world.MotionLook:
		return e.look(gs, "")
	case world.MagicWords[motion] && (gs.Clocks.IsClosing || gs.Clocks.IsClosed):
		return msgExitClosed
	case motion == world.MotionBack:
		return e.goBack(gs)
	}

	room := e.world.Room(gs.CurrentRoom)
	if room == nil {
		return msgCantGo
	}
	for _, m := range room.Travel {
		if !m.HasVerb(motion) && !m.IsForced {
			continue
		}
		if !e.conditionMet(gs, m.Condition) {
			continue
		}
		return e.travel(gs, m, 0)
	}
	return msgCantGo
}

// goBack returns to the previous room, skipping rooms the player only
// passed through.
func (e *Engine) goBack(gs *state.GameState) string {
	target := gs.OldRoom
	if r := e.world.Room(target); r != nil && isForcedRoom(r) {
		target = gs.OldOldRoom
	}
	if target == gs.CurrentRoom || target == 0 {
		return msgNoMemory
	}
	return e.moveTo(gs, target)
}

func isForcedRoom(r *world.Room) bool {
	return len(r.Travel) > 0 && r.Travel[0].IsForced
}

// goVerb handles "go <direction>".
func (e *Engine) goVerb(gs *state.GameState, noun string) string {
	if noun == "" {
		return "Where do you want to go?"
	}
	word, ok := e.world.LookupWord(noun)
	if !ok || word.Kind != world.Motion {
		return "I don't know that direction."
	}
	return e.move(gs, word.Value())
}

func (e *Engine) conditionMet(gs *state.GameState, c world.Condition) bool {
	switch c.Kind {
	case world.PercentChance:
		return e.rng.IntN(100) < c.Percent
	case world.NotDwarf:
		return true
	case world.Carrying:
		return gs.IsCarried(c.Object)
	case world.CarryingOrInRoomWith:
		return gs.IsCarried(c.Object) || e.isHere(gs, c.Object)
	case world.PropNotEqual:
		return gs.PropValue(c.Object) != c.Value
	default:
		return true
	}
}

// travel carries out a chosen move.
func (e *Engine) travel(gs *state.GameState, m world.Move, depth int) string {
	switch {
	case m.IsMessage():
		return e.message(m.MessageNumber(), msgCantGo)
	case m.IsSpecial():
		return e.special(gs, m.Destination)
	case m.IsRoom():
		return e.enter(gs, m.Destination, depth)
	default:
		return msgCantGo
	}
}

// moveTo puts the player in dest and describes the result.
func (e *Engine) moveTo(gs *state.GameState, dest int) string {
	return e.enter(gs, dest, 0)
}

func (e *Engine) enter(gs *state.GameState, dest, depth int) string {
	gs.OldOldRoom = gs.OldRoom
	gs.OldRoom = gs.CurrentRoom
	gs.CurrentRoom = dest
	if isDeep(dest) && !gs.Dwarves.Met {
		gs.Dwarves.Met = true
		if gs.Dwarves.Stage == state.Dormant {
			gs.Dwarves.Stage = state.Armed
		}
	}
	firstVisit := !gs.Visited[dest]
	gs.Visited[dest] = true

	room := e.world.Room(dest)
	if room != nil && depth < maxForcedMoves {
		for _, m := range room.Travel {
			if m.IsForced && e.conditionMet(gs, m.Condition) {
				return joinParagraphs(strings.TrimSpace(room.LongDescription), e.travel(gs, m, depth+1))
			}
		}
	}

	if e.isDark(gs) && e.rng.IntN(100) < pitChance {
		return e.die(gs, msgPitDeath)
	}
	return e.describe(gs, firstVisit)
}

// describe returns the room text followed by the visible objects.
func (e *Engine) describe(gs *state.GameState, long bool) string {
	if e.isDark(gs) {
		return msgPitchDark
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil {
		return msgMysterious
	}
	text := room.ShortDescription
	if long || gs.DetailLevel > 0 || text == "" {
		text = room.LongDescription
	}
	return joinParagraphs(strings.TrimSpace(text), strings.Join(e.VisibleObjects(gs), "\n"))
}

func (e *Engine) special(gs *state.GameState, code int) string {
	e.logger.Debug("special movement", "game_id", gs.ID, "code", code, "room", gs.CurrentRoom)
	switch code {
	case specialDeath:
		return e.die(gs, "")
	case specialPlover:
		return e.ploverPassage(gs)
	case specialTroll:
		return e.crossBridge(gs)
	default:
		return msgStrange
	}
}

// ploverPassage links the plover room and Y2. The emerald cannot make
// the trip.
func (e *Engine) ploverPassage(gs *state.GameState) string {
	dest := world.PloverRoom
	if gs.CurrentRoom == world.PloverRoom {
		dest = world.Y2Room
	}
	var note string
	if gs.IsCarried(world.Emerald) {
		gs.Place(world.Emerald, gs.CurrentRoom)
		note = msgEmeraldLeft
	}
	return joinParagraphs(note, e.moveTo(gs, dest))
}

// crossBridge handles the troll bridge between the two sides of the chasm.
func (e *Engine) crossBridge(gs *state.GameState) string {
	if gs.PropValue(world.Chasm) != 0 {
		return msgNoWayAcross
	}
	if e.trollBlocking(gs) {
		return msgTrollBlocks
	}

	if gs.IsCarried(world.Bear) {
		gs.SetProp(world.Chasm, 1)
		gs.SetProp(world.Troll, 2)
		gs.Place(world.Troll, state.Destroyed)
		gs.Place(world.Bear, state.Destroyed)
		return e.die(gs, msgBridgeFalls)
	}

	// The troll takes up his post again once the player has crossed.
	if gs.PropValue(world.Troll) == 1 {
		gs.SetProp(world.Troll, 0)
	}
	dest := world.ChasmNorthEast
	if gs.CurrentRoom == world.ChasmNorthEast {
		dest = world.ChasmSouthWest
	}
	return e.moveTo(gs, dest)
}

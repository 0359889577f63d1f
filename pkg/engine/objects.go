package engine

import (
	"fmt"
	"slices"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// MaxCarry is how many objects the player can hold. Liquids ride in the
// bottle and do not count.
const MaxCarry = 7

// Bottle property values.
const (
	bottleEmpty = 0
	bottleWater = 1
	bottleOil   = 2
)

// isHere reports whether obj lies in the player's room. Objects that span
// two rooms are visible from both while they stay put.
func (e *Engine) isHere(gs *state.GameState, obj int) bool {
	loc := gs.Location(obj)
	if loc <= 0 {
		return false
	}
	if loc == gs.CurrentRoom {
		return true
	}
	o := e.world.Object(obj)
	return o != nil && o.HasAlternateRoom() && loc == o.InitialRooms[0] && gs.CurrentRoom == o.InitialRooms[1]
}

// isPresent reports whether obj is carried or in the room.
func (e *Engine) isPresent(gs *state.GameState, obj int) bool {
	return gs.IsCarried(obj) || e.isHere(gs, obj)
}

// isDark reports whether the player cannot see.
func (e *Engine) isDark(gs *state.GameState) bool {
	if room := e.world.Room(gs.CurrentRoom); room != nil && room.IsLight {
		return false
	}
	return !(gs.Lamp.On && e.isPresent(gs, world.Lamp))
}

// resolveNoun maps a token to an object, preferring a present object when
// several share the name.
func (e *Engine) resolveNoun(gs *state.GameState, noun string) (int, bool) {
	name := world.Truncate(noun)
	candidates := e.world.ObjectsNamed(name)
	if len(candidates) == 0 {
		candidates = e.world.ObjectsNamed(world.ExpandWord(name))
	}
	if len(candidates) == 0 {
		return 0, false
	}
	for _, obj := range candidates {
		if e.isPresent(gs, obj) {
			return obj, true
		}
	}
	return candidates[0], true
}

func unknownNoun(noun string) string {
	return fmt.Sprintf("I don't know what '%s' is.", noun)
}

// carryCount counts held objects against MaxCarry.
func (e *Engine) carryCount(gs *state.GameState) int {
	n := 0
	for _, obj := range gs.CarriedObjects() {
		if obj != world.Water && obj != world.Oil {
			n++
		}
	}
	return n
}

// bottleLiquid returns the liquid object in the bottle, or 0.
func bottleLiquid(gs *state.GameState) int {
	switch gs.PropValue(world.Bottle) {
	case bottleWater:
		return world.Water
	case bottleOil:
		return world.Oil
	}
	return 0
}

// carriedLiquid returns the liquid the player holds in the bottle, or 0.
func carriedLiquid(gs *state.GameState) int {
	if !gs.IsCarried(world.Bottle) {
		return 0
	}
	return bottleLiquid(gs)
}

// emptyBottle pours out the bottle's contents.
func emptyBottle(gs *state.GameState) {
	if liquid := bottleLiquid(gs); liquid != 0 {
		gs.Place(liquid, state.Destroyed)
	}
	gs.SetProp(world.Bottle, bottleEmpty)
}

// displayProp is the property used to pick an object's description. A
// few objects look different before their property is first set.
func displayProp(gs *state.GameState, obj int) int {
	if v, ok := gs.Prop(obj); ok {
		return v
	}
	switch obj {
	case world.Chain:
		return 1 // Still locked to the bear
	case world.Rug:
		if gs.PropValue(world.Dragon) == 0 {
			return 1
		}
	}
	return 0
}

func chainLocked(gs *state.GameState) bool {
	v, ok := gs.Prop(world.Chain)
	return !ok || v != 0
}

func dragonAlive(gs *state.GameState) bool {
	return gs.PropValue(world.Dragon) == 0
}

// trollBlocking reports whether the troll, or the phony troll left behind
// once the cave starts closing, stands guard here.
func (e *Engine) trollBlocking(gs *state.GameState) bool {
	if e.isHere(gs, world.Troll) && gs.PropValue(world.Troll) == 0 {
		return true
	}
	return gs.Location(world.Troll2) == world.ChasmSouthWest &&
		(gs.CurrentRoom == world.ChasmSouthWest || gs.CurrentRoom == world.ChasmNorthEast)
}

// dwarvesHere returns the indexes of dwarves in the player's room.
func (e *Engine) dwarvesHere(gs *state.GameState) []int {
	var out []int
	for i, loc := range gs.Dwarves.Locations {
		if loc == gs.CurrentRoom {
			out = append(out, i)
		}
	}
	return out
}

func (e *Engine) dwarfPresent(gs *state.GameState) bool {
	return len(e.dwarvesHere(gs)) > 0 || e.isHere(gs, world.Dwarf)
}

// removeDwarf deletes dwarf i from every parallel slice.
func removeDwarf(gs *state.GameState, i int) {
	d := &gs.Dwarves
	if i < len(d.Locations) {
		d.Locations = slices.Delete(d.Locations, i, i+1)
	}
	if i < len(d.OldLocations) {
		d.OldLocations = slices.Delete(d.OldLocations, i, i+1)
	}
	if i < len(d.Seen) {
		d.Seen = slices.Delete(d.Seen, i, i+1)
	}
}

// carriedTreasures returns the held treasures in ascending order.
func (e *Engine) carriedTreasures(gs *state.GameState) []int {
	var out []int
	for _, obj := range gs.CarriedObjects() {
		if o := e.world.Object(obj); o != nil && o.IsTreasure {
			out = append(out, obj)
		}
	}
	return out
}

// cannotTake returns the refusal for objects that stay put, or "".
func (e *Engine) cannotTake(gs *state.GameState, obj int) string {
	switch obj {
	case world.Chain:
		if chainLocked(gs) {
			return "The chain is still locked."
		}
		return ""
	case world.Bear:
		if !gs.BearTame {
			return "Surely you're joking!"
		}
		if chainLocked(gs) {
			return "The bear is still chained to the wall."
		}
		return ""
	case world.Rug:
		if dragonAlive(gs) {
			return "You can't be serious!"
		}
		return ""
	case world.Vase:
		if gs.PropValue(world.Vase) == 2 {
			return "The shards are worthless. Leave them be."
		}
	}
	if o := e.world.Object(obj); o != nil && (o.IsFixed || o.HasAlternateRoom()) {
		return "It is fixed in place."
	}
	return ""
}

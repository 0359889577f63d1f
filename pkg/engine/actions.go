package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	msgCarryLimit   = "You can't carry any more. Try dropping something first."
	msgNotCarrying  = "You aren't carrying it!"
	msgNoKeys       = "You have no keys!"
	msgCantOpen     = "I don't know how to open that."
	msgCantClose    = "I don't know how to close that."
	msgNoLight      = "You have no source of light."
	msgLampOut      = "Your lamp has run out of power."
	msgBottleFull   = "Your bottle is already full."
	msgNoContainer  = "You have nothing in which to carry it."
	msgVaseOnPillow = "The vase is now resting, delicately, on a velvet pillow."
)

func (e *Engine) take(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to take?"
	}
	if e.isDark(gs) {
		return msgTooDark
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if gs.IsCarried(obj) {
		return "You're already carrying it!"
	}
	if obj == world.Water || obj == world.Oil {
		return e.takeLiquid(gs, obj)
	}
	if !e.isHere(gs, obj) {
		return msgNotHere
	}
	if msg := e.cannotTake(gs, obj); msg != "" {
		return msg
	}
	if e.carryCount(gs) >= MaxCarry {
		return msgCarryLimit
	}

	switch obj {
	case world.Bird:
		if gs.IsCarried(world.Rod) {
			return "The bird was unafraid when you entered, but as you approach it becomes disturbed and you cannot catch it."
		}
		if !gs.IsCarried(world.Cage) {
			return "You can catch the bird, but you cannot carry it."
		}
		gs.SetProp(world.Bird, 1)
		gs.Place(world.Bird, state.Carried)
		return "You catch the bird in the wicker cage."
	case world.Bottle:
		if liquid := bottleLiquid(gs); liquid != 0 {
			gs.Place(liquid, state.Carried)
		}
	case world.Cage:
		if e.isHere(gs, world.Bird) && gs.PropValue(world.Bird) == 1 {
			gs.Place(world.Bird, state.Carried)
		}
	case world.Bear:
		gs.SetProp(world.Bear, 2)
	}

	gs.Place(obj, state.Carried)
	if o := e.world.Object(obj); o != nil && o.IsTreasure {
		gs.MarkFound(obj)
	}
	return msgOK
}

// takeLiquid fills the carried bottle from the room's liquid source.
func (e *Engine) takeLiquid(gs *state.GameState, liquid int) string {
	if !gs.IsCarried(world.Bottle) {
		return msgNoContainer
	}
	if bottleLiquid(gs) != 0 {
		return msgBottleFull
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil || room.Liquid != liquid {
		return msgNotHere
	}
	fillBottle(gs, liquid)
	return "Your bottle is now full."
}

func fillBottle(gs *state.GameState, liquid int) {
	gs.Place(liquid, state.Carried)
	if liquid == world.Oil {
		gs.SetProp(world.Bottle, bottleOil)
	} else {
		gs.SetProp(world.Bottle, bottleWater)
	}
}

func (e *Engine) drop(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to drop?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if !gs.IsCarried(obj) {
		return msgNotCarrying
	}
	if obj == world.Water || obj == world.Oil {
		return e.pour(gs, noun)
	}
	return e.dropObject(gs, obj)
}

// dropObject puts a carried object down and runs any reaction it causes.
func (e *Engine) dropObject(gs *state.GameState, obj int) string {
	room := gs.CurrentRoom
	gs.Place(obj, room)

	switch obj {
	case world.Bird:
		gs.SetProp(world.Bird, 0)
		if e.isHere(gs, world.Snake) && gs.PropValue(world.Snake) == 0 {
			gs.SetProp(world.Snake, 1)
			gs.Place(world.Snake, state.Destroyed)
			return "The little bird attacks the green snake, and in an astounding flurry drives the snake away."
		}
		if e.isHere(gs, world.Dragon) && dragonAlive(gs) {
			gs.Place(world.Bird, state.Destroyed)
			return "The little bird attacks the green dragon, and in an astounding flurry gets burnt to a cinder.  The ashes blow away."
		}
	case world.Bear:
		if e.trollBlocking(gs) {
			gs.SetProp(world.Troll, 2)
			gs.Place(world.Troll, state.Destroyed)
			return "The bear lumbers toward the troll, who lets out a startled shriek and scurries away.  The bear soon gives up the pursuit and wanders back."
		}
	case world.Vase:
		if e.isHere(gs, world.Pillow) {
			gs.SetProp(world.Vase, 0)
			return msgVaseOnPillow
		}
		gs.SetProp(world.Vase, 2)
		return "The Ming vase drops with a delicate crash."
	case world.Cage:
		if gs.IsCarried(world.Bird) {
			gs.Place(world.Bird, room)
		}
	case world.Bottle:
		if liquid := bottleLiquid(gs); liquid != 0 {
			gs.Place(liquid, room)
		}
	}
	return msgOK
}

func (e *Engine) open(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to open?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if !e.isPresent(gs, obj) {
		return msgNotHere
	}

	switch obj {
	case world.Grate:
		if !e.isPresent(gs, world.Keys) {
			return msgNoKeys
		}
		if gs.Clocks.IsClosing || gs.Clocks.IsClosed {
			return msgExitClosed
		}
		gs.SetProp(world.Grate, 1)
		return "The grate is now unlocked."
	case world.Clam:
		if gs.IsCarried(world.Clam) {
			return "I advise you to put down the clam before opening it.  >STRAIN!<"
		}
		gs.Place(world.Clam, state.Destroyed)
		gs.Place(world.Oyster, gs.CurrentRoom)
		gs.Place(world.Pearl, world.CulDeSac)
		return "A glistening pearl falls out of the clam and rolls away.  Goodness, this must really be an oyster.  (I never was very good at identifying bivalves.)  Whatever it is, it has now snapped shut again."
	case world.Oyster:
		return "The oyster creaks open, revealing nothing but oyster inside.  It promptly snaps shut again."
	case world.Chain:
		if !e.isPresent(gs, world.Keys) {
			return msgNoKeys
		}
		if !chainLocked(gs) {
			return "It was already unlocked."
		}
		gs.SetProp(world.Chain, 0)
		if e.isHere(gs, world.Bear) {
			gs.BearTame = true
			gs.SetProp(world.Bear, 1)
		}
		return "The chain is now unlocked."
	case world.Door:
		if gs.PropValue(world.Door) == 0 {
			return e.message(111, "The door is extremely rusty and refuses to open.")
		}
		return "It was already open."
	}
	return msgCantOpen
}

func (e *Engine) close(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to close?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if !e.isPresent(gs, obj) {
		return msgNotHere
	}

	switch obj {
	case world.Grate:
		if !e.isPresent(gs, world.Keys) {
			return msgNoKeys
		}
		gs.SetProp(world.Grate, 0)
		return "The grate is now locked."
	case world.Chain:
		if !e.isPresent(gs, world.Keys) {
			return msgNoKeys
		}
		if gs.CurrentRoom != world.BarrenRoom {
			return "There is nothing here to which the chain can be locked."
		}
		gs.Place(world.Chain, world.BarrenRoom)
		gs.SetProp(world.Chain, 2)
		return "The chain is now locked."
	}
	return msgCantClose
}

func (e *Engine) lampOn(gs *state.GameState, _ string) string {
	if !e.isPresent(gs, world.Lamp) {
		return msgNoLight
	}
	if gs.Lamp.Remaining <= 0 {
		return msgLampOut
	}
	wasDark := e.isDark(gs)
	gs.Lamp.On = true
	gs.SetProp(world.Lamp, 1)
	if wasDark {
		return joinParagraphs("Your lamp is now on.", e.describe(gs, true))
	}
	return "Your lamp is now on."
}

func (e *Engine) lampOff(gs *state.GameState, _ string) string {
	if !e.isPresent(gs, world.Lamp) {
		return msgNoLight
	}
	gs.Lamp.On = false
	gs.SetProp(world.Lamp, 0)
	if e.isDark(gs) {
		return joinParagraphs("Your lamp is now off.", msgPitchDark)
	}
	return "Your lamp is now off."
}

package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// chantWords maps each word of the giant's chant to its position.
var chantWords = map[string]int{
	"fee": 0,
	"fie": 1,
	"foe": 2,
	"foo": 3,
	"fum": 4,
}

const chantRecall = 3 // "foo" completes the chant

// chant advances the fee-fie-foe-foo sequence. The words must be said on
// consecutive turns.
func (e *Engine) chant(gs *state.GameState, word string) string {
	step := chantWords[word]
	if gs.FooTurn != gs.Turns-1 {
		gs.FooStep = 0
	}

	if step != gs.FooStep || step > chantRecall {
		wasChanting := gs.FooStep > 0
		gs.FooStep = 0
		if wasChanting {
			return "Get it right, dummy!"
		}
		return msgNothing
	}

	if step < chantRecall {
		gs.FooStep = step + 1
		gs.FooTurn = gs.Turns
		return msgOK
	}

	gs.FooStep = 0
	switch {
	case gs.Location(world.Eggs) == world.GiantRoom:
		return msgNothing
	case gs.CurrentRoom == world.GiantRoom:
		gs.Place(world.Eggs, world.GiantRoom)
		return "A large nest full of golden eggs suddenly appears out of nowhere!"
	default:
		if e.isPresent(gs, world.Eggs) {
			gs.Place(world.Eggs, world.GiantRoom)
			return "The nest of golden eggs has vanished!"
		}
		gs.Place(world.Eggs, world.GiantRoom)
		return "Done!"
	}
}

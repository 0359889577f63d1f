package engine

import (
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	msgAppetite    = "I think I just lost my appetite."
	msgHowAttack   = "I'm game.  Would you care to explain how?"
	msgNotHungry   = "There's nothing here it wants to eat (except perhaps you)."
	msgNothing     = "Nothing happens."
	msgBeyondPower = "It is beyond your power to do that."
	msgDwarfKilled = "You killed a little dwarf. The body vanishes in a cloud of greasy black smoke."
	msgDwarfDodges = "You attack a little dwarf, but he dodges out of the way."
	msgBareHands   = "With what?  Your bare hands?"
	msgDwarfMad    = "You fool, dwarves eat only coal!  Now you've made him *REALLY* mad!!"
	msgTrollPaid   = "The troll catches your treasure and scurries away out of sight."
	msgHelp        = "I know of places, actions, and things.  Most of my vocabulary describes places and is used to move you there.  To move, try words like forest, building, downstream, enter, east, west, north, south, up, or down.  I know about a few special objects, like a black rod hidden in the cave.  These objects can be manipulated using some of the action words that I know.  Usually you will need to give both the object and action words (in either order), but sometimes I can infer the object from the verb alone.  Some objects also imply verbs; in particular, \"inventory\" implies \"take inventory\", which causes me to give you a list of what you're carrying.  The objects have side effects; for instance, the rod scares the bird.  Usually people having trouble moving just need to try a few more words.  Usually people trying unsuccessfully to manipulate an object are attempting something beyond their (or my!) capabilities and should try a completely different tack.  To speed the game you can sometimes move long distances with a single word.  For example, \"building\" usually gets you to the building from anywhere above ground except when lost in the forest.  Also, note that cave passages turn a lot, and that leaving a room to the north does not guarantee entering the next from the south.  Good luck!"
)

func (e *Engine) eat(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to eat?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	switch obj {
	case world.Food:
		if !e.isPresent(gs, world.Food) {
			return msgNotHere
		}
		gs.Place(world.Food, state.Destroyed)
		return "Thank you, it was delicious!"
	case world.Bird, world.Snake, world.Clam, world.Oyster, world.Dwarf, world.Dragon, world.Troll, world.Bear:
		return msgAppetite
	}
	return "That's not something I'd want to eat."
}

func (e *Engine) drink(gs *state.GameState, noun string) string {
	if noun != "" {
		obj, ok := e.resolveNoun(gs, noun)
		if !ok {
			return unknownNoun(noun)
		}
		if obj == world.Oil {
			return "Drinking oil is not a good idea."
		}
		if obj != world.Water {
			return "That's not something you can drink."
		}
	}
	if carriedLiquid(gs) == world.Water {
		emptyBottle(gs)
		return "The bottle of water is now empty and you are no longer thirsty."
	}
	if room := e.world.Room(gs.CurrentRoom); room != nil && room.Liquid == world.Water {
		return "You have taken a drink from the stream.  The water tastes strongly of minerals, but is not unpleasant.  It is extremely cold."
	}
	return "There is nothing here to drink."
}

func (e *Engine) pour(gs *state.GameState, noun string) string {
	if !gs.IsCarried(world.Bottle) {
		return msgNotCarrying
	}
	liquid := bottleLiquid(gs)
	if liquid == 0 {
		return "Your bottle is empty and the ground is wet."
	}
	if noun != "" {
		if obj, ok := e.resolveNoun(gs, noun); ok && obj != liquid && obj != world.Bottle {
			return msgNotCarrying
		}
	}
	emptyBottle(gs)

	if e.isHere(gs, world.Plant) {
		if liquid != world.Water {
			return "The plant indignantly shakes the oil off its leaves and asks, \"Water?\""
		}
		switch gs.PropValue(world.Plant) {
		case 0:
			gs.SetProp(world.Plant, 1)
			return "The plant spurts into furious growth for a few seconds."
		case 1:
			gs.SetProp(world.Plant, 2)
			return "The plant grows explosively, almost filling the bottom of the pit."
		default:
			gs.SetProp(world.Plant, 0)
			return "You've over-watered the plant!  It's shriveling up!  It's, it's..."
		}
	}
	if e.isHere(gs, world.Door) {
		if liquid == world.Oil {
			gs.SetProp(world.Door, 1)
			return "The oil has freed up the hinges so that the door will now open."
		}
		gs.SetProp(world.Door, 0)
		return "The hinges are quite thoroughly rusted now and won't budge."
	}
	return "Your bottle is empty and the ground is wet."
}

func (e *Engine) fill(gs *state.GameState, noun string) string {
	if noun != "" {
		if obj, ok := e.resolveNoun(gs, noun); !ok || obj != world.Bottle {
			return "You can't fill that."
		}
	}
	if !gs.IsCarried(world.Bottle) {
		return "You have nothing to fill."
	}
	if bottleLiquid(gs) != 0 {
		return msgBottleFull
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil || room.Liquid == 0 {
		return "There is nothing here with which to fill the bottle."
	}
	fillBottle(gs, room.Liquid)
	if room.Liquid == world.Oil {
		return "Your bottle is now full of oil."
	}
	return "Your bottle is now full of water."
}

func (e *Engine) wave(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to wave?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if !gs.IsCarried(obj) {
		return msgNotCarrying
	}
	atFissure := gs.CurrentRoom == world.FissureEast || gs.CurrentRoom == world.FissureWest
	if obj != world.Rod || !atFissure || gs.Clocks.IsClosing {
		return msgNothing
	}
	if gs.PropValue(world.Fissure) == 0 {
		gs.SetProp(world.Fissure, 1)
		return "A crystal bridge now spans the fissure."
	}
	gs.SetProp(world.Fissure, 0)
	return "The crystal bridge has vanished!"
}

func (e *Engine) throw(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to throw?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if !gs.IsCarried(obj) {
		return msgNotCarrying
	}

	if o := e.world.Object(obj); o != nil && o.IsTreasure && e.trollBlocking(gs) {
		gs.Place(obj, state.Destroyed)
		gs.SetProp(world.Troll, 1)
		return msgTrollPaid
	}
	if obj == world.Food && e.isHere(gs, world.Bear) {
		return e.feed(gs, "bear")
	}
	if obj != world.Axe {
		return e.dropObject(gs, obj)
	}

	if dwarves := e.dwarvesHere(gs); len(dwarves) > 0 {
		gs.Place(world.Axe, gs.CurrentRoom)
		target := dwarves[e.rng.IntN(len(dwarves))]
		if e.rng.IntN(3) != 0 {
			removeDwarf(gs, target)
			gs.Dwarves.Killed++
			e.logger.Debug("dwarf killed", "game_id", gs.ID, "killed", gs.Dwarves.Killed)
			return msgDwarfKilled
		}
		return msgDwarfDodges
	}
	switch {
	case e.isHere(gs, world.Dragon) && dragonAlive(gs):
		gs.Place(world.Axe, gs.CurrentRoom)
		return "The axe bounces harmlessly off the dragon's thick scales."
	case e.trollBlocking(gs):
		return "The troll deftly catches the axe, examines it carefully, and tosses it back, declaring, \"Good workmanship, but it's not valuable enough.\""
	case e.isHere(gs, world.Bear) && !gs.BearTame:
		gs.Place(world.Axe, gs.CurrentRoom)
		return "The axe misses and lands near the bear where you can't get at it."
	}
	return e.dropObject(gs, obj)
}

func (e *Engine) attack(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to attack?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}

	switch obj {
	case world.Dwarf:
		if !e.dwarfPresent(gs) {
			return "I see no dwarf here."
		}
		return msgBareHands
	case world.Dragon:
		if !e.isHere(gs, world.Dragon) {
			return msgNotHere
		}
		if !dragonAlive(gs) {
			return "For crying out loud, the poor thing is already dead!"
		}
		gs.SetProp(world.Dragon, 1)
		return joinParagraphs(msgBareHands, "Congratulations!  You have just vanquished a dragon with your bare hands!  (Unbelievable, isn't it?)")
	case world.Snake:
		return "Attacking the snake both doesn't work and is very dangerous."
	case world.Bird:
		if !e.isPresent(gs, world.Bird) {
			return "I see no bird here."
		}
		if gs.Clocks.IsClosed {
			return "Oh, leave the poor unhappy bird alone."
		}
		gs.Place(world.Bird, state.Destroyed)
		return "The little bird is now dead.  Its body disappears."
	case world.Troll:
		return "Trolls are close relatives with the rocks and have skin as tough as a rhinoceros hide.  The troll fends off your blows effortlessly."
	case world.Bear:
		if gs.BearTame {
			return "The bear is confused; he only wants to be your friend."
		}
		return "With what?  Your bare hands?  Against *HIS* bear hands??"
	case world.Clam, world.Oyster:
		return "The shell is very strong and is impervious to attack."
	}
	return msgHowAttack
}

func (e *Engine) feed(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to feed?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}

	switch obj {
	case world.Dwarf:
		if !e.dwarfPresent(gs) {
			return "I see no dwarf here."
		}
		if gs.Dwarves.Stage == state.Active {
			gs.Dwarves.Stage = state.Aggressive
		}
		return msgDwarfMad
	case world.Bear:
		if !e.isHere(gs, world.Bear) {
			return msgNotHere
		}
		if gs.BearTame {
			return "The bear doesn't seem very interested in your offer."
		}
		if !gs.IsCarried(world.Food) {
			return msgNotHungry
		}
		gs.Place(world.Food, state.Destroyed)
		gs.BearTame = true
		gs.SetProp(world.Bear, 1)
		return "The bear eagerly wolfs down your food, after which he seems to calm down considerably and even becomes rather friendly."
	case world.Bird:
		return "It's not hungry (it's merely pinin' for the fjords).  Besides, you have no bird seed."
	case world.Snake:
		if e.isHere(gs, world.Snake) && e.isPresent(gs, world.Bird) && !gs.Clocks.IsClosed {
			gs.Place(world.Bird, state.Destroyed)
			return "The snake has now devoured your bird."
		}
		return msgNotHungry
	case world.Dragon:
		if dragonAlive(gs) {
			return msgNotHungry
		}
		return "Don't be ridiculous!"
	case world.Troll:
		return "Gluttony is not one of the troll's vices.  Avarice, however, is."
	}
	return msgHowAttack
}

func (e *Engine) read(gs *state.GameState, noun string) string {
	if e.isDark(gs) {
		return "It's too dark to read!"
	}
	if noun == "" {
		return "What do you want to read?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	if !e.isPresent(gs, obj) {
		return "I see nothing to read here."
	}
	switch obj {
	case world.Magazine:
		return "I'm afraid the magazine is written in dwarvish."
	case world.Tablet:
		return "\"Congratulations on bringing light into the dark-room!\""
	case world.Message:
		return "\"This is not the maze where the pirate leaves his treasure chest.\""
	}
	return "I see nothing to read here."
}

func (e *Engine) breakObject(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to break?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	switch {
	case obj == world.Vase && e.isPresent(gs, world.Vase) && gs.PropValue(world.Vase) != 2:
		gs.Place(world.Vase, gs.CurrentRoom)
		gs.SetProp(world.Vase, 2)
		return "You have taken the vase and hurled it delicately to the ground."
	case obj == world.Mirror && e.isPresent(gs, world.Mirror):
		return "It is too far up for you to reach."
	}
	return msgBeyondPower
}

func (e *Engine) find(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to find?"
	}
	obj, ok := e.resolveNoun(gs, noun)
	if !ok {
		return unknownNoun(noun)
	}
	switch {
	case gs.IsCarried(obj):
		return "You are already carrying it!"
	case e.isHere(gs, obj), obj == world.Dwarf && e.dwarfPresent(gs):
		return "I believe what you want is right here with you."
	}
	return "I can only tell you what you see as you move about and manipulate things.  I cannot tell you where remote things are."
}

// say speaks a word aloud. Magic words and the giant's chant take effect.
func (e *Engine) say(gs *state.GameState, noun string) string {
	if noun == "" {
		return "What do you want to say?"
	}
	if _, ok := chantWords[noun]; ok {
		return e.chant(gs, noun)
	}
	if word, ok := e.world.LookupWord(noun); ok && word.Kind == world.Motion && world.MagicWords[word.Value()] {
		return e.move(gs, word.Value())
	}
	return fmt.Sprintf("Okay, \"%s\".", noun)
}

func (e *Engine) brief(gs *state.GameState, _ string) string {
	if gs.DetailLevel == 0 {
		gs.DetailLevel = 1
		return "OK, I'll describe every place in full."
	}
	gs.DetailLevel = 0
	return "Okay, from now on I'll only describe a place in full the first time you come to it.  To get the full description, say \"LOOK\"."
}

func (e *Engine) help(*state.GameState, string) string {
	return msgHelp
}

func (e *Engine) look(gs *state.GameState, _ string) string {
	return e.describe(gs, true)
}

func (e *Engine) inventory(gs *state.GameState, _ string) string {
	items := e.Inventory(gs)
	if len(items) == 0 {
		return "You're not carrying anything."
	}
	out := "You are currently holding:"
	for _, item := range items {
		out += "\n  " + item
	}
	return out
}

func (e *Engine) score(gs *state.GameState, _ string) string {
	return fmt.Sprintf("Your current score is %d out of a possible %d.", CalculateScore(e.world, gs), MaxScore)
}

func (e *Engine) quit(gs *state.GameState, _ string) string {
	gs.GaveUp = true
	gs.IsFinished = true
	return fmt.Sprintf("You scored %d out of a possible %d. Thanks for playing!", CalculateScore(e.world, gs), MaxScore)
}

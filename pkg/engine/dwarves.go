package engine

import (
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	dwarfWakeThreshold = 0.95 // Float64 draw at or above this wakes the first dwarf
	knifeHitPerMille   = 95
	pirateChance       = 0.2

	msgFirstDwarf   = "A little dwarf just walked around a corner, saw you, threw a little axe at you which missed, cursed, and ran away."
	msgOneDwarf     = "There is a threatening little dwarf in the room with you!"
	msgManyDwarves  = "There are %d threatening little dwarves in the room with you!"
	msgOneKnife     = "One sharp nasty knife is thrown at you!"
	msgManyKnives   = "%d of them throw knives at you!"
	msgKnifeMisses  = "It misses!"
	msgKnivesMiss   = "None of them hit you!"
	msgKnifeHits    = "It gets you!"
	msgKnivesHit    = "%d of them get you!"
	msgRustle       = "There are faint rustling noises from the darkness behind you."
	msgPirateSteals = "Out from the shadows behind you pounces a bearded pirate!  \"Har, har,\" he chortles, \"I'll just take all this booty and hide it away with me chest deep in the maze!\"  He snatches your treasure and vanishes into the gloom."
)

// lurkable reports whether dwarves and the pirate may enter room.
func (e *Engine) lurkable(room int) bool {
	r := e.world.Room(room)
	return r != nil && isDeep(room) && !r.IsForbiddenToPirate
}

// tickDwarves moves the dwarves one step and resolves any attack.
func (e *Engine) tickDwarves(gs *state.GameState) string {
	if gs.IsFinished || gs.Clocks.IsClosing || gs.Clocks.IsClosed {
		return ""
	}
	d := &gs.Dwarves
	switch d.Stage {
	case state.Dormant:
		return ""
	case state.Armed:
		if !isDeep(gs.CurrentRoom) || e.rng.Float64() < dwarfWakeThreshold {
			return ""
		}
		d.Stage = state.Active
		gs.Place(world.Axe, gs.CurrentRoom)
		e.logger.Debug("dwarves active", "game_id", gs.ID, "room", gs.CurrentRoom)
		return msgFirstDwarf
	}

	here, attackers := 0, 0
	canFollow := e.lurkable(gs.CurrentRoom)
	for i := range d.Locations {
		from := d.Locations[i]
		seen := i < len(d.Seen) && d.Seen[i]
		to := gs.CurrentRoom
		if !seen || !canFollow {
			to = e.wander(gs, i)
		}
		if i < len(d.OldLocations) {
			d.OldLocations[i] = from
		}
		d.Locations[i] = to
		if i < len(d.Seen) {
			d.Seen[i] = (seen && canFollow) || to == gs.CurrentRoom
		}
		if to == gs.CurrentRoom {
			here++
			if from == gs.CurrentRoom {
				attackers++
			}
		}
	}
	if here == 0 {
		return ""
	}

	announce := msgOneDwarf
	if here > 1 {
		announce = fmt.Sprintf(msgManyDwarves, here)
	}
	if attackers == 0 {
		return announce
	}
	return e.throwKnives(gs, announce, attackers)
}

// wander picks a random neighbouring room for dwarf i, avoiding the room
// it just left when it has a choice.
func (e *Engine) wander(gs *state.GameState, i int) int {
	d := &gs.Dwarves
	from := d.Locations[i]
	room := e.world.Room(from)
	if room == nil {
		return from
	}
	var candidates, fallback []int
	for _, m := range room.Travel {
		if !m.IsRoom() || m.IsForced || m.Condition.Kind == world.NotDwarf {
			continue
		}
		if !e.lurkable(m.Destination) {
			continue
		}
		if i < len(d.OldLocations) && m.Destination == d.OldLocations[i] {
			fallback = append(fallback, m.Destination)
			continue
		}
		candidates = append(candidates, m.Destination)
	}
	if len(candidates) == 0 {
		candidates = fallback
	}
	if len(candidates) == 0 {
		return from
	}
	return candidates[e.rng.IntN(len(candidates))]
}

// throwKnives resolves an attack by n dwarves. The first volley always
// misses and makes the dwarves aggressive.
func (e *Engine) throwKnives(gs *state.GameState, announce string, n int) string {
	d := &gs.Dwarves
	d.KnifeLocation = gs.CurrentRoom

	thrown := msgOneKnife
	if n > 1 {
		thrown = fmt.Sprintf(msgManyKnives, n)
	}
	missed := msgKnifeMisses
	if n > 1 {
		missed = msgKnivesMiss
	}

	if d.Stage == state.Active {
		d.Stage = state.Aggressive
		return joinParagraphs(announce, thrown, missed)
	}

	hits := 0
	for range n {
		if e.rng.IntN(1000) < knifeHitPerMille {
			hits++
		}
	}
	if hits == 0 {
		return joinParagraphs(announce, thrown, missed)
	}
	got := msgKnifeHits
	if hits > 1 {
		got = fmt.Sprintf(msgKnivesHit, hits)
	}
	return e.die(gs, joinParagraphs(announce, thrown, got))
}

// tickPirate lets the pirate stalk a player carrying treasure.
func (e *Engine) tickPirate(gs *state.GameState) string {
	p := &gs.Pirate
	if gs.IsFinished || p.Location == 0 || gs.Clocks.IsClosing || gs.Clocks.IsClosed {
		return ""
	}
	if gs.Dwarves.Stage < state.Active || gs.Location(world.Chest) != state.Destroyed {
		return ""
	}
	if !e.lurkable(gs.CurrentRoom) {
		return ""
	}

	loot := e.carriedTreasures(gs)
	if p.Location != gs.CurrentRoom {
		if len(loot) == 0 || e.rng.Float64() >= pirateChance {
			return ""
		}
		p.OldLocation = p.Location
		p.Location = gs.CurrentRoom
	}

	if len(loot) == 0 {
		if p.Seen {
			return ""
		}
		p.Seen = true
		return msgRustle
	}

	for _, obj := range loot {
		gs.Place(obj, world.StashRoom)
	}
	gs.Place(world.Chest, world.StashRoom)
	p.OldLocation = p.Location
	p.Location = world.StashRoom
	e.logger.Debug("pirate stole treasure", "game_id", gs.ID, "room", gs.CurrentRoom, "count", len(loot))
	return msgPirateSteals
}

package loader

import "github.com/jwebster45206/adventure-engine/pkg/world"

// travel handles a section 3 line: room, destination code, verbs...
func (p *parser) travel(fields []field) error {
	if len(fields) < 3 {
		return p.malformed("travel entry for room %d needs a destination and verbs", fields[0].num)
	}
	for _, f := range fields[1:] {
		if !f.isNum {
			return p.malformed("travel entry for room %d has non-numeric field %q", fields[0].num, f.raw)
		}
	}

	room := fields[0].num
	code := fields[1].num
	verbs := make([]int, 0, len(fields)-2)
	for _, f := range fields[2:] {
		verbs = append(verbs, f.num)
	}

	// A continuation line for the same room that starts with the same verb
	// shares the previous line's verb list.
	if p.last.room == room && len(p.last.verbs) > 0 && p.last.verbs[0] == verbs[0] {
		verbs = p.last.verbs
	} else {
		p.last = lastTravel{room: room, verbs: verbs}
	}

	cond, dest := decodeDestination(code)
	move := world.Move{
		Verbs:       verbs,
		Condition:   cond,
		Destination: dest,
		IsForced:    len(verbs) == 1 && verbs[0] == world.ForcedVerb,
	}
	r := p.room(room)
	r.Travel = append(r.Travel, move)
	return nil
}

// decodeDestination splits a packed travel code into its gate and target.
// The thousands part selects the condition class and the remainder is the
// destination; remainders above 500 are message references.
func decodeDestination(code int) (world.Condition, int) {
	m, n := code/1000, code%1000
	mh, mm := m/100, m%100

	var cond world.Condition
	switch {
	case m == 0:
		cond = world.Condition{Kind: world.Unconditional}
	case m > 0 && m < 100:
		cond = world.Condition{Kind: world.PercentChance, Percent: m}
	case m == 100:
		cond = world.Condition{Kind: world.NotDwarf}
	case m > 100 && m <= 200:
		cond = world.Condition{Kind: world.Carrying, Object: mm}
	case m > 200 && m <= 300:
		cond = world.Condition{Kind: world.CarryingOrInRoomWith, Object: mm}
	default:
		cond = world.Condition{Kind: world.PropNotEqual, Object: mm, Value: mh - 3}
	}

	dest := n
	if n > world.MaxSpecialDestination {
		dest = -(n - world.MaxSpecialDestination)
	}
	return cond, dest
}

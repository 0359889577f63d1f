package world

import (
	"fmt"
	"slices"
)

// ConditionKind selects how a travel entry is gated.
type ConditionKind int

const (
	Unconditional ConditionKind = iota
	PercentChance
	NotDwarf
	Carrying
	CarryingOrInRoomWith
	PropNotEqual
)

// Condition is the decoded gate on a Move. Only the fields relevant to Kind
// are set.
type Condition struct {
	Kind    ConditionKind `json:"kind"`
	Percent int           `json:"percent,omitempty"`
	Object  int           `json:"object,omitempty"`
	Value   int           `json:"value,omitempty"`
}

func (c Condition) String() string {
	switch c.Kind {
	case Unconditional:
		return "always"
	case PercentChance:
		return fmt.Sprintf("%d%% chance", c.Percent)
	case NotDwarf:
		return "not a dwarf"
	case Carrying:
		return fmt.Sprintf("carrying %d", c.Object)
	case CarryingOrInRoomWith:
		return fmt.Sprintf("carrying or with %d", c.Object)
	case PropNotEqual:
		return fmt.Sprintf("prop(%d) != %d", c.Object, c.Value)
	default:
		return "unknown"
	}
}

// Destination ranges.
const (
	MaxRoomDestination    = 300
	MaxSpecialDestination = 500
)

// ForcedVerb is the verb number that marks a move as automatic.
const ForcedVerb = 1

// Move is one travel table entry.
type Move struct {
	Verbs       []int     `json:"verbs"`
	Condition   Condition `json:"condition"`
	Destination int       `json:"destination"` // Room, special code, or negated message number
	IsForced    bool      `json:"is_forced,omitempty"`
}

// HasVerb reports whether the move is triggered by verb.
func (m Move) HasVerb(verb int) bool {
	return slices.Contains(m.Verbs, verb)
}

// IsRoom reports whether the destination is a real room.
func (m Move) IsRoom() bool {
	return m.Destination >= 1 && m.Destination <= MaxRoomDestination
}

// IsSpecial reports whether the destination is a scripted movement code.
func (m Move) IsSpecial() bool {
	return m.Destination > MaxRoomDestination && m.Destination <= MaxSpecialDestination
}

// IsMessage reports whether the move only prints a message.
func (m Move) IsMessage() bool {
	return m.Destination < 0
}

// MessageNumber returns the referenced message for message moves.
func (m Move) MessageNumber() int {
	return -m.Destination
}

package main

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Summary describes a loaded world. It is printed as YAML with -yaml.
type Summary struct {
	File       string   `yaml:"file"`
	Rooms      int      `yaml:"rooms"`
	LitRooms   int      `yaml:"lit_rooms"`
	Objects    int      `yaml:"objects"`
	Treasures  int      `yaml:"treasures"`
	Words      int      `yaml:"words"`
	Messages   int      `yaml:"messages"`
	Hints      int      `yaml:"hints"`
	Classes    int      `yaml:"classes"`
	TopRanking int      `yaml:"top_ranking"`
	Problems   []string `yaml:"problems,omitempty"`
	Warnings   []string `yaml:"warnings,omitempty"`
}

// WorldValidator checks the cross references a data file can get wrong
// without breaking its syntax.
type WorldValidator struct {
	problems []string
	warnings []string
}

func (v *WorldValidator) problem(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *WorldValidator) warn(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

// Validate inspects w and returns its summary along with an error listing
// every problem found. Warnings never make the data invalid.
func (v *WorldValidator) Validate(file string, w *world.World) (*Summary, error) {
	v.problems, v.warnings = nil, nil

	v.validateTravel(w)
	v.validateObjects(w)
	v.validateHints(w)

	s := &Summary{
		File:      file,
		Rooms:     len(w.Rooms),
		Objects:   len(w.Objects),
		Treasures: len(w.Treasures()),
		Messages:  len(w.Messages),
		Hints:     len(w.Hints),
		Classes:   len(w.ClassMessages),
		Problems:  v.problems,
		Warnings:  v.warnings,
	}
	for _, r := range w.Rooms {
		if r.IsLight {
			s.LitRooms++
		}
	}
	words := make(map[int]bool)
	for _, word := range w.Vocabulary {
		words[word.Number] = true
	}
	s.Words = len(words)
	if n := len(w.ClassMessages); n > 0 {
		s.TopRanking = w.ClassMessages[n-1].Score
	}

	el := errors.NewErrorList()
	for _, p := range v.problems {
		el.Add(fmt.Errorf("%s", p))
	}
	return s, el.Err()
}

func (v *WorldValidator) validateTravel(w *world.World) {
	for _, n := range w.RoomNumbers() {
		for i, m := range w.Room(n).Travel {
			switch {
			case m.IsRoom():
				if w.Room(m.Destination) == nil {
					v.problem("room %d travel %d leads to undefined room %d", n, i, m.Destination)
				}
			case m.IsMessage():
				if _, ok := w.Messages[m.MessageNumber()]; !ok {
					v.problem("room %d travel %d prints undefined message %d", n, i, m.MessageNumber())
				}
			}

			switch m.Condition.Kind {
			case world.Carrying, world.CarryingOrInRoomWith, world.PropNotEqual:
				if w.Object(m.Condition.Object) == nil {
					v.problem("room %d travel %d tests undefined object %d", n, i, m.Condition.Object)
				}
			}
		}
	}
}

func (v *WorldValidator) validateObjects(w *world.World) {
	for _, n := range w.ObjectNumbers() {
		obj := w.Object(n)
		// Nouns create objects, so a noun missing from the object
		// section shows up here as an object with no text.
		if obj.InventoryMessage == "" && len(obj.Messages) == 0 {
			v.warn("object %d (%s) has no description", n, obj.Name())
		}
		if len(obj.InitialRooms) == 0 {
			v.warn("object %d (%s) has no starting room", n, obj.Name())
			continue
		}
		for _, r := range obj.InitialRooms {
			if w.Room(r) == nil {
				v.problem("object %d (%s) starts in undefined room %d", n, obj.Name(), r)
			}
		}
	}
}

func (v *WorldValidator) validateHints(w *world.World) {
	nums := make([]int, 0, len(w.Hints))
	for n := range w.Hints {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	for _, n := range nums {
		for _, r := range w.Hints[n].Rooms {
			if w.Room(r) == nil {
				v.warn("hint %d is tied to undefined room %d", n, r)
			}
		}
	}
}

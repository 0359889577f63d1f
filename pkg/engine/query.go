package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// RoomDescription returns the text for the player's room: the long form on
// a first visit or in verbose mode, the short form otherwise.
func (e *Engine) RoomDescription(gs *state.GameState) string {
	if e.isDark(gs) {
		return msgPitchDark
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil {
		return msgMysterious
	}
	if !gs.Visited[gs.CurrentRoom] || gs.DetailLevel > 0 || room.ShortDescription == "" {
		return strings.TrimSpace(room.LongDescription)
	}
	return strings.TrimSpace(room.ShortDescription)
}

// Location returns a one-line name for the player's room, suited to a
// status line.
func (e *Engine) Location(gs *state.GameState) string {
	if e.isDark(gs) {
		return "Darkness"
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil {
		return ""
	}
	if room.ShortDescription != "" {
		return strings.TrimSpace(room.ShortDescription)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(room.LongDescription), "\n")
	return line
}

// VisibleObjects returns the descriptions of the objects in the player's
// room, in object order. Nothing is visible in the dark.
func (e *Engine) VisibleObjects(gs *state.GameState) []string {
	if e.isDark(gs) {
		return nil
	}
	var out []string
	for _, n := range e.world.ObjectNumbers() {
		if n == world.Water || n == world.Oil || !e.isHere(gs, n) {
			continue
		}
		obj := e.world.Object(n)
		msg, ok := obj.Messages[displayProp(gs, n)]
		switch {
		case ok && msg != "":
			out = append(out, strings.TrimSpace(msg))
		case !ok && obj.Name() != "":
			out = append(out, fmt.Sprintf("There is a %s here.", strings.ToLower(obj.Name())))
		}
	}
	return out
}

// Exits returns the direction labels leading out of the player's room.
func (e *Engine) Exits(gs *state.GameState) []string {
	if e.isDark(gs) {
		return nil
	}
	room := e.world.Room(gs.CurrentRoom)
	if room == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, m := range room.Travel {
		if m.IsForced || !m.IsRoom() {
			continue
		}
		for _, v := range m.Verbs {
			label, ok := world.DirectionLabels[v]
			if !ok || seen[label] {
				continue
			}
			seen[label] = true
			out = append(out, label)
		}
	}
	return out
}

// Inventory returns a line for each carried object.
func (e *Engine) Inventory(gs *state.GameState) []string {
	var out []string
	for _, n := range gs.CarriedObjects() {
		obj := e.world.Object(n)
		switch {
		case obj == nil:
			continue
		case obj.InventoryMessage != "":
			out = append(out, obj.InventoryMessage)
		case obj.Name() != "":
			out = append(out, cases.Title(language.English).String(obj.Name()))
		}
	}
	return out
}

// Score returns the current score of gs.
func (e *Engine) Score(gs *state.GameState) int {
	return CalculateScore(e.world, gs)
}

package world

import (
	"sort"
	"strings"
)

// WordKind classifies a vocabulary entry.
type WordKind int

const (
	Motion WordKind = iota
	Noun
	Verb
	Special
)

func (k WordKind) String() string {
	switch k {
	case Motion:
		return "motion"
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Word is a single vocabulary entry. Number carries the kind in its
// thousands digit and the motion/object/verb value below that.
type Word struct {
	Text   string   `json:"text"`
	Kind   WordKind `json:"kind"`
	Number int      `json:"number"`
}

// Value returns the number with the kind stripped, e.g. the object number
// for a noun.
func (w Word) Value() int {
	return w.Number % 1000
}

// Room is a location in the cave.
type Room struct {
	Number              int    `json:"number"`
	LongDescription     string `json:"long_description,omitempty"`
	ShortDescription    string `json:"short_description,omitempty"`
	Travel              []Move `json:"travel,omitempty"`   // Tried in order, first match wins
	IsLight             bool   `json:"is_light,omitempty"` // Lit without the lamp
	Liquid              int    `json:"liquid,omitempty"`   // Object number of the liquid source here, 0 if none
	IsForbiddenToPirate bool   `json:"is_forbidden_to_pirate,omitempty"`
	HintNumber          int    `json:"hint_number,omitempty"`
}

// Obj is an object definition. Its location and property live in the game
// state; this is only the static part.
type Obj struct {
	Number           int            `json:"number"`
	Names            []string       `json:"names,omitempty"` // First is canonical
	InventoryMessage string         `json:"inventory_message,omitempty"`
	Messages         map[int]string `json:"messages,omitempty"` // Property value → description
	InitialRooms     []int          `json:"initial_rooms,omitempty"`
	IsTreasure       bool           `json:"is_treasure,omitempty"`
	IsFixed          bool           `json:"is_fixed,omitempty"`
}

// Name returns the canonical name of the object, or "" if it has none.
func (o *Obj) Name() string {
	if len(o.Names) == 0 {
		return ""
	}
	return o.Names[0]
}

// HasAlternateRoom reports whether the object spans two rooms, like a grate
// seen from above and below.
func (o *Obj) HasAlternateRoom() bool {
	return len(o.InitialRooms) > 1
}

// Hint is an optional clue offered after lingering near its rooms.
type Hint struct {
	Number      int    `json:"number"`
	TurnsNeeded int    `json:"turns_needed"`
	Penalty     int    `json:"penalty"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Rooms       []int  `json:"rooms,omitempty"`
}

// ClassMessage is a rank awarded at or above a score.
type ClassMessage struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

// World is the immutable cave definition. It is built once by the loader
// and shared read-only by every game.
type World struct {
	Rooms         map[int]*Room
	Objects       map[int]*Obj
	Vocabulary    map[string]Word
	ObjectNames   map[string]int   // Name → default object
	NameIndex     map[string][]int // Name → every object sharing it, in registration order
	Messages      map[int]string
	ClassMessages []ClassMessage
	Hints         map[int]*Hint
	MagicMessages map[int]string
}

// New returns an empty World ready to be filled by a loader.
func New() *World {
	return &World{
		Rooms:         make(map[int]*Room),
		Objects:       make(map[int]*Obj),
		Vocabulary:    make(map[string]Word),
		ObjectNames:   make(map[string]int),
		NameIndex:     make(map[string][]int),
		Messages:      make(map[int]string),
		Hints:         make(map[int]*Hint),
		MagicMessages: make(map[int]string),
	}
}

// Room returns the room with the given number or nil.
func (w *World) Room(n int) *Room {
	return w.Rooms[n]
}

// Object returns the object with the given number or nil.
func (w *World) Object(n int) *Obj {
	return w.Objects[n]
}

// LookupWord resolves a (possibly truncated) token against the vocabulary.
func (w *World) LookupWord(token string) (Word, bool) {
	token = strings.ToLower(token)
	if word, ok := w.Vocabulary[token]; ok {
		return word, true
	}
	if long := ExpandWord(token); long != token {
		if word, ok := w.Vocabulary[long]; ok {
			return word, true
		}
	}
	return Word{}, false
}

// ObjectsNamed returns every object registered under name, default first.
func (w *World) ObjectsNamed(name string) []int {
	def, ok := w.ObjectNames[name]
	if !ok {
		return nil
	}
	out := []int{def}
	for _, n := range w.NameIndex[name] {
		if n != def {
			out = append(out, n)
		}
	}
	return out
}

// Treasures returns the treasure object numbers in ascending order.
func (w *World) Treasures() []int {
	var out []int
	for n, obj := range w.Objects {
		if obj.IsTreasure {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// ObjectNumbers returns all object numbers in ascending order.
func (w *World) ObjectNumbers() []int {
	out := make([]int, 0, len(w.Objects))
	for n := range w.Objects {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// RoomNumbers returns all room numbers in ascending order.
func (w *World) RoomNumbers() []int {
	out := make([]int, 0, len(w.Rooms))
	for n := range w.Rooms {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

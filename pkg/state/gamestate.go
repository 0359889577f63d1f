package state

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Special object locations.
const (
	Carried   = 0
	Destroyed = -1
)

const (
	LampLife         = 330
	InitialClock1    = 15
	InitialClock2    = 30
	DefaultMaxDeaths = 3
)

// DwarfStartRooms are where the five dwarves wait before they wake.
var DwarfStartRooms = []int{19, 27, 33, 44, 64}

// DwarfStage is the escalation level of the dwarf threat.
type DwarfStage int

const (
	Dormant    DwarfStage = iota
	Armed                 // Player has gone deep enough to be noticed
	Active                // First dwarf has shown itself
	Aggressive            // Knives can now hit
)

// LampState tracks the brass lantern.
type LampState struct {
	On        bool `json:"on"`
	Remaining int  `json:"remaining"`
	Warned    bool `json:"warned,omitempty"` // "getting dim" already shown
}

// ClockState tracks the cave closing countdowns.
type ClockState struct {
	Clock1    int  `json:"clock1"`
	Clock2    int  `json:"clock2"`
	IsClosing bool `json:"is_closing"`
	IsClosed  bool `json:"is_closed"`
}

// DwarfState tracks the wandering dwarves. The slices are parallel; a
// killed dwarf is removed from all of them.
type DwarfState struct {
	Stage         DwarfStage `json:"stage"`
	Met           bool       `json:"met,omitempty"` // Stage has left Dormant at least once
	Locations     []int      `json:"locations"`
	OldLocations  []int      `json:"old_locations"`
	Seen          []bool     `json:"seen"`
	Killed        int        `json:"killed"`
	KnifeLocation int        `json:"knife_location"`
}

// PirateState tracks the pirate. Location 0 means the pirate is gone for
// good.
type PirateState struct {
	Location    int  `json:"location"`
	OldLocation int  `json:"old_location"`
	Seen        bool `json:"seen"`
}

// HintState tracks hint offers. Keys are hint numbers.
type HintState struct {
	Turns   map[int]int  `json:"turns"`
	Offered map[int]bool `json:"offered"`
	Given   map[int]bool `json:"given"`
}

// GameState is one player's game. It holds only primitive data so it can
// be stored and reloaded independently of the World it was built from.
type GameState struct {
	ID              uuid.UUID    `json:"id"`
	CurrentRoom     int          `json:"current_room"`
	OldRoom         int          `json:"old_room"`
	OldOldRoom      int          `json:"old_old_room"`
	ObjectLocations map[int]int  `json:"object_locations"`
	ObjectProps     map[int]int  `json:"object_props"` // A treasure is "found" once it has a prop
	Turns           int          `json:"turns"`
	Lamp            LampState    `json:"lamp"`
	Clocks          ClockState   `json:"clocks"`
	Deaths          int          `json:"deaths"`
	MaxDeaths       int          `json:"max_deaths"`
	Visited         map[int]bool `json:"visited"`
	IsFinished      bool         `json:"is_finished"`
	GaveUp          bool         `json:"gave_up"`
	Dwarves         DwarfState   `json:"dwarves"`
	Pirate          PirateState  `json:"pirate"`
	Hints           HintState    `json:"hints"`
	DetailLevel     int          `json:"detail_level"`
	BearTame        bool         `json:"bear_tame"`
	FooStep         int          `json:"foo_step"` // Words of the fee-fie-foe-foo chant said so far
	FooTurn         int          `json:"foo_turn"` // Turn the last chant word was said on
	Bonus           int          `json:"bonus"`    // Endgame bonus code, 0 until the blast
}

// NewGameState creates a fresh game for w.
func NewGameState(w *world.World) *GameState {
	gs := &GameState{
		ID:              uuid.New(),
		CurrentRoom:     world.StartRoom,
		OldRoom:         world.StartRoom,
		OldOldRoom:      world.StartRoom,
		ObjectLocations: make(map[int]int, len(w.Objects)),
		ObjectProps: map[int]int{
			world.Grate: 0,
			world.Lamp:  0,
		},
		Lamp:      LampState{Remaining: LampLife},
		Clocks:    ClockState{Clock1: InitialClock1, Clock2: InitialClock2},
		MaxDeaths: DefaultMaxDeaths,
		Visited:   make(map[int]bool),
		Dwarves: DwarfState{
			Stage:        Dormant,
			Locations:    append([]int(nil), DwarfStartRooms...),
			OldLocations: append([]int(nil), DwarfStartRooms...),
			Seen:         make([]bool, len(DwarfStartRooms)),
		},
		Pirate: PirateState{Location: world.StashRoom, OldLocation: world.StashRoom},
		Hints: HintState{
			Turns:   make(map[int]int),
			Offered: make(map[int]bool),
			Given:   make(map[int]bool),
		},
	}

	for n, obj := range w.Objects {
		if len(obj.InitialRooms) > 0 {
			gs.ObjectLocations[n] = obj.InitialRooms[0]
		} else {
			gs.ObjectLocations[n] = Destroyed
		}
	}
	return gs
}

// Location returns where obj is. Unknown objects are Destroyed.
func (gs *GameState) Location(obj int) int {
	if loc, ok := gs.ObjectLocations[obj]; ok {
		return loc
	}
	return Destroyed
}

// IsCarried reports whether the player holds obj.
func (gs *GameState) IsCarried(obj int) bool {
	loc, ok := gs.ObjectLocations[obj]
	return ok && loc == Carried
}

// Place moves obj to loc.
func (gs *GameState) Place(obj, loc int) {
	gs.ObjectLocations[obj] = loc
}

// Prop returns obj's property and whether it has ever been set.
func (gs *GameState) Prop(obj int) (int, bool) {
	v, ok := gs.ObjectProps[obj]
	return v, ok
}

// PropValue returns obj's property, 0 when unset.
func (gs *GameState) PropValue(obj int) int {
	return gs.ObjectProps[obj]
}

// SetProp sets obj's property.
func (gs *GameState) SetProp(obj, v int) {
	gs.ObjectProps[obj] = v
}

// IsFound reports whether a treasure's property has been set.
func (gs *GameState) IsFound(obj int) bool {
	_, ok := gs.ObjectProps[obj]
	return ok
}

// MarkFound sets obj's property to 0 if it has never been set.
func (gs *GameState) MarkFound(obj int) {
	if _, ok := gs.ObjectProps[obj]; !ok {
		gs.ObjectProps[obj] = 0
	}
}

// CarriedObjects returns carried object numbers in ascending order.
func (gs *GameState) CarriedObjects() []int {
	var out []int
	for obj, loc := range gs.ObjectLocations {
		if loc == Carried {
			out = append(out, obj)
		}
	}
	sort.Ints(out)
	return out
}

// ObjectsAt returns the object numbers whose primary location is room, in
// ascending order.
func (gs *GameState) ObjectsAt(room int) []int {
	var out []int
	for obj, loc := range gs.ObjectLocations {
		if loc == room {
			out = append(out, obj)
		}
	}
	sort.Ints(out)
	return out
}

// Marshal serializes the state to bytes.
func (gs *GameState) Marshal() ([]byte, error) {
	data, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}
	return data, nil
}

// Unmarshal restores a state produced by Marshal.
func Unmarshal(data []byte) (*GameState, error) {
	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	gs.ensureMaps()
	return &gs, nil
}

// ensureMaps replaces nil maps left by sparse input.
func (gs *GameState) ensureMaps() {
	if gs.ObjectLocations == nil {
		gs.ObjectLocations = make(map[int]int)
	}
	if gs.ObjectProps == nil {
		gs.ObjectProps = make(map[int]int)
	}
	if gs.Visited == nil {
		gs.Visited = make(map[int]bool)
	}
	if gs.Hints.Turns == nil {
		gs.Hints.Turns = make(map[int]int)
	}
	if gs.Hints.Offered == nil {
		gs.Hints.Offered = make(map[int]bool)
	}
	if gs.Hints.Given == nil {
		gs.Hints.Given = make(map[int]bool)
	}
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func TestMove_Directions(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		input    string
		wantRoom int
		wantText string
	}{
		{"east into building", 1, "east", 3, "You are inside a building"},
		{"enter building", 1, "in", 3, "You are inside a building"},
		{"go verb", 1, "go east", 3, "You are inside a building"},
		{"out of building", 3, "out", 1, "end of a road"},
		{"blocked direction", 3, "north", 3, "You can't go that way."},
		{"magic word", 3, "xyzzy", 11, "It is now pitch dark."},
		{"say magic word", 3, "say xyzzy", 11, "It is now pitch dark."},
		{"locked grate", 8, "down", 8, "You can't go through a locked steel grate!"},
		{"unknown go direction", 1, "go sideways", 1, "I don't know that direction."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, gs, _ := newTestGame(t)
			gs.CurrentRoom = tt.from
			resp := e.HandleCommand(gs, tt.input)
			assert.Equal(t, tt.wantRoom, gs.CurrentRoom)
			assert.Contains(t, resp, tt.wantText)
		})
	}
}

func TestMove_HistoryAndBack(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.Visited[world.StartRoom] = true
	e.HandleCommand(gs, "east")
	assert.Equal(t, world.BuildingRoom, gs.CurrentRoom)
	assert.Equal(t, world.StartRoom, gs.OldRoom)

	resp := e.HandleCommand(gs, "back")
	assert.Equal(t, world.StartRoom, gs.CurrentRoom)
	assert.Contains(t, resp, "You're at end of road again.")
	assert.Equal(t, world.BuildingRoom, gs.OldRoom)
}

func TestMove_ShortDescriptionOnReturn(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.Visited[world.StartRoom] = true

	first := e.HandleCommand(gs, "east")
	assert.Contains(t, first, "You are inside a building, a well house")

	e.HandleCommand(gs, "out")
	again := e.HandleCommand(gs, "east")
	assert.Contains(t, again, "You're inside building.")
	assert.NotContains(t, again, "well house")
}

func TestMove_GrateOpens(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = 8
	carry(gs, world.Keys)

	assert.Equal(t, "The grate is now unlocked.", e.HandleCommand(gs, "open grate"))
	e.HandleCommand(gs, "down")
	assert.Equal(t, 9, gs.CurrentRoom)
	assert.Equal(t, state.Dormant, gs.Dwarves.Stage, "room 9 is not deep enough to arm dwarves")
}

func TestMove_PercentChance(t *testing.T) {
	t.Run("gate passes", func(t *testing.T) {
		e, gs, rng := newTestGame(t)
		gs.CurrentRoom = world.WittsEnd
		rng.ints = []int{0}
		resp := e.HandleCommand(gs, "north")
		assert.Equal(t, world.WittsEnd, gs.CurrentRoom)
		assert.Contains(t, resp, "You have crawled around in some little holes")
	})

	t.Run("gate fails", func(t *testing.T) {
		e, gs, rng := newTestGame(t)
		gs.CurrentRoom = world.WittsEnd
		rng.ints = []int{99}
		e.HandleCommand(gs, "north")
		assert.Equal(t, 64, gs.CurrentRoom)
	})
}

func TestMove_CarryingCondition(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.DeepRoom

	e.HandleCommand(gs, "up")
	assert.Equal(t, 14, gs.CurrentRoom)

	gs.CurrentRoom = world.DeepRoom
	carry(gs, world.Gold)
	resp := e.HandleCommand(gs, "up")
	assert.Equal(t, world.DeepRoom, gs.CurrentRoom)
	assert.Contains(t, resp, "The dome is unclimbable.")
}

func TestMove_ArmsDwarvesInDeepRooms(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = 14
	e.HandleCommand(gs, "down")
	assert.Equal(t, world.DeepRoom, gs.CurrentRoom)
	assert.Equal(t, state.Armed, gs.Dwarves.Stage)
	assert.True(t, gs.Dwarves.Met)
}

func TestMove_ForcedDeath(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.FissureEast
	carry(gs, world.Keys)

	resp := e.HandleCommand(gs, "jump")

	assert.Contains(t, resp, "You are at the bottom of the pit with a broken neck.")
	assert.Contains(t, resp, "You have died.")
	assert.Equal(t, 1, gs.Deaths)
	assert.Equal(t, world.BuildingRoom, gs.CurrentRoom)
	assert.Equal(t, world.BuildingRoom, gs.Location(world.Keys))
}

func TestMove_PitInTheDark(t *testing.T) {
	e, gs, rng := newTestGame(t)
	gs.CurrentRoom = 8
	gs.SetProp(world.Grate, 1)
	rng.ints = []int{0}

	resp := e.HandleCommand(gs, "down")

	assert.Contains(t, resp, "You fell into a pit")
	assert.Equal(t, 1, gs.Deaths)
	assert.Equal(t, world.BuildingRoom, gs.CurrentRoom)
}

func TestMove_DarkWithoutFall(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = 8
	gs.SetProp(world.Grate, 1)

	resp := e.HandleCommand(gs, "down")

	assert.Equal(t, 9, gs.CurrentRoom)
	assert.Contains(t, resp, "It is now pitch dark.")
}

func TestMove_FinalDeath(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.Deaths = gs.MaxDeaths - 1
	gs.CurrentRoom = world.FissureEast

	resp := e.HandleCommand(gs, "jump")

	assert.True(t, gs.IsFinished)
	assert.Contains(t, resp, "The game is over.")
	assert.Contains(t, resp, "Your score:")
}

func TestMove_MagicWordsBlockedWhileClosing(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.BuildingRoom
	gs.Clocks.IsClosing = true

	resp := e.HandleCommand(gs, "xyzzy")

	assert.Contains(t, resp, "This exit is closed.")
	assert.Equal(t, world.BuildingRoom, gs.CurrentRoom)
}

func TestMove_PloverPassage(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.Y2Room
	carry(gs, world.Emerald)

	resp := e.HandleCommand(gs, "plover")

	assert.Equal(t, world.PloverRoom, gs.CurrentRoom)
	assert.Equal(t, world.Y2Room, gs.Location(world.Emerald))
	assert.Contains(t, resp, "The emerald slips from your grasp")

	e.HandleCommand(gs, "plover")
	assert.Equal(t, world.Y2Room, gs.CurrentRoom)
}

func TestMove_TrollBridge(t *testing.T) {
	t.Run("troll blocks until paid", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		gs.CurrentRoom = world.ChasmSouthWest
		gs.Dwarves.Locations = nil
		carry(gs, world.Gold)

		assert.Equal(t, msgTrollBlocks, e.HandleCommand(gs, "cross"))
		assert.Equal(t, world.ChasmSouthWest, gs.CurrentRoom)

		assert.Equal(t, msgTrollPaid, e.HandleCommand(gs, "throw gold"))
		assert.Equal(t, state.Destroyed, gs.Location(world.Gold))
		assert.Equal(t, 1, gs.PropValue(world.Troll))

		e.HandleCommand(gs, "cross")
		assert.Equal(t, world.ChasmNorthEast, gs.CurrentRoom)
		assert.Equal(t, 0, gs.PropValue(world.Troll), "troll returns after the crossing")

		assert.Equal(t, msgTrollBlocks, e.HandleCommand(gs, "cross"))
	})

	t.Run("bear collapses the bridge", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		gs.CurrentRoom = world.ChasmSouthWest
		gs.SetProp(world.Troll, 1)
		carry(gs, world.Bear)

		resp := e.HandleCommand(gs, "cross")

		assert.Contains(t, resp, "the bridge buckles beneath the weight of the bear")
		assert.Equal(t, 1, gs.PropValue(world.Chasm))
		assert.Equal(t, state.Destroyed, gs.Location(world.Troll))
		assert.Equal(t, state.Destroyed, gs.Location(world.Bear))
		assert.Equal(t, 1, gs.Deaths)

		gs.CurrentRoom = world.ChasmSouthWest
		assert.Equal(t, msgNoWayAcross, e.HandleCommand(gs, "cross"))
	})
}

func TestSpecial_Unmapped(t *testing.T) {
	e, gs, _ := newTestGame(t)
	before := snapshot(t, gs)
	assert.Equal(t, msgStrange, e.special(gs, 399))
	assert.Equal(t, before, snapshot(t, gs))
}

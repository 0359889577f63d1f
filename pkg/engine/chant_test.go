package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func TestChant(t *testing.T) {
	tests := []struct {
		name     string
		room     int
		setup    func(gs *state.GameState)
		words    []string
		want     string
		wantEggs int
	}{
		{
			name:     "eggs reappear in the giant room",
			room:     world.GiantRoom,
			setup:    func(gs *state.GameState) { gs.Place(world.Eggs, world.BuildingRoom) },
			words:    []string{"fee", "fie", "foe", "foo"},
			want:     "A large nest full of golden eggs suddenly appears out of nowhere!",
			wantEggs: world.GiantRoom,
		},
		{
			name:     "carried eggs vanish",
			room:     world.BuildingRoom,
			setup:    func(gs *state.GameState) { carry(gs, world.Eggs) },
			words:    []string{"fee", "fie", "foe", "foo"},
			want:     "The nest of golden eggs has vanished!",
			wantEggs: world.GiantRoom,
		},
		{
			name:     "eggs elsewhere return quietly",
			room:     world.BuildingRoom,
			setup:    func(gs *state.GameState) { gs.Place(world.Eggs, world.StartRoom) },
			words:    []string{"fee", "fie", "foe", "foo"},
			want:     "Done!",
			wantEggs: world.GiantRoom,
		},
		{
			name:     "eggs already home",
			room:     world.BuildingRoom,
			words:    []string{"fee", "fie", "foe", "foo"},
			want:     msgNothing,
			wantEggs: world.GiantRoom,
		},
		{
			name:     "said out of order",
			room:     world.BuildingRoom,
			setup:    func(gs *state.GameState) { gs.Place(world.Eggs, world.StartRoom) },
			words:    []string{"fee", "foe"},
			want:     "Get it right, dummy!",
			wantEggs: world.StartRoom,
		},
		{
			name:     "started in the middle",
			room:     world.BuildingRoom,
			setup:    func(gs *state.GameState) { gs.Place(world.Eggs, world.StartRoom) },
			words:    []string{"fie"},
			want:     msgNothing,
			wantEggs: world.StartRoom,
		},
		{
			name:     "interrupted",
			room:     world.BuildingRoom,
			setup:    func(gs *state.GameState) { gs.Place(world.Eggs, world.StartRoom) },
			words:    []string{"fee", "fie", "inventory", "foe"},
			want:     msgNothing,
			wantEggs: world.StartRoom,
		},
		{
			name:     "spoken with say",
			room:     world.BuildingRoom,
			setup:    func(gs *state.GameState) { gs.Place(world.Eggs, world.StartRoom) },
			words:    []string{"say fee", "say fie", "say foe", "say foo"},
			want:     "Done!",
			wantEggs: world.GiantRoom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, gs, _ := newTestGame(t)
			gs.CurrentRoom = tt.room
			carry(gs, world.Lamp)
			gs.Lamp.On = true
			if tt.setup != nil {
				tt.setup(gs)
			}

			var resp string
			for _, w := range tt.words {
				resp = e.HandleCommand(gs, w)
			}

			assert.Equal(t, tt.want, resp)
			assert.Equal(t, tt.wantEggs, gs.Location(world.Eggs))
			assert.Zero(t, gs.FooStep)
		})
	}
}

func TestChant_PartialProgress(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.BuildingRoom

	assert.Equal(t, msgOK, e.HandleCommand(gs, "fee"))
	assert.Equal(t, msgOK, e.HandleCommand(gs, "fie"))
	assert.Equal(t, 2, gs.FooStep)
}

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func loadFixture(t *testing.T) *world.World {
	t.Helper()
	w, err := LoadFile(filepath.Join("testdata", "advent.dat"))
	require.NoError(t, err)
	return w
}

func TestLoadFile_Rooms(t *testing.T) {
	w := loadFixture(t)

	r := w.Room(1)
	require.NotNil(t, r)
	assert.Equal(t, "You are standing at the end of a road before a small brick building.\nAround you is a forest.  A small stream flows out of the building and\ndown a gully.", r.LongDescription)
	assert.Equal(t, "You're at end of road again.", r.ShortDescription)
	assert.True(t, r.IsLight)
	assert.True(t, r.IsForbiddenToPirate)
	assert.Equal(t, 4, r.HintNumber)

	assert.Equal(t, world.Water, w.Room(3).Liquid)
	assert.Equal(t, world.Oil, w.Room(24).Liquid)
	assert.False(t, w.Room(9).IsLight)
}

func TestLoadFile_Travel(t *testing.T) {
	w := loadFixture(t)

	tests := []struct {
		name  string
		room  int
		index int
		want  world.Move
	}{
		{
			name: "plain move",
			room: 1, index: 0,
			want: world.Move{Verbs: []int{2, 44, 29}, Destination: 2},
		},
		{
			name: "prop gate",
			room: 8, index: 2,
			want: world.Move{
				Verbs:       []int{19, 30},
				Condition:   world.Condition{Kind: world.PropNotEqual, Object: world.Grate, Value: 0},
				Destination: 9,
			},
		},
		{
			name: "message fallback",
			room: 8, index: 3,
			want: world.Move{Verbs: []int{19, 30}, Destination: -93},
		},
		{
			name: "carrying gate",
			room: 15, index: 0,
			want: world.Move{
				Verbs:       []int{29},
				Condition:   world.Condition{Kind: world.Carrying, Object: world.Gold},
				Destination: -96,
			},
		},
		{
			name: "percent gate",
			room: 108, index: 0,
			want: world.Move{
				Verbs:       []int{45, 46, 47, 48, 49, 50, 29, 30},
				Condition:   world.Condition{Kind: world.PercentChance, Percent: 95},
				Destination: -56,
			},
		},
		{
			name: "special destination",
			room: 33, index: 3,
			want: world.Move{Verbs: []int{71}, Destination: 302},
		},
		{
			name: "forced move",
			room: 20, index: 0,
			want: world.Move{Verbs: []int{1}, Destination: 301, IsForced: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := w.Room(tt.room)
			require.NotNil(t, r)
			require.Greater(t, len(r.Travel), tt.index)
			assert.Equal(t, tt.want, r.Travel[tt.index])
		})
	}

	m := w.Room(8).Travel[3]
	assert.True(t, m.IsMessage())
	assert.Equal(t, 93, m.MessageNumber())
	assert.True(t, w.Room(33).Travel[3].IsSpecial())
}

func TestLoadFile_Objects(t *testing.T) {
	w := loadFixture(t)

	keys := w.Object(world.Keys)
	require.NotNil(t, keys)
	assert.Equal(t, "keys", keys.Name())
	assert.Contains(t, keys.Names, "key")
	assert.Equal(t, "Set of keys", keys.InventoryMessage)
	assert.Equal(t, []int{world.BuildingRoom}, keys.InitialRooms)
	assert.False(t, keys.IsTreasure)

	grate := w.Object(world.Grate)
	assert.Equal(t, []int{8, 9}, grate.InitialRooms)
	assert.True(t, grate.HasAlternateRoom())
	assert.Equal(t, "The grate is open.", grate.Messages[1])

	assert.True(t, w.Object(world.Bear).IsFixed)
	assert.Empty(t, w.Object(world.Water).InitialRooms)

	plant := w.Object(world.Plant)
	assert.Equal(t, "There is a 12-foot-tall beanstalk stretching up out of the pit,\nbellowing \"WATER!! WATER!!\"", plant.Messages[1])

	assert.Equal(t, "", w.Object(world.Fissure).Messages[0], "blank marker text")

	treasures := w.Treasures()
	assert.Len(t, treasures, 15)
	assert.Equal(t, world.Gold, treasures[0])
	assert.Equal(t, world.Chain, treasures[len(treasures)-1])
}

func TestLoadFile_Vocabulary(t *testing.T) {
	w := loadFixture(t)

	tests := []struct {
		token  string
		kind   world.WordKind
		number int
	}{
		{"lantern", world.Noun, 1002},
		{"lante", world.Noun, 1002},
		{"LAMP", world.Noun, 1002},
		{"xyzzy", world.Motion, 62},
		{"downstream", world.Motion, 5},
		{"take", world.Verb, 2001},
		{"help", world.Special, 3050},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			word, ok := w.LookupWord(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.kind, word.Kind)
			assert.Equal(t, tt.number, word.Number)
		})
	}

	if _, ok := w.LookupWord("flurb"); ok {
		t.Error("unexpected vocabulary hit for flurb")
	}

	assert.Equal(t, []int{world.Rod, world.Rod2}, w.ObjectsNamed("rod"))
}

func TestLoadFile_MessagesHintsClasses(t *testing.T) {
	w := loadFixture(t)

	assert.Equal(t, "You can't go through a locked steel grate!", w.Messages[93])
	assert.Equal(t, "This adventure has lasted too long.", w.MagicMessages[2])

	require.Len(t, w.ClassMessages, 5)
	assert.Equal(t, 35, w.ClassMessages[0].Score)
	assert.Equal(t, 350, w.ClassMessages[4].Score)

	h := w.Hints[4]
	require.NotNil(t, h)
	assert.Equal(t, 4, h.TurnsNeeded)
	assert.Equal(t, 2, h.Penalty)
	assert.Equal(t, "Are you trying to get into the cave?", h.Question)
	assert.Contains(t, h.Answer, "hardened steel lock")
	assert.Equal(t, []int{1, 4, 5, 7, 8}, h.Rooms)
}

func TestLoad_TravelLookback(t *testing.T) {
	data := strings.Join([]string{
		"3",
		"5\t6\t45\t43",
		"5\t5\t45",
		"5\t7\t29",
		"-1",
		"0",
	}, "\n")

	w, err := Load(strings.NewReader(data))
	require.NoError(t, err)

	travel := w.Room(5).Travel
	require.Len(t, travel, 3)
	assert.Equal(t, []int{45, 43}, travel[1].Verbs, "same leading verb reuses the previous list")
	assert.Equal(t, []int{29}, travel[2].Verbs)
}

func TestLoad_UnknownSectionIsSkipped(t *testing.T) {
	data := "13\n1\tanything at all\n-1\n6\n1\tHello.\n-1\n0\n"

	w, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Hello.", w.Messages[1])
}

func TestLoad_StopsAtSectionZero(t *testing.T) {
	data := "6\n1\tHello.\n-1\n0\nthis is not data\n"

	_, err := Load(strings.NewReader(data))
	assert.NoError(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLine int
	}{
		{"non-numeric header", "six\n", 1},
		{"missing terminator", "6\n1\tHello.\n", 2},
		{"non-numeric travel", "3\n1\t2\tnorth\n-1\n0\n", 2},
		{"plus-signed header", "+6\n1\tHello.\n-1\n0\n", 1},
		{"plus-signed travel", "3\n1\t+2\t2\n-1\n0\n", 2},
		{"plus-signed leading field", "6\n+1\tHello.\n-1\n0\n", 2},
		{"travel without verbs", "3\n1\t2\n-1\n0\n", 2},
		{"message without text", "6\n1\n-1\n0\n", 2},
		{"state message before object", "5\n000\tNothing to see.\n-1\n0\n", 2},
		{"short hint", "11\n4\t4\t2\n-1\n0\n", 2},
		{"vocabulary out of range", "4\n5001\tzork\n-1\n0\n", 2},
		{"placement without room", "7\n1\n-1\n0\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Load(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Nil(t, w)

			var mErr *MalformedDataError
			require.True(t, errors.As(err, &mErr), "got %T: %v", err, err)
			assert.Equal(t, tt.wantLine, mErr.Line)
			assert.Contains(t, err.Error(), "malformed world data")
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"plain", "plain"},
		{"ab\tcd", "ab      cd"},
		{"12345678\tx", "12345678        x"},
		{"a\t\tb", "a" + strings.Repeat(" ", 15) + "b"},
	}
	for _, tt := range tests {
		if got := expandTabs(parseFields(tt.line)); got != tt.want {
			t.Errorf("expandTabs(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestDecodeDestination(t *testing.T) {
	tests := []struct {
		code     int
		wantCond world.Condition
		wantDest int
	}{
		{3, world.Condition{Kind: world.Unconditional}, 3},
		{35020, world.Condition{Kind: world.PercentChance, Percent: 35}, 20},
		{100012, world.Condition{Kind: world.NotDwarf}, 12},
		{150596, world.Condition{Kind: world.Carrying, Object: 50}, -96},
		{211033, world.Condition{Kind: world.CarryingOrInRoomWith, Object: 11}, 33},
		{303009, world.Condition{Kind: world.PropNotEqual, Object: 3, Value: 0}, 9},
		{524560, world.Condition{Kind: world.PropNotEqual, Object: 24, Value: 2}, -60},
		{302, world.Condition{Kind: world.Unconditional}, 302},
	}
	for _, tt := range tests {
		cond, dest := decodeDestination(tt.code)
		if cond != tt.wantCond || dest != tt.wantDest {
			t.Errorf("decodeDestination(%d) = %v, %d; want %v, %d", tt.code, cond, dest, tt.wantCond, tt.wantDest)
		}
	}
}

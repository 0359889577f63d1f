package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/adventure-engine/pkg/loader"
)

var fixture = filepath.Join("..", "..", "pkg", "loader", "testdata", "advent.dat")

const brokenWorld = "1\n" +
	"1\tRoom one.\n" +
	"2\tRoom two.\n" +
	"-1\n" +
	"3\n" +
	"1\t2\t43\n" +
	"1\t5\t44\n" +
	"1\t593\t45\n" +
	"2\t150001\t29\n" +
	"-1\n" +
	"4\n" +
	"1001\tkeys\n" +
	"1002\tlamp\n" +
	"-1\n" +
	"5\n" +
	"1\tSet of keys\n" +
	"-1\n" +
	"6\n" +
	"1\tWelcome.\n" +
	"-1\n" +
	"7\n" +
	"1\t9\n" +
	"-1\n" +
	"0\n"

func TestWorldValidator_Problems(t *testing.T) {
	w, err := loader.Load(strings.NewReader(brokenWorld))
	require.NoError(t, err)

	v := &WorldValidator{}
	summary, err := v.Validate("broken.dat", w)
	require.Error(t, err)

	wantProblems := []string{
		"room 1 travel 1 leads to undefined room 5",
		"room 1 travel 2 prints undefined message 93",
		"room 2 travel 0 tests undefined object 50",
		"starts in undefined room 9",
	}
	require.Len(t, summary.Problems, len(wantProblems))
	for i, want := range wantProblems {
		assert.Contains(t, summary.Problems[i], want)
		assert.Contains(t, err.Error(), want)
	}

	assert.Equal(t, []string{
		"object 2 (lamp) has no description",
		"object 2 (lamp) has no starting room",
	}, summary.Warnings)

	assert.Equal(t, 2, summary.Rooms)
	assert.Equal(t, 2, summary.Objects)
	assert.Equal(t, 2, summary.Words)
}

func TestWorldValidator_RerunResets(t *testing.T) {
	w, err := loader.Load(strings.NewReader(brokenWorld))
	require.NoError(t, err)

	v := &WorldValidator{}
	first, _ := v.Validate("a", w)
	second, _ := v.Validate("b", w)
	assert.Equal(t, len(first.Problems), len(second.Problems))
}

func TestRun_Fixture(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, fixture, false))

	out := buf.String()
	assert.Contains(t, out, "World data is valid!")
	assert.Contains(t, out, "15 treasures")
	assert.Contains(t, out, "up to 350 points")
}

func TestRun_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, fixture, true))

	var s Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &s))
	assert.Equal(t, fixture, s.File)
	assert.Equal(t, 15, s.Treasures)
	assert.Equal(t, 5, s.Classes)
	assert.Equal(t, 350, s.TopRanking)
	assert.Empty(t, s.Problems)
	assert.Positive(t, s.LitRooms)
}

func TestRun_MissingFile(t *testing.T) {
	err := run(&bytes.Buffer{}, filepath.Join(t.TempDir(), "none.dat"), false)
	require.Error(t, err)
}

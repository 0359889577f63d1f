// Package engine advances a GameState one command at a time against a
// shared, read-only World.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Rand is the source of every probabilistic decision. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// lockedRand lets one default generator be shared by every game.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand returns a Rand that is safe for concurrent use. A zero
// seed uses the clock.
func NewSeededRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Engine runs commands. It holds no per-game data, so a single Engine can
// serve any number of games as long as each GameState is used by one
// caller at a time.
type Engine struct {
	world  *world.World
	rng    Rand
	logger *slog.Logger
}

// New creates an Engine for w with a clock-seeded random source.
func New(w *world.World) *Engine {
	return &Engine{
		world:  w,
		rng:    NewSeededRand(0),
		logger: slog.Default(),
	}
}

// WithRand replaces the random source.
func (e *Engine) WithRand(r Rand) *Engine {
	e.rng = r
	return e
}

// WithLogger replaces the logger.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	e.logger = l
	return e
}

// World returns the world the engine plays.
func (e *Engine) World() *world.World {
	return e.world
}

// NewGame creates a fresh game state for the engine's world.
func (e *Engine) NewGame() *state.GameState {
	return state.NewGameState(e.world)
}

// Intro returns the welcome text and the starting room.
func (e *Engine) Intro(gs *state.GameState) string {
	gs.Visited[gs.CurrentRoom] = true
	return joinParagraphs(e.world.Messages[1], e.describe(gs, true))
}

const (
	msgDontUnderstand = "I don't understand that command."
	msgPardon         = "I beg your pardon?"
	msgTooDark        = "It's too dark to see!"
	msgNotHere        = "I don't see that here."
	msgPitchDark      = "It is now pitch dark. If you proceed you will likely fall into a pit."
	msgOK             = "OK."
)

// HandleCommand runs one turn and returns the text to show the player.
func (e *Engine) HandleCommand(gs *state.GameState, input string) string {
	gs.Turns++
	if gs.IsFinished {
		return fmt.Sprintf("The game is over. You scored %d out of a possible %d.", CalculateScore(e.world, gs), MaxScore)
	}

	lampNote, dark := e.tickLamp(gs)
	if dark {
		return lampNote
	}
	announcement := e.tickClocks(gs)

	words := tokenize(input)
	var response string
	if len(words) == 0 {
		response = msgPardon
	} else {
		verb, noun := words[0], ""
		if len(words) > 1 {
			noun = words[1]
		}
		var ok bool
		response, ok = e.dispatch(gs, verb, noun)
		if !ok {
			response = msgDontUnderstand
			e.logger.Debug("unrecognized command", "game_id", gs.ID, "verb", verb)
		} else if !gs.IsFinished {
			response = joinParagraphs(response, e.tickDwarves(gs), e.tickPirate(gs), e.tickHints(gs))
		}
	}

	return joinParagraphs(announcement, lampNote, response)
}

// tokenize lowercases input and cuts each word to its significant prefix.
func tokenize(input string) []string {
	fields := strings.Fields(strings.ToLower(input))
	for i, f := range fields {
		fields[i] = world.Truncate(f)
	}
	return fields
}

// dispatch routes a verb. It reports false when nothing handled it.
func (e *Engine) dispatch(gs *state.GameState, verb, noun string) (string, bool) {
	if _, ok := chantWords[verb]; ok {
		return e.chant(gs, verb), true
	}
	if word, ok := e.world.LookupWord(verb); ok && word.Kind == world.Motion {
		return e.move(gs, word.Value()), true
	}
	if v, ok := verbTable[verb]; ok {
		return handlers[v](e, gs, noun), true
	}
	if obj, ok := e.resolveNoun(gs, verb); ok && e.isPresent(gs, obj) {
		return e.take(gs, verb), true
	}
	return "", false
}

// joinParagraphs joins the non-empty parts with blank lines.
func joinParagraphs(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

// message returns a numbered world message, or fallback when the data
// file does not define it.
func (e *Engine) message(n int, fallback string) string {
	if msg, ok := e.world.Messages[n]; ok && msg != "" {
		return msg
	}
	return fallback
}

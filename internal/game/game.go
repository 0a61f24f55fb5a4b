package game

import (
	"context"
	"time"

	"go-match/internal/board"
	"go-match/internal/scoring"
	"go-match/internal/state"

	"github.com/rs/zerolog/log"
)

const (
	TickInterval  = time.Second
	FlipBackDelay = time.Second
	WinDelay      = time.Second
)

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State
}

// NewGame initializes a new game instance on the given board.
func NewGame(b *board.Board) *Game {
	return &Game{
		State: state.NewState(b, scoring.InitScoring()),
	}
}

// Init moves the state machine to idle.
func (g *Game) Init() {
	_ = g.State.FSM.Event(context.Background(), "initGame")
}

// HandleClick processes a click on the card at idx. Flipped cards and
// clicks after the win are ignored.
func (g *Game) HandleClick(idx int) {
	if !g.State.CanFlip(idx) {
		return
	}
	g.event("flip", idx)
}

// HandleStart processes the start control.
func (g *Game) HandleStart() {
	if g.State.Won {
		return
	}
	g.State.Start()
}

// HandleTick advances the clock for a tick of timer id. It reports whether
// the loop should keep ticking.
func (g *Game) HandleTick(id int) bool {
	if !g.State.IsLiveTick(id) {
		return false
	}
	g.event("tick")
	return true
}

// HandleFlipBack hides every flipped card that is not matched.
func (g *Game) HandleFlipBack() {
	if g.State.Won {
		return
	}
	g.event("flipBack")
}

// HandleWin stops the clock and freezes the banner. Only the first call has
// an effect.
func (g *Game) HandleWin() {
	if g.State.Won {
		return
	}
	g.event("declareWin")
}

func (g *Game) event(name string, args ...interface{}) {
	if err := g.State.FSM.Event(context.Background(), name, args...); err != nil {
		log.Debug().Err(err).Str("event", name).Str("state", g.State.FSM.Current()).Msg("event not applied")
	}
}

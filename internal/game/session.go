package game

import (
	"fmt"
	"math/rand"

	"go-match/internal/board"
	"go-match/internal/state"

	"github.com/rs/zerolog/log"
)

// Config is everything needed to build a board.
type Config struct {
	Dimension int
	Pool      []string
}

// Session owns the board, the running game and the click routing for one run.
type Session struct {
	Config      Config
	Board       *board.Board
	CurrentGame *Game
	Layout      Layout

	cells map[Cell]int
	rng   *rand.Rand
}

// NewSession validates cfg and builds the board. A configuration error leaves
// no session behind.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	s := &Session{
		Config: cfg,
		rng:    rng,
	}

	if err := s.rebuild(); err != nil {
		return nil, err
	}

	return s, nil
}

// rebuild replaces the board wholesale and re-registers every cell.
func (s *Session) rebuild() error {
	b, err := board.Generate(s.Config.Dimension, s.Config.Pool, s.rng)
	if err != nil {
		return fmt.Errorf("failed to generate board: %w", err)
	}

	g := NewGame(b)
	g.Init()

	s.Board = b
	s.CurrentGame = g
	s.Layout = NewLayout(b.Dimension)
	s.register()

	log.Debug().Int("dimension", b.Dimension).Int("cards", len(b.Cards)).Msg("board generated")
	return nil
}

func (s *Session) register() {
	s.cells = make(map[Cell]int, len(s.Board.Cards))
	for row := 0; row < s.Board.Dimension; row++ {
		for col := 0; col < s.Board.Dimension; col++ {
			idx, _ := s.Board.Index(row, col)
			s.cells[Cell{Row: row, Col: col}] = idx
		}
	}
}

// CardAt returns the card index registered under (x, y).
func (s *Session) CardAt(x, y int) (int, bool) {
	cell, ok := s.Layout.CellAt(x, y)
	if !ok {
		return 0, false
	}
	idx, ok := s.cells[cell]
	return idx, ok
}

// Click routes a pointer click at (x, y) and returns the effects it queued.
func (s *Session) Click(x, y int) []state.Effect {
	g := s.CurrentGame

	if idx, ok := s.CardAt(x, y); ok {
		if !g.State.Board.Cards[idx].Flipped {
			g.HandleClick(idx)
		}
	} else if s.Layout.OnStart(x, y) && !g.State.StartDisabled() {
		g.HandleStart()
	}

	return g.State.TakeEffects()
}

// Tick forwards a timer tick and reports whether the loop stays armed.
func (s *Session) Tick(id int) bool {
	return s.CurrentGame.HandleTick(id)
}

func (s *Session) FlipBack() {
	s.CurrentGame.HandleFlipBack()
}

func (s *Session) RevealWin() {
	s.CurrentGame.HandleWin()
}

func (s *Session) IsFinished() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.Won
}

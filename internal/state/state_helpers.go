package state

import (
	"github.com/rs/zerolog/log"
)

// Start marks the game as started and arms a new timer loop.
// It reports whether this call started the game; later calls are no-ops.
func (s *State) Start() bool {
	if s.Started {
		return false
	}
	s.Started = true
	s.TimerID++
	s.TimerRunning = true
	s.schedule(Effect{Kind: StartTimer, TimerID: s.TimerID})
	log.Debug().Int("timer", s.TimerID).Msg("game started")
	return true
}

// StopTimer cancels the running timer loop. Ticks already in flight are
// dropped by IsLiveTick.
func (s *State) StopTimer() {
	s.TimerRunning = false
}

// IsLiveTick reports whether a tick carrying id belongs to the running loop.
func (s State) IsLiveTick(id int) bool {
	return s.TimerRunning && id == s.TimerID
}

// StartDisabled reports whether the start control is shown as disabled.
func (s State) StartDisabled() bool {
	return s.Started
}

// CanFlip reports whether the card at idx accepts a click.
func (s State) CanFlip(idx int) bool {
	if s.Won || idx < 0 || idx >= len(s.Board.Cards) {
		return false
	}
	return !s.Board.Cards[idx].Flipped
}

// FlippedPairMatches compares the first two flipped-and-unmatched cards.
func (s State) FlippedPairMatches() bool {
	pair := s.Board.FlippedUnmatched()
	if len(pair) < 2 {
		return false
	}
	return s.Board.Cards[pair[0]].Symbol == s.Board.Cards[pair[1]].Symbol
}

// TakeEffects returns the effects queued since the last call and clears them.
func (s *State) TakeEffects() []Effect {
	effects := s.Effects
	s.Effects = nil
	return effects
}

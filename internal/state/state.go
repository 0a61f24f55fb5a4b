package state

import (
	"context"
	"fmt"

	"go-match/internal/board"
	"go-match/internal/scoring"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog/log"
)

// EffectKind names a delayed action the UI layer has to schedule.
type EffectKind int

const (
	StartTimer EffectKind = iota // start the 1s tick loop for TimerID
	FlipBack                     // hide unmatched cards after FlipBackDelay
	RevealWin                    // show the win banner after WinDelay
)

func (k EffectKind) String() string {
	switch k {
	case StartTimer:
		return "startTimer"
	case FlipBack:
		return "flipBack"
	case RevealWin:
		return "revealWin"
	default:
		return "unknown"
	}
}

type Effect struct {
	Kind    EffectKind
	TimerID int
}

// Banner is the frozen result shown once the game is won.
type Banner struct {
	Moves    int
	Seconds  int
	Score    int
	Accuracy int // percent of pair attempts that matched
}

type State struct {
	Board *board.Board
	Score *scoring.Scoring
	FSM   *fsm.FSM

	Started      bool
	FlippedCount int // flipped-but-unmatched cards in the current attempt; may exceed 2
	TotalFlips   int // every counted card click
	TotalTime    int // seconds since start
	TimerRunning bool
	TimerID      int

	MovesReadout string
	TimerReadout string

	WinPending bool
	Won        bool
	Banner     Banner

	CurrentCard int // card being processed by the FSM
	Effects     []Effect
}

func NewState(b *board.Board, sc *scoring.Scoring) *State {
	s := &State{
		Board:       b,
		Score:       sc,
		CurrentCard: -1,
	}
	s.refreshReadouts()

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "idle"},

		// Card click
		{Name: "flip", Src: []string{"idle"}, Dst: "countingFlip"},
		{Name: "reveal", Src: []string{"countingFlip"}, Dst: "revealCard"},
		{Name: "overflow", Src: []string{"countingFlip"}, Dst: "evaluating"},

		// Pair check
		{Name: "single", Src: []string{"revealCard"}, Dst: "evaluating"},
		{Name: "compare", Src: []string{"revealCard"}, Dst: "comparing"},
		{Name: "match", Src: []string{"comparing"}, Dst: "gotMatch"},
		{Name: "mismatch", Src: []string{"comparing"}, Dst: "noMatch"},
		{Name: "matched", Src: []string{"gotMatch"}, Dst: "scheduleFlipBack"},
		{Name: "notMatched", Src: []string{"noMatch"}, Dst: "scheduleFlipBack"},
		{Name: "scheduled", Src: []string{"scheduleFlipBack"}, Dst: "evaluating"},

		// Win check
		{Name: "allFlipped", Src: []string{"evaluating"}, Dst: "winPending"},
		{Name: "wait", Src: []string{"evaluating", "winPending"}, Dst: "idle"},

		// Delayed callbacks
		{Name: "flipBack", Src: []string{"idle"}, Dst: "flippingBack"},
		{Name: "flippedBack", Src: []string{"flippingBack"}, Dst: "idle"},
		{Name: "declareWin", Src: []string{"idle"}, Dst: "endState"},

		// Timer
		{Name: "tick", Src: []string{"idle"}, Dst: "timeCheck"},
		{Name: "timePassed", Src: []string{"timeCheck"}, Dst: "idle"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_countingFlip": func(ctx context.Context, e *fsm.Event) {
			if len(e.Args) > 0 {
				s.CurrentCard = e.Args[0].(int)
			}

			s.FlippedCount++
			s.TotalFlips++

			if !s.Started {
				s.Start()
			}

			// A click beyond the second still counts as a move but reveals nothing.
			if s.FlippedCount > 2 {
				log.Debug().Int("card", s.CurrentCard).Int("flipped", s.FlippedCount).Msg("flip ignored, pair already showing")
				e.FSM.Event(ctx, "overflow")
				return
			}
			e.FSM.Event(ctx, "reveal")
		},
		"enter_revealCard": func(ctx context.Context, e *fsm.Event) {
			s.Board.Cards[s.CurrentCard].Flip()
			log.Debug().Int("card", s.CurrentCard).Str("symbol", s.Board.Cards[s.CurrentCard].Symbol).Msg("card flipped")

			if s.FlippedCount == 2 {
				e.FSM.Event(ctx, "compare")
				return
			}
			e.FSM.Event(ctx, "single")
		},
		"enter_comparing": func(ctx context.Context, e *fsm.Event) {
			if s.FlippedPairMatches() {
				e.FSM.Event(ctx, "match")
				return
			}
			e.FSM.Event(ctx, "mismatch")
		},
		"enter_gotMatch": func(ctx context.Context, e *fsm.Event) {
			pair := s.Board.FlippedUnmatched()
			for _, idx := range pair[:2] {
				s.Board.Cards[idx].Match()
			}
			s.Score.ScoreEvent("pairMatched")
			log.Debug().Ints("cards", pair[:2]).Msg("pair matched")
			e.FSM.Event(ctx, "matched")
		},
		"enter_noMatch": func(ctx context.Context, e *fsm.Event) {
			s.Score.ScoreEvent("mismatch")
			e.FSM.Event(ctx, "notMatched")
		},
		"enter_scheduleFlipBack": func(ctx context.Context, e *fsm.Event) {
			s.schedule(Effect{Kind: FlipBack})
			e.FSM.Event(ctx, "scheduled")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			if s.Board.FaceDownCount() == 0 && !s.WinPending {
				e.FSM.Event(ctx, "allFlipped")
				return
			}
			e.FSM.Event(ctx, "wait")
		},
		"enter_winPending": func(ctx context.Context, e *fsm.Event) {
			s.WinPending = true
			s.schedule(Effect{Kind: RevealWin})
			log.Debug().Int("moves", s.TotalFlips).Msg("all cards flipped")
			e.FSM.Event(ctx, "wait")
		},
		"enter_flippingBack": func(ctx context.Context, e *fsm.Event) {
			s.Board.HideUnmatched()
			s.FlippedCount = 0
			e.FSM.Event(ctx, "flippedBack")
		},
		"enter_timeCheck": func(ctx context.Context, e *fsm.Event) {
			s.TotalTime++
			s.refreshReadouts()
			e.FSM.Event(ctx, "timePassed")
		},
		"enter_endState": func(ctx context.Context, e *fsm.Event) {
			s.StopTimer()
			s.Won = true
			s.Banner = Banner{
				Moves:    s.TotalFlips,
				Seconds:  s.TotalTime,
				Score:    s.Score.DisplayScore(),
				Accuracy: s.Score.Accuracy(),
			}
			log.Info().
				Int("moves", s.Banner.Moves).
				Int("seconds", s.Banner.Seconds).
				Int("score", s.Banner.Score).
				Bool("allMatched", s.Board.AllMatched()).
				Msg("game won")
		},
	}
}

func (s *State) refreshReadouts() {
	s.MovesReadout = fmt.Sprintf("%d moves", s.TotalFlips)
	s.TimerReadout = fmt.Sprintf("time: %d", s.TotalTime)
}

func (s *State) schedule(e Effect) {
	s.Effects = append(s.Effects, e)
}

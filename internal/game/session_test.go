package game

import (
	"errors"
	"math/rand"
	"testing"

	"go-match/internal/board"
	"go-match/internal/state"
)

// clickCard clicks the middle of the card at idx.
func clickCard(s *Session, idx int) []state.Effect {
	row, col := idx/s.Board.Dimension, idx%s.Board.Dimension
	x := col*(CardWidth+CardGap) + CardWidth/2
	y := GridTop + row*CardHeight + CardHeight/2
	return s.Click(x, y)
}

// pairsOf groups card indices by symbol.
func pairsOf(b *board.Board) map[string][]int {
	pairs := map[string][]int{}
	for i, c := range b.Cards {
		pairs[c.Symbol] = append(pairs[c.Symbol], i)
	}
	return pairs
}

func kinds(effects []state.Effect) []state.EffectKind {
	var out []state.EffectKind
	for _, e := range effects {
		out = append(out, e.Kind)
	}
	return out
}

func TestSession_Init(t *testing.T) {
	sess, err := NewSession(Config{Dimension: 4, Pool: board.DefaultPool()}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if len(sess.Board.Cards) != 16 {
		t.Errorf("Expected 16 cards, got %d", len(sess.Board.Cards))
	}
	if sess.CurrentGame == nil {
		t.Fatal("CurrentGame should be initialized")
	}
	if len(sess.cells) != 16 {
		t.Errorf("Expected 16 registered cells, got %d", len(sess.cells))
	}
	if sess.IsFinished() {
		t.Error("new session should not be finished")
	}
}

func TestSession_OddDimension(t *testing.T) {
	sess, err := NewSession(Config{Dimension: 3, Pool: board.DefaultPool()}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, board.ErrOddDimension) {
		t.Errorf("Expected ErrOddDimension, got %v", err)
	}
	if sess != nil {
		t.Error("no session should be built for an odd dimension")
	}
}

func TestSession_PoolTooSmall(t *testing.T) {
	_, err := NewSession(Config{Dimension: 4, Pool: []string{"a", "b"}}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, board.ErrPoolTooSmall) {
		t.Errorf("Expected ErrPoolTooSmall, got %v", err)
	}
}

func TestSession_ClickRouting(t *testing.T) {
	sess, _ := NewSession(Config{Dimension: 2, Pool: board.DefaultPool()}, rand.New(rand.NewSource(2)))

	// Gap between cards: nothing happens.
	if effects := sess.Click(CardWidth, GridTop+1); len(effects) != 0 {
		t.Errorf("click on a gap should be a no-op, got %v", kinds(effects))
	}
	if sess.CurrentGame.State.TotalFlips != 0 {
		t.Error("gap click must not count as a move")
	}

	// Start control.
	effects := sess.Click(0, StartRow)
	if len(effects) != 1 || effects[0].Kind != state.StartTimer {
		t.Fatalf("start click should arm the timer, got %v", kinds(effects))
	}
	// Disabled start control.
	if effects := sess.Click(0, StartRow); len(effects) != 0 {
		t.Errorf("disabled start should be a no-op, got %v", kinds(effects))
	}

	// Card click, then the same card again.
	clickCard(sess, 0)
	clickCard(sess, 0)
	if sess.CurrentGame.State.TotalFlips != 1 {
		t.Errorf("Expected 1 move, got %d", sess.CurrentGame.State.TotalFlips)
	}
}

// Dimension 2: two symbols, each twice; matching both pairs wins with 4 moves.
func TestSession_EndToEnd(t *testing.T) {
	sess, err := NewSession(Config{Dimension: 2, Pool: board.DefaultPool()}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	pairs := pairsOf(sess.Board)
	if len(pairs) != 2 {
		t.Fatalf("Expected 2 symbols, got %d", len(pairs))
	}

	var timerID int
	var sawWin bool
	first := true
	for _, idxs := range pairs {
		if len(idxs) != 2 {
			t.Fatalf("symbol should appear twice, got %v", idxs)
		}
		effects := clickCard(sess, idxs[0])
		if first {
			if len(effects) != 1 || effects[0].Kind != state.StartTimer {
				t.Fatalf("first card click should start the timer, got %v", kinds(effects))
			}
			timerID = effects[0].TimerID
			first = false
		}
		if sess.CurrentGame.State.TotalFlips == 1 && sess.CurrentGame.State.Board.FaceDownCount() != 3 {
			t.Error("first click should flip exactly one card")
		}

		effects = clickCard(sess, idxs[1])
		for _, e := range effects {
			if e.Kind == state.RevealWin {
				sawWin = true
			}
		}
		for _, idx := range idxs {
			if sess.Board.Cards[idx].State() != board.Matched {
				t.Errorf("card %d should be matched", idx)
			}
		}

		sess.Tick(timerID)
		sess.FlipBack()
	}

	if !sawWin {
		t.Fatal("win should be scheduled after the last pair")
	}
	sess.RevealWin()

	if !sess.IsFinished() {
		t.Fatal("session should be finished")
	}
	banner := sess.CurrentGame.State.Banner
	if banner.Moves != 4 {
		t.Errorf("Expected 4 moves, got %d", banner.Moves)
	}
	if banner.Seconds != 2 {
		t.Errorf("Expected 2 seconds, got %d", banner.Seconds)
	}
	if sess.Tick(timerID) {
		t.Error("timer should not tick after the win")
	}
}

package board

import (
	"errors"
	"fmt"
	"math/rand"

	"go-match/internal/deck"
)

var (
	ErrOddDimension      = errors.New("the dimension of the board must be an even number")
	ErrDimensionTooSmall = errors.New("the dimension of the board must be at least 2")
	ErrPoolTooSmall      = errors.New("not enough symbols for the board")
	ErrDuplicateSymbol   = errors.New("duplicate symbol in pool")
)

// CardState is the visual state of a card.
type CardState int

const (
	FaceDown CardState = iota
	Flipped
	Matched
)

func (cs CardState) String() string {
	switch cs {
	case FaceDown:
		return "face-down"
	case Flipped:
		return "flipped"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is one cell of the grid. Matched implies Flipped.
type Card struct {
	Symbol  string
	Flipped bool
	Matched bool
}

func (c Card) State() CardState {
	switch {
	case c.Matched:
		return Matched
	case c.Flipped:
		return Flipped
	default:
		return FaceDown
	}
}

// Flip reveals the card.
func (c *Card) Flip() {
	c.Flipped = true
}

// Match marks the card as permanently revealed.
func (c *Card) Match() {
	c.Flipped = true
	c.Matched = true
}

// Hide turns the card face-down again unless it is matched.
func (c *Card) Hide() {
	if c.Matched {
		return
	}
	c.Flipped = false
}

// Board holds Dimension*Dimension cards in row-major order.
type Board struct {
	Dimension int
	Cards     []Card
}

// Validate checks that a board of the given dimension can be built from pool.
func Validate(dimension int, pool []string) error {
	if dimension < 2 {
		return fmt.Errorf("%w: got %d", ErrDimensionTooSmall, dimension)
	}
	if dimension%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddDimension, dimension)
	}
	if need := dimension * dimension / 2; need > len(pool) {
		return fmt.Errorf("%w: dimension %d needs %d, pool has %d", ErrPoolTooSmall, dimension, need, len(pool))
	}
	seen := make(map[string]bool, len(pool))
	for _, s := range pool {
		if seen[s] {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		seen[s] = true
	}
	return nil
}

// Generate builds a new shuffled board. Each of the dimension²/2 symbols
// picked from pool appears exactly twice. No board is returned on error.
func Generate(dimension int, pool []string, rng *rand.Rand) (*Board, error) {
	if err := Validate(dimension, pool); err != nil {
		return nil, err
	}

	picks, err := deck.PickRandom(pool, dimension*dimension/2, rng)
	if err != nil {
		return nil, err
	}
	items := deck.Shuffle(append(picks, picks...), rng)

	cards := make([]Card, len(items))
	for i, sym := range items {
		cards[i] = Card{Symbol: sym}
	}

	return &Board{
		Dimension: dimension,
		Cards:     cards,
	}, nil
}

// Index converts a grid coordinate into a card index.
func (b *Board) Index(row, col int) (int, bool) {
	if row < 0 || col < 0 || row >= b.Dimension || col >= b.Dimension {
		return 0, false
	}
	return row*b.Dimension + col, true
}

// Rows splits the cards into Dimension rows.
func (b *Board) Rows() [][]Card {
	rows := make([][]Card, 0, b.Dimension)
	for r := 0; r < b.Dimension; r++ {
		rows = append(rows, b.Cards[r*b.Dimension:(r+1)*b.Dimension])
	}
	return rows
}

// FaceDownCount returns the number of cards not yet flipped.
func (b *Board) FaceDownCount() int {
	n := 0
	for _, c := range b.Cards {
		if !c.Flipped {
			n++
		}
	}
	return n
}

// FlippedUnmatched returns the indices of flipped cards that are not matched,
// in board order.
func (b *Board) FlippedUnmatched() []int {
	var out []int
	for i, c := range b.Cards {
		if c.Flipped && !c.Matched {
			out = append(out, i)
		}
	}
	return out
}

// HideUnmatched turns every flipped but unmatched card face-down.
func (b *Board) HideUnmatched() {
	for i := range b.Cards {
		b.Cards[i].Hide()
	}
}

// AllMatched reports whether every card is matched.
func (b *Board) AllMatched() bool {
	for _, c := range b.Cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

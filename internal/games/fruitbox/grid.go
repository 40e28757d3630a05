package fruitbox

import (
	"math/rand"
)

// TargetSum is the exact total a selection must reach to clear its tokens.
const TargetSum = 10

// TokenID identifies a token for its whole lifetime. IDs are never reused
// within a session.
type TokenID int

// Token is one numbered occupant of a grid cell.
type Token struct {
	ID    TokenID
	X, Y  float64 // Center, in board-local units
	R     float64
	Value int // 1..9
}

// IDSet is a set of token IDs.
type IDSet map[TokenID]struct{}

// IDsOf collects the IDs of the given tokens.
func IDsOf(tokens []Token) IDSet {
	ids := make(IDSet, len(tokens))
	for _, t := range tokens {
		ids[t.ID] = struct{}{}
	}
	return ids
}

// Sum adds up the values of the given tokens.
func Sum(tokens []Token) int {
	total := 0
	for _, t := range tokens {
		total += t.Value
	}
	return total
}

// Board is the live token set. Boards are values: Remove returns a new
// board and never touches the receiver's tokens.
type Board struct {
	tokens []Token
}

// Tokens returns the live tokens in generation order. Callers must not modify the slice.
func (b Board) Tokens() []Token {
	return b.tokens
}

// Len returns the number of live tokens.
func (b Board) Len() int {
	return len(b.tokens)
}

// Remove returns the board without the given tokens. This is the only way
// tokens leave a board; an empty set returns the board unchanged.
func (b Board) Remove(ids IDSet) Board {
	if len(ids) == 0 {
		return b
	}
	kept := make([]Token, 0, len(b.tokens))
	for _, t := range b.tokens {
		if _, gone := ids[t.ID]; !gone {
			kept = append(kept, t)
		}
	}
	return Board{tokens: kept}
}

// Grid generates boards for a fixed layout.
type Grid struct {
	params GridParams
	radius float64
	rng    *rand.Rand
	nextID TokenID
}

// NewGrid creates a generator. IDs start at 1 and keep counting across boards.
func NewGrid(params GridParams, radius float64, rng *rand.Rand) *Grid {
	return &Grid{
		params: params,
		radius: radius,
		rng:    rng,
		nextID: 1,
	}
}

// Generate fills every cell with a fresh token valued uniformly in 1..9,
// row by row, centered in its cell.
func (g *Grid) Generate() Board {
	p := g.params
	tokens := make([]Token, 0, p.Cols*p.Rows)
	for row := range p.Rows {
		for col := range p.Cols {
			x, y := p.CellCenter(col, row)
			tokens = append(tokens, Token{
				ID:    g.nextID,
				X:     x,
				Y:     y,
				R:     g.radius,
				Value: 1 + g.rng.Intn(9),
			})
			g.nextID++
		}
	}
	return Board{tokens: tokens}
}

package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	// ErrInvalidDimension is returned when a grid dimension is not positive.
	ErrInvalidDimension = errors.New("grid dimensions must be greater than zero")

	// ErrExhaustedGrid is returned when every cell of the grid is excluded.
	ErrExhaustedGrid = errors.New("no free cell left on the grid")
)

// Position is a cell on the grid. X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// NoPosition marks the absence of a cell (e.g. no apple on a full board).
var NoPosition = Position{X: -1, Y: -1}

// Add returns the neighbouring position one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four grid headings.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit displacement for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("core: unknown direction %q", s)
}

// Rand is the randomness needed for cell selection.
// *rand.Rand from math/rand/v2 satisfies it; tests supply fixed sequences.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// PositionSet is a set of grid cells.
type PositionSet map[Position]struct{}

// NewPositionSet builds a set from the given positions.
func NewPositionSet(ps ...Position) PositionSet {
	set := make(PositionSet, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether p is in the set.
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// IsWithinBounds reports whether pos lies in [0, xMax] x [0, yMax].
func IsWithinBounds(pos Position, xMax, yMax int) bool {
	return pos.X >= 0 && pos.X <= xMax && pos.Y >= 0 && pos.Y <= yMax
}

// PickFreePositionExcluding returns a cell chosen uniformly at random among the
// cells of the (xMax+1) x (yMax+1) grid that are not in excluded.
//
// The free cells are enumerated explicitly, so the call finishes in a single
// scan however crowded the grid is. When exactly one cell is free it is
// returned without consulting rng.
func PickFreePositionExcluding(excluded PositionSet, xMax, yMax int, rng Rand) (Position, error) {
	if xMax < 1 || yMax < 1 {
		return NoPosition, fmt.Errorf("core: xMax=%d yMax=%d: %w", xMax, yMax, ErrInvalidDimension)
	}

	// excluded may hold out-of-grid cells, so the capacity is only a hint
	free := make([]Position, 0, max(0, (xMax+1)*(yMax+1)-len(excluded)))
	for y := 0; y <= yMax; y++ {
		for x := 0; x <= xMax; x++ {
			p := Position{X: x, Y: y}
			if !excluded.Has(p) {
				free = append(free, p)
			}
		}
	}

	switch len(free) {
	case 0:
		return NoPosition, fmt.Errorf("core: %dx%d grid: %w", xMax+1, yMax+1, ErrExhaustedGrid)
	case 1:
		return free[0], nil
	}
	return free[rng.IntN(len(free))], nil
}

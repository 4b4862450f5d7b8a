package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Autopilot chooses a heading for the next tick: the safe move that gets
// closest to the apple, breaking ties by the room left around the new head.
// When every move is fatal it keeps the current heading.
func Autopilot(e *Engine) core.Direction {
	current := e.Direction()
	if len(e.body) == 0 || e.gameOver {
		return current
	}
	best := current
	bestDist, bestRoom := -1, -1

	candidates := []core.Direction{current, core.DirUp, core.DirRight, core.DirDown, core.DirLeft}
	for _, d := range candidates {
		if d == current.Opposite() {
			continue
		}
		next := e.Head().Add(d)
		if !e.isSafe(next) {
			continue
		}

		dist := core.Manhattan(next, e.apple)
		if e.apple == core.NoPosition {
			dist = 0
		}
		room := e.freeNeighbours(next)
		if bestDist == -1 || dist < bestDist || (dist == bestDist && room > bestRoom) {
			best, bestDist, bestRoom = d, dist, room
		}
	}
	return best
}

// isSafe reports whether moving the head to p survives the next tick.
func (e *Engine) isSafe(p core.Position) bool {
	if !core.IsWithinBounds(p, e.xMax, e.yMax) {
		return false
	}
	checkLen := len(e.body)
	if p != e.apple {
		checkLen--
	}
	return !slices.Contains(e.body[:checkLen], p)
}

func (e *Engine) freeNeighbours(p core.Position) int {
	n := 0
	for _, d := range []core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft} {
		q := p.Add(d)
		if core.IsWithinBounds(q, e.xMax, e.yMax) && !e.Occupies(q) {
			n++
		}
	}
	return n
}

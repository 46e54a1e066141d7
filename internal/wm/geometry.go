package wm

import "math"

// Rect is a plain axis-aligned rectangle in root-window pixel
// coordinates. It carries no border information; border width is a
// separate attribute the focus manager paints (see focus.go).
type Rect struct {
	X, Y, W, H int
}

// Geometry pairs a client's position in a tiling pass's input order
// with its computed rectangle, so callers can zip it back onto the
// client list that produced it.
type Geometry struct {
	Index int
	Rect  Rect
}

// Arrange computes geometries for n tileable clients in mon according
// to mode. It never touches floating, transient or fullscreen clients
// — callers filter those out before calling (see WM.Tileable in
// graph.go). masterSize and growth are desktop-local state; border is
// BORDER_WIDTH from config.
//
// Arrange is a pure function: same inputs, same output, no access to
// any Client/Desktop/Monitor state. That is what makes it unit
// testable without a live X server.
func Arrange(mode Mode, mon Rect, n, masterSize, growth, border int) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{mon}
	}

	switch mode {
	case MONOCLE:
		return arrangeMonocle(mon, n)
	case TILE:
		return arrangeMasterStack(mon, n, masterSize, growth, border, false)
	case BSTACK:
		return arrangeMasterStack(mon, n, masterSize, growth, border, true)
	case GRID:
		return arrangeGrid(mon, n, border)
	default:
		return arrangeMasterStack(mon, n, masterSize, growth, border, false)
	}
}

// arrangeMonocle places every client at the full monitor rect with no
// border; only the top of the stacking order is actually visible.
func arrangeMonocle(mon Rect, n int) []Rect {
	out := make([]Rect, n)
	for i := range out {
		out[i] = mon
	}
	return out
}

// arrangeMasterStack implements both TILE (vertical split) and BSTACK
// (horizontal split, master on top) by transposing axes: primary is
// the split axis (width for TILE, height for BSTACK), secondary is the
// stacking axis.
//
// master_size is the master client's allotted primary-axis span
// measured from mon's edge to the master/stack seam; the master's
// drawn extent is master_size minus one border (the window's own
// border eats into that span, see scenario 1: master_size 666, border
// 2 draws a 664-wide master). The stack column begins exactly at
// master_size and spans what remains of the monitor reduced by 2*border
// (one border seam against the master, one against the monitor's far
// edge) — see scenario 1's stack rects starting at X=666 with width
// 610 (1280-666-2*2), and scenario 2's resize_master(+20) producing
// master_size 686, master width 684, stack width 590. Along the
// secondary axis, the full monitor extent is reduced by 2*border once
// (top and bottom, or left and right) before being divided evenly
// among the n-1 stack clients; each individual stack client then loses
// one more border width to the seam it shares with its neighbor.
func arrangeMasterStack(mon Rect, n, masterSize, growth, border int, horizontal bool) []Rect {
	primary, secondary := mon.W, mon.H
	if horizontal {
		primary, secondary = mon.H, mon.W
	}

	nstack := n - 1
	stackPrimary := primary - masterSize - 2*border
	if stackPrimary < 1 {
		stackPrimary = 1
	}

	usableSecondary := secondary - 2*border
	if usableSecondary < nstack {
		usableSecondary = nstack
	}
	slot := usableSecondary / nstack
	rem := usableSecondary - slot*nstack

	// Each stack client's undrawn secondary-axis slot, summing exactly
	// to usableSecondary. The first gets growth plus the division
	// remainder; growth is clawed back evenly from the rest.
	slots := make([]int, nstack)
	slots[0] = slot + growth + rem
	if nstack > 1 {
		take := growth / (nstack - 1)
		leftover := growth - take*(nstack-1)
		for i := 1; i < nstack; i++ {
			slots[i] = slot - take
			if i == nstack-1 {
				slots[i] -= leftover
			}
		}
	}

	out := make([]Rect, n)

	masterPrimary, masterSecondary := masterSize-border, secondary-2*border
	if masterPrimary < 1 {
		masterPrimary = 1
	}
	if horizontal {
		out[0] = Rect{X: mon.X, Y: mon.Y, W: masterSecondary, H: masterPrimary}
	} else {
		out[0] = Rect{X: mon.X, Y: mon.Y, W: masterPrimary, H: masterSecondary}
	}

	stackStart := masterSize
	cursor := 0
	for i := 0; i < nstack; i++ {
		drawnSecondary := slots[i] - border
		if drawnSecondary < 1 {
			drawnSecondary = 1
		}
		if horizontal {
			out[i+1] = Rect{
				X: mon.X + cursor,
				Y: mon.Y + stackStart,
				W: drawnSecondary,
				H: stackPrimary,
			}
		} else {
			out[i+1] = Rect{
				X: mon.X + stackStart,
				Y: mon.Y + cursor,
				W: stackPrimary,
				H: drawnSecondary,
			}
		}
		cursor += slots[i]
	}
	return out
}

// gridCols returns the smallest integer whose square is >= n, with the
// n=5 special case the reference grid layout special-cases to 2
// columns (3-row/2-row split) rather than the generic 3.
func gridCols(n int) int {
	if n == 5 {
		return 2
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// arrangeGrid lays n clients column-major into gridCols(n) columns.
// rows = n/cols as a base; the first (n%cols) columns absorb one extra
// row each so the whole grid holds exactly n clients (scenario 3: n=5
// gives a 3-row first column and a 2-row second column).
func arrangeGrid(mon Rect, n, border int) []Rect {
	cols := gridCols(n)
	rows := n / cols
	extra := n % cols

	colWidths := distributeEven(mon.W-2*border, cols)

	out := make([]Rect, n)
	idx := 0
	x := mon.X
	for c := 0; c < cols; c++ {
		rowsInCol := rows
		if c < extra {
			rowsInCol++
		}
		if rowsInCol == 0 {
			continue
		}
		rowHeights := distributeEven(mon.H-2*border, rowsInCol)
		y := mon.Y
		for r := 0; r < rowsInCol; r++ {
			out[idx] = Rect{X: x, Y: y, W: colWidths[c], H: rowHeights[r]}
			y += rowHeights[r]
			idx++
		}
		x += colWidths[c]
	}
	return out
}

// distributeEven splits total into n non-negative parts that sum to
// exactly total, as equal as integer division allows, with any
// leftover folded into the last part.
func distributeEven(total, n int) []int {
	if n <= 0 {
		return nil
	}
	base := total / n
	rem := total - base*n
	out := make([]int, n)
	for i := range out {
		out[i] = base
	}
	out[n-1] += rem
	return out
}

// FullscreenRect returns the geometry a fullscreen client is forced
// into: the full monitor rectangle including whatever panel area was
// reserved out of mon, since a fullscreen window legitimately covers
// the panel too.
func FullscreenRect(mon Rect, panelReserve int, topPanel bool) Rect {
	if panelReserve <= 0 {
		return mon
	}
	if topPanel {
		return Rect{X: mon.X, Y: mon.Y - panelReserve, W: mon.W, H: mon.H + panelReserve}
	}
	return Rect{X: mon.X, Y: mon.Y, W: mon.W, H: mon.H + panelReserve}
}

package wm

import "testing"

func sumRects(rs []Rect) int {
	total := 0
	for _, r := range rs {
		total += r.W * r.H
	}
	return total
}

func TestArrangeTileScenario1(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1280, H: 800}
	got := Arrange(TILE, mon, 3, 666, 0, 2)
	want := []Rect{
		{X: 0, Y: 0, W: 664, H: 796},
		{X: 666, Y: 0, W: 610, H: 396},
		{X: 666, Y: 398, W: 610, H: 396},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestArrangeTileResizeMaster(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1280, H: 800}
	got := Arrange(TILE, mon, 3, 686, 0, 2)
	if got[0].W != 684 {
		t.Errorf("master width = %d, want 684", got[0].W)
	}
	if got[1].W != 590 || got[2].W != 590 {
		t.Errorf("stack widths = %d,%d, want 590,590", got[1].W, got[2].W)
	}
}

func TestArrangeGridFour(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1280, H: 800}
	got := Arrange(GRID, mon, 4, 0, 0, 2)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i, r := range got {
		if r.W != 638 || r.H != 398 {
			t.Errorf("cell %d = %+v, want 638x398", i, r)
		}
	}
}

func TestArrangeGridFiveColumnSplit(t *testing.T) {
	if gridCols(5) != 2 {
		t.Fatalf("gridCols(5) = %d, want 2", gridCols(5))
	}
	mon := Rect{X: 0, Y: 0, W: 1280, H: 800}
	got := Arrange(GRID, mon, 5, 0, 0, 2)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	// Column-major: indices 0,1,2 share an x (first column, 3 rows),
	// indices 3,4 share a different x (second column, 2 rows).
	if got[0].X != got[1].X || got[1].X != got[2].X {
		t.Errorf("first column indices should share X: %+v", got[:3])
	}
	if got[3].X != got[4].X {
		t.Errorf("second column indices should share X: %+v", got[3:])
	}
	if got[0].X == got[3].X {
		t.Errorf("columns should have distinct X: %+v", got)
	}
}

func TestArrangeSingleTileableFillsMonitor(t *testing.T) {
	mon := Rect{X: 10, Y: 20, W: 1000, H: 700}
	for _, mode := range []Mode{TILE, MONOCLE, BSTACK, GRID} {
		got := Arrange(mode, mon, 1, 500, 0, 2)
		if len(got) != 1 || got[0] != mon {
			t.Errorf("mode %v single client = %+v, want %+v", mode, got, mon)
		}
	}
}

func TestArrangeMonocleEveryClientFullMonitor(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1280, H: 800}
	got := Arrange(MONOCLE, mon, 3, 0, 0, 2)
	for i, r := range got {
		if r != mon {
			t.Errorf("monocle rect %d = %+v, want %+v", i, r, mon)
		}
	}
}

func TestArrangeCoversWorkAreaNoOverlap(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1280, H: 800}
	for _, mode := range []Mode{TILE, BSTACK, GRID} {
		for n := 2; n <= 6; n++ {
			got := Arrange(mode, mon, n, 666, 0, 2)
			area := sumRects(got)
			monArea := mon.W * mon.H
			// Coverage is exact modulo border-width slack, never more
			// than the monitor area and never far under it.
			if area > monArea {
				t.Errorf("mode %v n=%d: covered area %d exceeds monitor area %d", mode, n, area, monArea)
			}
			if monArea-area > monArea/4 {
				t.Errorf("mode %v n=%d: covered area %d far under monitor area %d", mode, n, area, monArea)
			}
			for i := range got {
				for j := i + 1; j < len(got); j++ {
					a, b := got[i], got[j]
					if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
						t.Errorf("mode %v n=%d: rects %d and %d overlap: %+v %+v", mode, n, i, j, a, b)
					}
				}
			}
		}
	}
}

func TestDistributeEvenSumsExactly(t *testing.T) {
	for _, tc := range []struct{ total, n int }{
		{796, 2}, {800, 3}, {1280, 2}, {101, 4},
	} {
		got := distributeEven(tc.total, tc.n)
		sum := 0
		for _, v := range got {
			sum += v
		}
		if sum != tc.total {
			t.Errorf("distributeEven(%d,%d) sums to %d, want %d", tc.total, tc.n, sum, tc.total)
		}
	}
}

func TestFullscreenRect(t *testing.T) {
	mon := Rect{X: 0, Y: 18, W: 1280, H: 782}
	got := FullscreenRect(mon, 18, true)
	want := Rect{X: 0, Y: 0, W: 1280, H: 800}
	if got != want {
		t.Errorf("FullscreenRect = %+v, want %+v", got, want)
	}
}

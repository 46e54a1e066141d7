package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/driftwm/driftwm/internal/config"
)

func newTestWM() *WM {
	cfg := config.Defaults()
	w := NewWM(cfg)
	w.Monitors = []Monitor{{
		Geom:     Rect{X: 0, Y: 0, W: 1280, H: 800},
		Desktops: make([]Desktop, cfg.Desktops),
	}}
	for i := range w.Monitors[0].Desktops {
		w.Monitors[0].Desktops[i] = newDesktop(cfg, 666)
	}
	return w
}

func TestAddInsertsAtHeadByDefault(t *testing.T) {
	w := newTestWM()
	w.Add(0, 0, xproto.Window(1))
	w.Add(0, 0, xproto.Window(2))
	d := w.Monitors[0].Desk()
	if d.Clients[0] != 2 || d.Clients[1] != 1 {
		t.Fatalf("Clients = %v, want [2 1]", d.Clients)
	}
	if d.Current != 2 {
		t.Fatalf("Current = %v, want 2", d.Current)
	}
}

func TestAddAttachAside(t *testing.T) {
	w := newTestWM()
	w.Config.AttachAside = true
	w.Add(0, 0, xproto.Window(1))
	w.Add(0, 0, xproto.Window(2))
	d := w.Monitors[0].Desk()
	if d.Clients[0] != 1 || d.Clients[1] != 2 {
		t.Fatalf("Clients = %v, want [1 2]", d.Clients)
	}
}

func TestRemoveSetsPreviousFocus(t *testing.T) {
	w := newTestWM()
	w.Add(0, 0, xproto.Window(1))
	w.Add(0, 0, xproto.Window(2))
	// Current is now 2, prevfocus is 1.
	w.Remove(xproto.Window(2))
	d := w.Monitors[0].Desk()
	if d.Current != 1 {
		t.Fatalf("Current after remove = %v, want 1", d.Current)
	}
	if _, ok := w.Client(xproto.Window(2)); ok {
		t.Fatalf("removed client still present in arena")
	}
}

func TestMoveDownWrapsAtTail(t *testing.T) {
	w := newTestWM()
	d := w.Monitors[0].Desk()
	d.Clients = []xproto.Window{1, 2, 3}
	d.Current = 3
	MoveDown(d)
	if got := d.Clients; got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("Clients after wrap move_down = %v, want [3 2 1]", got)
	}
}

func TestMoveDownThenMoveUpRestoresOrder(t *testing.T) {
	w := newTestWM()
	d := w.Monitors[0].Desk()
	d.Clients = []xproto.Window{1, 2, 3}
	d.Current = 2
	orig := append([]xproto.Window(nil), d.Clients...)
	MoveDown(d)
	MoveUp(d)
	for i := range orig {
		if d.Clients[i] != orig[i] {
			t.Fatalf("order not restored: got %v, want %v", d.Clients, orig)
		}
	}
}

func TestSwapMasterPromotesCurrent(t *testing.T) {
	w := newTestWM()
	d := w.Monitors[0].Desk()
	d.Clients = []xproto.Window{1, 2, 3}
	d.Current = 3
	SwapMaster(d)
	if d.Clients[0] != 3 {
		t.Fatalf("Clients[0] = %v, want 3", d.Clients[0])
	}
}

func TestSwapMasterWhenAlreadyHeadSwapsWithNext(t *testing.T) {
	w := newTestWM()
	d := w.Monitors[0].Desk()
	d.Clients = []xproto.Window{1, 2, 3}
	d.Current = 1
	SwapMaster(d)
	if d.Clients[0] != 2 || d.Clients[1] != 1 {
		t.Fatalf("Clients = %v, want [2 1 3]", d.Clients)
	}
}

func TestNextWinWrapsToHead(t *testing.T) {
	w := newTestWM()
	d := w.Monitors[0].Desk()
	d.Clients = []xproto.Window{1, 2, 3}
	d.Current = 3
	NextWin(d)
	if d.Current != 1 {
		t.Fatalf("Current = %v, want 1", d.Current)
	}
}

func TestFocusUrgentScansInOrder(t *testing.T) {
	w := newTestWM()
	w.Add(0, 0, xproto.Window(1))
	w.Add(0, 1, xproto.Window(2))
	c, _ := w.Client(xproto.Window(2))
	c.Urgent = true
	mon, desk, win, found := w.FocusUrgent()
	if !found || mon != 0 || desk != 1 || win != 2 {
		t.Fatalf("FocusUrgent = (%d,%d,%v,%v), want (0,1,2,true)", mon, desk, win, found)
	}
}

func TestTileableExcludesFloatingTransientFullscreen(t *testing.T) {
	w := newTestWM()
	w.Add(0, 0, xproto.Window(1))
	w.Add(0, 0, xproto.Window(2))
	w.Add(0, 0, xproto.Window(3))
	w.Add(0, 0, xproto.Window(4))
	c2, _ := w.Client(xproto.Window(2))
	c2.Floating = true
	c3, _ := w.Client(xproto.Window(3))
	c3.Fullscreen = true
	c4, _ := w.Client(xproto.Window(4))
	c4.Transient = true
	got := w.Tileable(w.Monitors[0].Desk())
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Tileable = %v, want [1]", got)
	}
}

func TestClientToDesktopSameDesktopIsNoop(t *testing.T) {
	w := newTestWM()
	w.Add(0, 0, xproto.Window(1))
	before := append([]xproto.Window(nil), w.Monitors[0].Desk().Clients...)
	if err := w.ClientToDesktop(xproto.Window(1), 0, false); err != nil {
		t.Fatalf("ClientToDesktop: %v", err)
	}
	after := w.Monitors[0].Desk().Clients
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("client_to_desktop(d) from d mutated list: %v -> %v", before, after)
	}
}

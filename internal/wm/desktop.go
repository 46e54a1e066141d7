package wm

import (
	"github.com/BurntSushi/xgb/xproto"
)

// ChangeDesktop switches mon's active desktop to desk. Under the
// single-source-of-truth redesign (see types.go / DESIGN.md) there is
// no working set to flush and reload: the Monitor's CurDesk index is
// the only thing that changes. Out-of-range desk is a silent no-op,
// per the "user input with no match" policy in spec §7; so is
// switching to the already-current desktop.
//
// Callers are responsible for the observable side effects a real
// desktop switch has (unmap outgoing clients, map incoming ones,
// re-tile, refocus) — see ChangeDesktopWithRemap below, which wraps
// this with exactly that procedure per the "desktop-switch client
// remap" supplemented feature.
func ChangeDesktop(m *Monitor, desk int) bool {
	if desk < 0 || desk >= len(m.Desktops) || desk == m.CurDesk {
		return false
	}
	m.PrevDesk = m.CurDesk
	m.CurDesk = desk
	return true
}

// ClientToDesktop moves win from its current desktop to desk on the
// same monitor, preserving its flags. A same-desktop move is a no-op
// (round-trip property in spec §8). follow additionally switches the
// monitor's active desktop to desk after the move.
func (w *WM) ClientToDesktop(win xproto.Window, desk int, follow bool) error {
	loc, ok := w.loc[win]
	if !ok {
		return nil
	}
	if loc.Desk == desk {
		return nil
	}
	mon := &w.Monitors[loc.Mon]
	if desk < 0 || desk >= len(mon.Desktops) {
		return nil
	}

	src := &mon.Desktops[loc.Desk]
	src.Clients = removeWindow(src.Clients, win)
	if src.Current == win {
		src.Current = src.PrevFocus
		src.PrevFocus = NoClient
	}

	dst := &mon.Desktops[desk]
	if w.Config.AttachAside {
		dst.Clients = append(dst.Clients, win)
	} else {
		dst.Clients = append([]xproto.Window{win}, dst.Clients...)
	}
	dst.PrevFocus = dst.Current
	dst.Current = win

	w.loc[win] = location{Mon: loc.Mon, Desk: desk}

	if follow {
		ChangeDesktop(mon, desk)
	}
	return nil
}

// ChangeDesktopWithRemap performs the full observable desktop switch
// the scenario in spec §8 names (scenario 5): unmap every client on
// the outgoing desktop, switch, map every client on the incoming
// desktop in list order, re-tile and refocus. This is the
// "desktop-switch client remap" supplemented feature — the generic
// procedure the scenario's two-desktop example is an instance of.
func (w *WM) ChangeDesktopWithRemap(mon, desk int) {
	m := &w.Monitors[mon]
	if desk < 0 || desk >= len(m.Desktops) || desk == m.CurDesk {
		return
	}
	outgoing := m.Desk()
	for _, win := range outgoing.Clients {
		xproto.UnmapWindow(w.Conn.XUtil.Conn(), win)
	}

	ChangeDesktop(m, desk)

	incoming := m.Desk()
	for _, win := range incoming.Clients {
		xproto.MapWindow(w.Conn.XUtil.Conn(), win)
	}

	if mon == w.CurMon {
		w.RetileDesktop(mon, desk)
		w.ApplyFocus()
	}
}

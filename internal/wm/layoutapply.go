package wm

import "github.com/BurntSushi/xgb/xproto"

// RetileDesktop recomputes and applies geometry for every client on
// Monitors[mon].Desktops[desk]: fullscreen clients get the full
// monitor rect (§4.1), tileable clients get Arrange's output, and
// floating/transient clients are left untouched. It is the bridge
// between the pure layout engine (geometry.go) and the X server.
func (w *WM) RetileDesktop(mon, desk int) {
	m := &w.Monitors[mon]
	d := &m.Desktops[desk]

	for _, win := range d.Clients {
		c, ok := w.clients[win]
		if !ok || !c.Fullscreen {
			continue
		}
		r := FullscreenRect(m.Geom, w.Config.PanelHeight, w.Config.TopPanel)
		w.configureWindow(win, r, 0)
	}

	tileable := w.Tileable(d)
	if len(tileable) == 0 {
		return
	}
	rects := Arrange(d.Mode, m.Geom, len(tileable), d.MasterSize, d.Growth, w.Config.BorderWidth)
	for i, win := range tileable {
		bw := w.BorderWidth(d, w.clients[win])
		w.configureWindow(win, rects[i], bw)
	}
}

func (w *WM) configureWindow(win xproto.Window, r Rect, borderWidth int) {
	conn := w.Conn.XUtil.Conn()
	xproto.ConfigureWindow(conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{
			uint32(r.X), uint32(r.Y), uint32(r.W), uint32(r.H), uint32(borderWidth),
		})
}

// Retile recomputes and applies the current monitor's current
// desktop, then re-applies focus/border state. It does not emit a
// status line; mutating handlers call emitStatus after it (spec §2's
// data-flow summary).
func (w *WM) Retile() {
	w.RetileDesktop(w.CurMon, w.CurMonitor().CurDesk)
	w.ApplyFocus()
}

package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/driftwm/driftwm/internal/config"
)

// handleMapRequest implements spec §4.5's MapRequest procedure: ignore
// override-redirect windows, match the first app-rule whose class or
// instance matches, attach the client to its target desktop, consult
// WM_TRANSIENT_FOR and NET_WM_STATE, install click-to-focus, and
// either map+focus immediately (target is current) or leave it parked
// on a background desktop.
func (w *WM) handleMapRequest(ev xevent.MapRequestEvent) {
	conn := w.Conn.XUtil.Conn()
	win := ev.Window

	attrs, err := xproto.GetWindowAttributes(conn, win).Reply()
	if err == nil && attrs.OverrideRedirect {
		return
	}

	mon := w.CurMon
	desk := w.Monitors[mon].CurDesk
	rule, ok := w.matchAppRule(win)
	follow := true
	floatingFromRule := false
	if ok {
		if rule.Desktop >= 0 {
			desk = rule.Desktop
		}
		follow = rule.Follow
		floatingFromRule = rule.Floating
	}

	originalMon, originalDesk := mon, w.Monitors[mon].CurDesk
	if desk != originalDesk {
		ChangeDesktop(&w.Monitors[mon], desk)
	}

	c := w.Add(mon, desk, win)
	c.Floating = floatingFromRule

	if transientFor, terr := icccm.WmTransientForGet(w.Conn.XUtil, win); terr == nil && transientFor != 0 {
		c.Transient = true
		c.Floating = true
	}

	if states, serr := ewmh.WmStateGet(w.Conn.XUtil, win); serr == nil {
		for _, s := range states {
			if s == "_NET_WM_STATE_FULLSCREEN" {
				w.setFullscreen(win, true)
			}
		}
	}

	xproto.ChangeWindowAttributes(conn, win, xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskEnterWindow | xproto.EventMaskPropertyChange)})

	if desk != originalDesk {
		ChangeDesktop(&w.Monitors[mon], originalDesk)
		if follow {
			w.ChangeDesktopWithRemap(mon, desk)
			return
		}
		return
	}

	xproto.MapWindow(conn, win)
	Refocus(w.Monitors[mon].Desk(), win)
	w.Retile()
	w.emitStatus()
}

func (w *WM) matchAppRule(win xproto.Window) (config.AppRule, bool) {
	class, instance, err := windowClassInstance(w.Conn.XUtil, win)
	if err != nil {
		return config.AppRule{}, false
	}
	for _, r := range w.Config.Rules {
		if (r.Class != "" && r.Class == class) || (r.Instance != "" && r.Instance == instance) {
			return r, true
		}
	}
	return config.AppRule{}, false
}

func windowClassInstance(xu *xgbutil.XUtil, win xproto.Window) (class, instance string, err error) {
	reply, err := icccm.WmClassGet(xu, win)
	if err != nil {
		return "", "", err
	}
	return reply.Class, reply.Instance, nil
}

// handleUnmapNotify removes the client if the unmap came from a
// managed window, ignoring synthetic unmaps the root window reflects
// back (§4.5).
func (w *WM) handleUnmapNotify(ev xevent.UnmapNotifyEvent) {
	if _, ok := w.clients[ev.Window]; !ok {
		return
	}
	w.Remove(ev.Window)
	w.Retile()
	w.emitStatus()
}

// handleDestroyNotify removes the client if it was managed (§4.5).
func (w *WM) handleDestroyNotify(ev xevent.DestroyNotifyEvent) {
	if _, ok := w.clients[ev.Window]; !ok {
		return
	}
	w.Remove(ev.Window)
	w.Retile()
	w.emitStatus()
}

// handleConfigureRequest re-enforces fullscreen geometry and discards
// the request for fullscreen clients; otherwise forwards the
// requested value_mask fields to the server, with a Y-offset applied
// for a top panel, then re-tiles (§4.5).
func (w *WM) handleConfigureRequest(ev xevent.ConfigureRequestEvent) {
	conn := w.Conn.XUtil.Conn()

	if c, ok := w.clients[ev.Window]; ok && c.Fullscreen {
		m := &w.Monitors[c.Monitor]
		r := FullscreenRect(m.Geom, w.Config.PanelHeight, w.Config.TopPanel)
		w.configureWindow(ev.Window, r, 0)
		return
	}

	var values []uint32
	mask := uint16(ev.ValueMask)
	y := ev.Y
	if mask&xproto.ConfigWindowY != 0 && w.Config.TopPanel && w.Config.ShowPanel {
		y += int16(w.Config.PanelHeight)
	}
	if mask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(ev.X))
	}
	if mask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(y))
	}
	if mask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(ev.Width))
	}
	if mask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(ev.Height))
	}
	if mask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(ev.BorderWidth))
	}
	if mask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(ev.Sibling))
	}
	if mask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(ev.StackMode))
	}
	xproto.ConfigureWindow(conn, ev.Window, mask, values)
	w.Retile()
}

// handleClientMessage implements the NET_WM_STATE fullscreen toggle
// named in spec §4.5: action 0 clears, 1 sets, 2 toggles, when either
// data slot names _NET_WM_STATE_FULLSCREEN.
func (w *WM) handleClientMessage(ev xevent.ClientMessageEvent) {
	if ev.Type != w.Conn.Atoms.NetWMState {
		return
	}
	data := ev.Data.Data32
	if len(data) < 3 {
		return
	}
	action, prop1, prop2 := data[0], xproto.Atom(data[1]), xproto.Atom(data[2])
	if prop1 != w.Conn.Atoms.NetWMStateFullscreen && prop2 != w.Conn.Atoms.NetWMStateFullscreen {
		return
	}

	c, ok := w.clients[ev.Window]
	if !ok {
		return
	}
	switch action {
	case 0:
		w.setFullscreen(ev.Window, false)
	case 1:
		w.setFullscreen(ev.Window, true)
	case 2:
		w.setFullscreen(ev.Window, !c.Fullscreen)
	}
	w.Retile()
	w.emitStatus()
}

// setFullscreen implements the round-trip property in spec §8:
// entering fullscreen saves the client's current rect and leaves
// Floating untouched; leaving it restores that rect for a floating
// client (a non-floating client is placed by the caller's next
// re-tile) and the floating flag is unchanged by either transition.
func (w *WM) setFullscreen(win xproto.Window, full bool) {
	c, ok := w.clients[win]
	if !ok || c.Fullscreen == full {
		return
	}
	if full {
		if geom, err := xproto.GetGeometry(w.Conn.XUtil.Conn(), xproto.Drawable(win)).Reply(); err == nil {
			c.PriorRect = Rect{X: int(geom.X), Y: int(geom.Y), W: int(geom.Width), H: int(geom.Height)}
		}
		c.Fullscreen = true
		return
	}
	c.Fullscreen = false
	if c.Floating && c.PriorRect != (Rect{}) {
		w.configureWindow(win, c.PriorRect, w.Config.BorderWidth)
	}
}

func (w *WM) toggleFullscreenAction(win xproto.Window) {
	if win == NoClient {
		return
	}
	c := w.clients[win]
	w.setFullscreen(win, !c.Fullscreen)
	w.Retile()
	w.emitStatus()
}

// handlePropertyNotify updates the urgent flag from WM_HINTS and
// emits status (§4.5); other properties are ignored.
func (w *WM) handlePropertyNotify(ev xevent.PropertyNotifyEvent) {
	if ev.Atom != xproto.AtomWmHints {
		return
	}
	c, ok := w.clients[ev.Window]
	if !ok {
		return
	}
	hints, err := icccm.WmHintsGet(w.Conn.XUtil, ev.Window)
	if err != nil {
		return
	}
	c.Urgent = hints.Flags&icccm.HintUrgency != 0
	w.emitStatus()
}

// handleEnterNotify focuses the entered window when FOLLOW_MOUSE is
// set and the event is a normal (non-inferior) pointer entry over a
// managed window (§4.5).
func (w *WM) handleEnterNotify(ev xevent.EnterNotifyEvent) {
	if !w.Config.FollowMouse {
		return
	}
	if ev.Mode != xproto.NotifyModeNormal || ev.Detail == xproto.NotifyDetailInferior {
		return
	}
	loc, ok := w.loc[ev.Event]
	if !ok {
		return
	}
	d := &w.Monitors[loc.Mon].Desktops[loc.Desk]
	Refocus(d, ev.Event)
	w.ApplyFocus()
}

// handleMotionNotify switches the current monitor when FOLLOW_MONITOR
// is set and the pointer crossed into another monitor's rectangle
// (§4.5, scenario 6).
func (w *WM) handleMotionNotify(ev xevent.MotionNotifyEvent) {
	if !w.Config.FollowMonitor {
		return
	}
	mon := w.PointToMonitor(int(ev.RootX), int(ev.RootY))
	if mon == w.CurMon {
		return
	}
	w.PrevMon = w.CurMon
	w.CurMon = mon
	w.ApplyFocus()
	w.emitStatus()
}

// handleButtonPress resolves a click against CLICK_TO_FOCUS: transfer
// focus to the clicked client. Bound move/resize buttons are wired
// directly to runAction by events.go and never reach this path.
func (w *WM) handleButtonPress(ev xevent.ButtonPressEvent) {
	loc, ok := w.loc[ev.Event]
	if !ok {
		return
	}
	d := &w.Monitors[loc.Mon].Desktops[loc.Desk]
	if loc.Mon != w.CurMon {
		w.PrevMon = w.CurMon
		w.CurMon = loc.Mon
	}
	Refocus(d, ev.Event)
	w.ApplyFocus()
	w.emitStatus()
}

// sendDeleteWindow asks a client to close itself via WM_DELETE_WINDOW
// when it advertises WM_PROTOCOLS support, per the shutdown/kill path
// named in spec §5.
func (w *WM) sendDeleteWindow(win xproto.Window) {
	protocols, err := icccm.WmProtocolsGet(w.Conn.XUtil, win)
	supportsDelete := false
	if err == nil {
		for _, p := range protocols {
			if p == "WM_DELETE_WINDOW" {
				supportsDelete = true
			}
		}
	}
	if !supportsDelete {
		xproto.KillClient(w.Conn.XUtil.Conn(), uint32(win))
		return
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   w.Conn.Atoms.WMProtocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(w.Conn.Atoms.WMDeleteWindow), uint32(xproto.TimeCurrentTime), 0, 0, 0}),
	}
	xproto.SendEvent(w.Conn.XUtil.Conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

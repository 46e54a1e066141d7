package wm

import (
	"fmt"
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/driftwm/driftwm/internal/config"
)

// Start builds a fully wired WM from cfg: connects to the display,
// probes for a competing window manager, discovers monitors, allocates
// border colors, scans any already-mapped windows, and installs the
// signal handlers — everything spec §6 describes as "otherwise no
// arguments; all configuration is compiled in" needs before Run can
// block on the event loop. The X event handlers and key/button
// bindings are registered by Run, not here. Every failure here is
// startup-fatal per spec §7.
func Start(cfg *config.Config) (*WM, error) {
	conn, err := Connect()
	if err != nil {
		return nil, err
	}

	w := NewWM(cfg)
	w.Conn = conn

	monitors, err := discoverMonitors(conn, cfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("discover monitors: %w", err)
	}
	w.Monitors = monitors
	w.CurMon = cfg.DefaultMonitor
	if w.CurMon >= len(w.Monitors) {
		w.CurMon = 0
	}

	focusPixel, err := allocColor(conn.XUtil, cfg.FocusColor)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("allocate focus color: %w", err)
	}
	unfocusPixel, err := allocColor(conn.XUtil, cfg.UnfocusColor)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("allocate unfocus color: %w", err)
	}
	w.FocusPixel = focusPixel
	w.UnfocusPixel = unfocusPixel

	conn.InstallIgnoreMods()

	xproto.ChangeWindowAttributes(conn.XUtil.Conn(), conn.Root, xproto.CwEventMask,
		[]uint32{uint32(
			xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskPropertyChange |
				xproto.EventMaskButtonPress |
				xproto.EventMaskPointerMotion |
				xproto.EventMaskEnterWindow,
		)})

	w.scanExistingWindows()
	w.installSignalHandlers()

	log.Printf("wm: started with %d monitor(s), %d desktop(s) each", len(w.Monitors), cfg.Desktops)
	return w, nil
}

// scanExistingWindows adopts any top-level windows already mapped when
// driftwm starts (e.g. a restart), so a running session isn't silently
// orphaned. Each is attached to the current monitor/desktop the same
// way a fresh MapRequest would be, but without re-issuing MapWindow
// (it is already mapped).
func (w *WM) scanExistingWindows() {
	conn := w.Conn.XUtil.Conn()
	tree, err := xproto.QueryTree(conn, w.Conn.Root).Reply()
	if err != nil {
		return
	}
	for _, win := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(conn, win).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		w.Add(w.CurMon, w.Monitors[w.CurMon].CurDesk, win)
	}
	if len(tree.Children) > 0 {
		w.Retile()
	}
}

// Shutdown ungrabs every key, asks every managed window to close via
// WM_DELETE_WINDOW, and disconnects — the shutdown procedure named in
// spec §5.
func (w *WM) Shutdown() {
	xproto.UngrabKey(w.Conn.XUtil.Conn(), xproto.GrabAny, w.Conn.Root, xproto.ModMaskAny)
	for win := range w.clients {
		w.sendDeleteWindow(win)
	}
	w.Conn.Close()
}

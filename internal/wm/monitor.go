package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/driftwm/driftwm/internal/config"
)

// discoverMonitors queries Xinerama for the set of physical screens
// and builds one Monitor per screen info record, each with its own
// full DESKTOPS array. If Xinerama is unavailable or reports no
// screens, a single synthetic Monitor is built from the root screen's
// pixel dimensions (spec §4.7).
func discoverMonitors(c *Connection, cfg *config.Config) ([]Monitor, error) {
	screens, err := queryXineramaScreens(c)
	if err != nil || len(screens) == 0 {
		root := c.XUtil.Screen()
		return []Monitor{buildMonitor(cfg, reservePanel(cfg, Rect{X: 0, Y: 0, W: int(root.WidthInPixels), H: int(root.HeightInPixels)}))}, nil
	}

	monitors := make([]Monitor, len(screens))
	for i, s := range screens {
		geom := Rect{X: int(s.XOrg), Y: int(s.YOrg), W: int(s.Width), H: int(s.Height)}
		monitors[i] = buildMonitor(cfg, reservePanel(cfg, geom))
	}
	return monitors, nil
}

// queryXineramaScreens wraps xinerama.QueryScreens, returning an empty
// slice (not an error) when the extension isn't active — Xinerama
// absence is a protocol-transient condition per spec §7, not
// startup-fatal, since the caller falls back to a single monitor.
func queryXineramaScreens(c *Connection) ([]xinerama.ScreenInfo, error) {
	if err := xinerama.Init(c.XUtil.Conn()); err != nil {
		return nil, nil
	}
	reply, err := xinerama.QueryScreens(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, fmt.Errorf("xinerama query screens: %w", err)
	}
	if reply == nil {
		return nil, nil
	}
	return reply.ScreenInfo, nil
}

// reservePanel shrinks geom's height by cfg.PanelHeight, sliding the
// remaining rectangle down when the panel docks at the top. SHOW_PANEL
// false leaves the rectangle untouched; the reservation is purely
// geometric so a panel can be toggled without re-discovering monitors.
func reservePanel(cfg *config.Config, geom Rect) Rect {
	if !cfg.ShowPanel || cfg.PanelHeight <= 0 {
		return geom
	}
	out := geom
	out.H -= cfg.PanelHeight
	if cfg.TopPanel {
		out.Y += cfg.PanelHeight
	}
	return out
}

func buildMonitor(cfg *config.Config, geom Rect) Monitor {
	masterSize := int(float64(geom.W) * cfg.MasterSize)
	if cfg.DefaultMode == BSTACK {
		masterSize = int(float64(geom.H) * cfg.MasterSize)
	}
	desktops := make([]Desktop, cfg.Desktops)
	for i := range desktops {
		desktops[i] = newDesktop(cfg, masterSize)
	}
	return Monitor{
		Geom:     geom,
		Desktops: desktops,
		CurDesk:  cfg.DefaultDesktop,
		PrevDesk: cfg.DefaultDesktop,
	}
}

// PointToMonitor returns the index of the monitor whose rectangle
// strictly contains (x, y), falling back to the current monitor when
// no rectangle matches (pointer briefly outside all outputs, or a
// single-monitor setup).
func (w *WM) PointToMonitor(x, y int) int {
	for i, m := range w.Monitors {
		if rectContains(m.Geom, x, y) {
			return i
		}
	}
	return w.CurMon
}

func rectContains(r Rect, x, y int) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// ClientToMonitor moves win from its current monitor's current desktop
// to destMon's current desktop, preserving its floating/fullscreen/
// transient flags, per spec §4.7. It only updates in-memory placement:
// it neither unmaps nor maps the window, and its callers (actions.go,
// grab.go) do not either; they re-tile and refocus afterward.
func (w *WM) ClientToMonitor(win xproto.Window, destMon int) error {
	if destMon < 0 || destMon >= len(w.Monitors) {
		return nil
	}
	loc, ok := w.loc[win]
	if !ok || loc.Mon == destMon {
		return nil
	}
	c := w.clients[win]

	src := &w.Monitors[loc.Mon].Desktops[loc.Desk]
	src.Clients = removeWindow(src.Clients, win)
	if src.Current == win {
		src.Current = src.PrevFocus
		src.PrevFocus = NoClient
	}

	dstMon := &w.Monitors[destMon]
	dst := dstMon.Desk()
	if w.Config.AttachAside {
		dst.Clients = append(dst.Clients, win)
	} else {
		dst.Clients = append([]xproto.Window{win}, dst.Clients...)
	}
	dst.PrevFocus = dst.Current
	dst.Current = win

	c.Monitor = destMon
	w.loc[win] = location{Mon: destMon, Desk: dstMon.CurDesk}
	return nil
}

// Package wm is driftwm's core: the client graph, layout engine, focus
// and border management, the event dispatcher and its handlers, the
// interactive move/resize state machine, multi-monitor tracking, and
// the status emitter. It is the whole of the window manager except
// process startup (cmd/driftwm) and the configuration surface
// (internal/config).
package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/driftwm/driftwm/internal/config"
)

// Mode re-exports config.Mode so the layout/client-graph code in this
// package reads naturally (wm.TILE, not config.TILE) without importing
// config in every file that mentions a tiling mode.
type Mode = config.Mode

const (
	TILE    = config.TILE
	MONOCLE = config.MONOCLE
	BSTACK  = config.BSTACK
	GRID    = config.GRID
)

// NoClient is the sentinel used in place of a client reference where
// the reference specification would use a null pointer: current,
// prevfocus, and the interactive-grab target window.
const NoClient = xproto.Window(0)

// Client is one managed top-level window. It records its owning
// monitor index but no desktop; the full (monitor, desktop) placement
// lives in the WM's location index (WM.loc), per the reference's
// "prefer a hash map from window id to (monitor, desktop, client)"
// redesign note — a Client can move between desktops on one monitor
// without any field on Client itself changing.
type Client struct {
	Window     xproto.Window
	Monitor    int
	Urgent     bool
	Transient  bool
	Fullscreen bool
	Floating   bool

	// PriorRect is the floating-geometry rectangle to restore when a
	// floating fullscreen client is un-fullscreened; toggling floating
	// does not read or write it. It is plain plumbing the engine
	// needs to honor the "setfullscreen(true) then false restores
	// prior geometry and floating flag" round-trip property; it names
	// no spec construct of its own.
	PriorRect Rect
}

// Desktop is a per-monitor virtual workspace: the single source of
// truth for its client list and view state. The reference's Monitor
// additionally caches its current desktop's fields inline as a
// "working set"; this redesign drops that cache (see DESIGN.md) so
// every read goes straight to the owning Desktop and there is no
// save/select bookkeeping to get wrong.
type Desktop struct {
	Mode       Mode
	MasterSize int
	Growth     int
	ShowPanel  bool

	// Clients is the ordered client list; order is tiling order and
	// is directly user-controlled by move_up/move_down/swap_master.
	Clients []xproto.Window

	Current    xproto.Window
	PrevFocus  xproto.Window
}

// location resolves a Client to where it currently lives, an index
// into WM.Monitors and that Monitor's Desktops array. It is the
// "wintoclient" hash map the design notes recommend in place of an
// O(desktops*n) scan.
type location struct {
	Mon  int
	Desk int
}

// Monitor is one physical output. Geom is already reduced by any
// panel reservation (see config.PanelHeight/TopPanel and
// discoverMonitors/reservePanel in monitor.go).
type Monitor struct {
	Geom     Rect
	Desktops []Desktop
	CurDesk  int
	PrevDesk int
}

// Desk returns the Monitor's currently active Desktop.
func (m *Monitor) Desk() *Desktop { return &m.Desktops[m.CurDesk] }

// PrevDeskPtr returns the Monitor's previously active Desktop.
func (m *Monitor) PrevDeskPtr() *Desktop { return &m.Desktops[m.PrevDesk] }

// WM is the single owning context threaded through every handler, in
// place of the reference's file-scope globals (current monitor,
// monitors array, connection, atom tables): see design notes "Global
// mutable state... maps to a single owning context value passed
// through handlers."
type WM struct {
	Conn   *Connection
	Config *config.Config

	Monitors       []Monitor
	CurMon         int
	PrevMon        int

	clients  map[xproto.Window]*Client
	loc      map[xproto.Window]location

	NumlockMask uint16
	FocusPixel  uint32
	UnfocusPixel uint32

	Running bool

	grab *grabState
}

// NewWM allocates a WM with empty monitor/client state; callers
// populate Monitors via discoverMonitors before running the event
// loop.
func NewWM(cfg *config.Config) *WM {
	return &WM{
		Config:  cfg,
		clients: make(map[xproto.Window]*Client),
		loc:     make(map[xproto.Window]location),
		Running: true,
	}
}

// Client looks up a managed window by id in O(1).
func (w *WM) Client(win xproto.Window) (*Client, bool) {
	c, ok := w.clients[win]
	return c, ok
}

// CurMonitor returns the currently focused Monitor.
func (w *WM) CurMonitor() *Monitor { return &w.Monitors[w.CurMon] }

// newDesktop builds a Desktop seeded from the config defaults.
func newDesktop(cfg *config.Config, masterSize int) Desktop {
	return Desktop{
		Mode:       cfg.DefaultMode,
		MasterSize: masterSize,
		Growth:     0,
		ShowPanel:  cfg.ShowPanel,
		Clients:    nil,
		Current:    NoClient,
		PrevFocus:  NoClient,
	}
}

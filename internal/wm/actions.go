package wm

import (
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/driftwm/driftwm/internal/config"
)

// runAction is the single entry point key/button bindings invoke
// through, so the binding tables in internal/config only ever name an
// Action plus an optional argument string (spec §4.5's "resolve the
// pair against the configured binding table... and invoke the bound
// action").
func (w *WM) runAction(action config.Action, arg string) {
	m := w.CurMonitor()
	d := m.Desk()

	switch action {
	case config.ActionFocusNext:
		NextWin(d)
	case config.ActionFocusPrev:
		PrevWin(d)
	case config.ActionMoveDown:
		MoveDown(d)
	case config.ActionMoveUp:
		MoveUp(d)
	case config.ActionSwapMaster:
		SwapMaster(d)
	case config.ActionFocusUrgent:
		w.focusUrgentAction()
		return
	case config.ActionSwitchTile:
		w.switchMode(TILE)
	case config.ActionSwitchMonocle:
		w.switchMode(MONOCLE)
	case config.ActionSwitchBstack:
		w.switchMode(BSTACK)
	case config.ActionSwitchGrid:
		w.switchMode(GRID)
	case config.ActionGrowMaster:
		w.resizeMaster(20)
		return
	case config.ActionShrinkMaster:
		w.resizeMaster(-20)
		return
	case config.ActionChangeDesktop:
		w.changeDesktopAction(arg)
		return
	case config.ActionClientToDesk:
		w.clientToDesktopAction(arg)
		return
	case config.ActionClientToMon:
		w.clientToMonitorAction()
		return
	case config.ActionToggleFull:
		w.toggleFullscreenAction(d.Current)
		return
	case config.ActionToggleFloat:
		w.toggleFloatingAction(d.Current)
	case config.ActionKillClient:
		w.killClient(d.Current)
		return
	case config.ActionSpawn:
		spawn(arg)
		return
	case config.ActionQuit:
		w.Quit()
		return
	case config.ActionMove:
		w.startGrab(grabMove)
		return
	case config.ActionResize:
		w.startGrab(grabResize)
		return
	default:
		return
	}

	w.Retile()
	w.emitStatus()
}

// switchMode sets the current desktop's mode. Setting the same mode
// twice is idempotent by construction — Mode is just assigned, not
// toggled — matching the switch_mode(x);switch_mode(x) round-trip
// property in spec §8.
func (w *WM) switchMode(mode Mode) {
	w.CurMonitor().Desk().Mode = mode
}

// resizeMaster adjusts the current desktop's master size by delta
// pixels, clamped per spec §3 to stay strictly between MINWSZ and
// (monitor-axis - MINWSZ).
func (w *WM) resizeMaster(delta int) {
	m := w.CurMonitor()
	d := m.Desk()
	axis := m.Geom.W
	if d.Mode == BSTACK {
		axis = m.Geom.H
	}
	min := w.Config.MinWindowSize
	max := axis - min
	next := d.MasterSize + delta
	if next <= min {
		next = min + 1
	}
	if next >= max {
		next = max - 1
	}
	d.MasterSize = next
	w.Retile()
	w.emitStatus()
}

func (w *WM) focusUrgentAction() {
	mon, desk, win, found := w.FocusUrgent()
	if !found {
		return
	}
	w.CurMon = mon
	ChangeDesktop(&w.Monitors[mon], desk)
	Refocus(&w.Monitors[mon].Desktops[desk], win)
	c := w.clients[win]
	c.Urgent = false
	w.Retile()
	w.emitStatus()
}

func (w *WM) changeDesktopAction(arg string) {
	desk, err := strconv.Atoi(arg)
	if err != nil {
		return
	}
	w.ChangeDesktopWithRemap(w.CurMon, desk)
	w.emitStatus()
}

func (w *WM) clientToDesktopAction(arg string) {
	desk, err := strconv.Atoi(arg)
	if err != nil {
		return
	}
	d := w.CurMonitor().Desk()
	if d.Current == NoClient {
		return
	}
	if err := w.ClientToDesktop(d.Current, desk, w.Config.FollowWindow); err != nil {
		log.Printf("wm: client_to_desktop: %v", err)
		return
	}
	w.Retile()
	w.emitStatus()
}

func (w *WM) clientToMonitorAction() {
	d := w.CurMonitor().Desk()
	if d.Current == NoClient {
		return
	}
	dest := (w.CurMon + 1) % len(w.Monitors)
	if dest == w.CurMon {
		return
	}
	win := d.Current
	if err := w.ClientToMonitor(win, dest); err != nil {
		log.Printf("wm: client_to_monitor: %v", err)
		return
	}
	w.RetileDesktop(w.CurMon, w.CurMonitor().CurDesk)
	w.RetileDesktop(dest, w.Monitors[dest].CurDesk)
	w.ApplyFocus()
	w.emitStatus()
}

func (w *WM) toggleFloatingAction(win xproto.Window) {
	if win == NoClient {
		return
	}
	c := w.clients[win]
	if c.Transient {
		return // transient clients are always floating (spec §3 invariant)
	}
	c.Floating = !c.Floating
}

func (w *WM) killClient(win xproto.Window) {
	if win == NoClient {
		return
	}
	w.sendDeleteWindow(win)
}

// spawn runs command detached into a new session, the single point of
// contact with the external process-spawning facility spec §1 places
// out of scope.
func spawn(command string) {
	if strings.TrimSpace(command) == "" {
		return
	}
	fields := strings.Fields(command)
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		log.Printf("wm: spawn %q failed: %v", command, err)
		return
	}
	go func() { _ = cmd.Wait() }()
}

func (w *WM) emitStatus() {
	if err := w.EmitStatus(os.Stdout); err != nil {
		log.Printf("wm: status emit failed: %v", err)
	}
}

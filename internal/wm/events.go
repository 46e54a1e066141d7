package wm

import (
	"log"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/driftwm/driftwm/internal/config"
)

// registerHandlers wires every event kind named in spec §4.4 to its
// handler via xgbutil's xevent dispatch, the same mechanism the
// teacher's internal/hotkeys.Handler and internal/movemode.Manager use
// for key/button events (keybind.KeyPressFun(...).Connect(...)).
// Unknown event kinds are left unregistered, which is exactly
// xevent.Main's "drop" behavior for events with no connected callback.
func (w *WM) registerHandlers() {
	xu := w.Conn.XUtil
	root := w.Conn.Root

	xevent.MapRequestFun(func(_ *xgbutil.XUtil, ev xevent.MapRequestEvent) {
		w.handleMapRequest(ev)
	}).Connect(xu, root)

	xevent.UnmapNotifyFun(func(_ *xgbutil.XUtil, ev xevent.UnmapNotifyEvent) {
		w.handleUnmapNotify(ev)
	}).Connect(xu, root)

	xevent.DestroyNotifyFun(func(_ *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		w.handleDestroyNotify(ev)
	}).Connect(xu, root)

	xevent.ConfigureRequestFun(func(_ *xgbutil.XUtil, ev xevent.ConfigureRequestEvent) {
		w.handleConfigureRequest(ev)
	}).Connect(xu, root)

	xevent.ClientMessageFun(func(_ *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		w.handleClientMessage(ev)
	}).Connect(xu, root)

	xevent.PropertyNotifyFun(func(_ *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		w.handlePropertyNotify(ev)
	}).Connect(xu, root)

	xevent.EnterNotifyFun(func(_ *xgbutil.XUtil, ev xevent.EnterNotifyEvent) {
		w.handleEnterNotify(ev)
	}).Connect(xu, root)

	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		w.handleMotionNotify(ev)
	}).Connect(xu, root)

	for _, kb := range w.Config.Keys {
		w.registerKeyBinding(kb)
	}
	for _, bb := range w.Config.Buttons {
		w.registerButtonBinding(bb)
	}
}

func (w *WM) registerKeyBinding(kb config.KeyBinding) {
	xu := w.Conn.XUtil
	spec := buildModString(kb.Mods) + kb.Keysym
	err := keybind.KeyPressFun(func(_ *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		w.runAction(kb.Action, kb.Arg)
	}).Connect(xu, w.Conn.Root, spec, true)
	if err != nil {
		log.Printf("wm: binding key %s failed: %v", spec, err)
	}
}

func (w *WM) registerButtonBinding(bb config.ButtonBinding) {
	xu := w.Conn.XUtil
	spec := buildModString(bb.Mods) + buttonName(bb.Button)
	err := mousebind.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		w.runAction(bb.Action, "")
	}).Connect(xu, w.Conn.Root, spec, true, true)
	if err != nil {
		log.Printf("wm: binding button %s failed: %v", spec, err)
	}
}

// Run blocks on the X connection, dispatching events until Running is
// cleared (xevent.Quit terminates xevent.Main's loop). This is the
// single suspension point named in spec §5.
func (w *WM) Run() {
	w.registerHandlers()
	log.Println("wm: entering event loop")
	xevent.Main(w.Conn.XUtil)
}

// Quit stops the event loop after the current event finishes
// processing, matching spec §5's cancellation model (no timers, no
// retries — the loop just exits after the in-flight handler returns).
func (w *WM) Quit() {
	w.Running = false
	xevent.Quit(w.Conn.XUtil)
}

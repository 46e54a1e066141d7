package wm

import (
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xevent"
)

type grabKind int

const (
	grabMove grabKind = iota
	grabResize
)

// grabState tracks an in-progress interactive move/resize, per spec
// §4.6. It only exists while a grab is active; startGrab allocates one
// and runGrabLoop clears it on exit.
type grabState struct {
	kind       grabKind
	win        xproto.Window
	origRect   Rect
	originX    int16
	originY    int16
}

// startGrab begins the interactive pointer state machine named in
// spec §4.6: record current geometry and pointer origin, force the
// client out of fullscreen and into floating, grab the pointer for
// motion and button events, then run the blocking inner loop. This
// mirrors the teacher's internal/movemode.Manager grab/ungrab
// mechanics (InputOnly redirect window, GrabKeyboard-style retry) but
// drives a continuous pointer drag instead of discrete keyboard steps.
func (w *WM) startGrab(kind grabKind) {
	d := w.CurMonitor().Desk()
	win := d.Current
	if win == NoClient {
		return
	}
	conn := w.Conn.XUtil.Conn()

	geom, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return
	}
	pointer, err := xproto.QueryPointer(conn, w.Conn.Root).Reply()
	if err != nil {
		return
	}

	w.setFullscreen(win, false)
	if c, ok := w.clients[win]; ok {
		c.Floating = true
	}

	grabReply, err := xproto.GrabPointer(conn, false, w.Conn.Root,
		uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion),
		xproto.GrabModeAsync, xproto.GrabModeAsync, xproto.WindowNone, xproto.CursorNone,
		xproto.TimeCurrentTime).Reply()
	if err != nil || grabReply.Status != xproto.GrabStatusSuccess {
		log.Printf("wm: grab pointer failed for %v: %v", win, err)
		return
	}

	w.grab = &grabState{
		kind:     kind,
		win:      win,
		origRect: Rect{X: int(geom.X), Y: int(geom.Y), W: int(geom.Width), H: int(geom.Height)},
		originX:  pointer.RootX,
		originY:  pointer.RootY,
	}
	w.runGrabLoop()
}

// runGrabLoop blocks reading events directly off the connection
// (rather than through the main xevent dispatch table) until the
// grab ends, per spec §4.6: ConfigureRequest/MapRequest delegate to
// their normal handlers and the loop continues; MotionNotify updates
// position/size; any key or button press/release ends the grab.
func (w *WM) runGrabLoop() {
	conn := w.Conn.XUtil.Conn()
	defer w.endGrab()

	for w.grab != nil {
		ev, err := conn.WaitForEvent()
		if err != nil {
			log.Printf("wm: grab loop: connection error: %v", err)
			return
		}
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			w.handleGrabMotion(e)
		case xproto.ConfigureRequestEvent:
			w.handleConfigureRequestRaw(e)
		case xproto.MapRequestEvent:
			w.handleMapRequestRaw(e)
		case xproto.KeyPressEvent, xproto.KeyReleaseEvent,
			xproto.ButtonPressEvent, xproto.ButtonReleaseEvent:
			return
		case xproto.DestroyNotifyEvent:
			if e.Window == w.grab.win {
				return
			}
		case xproto.UnmapNotifyEvent:
			if e.Window == w.grab.win {
				return
			}
		}

		if _, ok := w.clients[w.grab.win]; !ok {
			return
		}
	}
}

func (w *WM) handleGrabMotion(e xproto.MotionNotifyEvent) {
	g := w.grab
	dx := int(e.RootX) - int(g.originX)
	dy := int(e.RootY) - int(g.originY)

	switch g.kind {
	case grabMove:
		newX, newY := g.origRect.X+dx, g.origRect.Y+dy
		w.configureWindow(g.win, Rect{X: newX, Y: newY, W: g.origRect.W, H: g.origRect.H}, w.Config.BorderWidth)

		destMon := w.PointToMonitor(int(e.RootX), int(e.RootY))
		if destMon != w.CurMon {
			if err := w.ClientToMonitor(g.win, destMon); err == nil {
				w.CurMon = destMon
			}
		}
	case grabResize:
		newW := g.origRect.W + dx
		newH := g.origRect.H + dy
		if newW < w.Config.MinWindowSize {
			newW = w.Config.MinWindowSize
		}
		if newH < w.Config.MinWindowSize {
			newH = w.Config.MinWindowSize
		}
		w.configureWindow(g.win, Rect{X: g.origRect.X, Y: g.origRect.Y, W: newW, H: newH}, w.Config.BorderWidth)
	}
}

// handleConfigureRequestRaw/handleMapRequestRaw adapt the raw xgb
// event types the grab loop reads directly into the xevent-wrapped
// types the rest of the handler layer expects, so the grab loop can
// "delegate to their normal handlers" per spec §4.6 without
// duplicating handler logic.
func (w *WM) handleConfigureRequestRaw(e xproto.ConfigureRequestEvent) {
	w.handleConfigureRequest(wrapConfigureRequest(e))
}

func (w *WM) handleMapRequestRaw(e xproto.MapRequestEvent) {
	w.handleMapRequest(wrapMapRequest(e))
}

func (w *WM) endGrab() {
	xproto.UngrabPointer(w.Conn.XUtil.Conn(), xproto.TimeCurrentTime)
	w.grab = nil
	w.Retile()
	w.emitStatus()
}

func wrapConfigureRequest(e xproto.ConfigureRequestEvent) xevent.ConfigureRequestEvent {
	return xevent.ConfigureRequestEvent(e)
}

func wrapMapRequest(e xproto.MapRequestEvent) xevent.MapRequestEvent {
	return xevent.MapRequestEvent(e)
}

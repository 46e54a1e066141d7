package wm

import (
	"log"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// BorderWidth implements the border-width rule in spec §4.3: zero for
// the sole client on its desktop, any fullscreen client, or any client
// under MONOCLE that is neither floating nor transient; BORDER_WIDTH
// otherwise.
func (w *WM) BorderWidth(d *Desktop, c *Client) int {
	if c.Fullscreen {
		return 0
	}
	if len(d.Clients) == 1 {
		return 0
	}
	if d.Mode == MONOCLE && !c.Floating && !c.Transient {
		return 0
	}
	return w.Config.BorderWidth
}

// ApplyFocus enforces every invariant in spec §4.3 for the current
// monitor's current desktop: border color/width on every client,
// raising floating/transient windows (current raised last), the
// _NET_ACTIVE_WINDOW property, and CLICK_TO_FOCUS button grabs. It is
// called after any operation that could have changed what's visible or
// focused (map, unmap, focus change, mode/desktop switch).
func (w *WM) ApplyFocus() {
	m := w.CurMonitor()
	d := m.Desk()

	var raised []xproto.Window
	for _, win := range d.Clients {
		c, ok := w.clients[win]
		if !ok {
			continue
		}
		w.paintBorder(win, c, d)
		if (c.Floating || c.Transient) && win != d.Current {
			raised = append(raised, win)
		}
	}
	for _, win := range raised {
		w.raise(win)
	}
	if d.Current != NoClient {
		w.raise(d.Current)
		w.setInputFocus(d.Current)
	}
	w.setActiveWindow(d.Current)

	if w.Config.ClickToFocus && d.Current != NoClient {
		w.installClickToFocus(d.Current)
	}
}

func (w *WM) paintBorder(win xproto.Window, c *Client, d *Desktop) {
	bw := w.BorderWidth(d, c)
	xproto.ConfigureWindow(w.Conn.XUtil.Conn(), win, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(bw)})

	pixel := w.UnfocusPixel
	if win == d.Current && w.isCurrentMonitorDesktop(d) {
		pixel = w.FocusPixel
	}
	if bw > 0 {
		xproto.ChangeWindowAttributes(w.Conn.XUtil.Conn(), win, xproto.CwBorderPixel,
			[]uint32{pixel})
	}
}

func (w *WM) isCurrentMonitorDesktop(d *Desktop) bool {
	return d == w.CurMonitor().Desk()
}

func (w *WM) raise(win xproto.Window) {
	xproto.ConfigureWindow(w.Conn.XUtil.Conn(), win, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (w *WM) setInputFocus(win xproto.Window) {
	xproto.SetInputFocus(w.Conn.XUtil.Conn(), xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

// setActiveWindow publishes _NET_ACTIVE_WINDOW, deleting the property
// when there is no current client (spec §4.3).
func (w *WM) setActiveWindow(win xproto.Window) {
	conn := w.Conn.XUtil.Conn()
	if win == NoClient {
		xproto.DeleteProperty(conn, w.Conn.Root, w.Conn.Atoms.NetActiveWindow)
		return
	}
	xproto.ChangeProperty(conn, xproto.PropModeReplace, w.Conn.Root,
		w.Conn.Atoms.NetActiveWindow, xproto.AtomWindow, 32, 1,
		windowToBytes(win))
}

func windowToBytes(win xproto.Window) []byte {
	v := uint32(win)
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// installClickToFocus (re)installs a button-1 passive grab on win so
// an unfocused click transfers focus via the ButtonPress handler, the
// way the teacher's hotkeys layer grabs buttons through mousebind
// (internal/hotkeys/handler.go's RegisterFunc, applied here to a
// single client window rather than the root).
func (w *WM) installClickToFocus(win xproto.Window) {
	mousebind.Detach(w.Conn.XUtil, win)
	err := mousebind.ButtonPressFun(
		func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
			w.handleButtonPress(ev)
		}).Connect(w.Conn.XUtil, win, "1", false, false)
	if err != nil {
		log.Printf("focus: click-to-focus grab on %s failed: %v", strconv.FormatUint(uint64(win), 10), err)
	}
}

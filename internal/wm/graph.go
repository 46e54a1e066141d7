package wm

import "github.com/BurntSushi/xgb/xproto"

// Add allocates a Client for win on the given monitor/desktop and
// attaches it to that Desktop's client list: at the head by default,
// or at the tail when ATTACH_ASIDE is configured. The new client
// becomes its desktop's focus candidate; callers that don't want that
// (e.g. a background-desktop map) can overwrite Current afterward.
func (w *WM) Add(mon, desk int, win xproto.Window) *Client {
	c := &Client{Window: win, Monitor: mon}
	w.clients[win] = c
	w.loc[win] = location{Mon: mon, Desk: desk}

	d := &w.Monitors[mon].Desktops[desk]
	if w.Config.AttachAside {
		d.Clients = append(d.Clients, win)
	} else {
		d.Clients = append([]xproto.Window{win}, d.Clients...)
	}
	d.PrevFocus = d.Current
	d.Current = win
	return c
}

// Remove detaches win from whatever desktop currently owns it (using
// the location index, not a scan — see design notes) and frees its
// Client. Current becomes the desktop's previous focus, matching the
// reference's remove() contract.
func (w *WM) Remove(win xproto.Window) {
	loc, ok := w.loc[win]
	if !ok {
		return
	}
	d := &w.Monitors[loc.Mon].Desktops[loc.Desk]
	d.Clients = removeWindow(d.Clients, win)

	if d.Current == win {
		d.Current = d.PrevFocus
		d.PrevFocus = NoClient
		if d.Current != NoClient && !containsWindow(d.Clients, d.Current) {
			d.Current = NoClient
		}
	}
	if d.PrevFocus == win {
		d.PrevFocus = NoClient
	}

	delete(w.clients, win)
	delete(w.loc, win)
}

func removeWindow(list []xproto.Window, win xproto.Window) []xproto.Window {
	out := list[:0]
	for _, w := range list {
		if w != win {
			out = append(out, w)
		}
	}
	return out
}

func containsWindow(list []xproto.Window, win xproto.Window) bool {
	for _, w := range list {
		if w == win {
			return true
		}
	}
	return false
}

func indexOfWindow(list []xproto.Window, win xproto.Window) int {
	for i, w := range list {
		if w == win {
			return i
		}
	}
	return -1
}

// MoveDown swaps the current client on d with its successor, wrapping
// from the tail back to the head. The wrap case is load-bearing per
// spec design notes: with a single client or no current, it is a
// no-op.
func MoveDown(d *Desktop) {
	n := len(d.Clients)
	if n < 2 || d.Current == NoClient {
		return
	}
	i := indexOfWindow(d.Clients, d.Current)
	if i < 0 {
		return
	}
	j := (i + 1) % n
	d.Clients[i], d.Clients[j] = d.Clients[j], d.Clients[i]
}

// MoveUp is the inverse of MoveDown.
func MoveUp(d *Desktop) {
	n := len(d.Clients)
	if n < 2 || d.Current == NoClient {
		return
	}
	i := indexOfWindow(d.Clients, d.Current)
	if i < 0 {
		return
	}
	j := (i - 1 + n) % n
	d.Clients[i], d.Clients[j] = d.Clients[j], d.Clients[i]
}

// SwapMaster makes the current client the head of the list. If it is
// already the head, it swaps with the next client instead (so the key
// binding always does something observable with 2+ clients).
func SwapMaster(d *Desktop) {
	n := len(d.Clients)
	if n < 2 || d.Current == NoClient {
		return
	}
	i := indexOfWindow(d.Clients, d.Current)
	if i < 0 {
		return
	}
	if i == 0 {
		d.Clients[0], d.Clients[1] = d.Clients[1], d.Clients[0]
		return
	}
	win := d.Clients[i]
	d.Clients = append(d.Clients[:i], d.Clients[i+1:]...)
	d.Clients = append([]xproto.Window{win}, d.Clients...)
}

// NextWin rotates focus to the client following Current in tiling
// order, wrapping to the head.
func NextWin(d *Desktop) {
	n := len(d.Clients)
	if n == 0 {
		return
	}
	i := indexOfWindow(d.Clients, d.Current)
	next := d.Clients[(i+1)%n]
	Refocus(d, next)
}

// PrevWin rotates focus to the client preceding Current in tiling
// order, wrapping to the tail.
func PrevWin(d *Desktop) {
	n := len(d.Clients)
	if n == 0 {
		return
	}
	i := indexOfWindow(d.Clients, d.Current)
	if i < 0 {
		i = 0
	}
	prev := d.Clients[(i-1+n)%n]
	Refocus(d, prev)
}

// Refocus changes d's current client to win, updating prevfocus per
// §4.3: the outgoing current becomes the new prevfocus, unless win is
// already the prevfocus, in which case the roles swap (re-focusing the
// prevfocus makes the old current the new prevfocus — a list walk is
// unnecessary here since both are simple window-id fields).
func Refocus(d *Desktop, win xproto.Window) {
	if win == d.Current {
		return
	}
	outgoing := d.Current
	d.Current = win
	d.PrevFocus = outgoing
}

// FocusUrgent scans every monitor and desktop for the first urgent
// client, and if found returns its location so the caller can switch
// to it and refocus. The scan order is monitor-major, desktop-minor,
// client list order — deterministic and match-first, not "most
// recent."
func (w *WM) FocusUrgent() (mon, desk int, win xproto.Window, found bool) {
	for mi := range w.Monitors {
		for di := range w.Monitors[mi].Desktops {
			for _, cw := range w.Monitors[mi].Desktops[di].Clients {
				if c, ok := w.clients[cw]; ok && c.Urgent {
					return mi, di, cw, true
				}
			}
		}
	}
	return 0, 0, NoClient, false
}

// Tileable returns the subset of d's client list that the layout
// engine should place: not floating, not transient, not fullscreen,
// in tiling order.
func (w *WM) Tileable(d *Desktop) []xproto.Window {
	out := make([]xproto.Window, 0, len(d.Clients))
	for _, win := range d.Clients {
		c, ok := w.clients[win]
		if !ok {
			continue
		}
		if c.Floating || c.Transient || c.Fullscreen {
			continue
		}
		out = append(out, win)
	}
	return out
}

package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Connection wraps the xgbutil handle the same way the teacher's
// internal/x11.Connection does (internal/x11/connection.go), plus the
// atom table and numlock mask discovered once at startup.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
	Atoms atoms

	// NumlockMask and LockMask are the modifier bits X assigned to
	// Num_Lock and Caps_Lock on this keyboard; key/button binding
	// resolution masks them out (§4.5), the same technique as the
	// teacher's configureIgnoreMods (internal/hotkeys/handler.go).
	NumlockMask uint16
	LockMask    uint16
}

// Connect opens the X display, interns driftwm's atom table, probes
// for a competing window manager, and discovers the numlock modifier
// mask. Any failure here is startup-fatal per spec §7.
func Connect() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}
	if err := keybind.Initialize(xu); err != nil {
		return nil, fmt.Errorf("initialize keybind extension: %w", err)
	}

	c := &Connection{XUtil: xu, Root: xu.RootWin()}

	if err := c.internAtoms(); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	if err := c.probeForRunningWM(); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	c.discoverLockMasks()

	return c, nil
}

func (c *Connection) internAtoms() error {
	values := make([]xproto.Atom, len(atomNames))
	for i, name := range atomNames {
		reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
		if err != nil {
			return fmt.Errorf("intern atom %s: %w", name, err)
		}
		values[i] = reply.Atom
	}
	c.Atoms = newAtoms(values)
	return nil
}

// probeForRunningWM requests substructure redirect on the root window
// and checks for BadAccess, which X sends when another client already
// holds it. This is the conventional "am I the only window manager"
// check (spec §6); xgb surfaces the error through the checked request
// rather than a signal handler.
func (c *Connection) probeForRunningWM() error {
	cookie := xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), c.Root, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify),
	})
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("another window manager is already running: %w", err)
	}
	return nil
}

// discoverLockMasks finds the modifier bits assigned to Num_Lock and
// Caps_Lock so key/button binding resolution can ignore them, mirroring
// the teacher's configureIgnoreMods (internal/hotkeys/handler.go),
// which builds the full ignore-mask power set from the same two
// lookups.
func (c *Connection) discoverLockMasks() {
	c.NumlockMask = modMaskForKeysym(c.XUtil, "Num_Lock")
	c.LockMask = xproto.ModMaskLock
}

func modMaskForKeysym(xu *xgbutil.XUtil, name string) uint16 {
	codes := keybind.StrToKeycodes(xu, name)
	for _, code := range codes {
		if mask := keybind.ModGet(xu, code); mask != 0 {
			return mask
		}
	}
	return 0
}

// IgnoreMasks returns every combination of numlock/capslock that
// should be treated as "no extra modifier" when matching a bound key
// or button combo, the power set the teacher's configureIgnoreMods
// builds before calling xevent.IgnoreMods.
func (c *Connection) IgnoreMasks() []uint16 {
	bits := []uint16{}
	if c.NumlockMask != 0 {
		bits = append(bits, c.NumlockMask)
	}
	if c.LockMask != 0 {
		bits = append(bits, c.LockMask)
	}
	masks := []uint16{0}
	for _, b := range bits {
		existing := masks
		for _, m := range existing {
			masks = append(masks, m|b)
		}
	}
	return masks
}

// InstallIgnoreMods registers every ignore-mask combination with
// xevent so keybind/mousebind's dispatch matches regardless of
// numlock/capslock state.
func (c *Connection) InstallIgnoreMods() {
	xevent.IgnoreMods = c.IgnoreMasks()
}

// Close releases the X connection.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

package wm

import "github.com/BurntSushi/xgb/xproto"

// atoms holds every interned WM/NET atom driftwm touches. They are
// resolved once at connection setup (see Connection.internAtoms in
// connection.go) rather than re-interned on every property access.
type atoms struct {
	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom
	WMState        xproto.Atom
	WMTakeFocus    xproto.Atom

	NetSupported       xproto.Atom
	NetWMState         xproto.Atom
	NetWMStateFullscreen xproto.Atom
	NetActiveWindow    xproto.Atom
	NetWMDesktop       xproto.Atom
	NetCurrentDesktop  xproto.Atom
	NetNumberOfDesktops xproto.Atom
}

// atomNames lists every atom name that must be interned, in the order
// its struct field appears; internAtoms relies on this ordering.
var atomNames = []string{
	"WM_PROTOCOLS",
	"WM_DELETE_WINDOW",
	"WM_STATE",
	"WM_TAKE_FOCUS",
	"_NET_SUPPORTED",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_DESKTOP",
	"_NET_CURRENT_DESKTOP",
	"_NET_NUMBER_OF_DESKTOPS",
}

func newAtoms(values []xproto.Atom) atoms {
	return atoms{
		WMProtocols:          values[0],
		WMDeleteWindow:       values[1],
		WMState:              values[2],
		WMTakeFocus:          values[3],
		NetSupported:         values[4],
		NetWMState:           values[5],
		NetWMStateFullscreen: values[6],
		NetActiveWindow:      values[7],
		NetWMDesktop:         values[8],
		NetCurrentDesktop:    values[9],
		NetNumberOfDesktops:  values[10],
	}
}

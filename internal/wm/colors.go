package wm

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// allocColor parses a "#rrggbb" string and allocates it on xu's
// default colormap, returning the server-assigned pixel value
// ApplyFocus later writes into CwBorderPixel (focus.go).
func allocColor(xu *xgbutil.XUtil, hex string) (uint32, error) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return 0, err
	}
	colormap := xu.Screen().DefaultColormap
	reply, err := xproto.AllocColor(xu.Conn(), colormap,
		uint16(r)*256, uint16(g)*256, uint16(b)*256).Reply()
	if err != nil {
		return 0, fmt.Errorf("alloc color %s: %w", hex, err)
	}
	return reply.Pixel, nil
}

func parseHexColor(hex string) (r, g, b uint8, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid color %q, want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Package config holds driftwm's compile-time configuration surface:
// layout constants, colors, behavior flags, and the default key/button/
// app-rule tables. Everything here is a Go literal, in the tradition of
// dwm/monsterwm's config.h, with an optional YAML override file layered
// on top at startup (see loader.go).
package config

// Mode names one of the four tiling algorithms a Desktop can run.
type Mode int

const (
	TILE Mode = iota
	MONOCLE
	BSTACK
	GRID
)

func (m Mode) String() string {
	switch m {
	case TILE:
		return "TILE"
	case MONOCLE:
		return "MONOCLE"
	case BSTACK:
		return "BSTACK"
	case GRID:
		return "GRID"
	default:
		return "UNKNOWN"
	}
}

// ModeFromString parses a mode name from a YAML override file. Unknown
// names fall back to the zero Mode (TILE) — config parsing never fails
// on a bad mode name, it just keeps the built-in default.
func ModeFromString(s string) (Mode, bool) {
	switch s {
	case "TILE":
		return TILE, true
	case "MONOCLE":
		return MONOCLE, true
	case "BSTACK":
		return BSTACK, true
	case "GRID":
		return GRID, true
	default:
		return TILE, false
	}
}

// Config is the fully-resolved configuration consumed by internal/wm.
// Built once at startup from Defaults() and optionally patched by a
// user YAML file (see loader.go); never mutated afterward.
type Config struct {
	Desktops        int
	DefaultDesktop  int
	DefaultMonitor  int
	DefaultMode     Mode
	MasterSize      float64 // fraction of the usable monitor axis, in (0,1)
	BorderWidth     int
	PanelHeight     int
	TopPanel        bool
	ShowPanel       bool
	MinWindowSize   int
	FocusColor      string
	UnfocusColor    string
	AttachAside     bool
	FollowMouse     bool
	FollowMonitor   bool
	FollowWindow    bool
	ClickToFocus    bool

	Keys    []KeyBinding
	Buttons []ButtonBinding
	Rules   []AppRule
}

// Defaults returns the built-in configuration, the same way the
// teacher's internal/config/builtin.go returns built-in layouts: a Go
// map/struct literal that applies whenever no override file is found.
func Defaults() *Config {
	return &Config{
		Desktops:       4,
		DefaultDesktop: 0,
		DefaultMonitor: 0,
		DefaultMode:    TILE,
		MasterSize:     0.52,
		BorderWidth:    2,
		PanelHeight:    18,
		TopPanel:       true,
		ShowPanel:      true,
		MinWindowSize:  50,
		FocusColor:     "#81a1c1",
		UnfocusColor:   "#4c566a",
		AttachAside:    false,
		FollowMouse:    false,
		FollowMonitor:  true,
		FollowWindow:   false,
		ClickToFocus:   true,

		Keys:    DefaultKeys(),
		Buttons: DefaultButtons(),
		Rules:   DefaultRules(),
	}
}

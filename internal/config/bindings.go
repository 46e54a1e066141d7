package config

// Action names a bound operation. Handlers in internal/wm switch on
// this value; the binding tables below only ever decide which Action
// fires, never how it behaves.
type Action string

const (
	ActionNone          Action = ""
	ActionFocusNext     Action = "focus_next"
	ActionFocusPrev     Action = "focus_prev"
	ActionMoveDown      Action = "move_down"
	ActionMoveUp        Action = "move_up"
	ActionSwapMaster    Action = "swap_master"
	ActionFocusUrgent   Action = "focus_urgent"
	ActionSwitchTile    Action = "switch_tile"
	ActionSwitchMonocle Action = "switch_monocle"
	ActionSwitchBstack  Action = "switch_bstack"
	ActionSwitchGrid    Action = "switch_grid"
	ActionGrowMaster    Action = "grow_master"
	ActionShrinkMaster  Action = "shrink_master"
	ActionChangeDesktop Action = "change_desktop" // Arg = desktop index
	ActionClientToDesk  Action = "client_to_desktop"
	ActionClientToMon   Action = "client_to_monitor"
	ActionToggleFull    Action = "toggle_fullscreen"
	ActionToggleFloat   Action = "toggle_floating"
	ActionKillClient    Action = "kill_client"
	ActionSpawn         Action = "spawn" // Arg = command line
	ActionQuit          Action = "quit"
	ActionMove          Action = "grab_move"   // starts the pointer state machine
	ActionResize        Action = "grab_resize" // starts the pointer state machine
)

// KeyBinding pairs a modifier+keysym name combo with a bound action.
// Keysym is the X11 keysym name (e.g. "Return", "j") as understood by
// keybind.ParseKeySym; Mods is a list of modifier names ("Mod4",
// "Shift", "Control") ORed together at load time.
type KeyBinding struct {
	Mods   []string
	Keysym string
	Action Action
	Arg    string
}

// ButtonBinding pairs a modifier+button combo with a bound action,
// used for the pointer-driven move/resize grabs. The CLICK_TO_FOCUS
// grab does not come from this table.
type ButtonBinding struct {
	Mods   []string
	Button int
	Action Action
}

// AppRule matches a WM_CLASS class or instance string exactly (first
// match in table order wins) and assigns the client's initial desktop,
// follow behavior, and floating flag.
type AppRule struct {
	Class      string
	Instance   string
	Desktop    int // -1 means "current desktop"
	Follow     bool
	Floating   bool
}

const superKey = "Mod4"

// DefaultKeys mirrors monsterwm's conventional SUPER-based bindings.
func DefaultKeys() []KeyBinding {
	return []KeyBinding{
		{Mods: []string{superKey}, Keysym: "j", Action: ActionFocusNext},
		{Mods: []string{superKey}, Keysym: "k", Action: ActionFocusPrev},
		{Mods: []string{superKey, "Shift"}, Keysym: "j", Action: ActionMoveDown},
		{Mods: []string{superKey, "Shift"}, Keysym: "k", Action: ActionMoveUp},
		{Mods: []string{superKey}, Keysym: "Return", Action: ActionSwapMaster},
		{Mods: []string{superKey}, Keysym: "u", Action: ActionFocusUrgent},
		{Mods: []string{superKey}, Keysym: "t", Action: ActionSwitchTile},
		{Mods: []string{superKey}, Keysym: "m", Action: ActionSwitchMonocle},
		{Mods: []string{superKey}, Keysym: "b", Action: ActionSwitchBstack},
		{Mods: []string{superKey}, Keysym: "g", Action: ActionSwitchGrid},
		{Mods: []string{superKey}, Keysym: "l", Action: ActionGrowMaster},
		{Mods: []string{superKey}, Keysym: "h", Action: ActionShrinkMaster},
		{Mods: []string{superKey}, Keysym: "f", Action: ActionToggleFull},
		{Mods: []string{superKey, "Shift"}, Keysym: "space", Action: ActionToggleFloat},
		{Mods: []string{superKey, "Shift"}, Keysym: "c", Action: ActionKillClient},
		{Mods: []string{superKey, "Shift"}, Keysym: "q", Action: ActionQuit},
		{Mods: []string{superKey, "Shift"}, Keysym: "Return", Action: ActionSpawn, Arg: "xterm"},
		{Mods: []string{superKey}, Keysym: "1", Action: ActionChangeDesktop, Arg: "0"},
		{Mods: []string{superKey}, Keysym: "2", Action: ActionChangeDesktop, Arg: "1"},
		{Mods: []string{superKey}, Keysym: "3", Action: ActionChangeDesktop, Arg: "2"},
		{Mods: []string{superKey}, Keysym: "4", Action: ActionChangeDesktop, Arg: "3"},
		{Mods: []string{superKey, "Shift"}, Keysym: "1", Action: ActionClientToDesk, Arg: "0"},
		{Mods: []string{superKey, "Shift"}, Keysym: "2", Action: ActionClientToDesk, Arg: "1"},
		{Mods: []string{superKey, "Shift"}, Keysym: "3", Action: ActionClientToDesk, Arg: "2"},
		{Mods: []string{superKey, "Shift"}, Keysym: "4", Action: ActionClientToDesk, Arg: "3"},
		{Mods: []string{superKey, "Control"}, Keysym: "l", Action: ActionClientToMon},
	}
}

// DefaultButtons wires the conventional SUPER+drag move/resize. The
// plain click-to-focus grab used when CLICK_TO_FOCUS is set is not in
// this table; the focus manager installs it per client.
func DefaultButtons() []ButtonBinding {
	return []ButtonBinding{
		{Mods: []string{superKey}, Button: 1, Action: ActionMove},
		{Mods: []string{superKey}, Button: 3, Action: ActionResize},
	}
}

// DefaultRules has no entries; every client lands on the current
// desktop, non-floating, following, unless the user's override file
// adds rules.
func DefaultRules() []AppRule {
	return nil
}

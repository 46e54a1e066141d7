package wm

import "strconv"

// buildModString turns a modifier-name list into the "Mod4-Shift-"
// prefix keybind/mousebind's spec strings expect.
func buildModString(mods []string) string {
	s := ""
	for _, m := range mods {
		s += m + "-"
	}
	return s
}

func buttonName(button int) string {
	return strconv.Itoa(button)
}

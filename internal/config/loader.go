package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rawConfig mirrors Config's scalar fields and its app-rule table (the
// key and button tables are not read from the file) with YAML-friendly
// scalar types and pointer-bool optional overrides, the way the
// teacher's internal/config/config.go layers AgentMode's Get*()
// accessors on top of *bool fields: a field absent from the file
// leaves the built-in default untouched, rather than zeroing it out.
type rawConfig struct {
	Desktops       *int     `yaml:"desktops"`
	DefaultDesktop *int     `yaml:"default_desktop"`
	DefaultMonitor *int     `yaml:"default_monitor"`
	DefaultMode    *string  `yaml:"default_mode"`
	MasterSize     *float64 `yaml:"master_size"`
	BorderWidth    *int     `yaml:"border_width"`
	PanelHeight    *int     `yaml:"panel_height"`
	TopPanel       *bool    `yaml:"top_panel"`
	ShowPanel      *bool    `yaml:"show_panel"`
	MinWindowSize  *int     `yaml:"min_window_size"`
	FocusColor     *string  `yaml:"focus_color"`
	UnfocusColor   *string  `yaml:"unfocus_color"`
	AttachAside    *bool    `yaml:"attach_aside"`
	FollowMouse    *bool    `yaml:"follow_mouse"`
	FollowMonitor  *bool    `yaml:"follow_monitor"`
	FollowWindow   *bool    `yaml:"follow_window"`
	ClickToFocus   *bool    `yaml:"click_to_focus"`

	Rules []rawRule `yaml:"rules"`
}

type rawRule struct {
	Class    string `yaml:"class"`
	Instance string `yaml:"instance"`
	Desktop  int    `yaml:"desktop"`
	Follow   bool   `yaml:"follow"`
	Floating bool   `yaml:"floating"`
}

// Load reads path and returns Defaults() patched with any values the
// file sets. A missing file is not an error — it returns the built-in
// defaults unchanged, mirroring the teacher's builtin-layouts fallback
// (internal/config/builtin.go): absence of an override is the common
// case, not a misconfiguration.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyOverrides(cfg, &raw)
	return cfg, nil
}

func applyOverrides(cfg *Config, raw *rawConfig) {
	if raw.Desktops != nil {
		cfg.Desktops = *raw.Desktops
	}
	if raw.DefaultDesktop != nil {
		cfg.DefaultDesktop = *raw.DefaultDesktop
	}
	if raw.DefaultMonitor != nil {
		cfg.DefaultMonitor = *raw.DefaultMonitor
	}
	if raw.DefaultMode != nil {
		if m, ok := ModeFromString(*raw.DefaultMode); ok {
			cfg.DefaultMode = m
		}
	}
	if raw.MasterSize != nil {
		cfg.MasterSize = *raw.MasterSize
	}
	if raw.BorderWidth != nil {
		cfg.BorderWidth = *raw.BorderWidth
	}
	if raw.PanelHeight != nil {
		cfg.PanelHeight = *raw.PanelHeight
	}
	if raw.TopPanel != nil {
		cfg.TopPanel = *raw.TopPanel
	}
	if raw.ShowPanel != nil {
		cfg.ShowPanel = *raw.ShowPanel
	}
	if raw.MinWindowSize != nil {
		cfg.MinWindowSize = *raw.MinWindowSize
	}
	if raw.FocusColor != nil {
		cfg.FocusColor = *raw.FocusColor
	}
	if raw.UnfocusColor != nil {
		cfg.UnfocusColor = *raw.UnfocusColor
	}
	if raw.AttachAside != nil {
		cfg.AttachAside = *raw.AttachAside
	}
	if raw.FollowMouse != nil {
		cfg.FollowMouse = *raw.FollowMouse
	}
	if raw.FollowMonitor != nil {
		cfg.FollowMonitor = *raw.FollowMonitor
	}
	if raw.FollowWindow != nil {
		cfg.FollowWindow = *raw.FollowWindow
	}
	if raw.ClickToFocus != nil {
		cfg.ClickToFocus = *raw.ClickToFocus
	}
	if len(raw.Rules) > 0 {
		rules := make([]AppRule, len(raw.Rules))
		for i, r := range raw.Rules {
			rules[i] = AppRule{
				Class:    r.Class,
				Instance: r.Instance,
				Desktop:  r.Desktop,
				Follow:   r.Follow,
				Floating: r.Floating,
			}
		}
		cfg.Rules = rules
	}
}

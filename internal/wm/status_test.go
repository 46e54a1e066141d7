package wm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestEmitStatusFormat(t *testing.T) {
	w := newTestWM()
	w.Add(0, 0, xproto.Window(1))
	w.Add(0, 0, xproto.Window(2))

	var buf bytes.Buffer
	if err := w.EmitStatus(&buf); err != nil {
		t.Fatalf("EmitStatus: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("status line missing trailing newline: %q", out)
	}
	fields := strings.Split(strings.TrimSuffix(out, "\n"), " ")
	if len(fields) != len(w.Monitors[0].Desktops) {
		t.Fatalf("got %d records, want %d", len(fields), len(w.Monitors[0].Desktops))
	}
	first := strings.Split(fields[0], ":")
	if len(first) != 7 {
		t.Fatalf("record has %d fields, want 7: %q", len(first), fields[0])
	}
	if first[0] != "0" || first[1] != "1" || first[2] != "0" || first[3] != "2" {
		t.Fatalf("unexpected record %q", fields[0])
	}
}

func TestEmitStatusLeavesCurrentUnchanged(t *testing.T) {
	w := newTestWM()
	w.Monitors = append(w.Monitors, Monitor{
		Geom:     Rect{X: 1280, Y: 0, W: 1280, H: 800},
		Desktops: make([]Desktop, w.Config.Desktops),
	})
	for i := range w.Monitors[1].Desktops {
		w.Monitors[1].Desktops[i] = newDesktop(w.Config, 666)
	}
	w.CurMon = 1
	w.Monitors[1].CurDesk = 2

	var buf bytes.Buffer
	if err := w.EmitStatus(&buf); err != nil {
		t.Fatalf("EmitStatus: %v", err)
	}
	if w.CurMon != 1 {
		t.Fatalf("CurMon changed to %d, want 1", w.CurMon)
	}
	if w.Monitors[1].CurDesk != 2 {
		t.Fatalf("CurDesk changed to %d, want 2", w.Monitors[1].CurDesk)
	}
}

package wm

import (
	"bufio"
	"fmt"
	"io"
)

// EmitStatus writes one status line to out: space-separated records,
// one per (monitor, desktop) pair, each a colon-separated 7-tuple —
// monitor index, is-current-monitor, desktop index, client count,
// tiling mode, is-current-desktop, has-urgent (spec §4.8). Under the
// single-source-of-truth redesign there is no working set to restore
// afterward: every record reads Monitor.Desktops[i] directly, so
// current_monitor/current_desktop are never touched by emitting
// status (property 6 holds trivially).
func (w *WM) EmitStatus(out io.Writer) error {
	bw := bufio.NewWriter(out)
	for mi := range w.Monitors {
		m := &w.Monitors[mi]
		for di := range m.Desktops {
			d := &m.Desktops[di]
			isCurMon := 0
			if mi == w.CurMon {
				isCurMon = 1
			}
			isCurDesk := 0
			if di == m.CurDesk {
				isCurDesk = 1
			}
			urgent := 0
			for _, win := range d.Clients {
				if c, ok := w.clients[win]; ok && c.Urgent {
					urgent = 1
					break
				}
			}
			if mi != 0 || di != 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d:%d:%d:%d:%d:%d:%d",
				mi, isCurMon, di, len(d.Clients), int(d.Mode), isCurDesk, urgent); err != nil {
				return err
			}
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

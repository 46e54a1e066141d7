package wm

import (
	"log"
	"os"
	"os/signal"
	"syscall"
)

// installSignalHandlers wires SIGCHLD reaping (spec §5/§6: "SIGCHLD is
// installed and reaps any zombies non-blockingly") and SIGINT/SIGTERM
// as an orderly quit path, so driftwm running interactively under a
// terminal or a session manager exits cleanly instead of leaving
// zombies or requiring a kill -9.
func (w *WM) installSignalHandlers() {
	chld := make(chan os.Signal, 1)
	signal.Notify(chld, syscall.SIGCHLD)
	go reapChildren(chld)

	term := make(chan os.Signal, 1)
	signal.Notify(term, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-term
		log.Println("wm: received termination signal, quitting")
		w.Quit()
	}()
}

// reapChildren drains exited children with a non-blocking Wait4 loop
// every time SIGCHLD fires, so spawned commands (see actions.go's
// spawn) never accumulate as zombies. This never blocks the main
// event loop: it runs on its own goroutine and only touches already-
// exited process table entries.
func reapChildren(chld <-chan os.Signal) {
	for range chld {
		for {
			var status syscall.WaitStatus
			pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
			if pid <= 0 || err != nil {
				break
			}
		}
	}
}

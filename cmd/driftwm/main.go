// Command driftwm is a dynamic tiling window manager for X11.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/driftwm/driftwm/internal/config"
	"github.com/driftwm/driftwm/internal/wm"
)

const version = "driftwm-0.1.0"

func main() {
	var showVersion bool

	root := &cobra.Command{
		Use:           "driftwm",
		Short:         "driftwm is a dynamic tiling window manager for X11",
		SilenceUsage:  false,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(version)
				return nil
			}
			return runWM()
		},
	}
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print name-version and exit")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func runWM() error {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	manager, err := wm.Start(cfg)
	if err != nil {
		return fmt.Errorf("start window manager: %w", err)
	}
	defer manager.Shutdown()

	manager.Run()
	log.Println("driftwm: event loop exited, shutting down")
	return nil
}

func configPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "driftwm", "driftwm.yaml")
	}
	return "driftwm.yaml"
}

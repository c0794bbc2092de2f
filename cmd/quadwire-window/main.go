package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/cr1ms0nh3ad/quadwire/lib/app"
	"github.com/cr1ms0nh3ad/quadwire/lib/config"
	"github.com/cr1ms0nh3ad/quadwire/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	log.Setup(slog.LevelDebug)

	cfg := config.Default()
	// this program clears to the classic teal instead of black
	cfg.ClearColour = "#334c4cff"
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			slog.Error(fmt.Sprintf("could not parse config: %s", err))
			os.Exit(1)
		}
	}

	err := app.RunClear(cfg)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

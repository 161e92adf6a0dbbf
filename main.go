package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/carrig/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "debug logging and constraint drawing")
	scenario := flag.String("scenario", "garage", "scenario name in scenarios/ (basename, .yaml optional)")
	script := flag.String("autopilot", "none", "autopilot script in scenarios/scripts, \"\" for the scenario's own")
	watch := flag.Bool("watch", false, "reload when scenario or script files change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("carrig - " + *scenario)
	ebiten.SetTPS(60)

	game, err := NewGame(Options{
		Scenario: *scenario,
		Script:   *script,
		Debug:    *debug,
		Watch:    *watch,
	}, logger)
	if err != nil {
		logger.Fatal("start", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

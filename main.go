package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/timeshift/assets"
	"github.com/milk9111/timeshift/prefabs"
	"github.com/milk9111/timeshift/progress"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	watch := flag.Bool("watch", false, "reload levels/ and prefabs/ when they change on disk")
	level := flag.Int("level", 1, "level to start on (1-10)")
	width := flag.Int("width", 540, "screen width in pixels")
	height := flag.Int("height", 1140, "screen height in pixels")
	appName := flag.String("app", "timeshift", "app data directory name for saved progress")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "timeshift",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	manifest, err := assets.LoadManifest()
	if err != nil {
		logger.Fatal("could not load asset manifest", "err", err)
	}
	if missing := manifest.Missing(assets.RequiredSprites()); len(missing) > 0 {
		logger.Fatal("asset manifest incomplete", "missing", missing)
	}

	var store progress.Store
	if gs, err := progress.OpenGData(*appName); err != nil {
		logger.Warn("progress will not be saved", "err", err)
		store = &progress.MemoryStore{}
	} else {
		store = gs
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("levels", "prefabs")
		if err != nil {
			logger.Warn("could not watch for changes", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(GameOptions{
		Level:   *level,
		Width:   *width,
		Height:  *height,
		Debug:   *debug,
		Sprites: NewProvider(manifest),
		Store:   store,
		Watcher: watcher,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("could not start", "err", err)
	}

	ebiten.SetTPS(100)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("timeshift")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}

package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/topdown/assets"
	"github.com/plus3/topdown/config"
	"github.com/plus3/topdown/game"
	"github.com/plus3/topdown/geom"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default ./topdown.yaml if present)")
	watch := flag.Bool("watch", false, "reload entity types when their files change")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log, closer, err := cfg.Log.NewLogger()
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}

	err = run(cfg, log, *watch)
	if err != nil {
		log.WithError(err).Error("topdown exited")
	}
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logrus.Logger, watch bool) error {
	bundle, err := assets.LoadBundle(assets.Paths{
		Types: cfg.Assets.Types,
		Map:   cfg.Assets.Map,
		Mask:  cfg.Assets.Mask,
	}, log)
	if err != nil {
		return err
	}
	catalog, placements := bundle.Catalog, bundle.Placements

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates <-chan *assets.Catalog
	if watch {
		updates, err = assets.WatchCatalog(ctx, cfg.Assets.Types, log)
		if err != nil {
			return err
		}
	}

	textures := NewTextures(cfg.Assets.Images, log)
	textures.Load(catalog)

	world := game.NewWorld(game.Options{
		Catalog:  catalog,
		Mask:     bundle.Mask,
		Speed:    cfg.Player.Speed,
		Updates:  updates,
		OnReload: textures.Load,
		Log:      log,
	})

	if _, err := world.Spawner.SpawnMap(placements); err != nil {
		return err
	}
	player, err := world.Spawner.SpawnPlayer(cfg.Player.Type, geom.Vec3{X: cfg.Player.X, Y: cfg.Player.Y})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Tick.Rate)

	log.WithFields(logrus.Fields{
		"types":    len(catalog.Names()),
		"placed":   len(placements),
		"watching": watch,
	}).Info("starting")

	return ebiten.RunGame(NewGame(cfg, world, player, textures))
}

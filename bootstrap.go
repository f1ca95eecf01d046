package main

import (
	"context"
	"errors"
	"fmt"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
	"spacex-dashboard/services"
	"spacex-dashboard/storage"
	"spacex-dashboard/utils"
)

// session is everything a command needs once the dataset is loaded.
type session struct {
	cfg     *config.Config
	theme   config.Theme
	dataset *models.Dataset
	views   *services.ViewBuilder
}

func bootstrap(ctx context.Context, log *utils.Logger) (*session, error) {
	cfg := config.Load()
	log.SetDebug(cfg.Debug)

	theme, err := config.LoadTheme(cfg.ThemePath)
	if err != nil {
		return nil, err
	}

	src, err := storage.NewSource(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Loading launch records from %s", src.Describe())
	ds, err := src.Load(ctx)
	if err != nil {
		var loadErr *storage.LoadError
		if errors.As(err, &loadErr) {
			log.Error("Dataset could not be loaded (%s): %s", loadErr.Source, loadErr.Reason)
		}
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	bounds := ds.PayloadBounds()
	log.Info("Loaded %d launches from %d sites — payload %.0f..%.0f kg",
		ds.Len(), len(ds.Sites()), bounds.Low, bounds.High)

	views, err := services.NewThemedViewBuilder(theme, log)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, theme: theme, dataset: ds, views: views}, nil
}

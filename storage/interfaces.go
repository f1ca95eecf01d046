package storage

import (
	"context"
	"fmt"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
)

// LaunchSource is anything that can produce the launch dataset at startup.
type LaunchSource interface {
	Load(ctx context.Context) (*models.Dataset, error)
	Describe() string
}

// NewSource returns the LaunchSource selected by cfg.DataSource.
func NewSource(cfg *config.Config) (LaunchSource, error) {
	switch cfg.DataSource {
	case "", config.SourceCSV:
		return NewCSVReader(cfg.DataPath), nil
	case config.SourcePostgres:
		return NewPostgresReader(cfg.DSN(), cfg.PostgresTable), nil
	default:
		return nil, fmt.Errorf("storage: unknown DATA_SOURCE %q (want %q or %q)",
			cfg.DataSource, config.SourceCSV, config.SourcePostgres)
	}
}

//go:build e2e

package snapshot

import (
	"context"
	"image/png"
	"os"
	"testing"
	"time"

	"spacex-dashboard/config"
	"spacex-dashboard/dashboard"
	"spacex-dashboard/models"
	"spacex-dashboard/services"
	"spacex-dashboard/utils"
)

func TestRendererCapturesEverySite(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ds := models.NewDataset([]models.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 2296, Class: 1, BoosterCategory: "v1.1"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterCategory: "v1.1"},
		{Site: "KSC LC-39A", PayloadMassKg: 5300, Class: 1, BoosterCategory: "FT"},
		{Site: "CCAFS SLC-40", PayloadMassKg: 3600, Class: 1, BoosterCategory: "B5"},
	})
	theme := config.DefaultTheme()
	views, err := services.NewThemedViewBuilder(theme, nil)
	if err != nil {
		t.Fatal(err)
	}
	srv, err := dashboard.NewServer(ds, dashboard.DefaultRegistry(views), theme, nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		ChromeBin:           os.Getenv("CHROME_BIN"),
		SnapshotDir:         t.TempDir(),
		SnapshotConcurrency: 2,
		SnapshotRetries:     1,
	}
	results, err := New(cfg, srv, utils.NewDiscardLogger()).Run(ctx, DefaultTargets())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, res := range results {
		f, err := os.Open(res.Path)
		if err != nil {
			t.Fatalf("%s: %v", res.Target.Site, err)
		}
		if _, err := png.DecodeConfig(f); err != nil {
			t.Errorf("%s: not a png: %v", res.Target.Site, err)
		}
		f.Close()
	}
}

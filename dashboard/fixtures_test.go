package dashboard

import (
	"testing"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
	"spacex-dashboard/services"
	"spacex-dashboard/utils"
)

func sampleDataset() *models.Dataset {
	return models.NewDataset([]models.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", PayloadMassKg: 525, Class: 0, BoosterCategory: "v1.0"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterCategory: "v1.1"},
		{Site: "CCAFS LC-40", PayloadMassKg: 2296, Class: 1, BoosterCategory: "v1.1"},
		{Site: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMassKg: 5300, Class: 1, BoosterCategory: "FT"},
		{Site: "CCAFS SLC-40", PayloadMassKg: 3600, Class: 1, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMassKg: 9600, Class: 0, BoosterCategory: "B4"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 1, BoosterCategory: "B4"},
		{Site: "CCAFS SLC-40", PayloadMassKg: 3000, Class: 0, BoosterCategory: "B5"},
		{Site: "CCAFS LC-40", PayloadMassKg: 3170, Class: 1, BoosterCategory: "v1.1"},
	})
}

func testViews(t *testing.T) *services.ViewBuilder {
	t.Helper()
	views, err := services.NewThemedViewBuilder(config.DefaultTheme(), utils.NewDiscardLogger())
	if err != nil {
		t.Fatalf("NewThemedViewBuilder: %v", err)
	}
	return views
}

func newTestBinding(t *testing.T) *Binding {
	t.Helper()
	return NewBinding(sampleDataset(), DefaultRegistry(testViews(t)), utils.NewDiscardLogger())
}

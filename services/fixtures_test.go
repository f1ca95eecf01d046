package services

import (
	"testing"

	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

func sampleRecords() []models.LaunchRecord {
	return []models.LaunchRecord{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 2, Site: "CCAFS LC-40", PayloadMassKg: 525, Class: 0, BoosterCategory: "v1.0"},
		{FlightNumber: 3, Site: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterCategory: "v1.1"},
		{FlightNumber: 4, Site: "CCAFS LC-40", PayloadMassKg: 2296, Class: 1, BoosterCategory: "v1.1"},
		{FlightNumber: 5, Site: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterCategory: "FT"},
		{FlightNumber: 6, Site: "KSC LC-39A", PayloadMassKg: 5300, Class: 1, BoosterCategory: "FT"},
		{FlightNumber: 7, Site: "CCAFS SLC-40", PayloadMassKg: 3600, Class: 1, BoosterCategory: "FT"},
		{FlightNumber: 8, Site: "KSC LC-39A", PayloadMassKg: 9600, Class: 0, BoosterCategory: "B4"},
		{FlightNumber: 9, Site: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 1, BoosterCategory: "B4"},
		{FlightNumber: 10, Site: "CCAFS SLC-40", PayloadMassKg: 3000, Class: 0, BoosterCategory: "B5"},
		{FlightNumber: 11, Site: "CCAFS LC-40", PayloadMassKg: 3170, Class: 1, BoosterCategory: "v1.1"},
	}
}

func newTestBuilder(t *testing.T) *ViewBuilder {
	t.Helper()
	b, err := NewViewBuilder(DefaultPalette, DefaultPalette, utils.NewDiscardLogger())
	if err != nil {
		t.Fatalf("NewViewBuilder: %v", err)
	}
	return b
}

package models

// AllSites is the site selector sentinel meaning "do not filter by site".
const AllSites = "All Sites"

// KnownSites are the launch sites offered by the site dropdown, in display order.
var KnownSites = []string{
	"CCAFS LC-40",
	"VAFB SLC-4E",
	"KSC LC-39A",
	"CCAFS SLC-40",
}

// Payload slider bounds in kilograms.
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// LaunchRecord is one row of the launch dataset.
// Records are loaded once and never mutated afterwards.
type LaunchRecord struct {
	FlightNumber    int
	Site            string
	PayloadMassKg   float64
	Class           int // 1 = success, 0 = failure
	BoosterVersion  string
	BoosterCategory string
}

// Succeeded reports whether the launch outcome class is a success.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == 1
}

// Dataset is the immutable in-memory launch table.
type Dataset struct {
	records    []LaunchRecord
	minPayload float64
	maxPayload float64
	sites      []string
}

// NewDataset takes ownership of records and computes the payload bounds.
// Callers must not modify records after the call.
func NewDataset(records []LaunchRecord) *Dataset {
	ds := &Dataset{records: records}

	seen := make(map[string]struct{})
	for i, r := range records {
		if i == 0 || r.PayloadMassKg < ds.minPayload {
			ds.minPayload = r.PayloadMassKg
		}
		if i == 0 || r.PayloadMassKg > ds.maxPayload {
			ds.maxPayload = r.PayloadMassKg
		}
		if _, ok := seen[r.Site]; !ok {
			seen[r.Site] = struct{}{}
			ds.sites = append(ds.sites, r.Site)
		}
	}
	return ds
}

// Records returns the table in file order. The slice is shared; do not modify it.
func (d *Dataset) Records() []LaunchRecord { return d.records }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// MinPayload is the smallest payload mass in the table.
func (d *Dataset) MinPayload() float64 { return d.minPayload }

// MaxPayload is the largest payload mass in the table.
func (d *Dataset) MaxPayload() float64 { return d.maxPayload }

// PayloadBounds returns the full payload range of the table.
func (d *Dataset) PayloadBounds() PayloadRange {
	return PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// Sites returns the distinct launch sites in first-encountered order.
func (d *Dataset) Sites() []string { return d.sites }

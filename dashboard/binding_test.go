package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"spacex-dashboard/models"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		id      string
		want    Input
		wantErr bool
	}{
		{"site-dropdown.value", InputSite, false},
		{"payload-slider.value", InputPayload, false},
		{"site-dropdown", InputSite, false},
		{"success-pie-chart.figure", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseInput(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInput(%q) err = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseInput(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNewRegistryValidation(t *testing.T) {
	render := func(*models.Dataset, models.FilterSelection) models.ChartView { return models.ChartView{} }

	if _, err := NewRegistry(Callback{Output: OutputProportion, Inputs: []Input{InputSite}}); err == nil {
		t.Error("expected error for missing render func")
	}
	if _, err := NewRegistry(Callback{Output: OutputProportion, Render: render}); err == nil {
		t.Error("expected error for missing inputs")
	}
	if _, err := NewRegistry(
		Callback{Output: OutputScatter, Inputs: []Input{InputSite}, Render: render},
		Callback{Output: OutputScatter, Inputs: []Input{InputPayload}, Render: render},
	); err == nil {
		t.Error("expected error for duplicate output")
	}
}

func outputsOf(cbs []Callback) []Output {
	out := make([]Output, 0, len(cbs))
	for _, cb := range cbs {
		out = append(out, cb.Output)
	}
	return out
}

func TestRegistryDependents(t *testing.T) {
	r := DefaultRegistry(testViews(t))

	tests := []struct {
		name    string
		changed []Input
		want    []Output
	}{
		{"site", []Input{InputSite}, []Output{OutputProportion, OutputScatter}},
		{"payload", []Input{InputPayload}, []Output{OutputScatter}},
		{"both", []Input{InputPayload, InputSite}, []Output{OutputProportion, OutputScatter}},
		{"none", nil, []Output{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, outputsOf(r.Dependents(tt.changed...))); diff != "" {
				t.Errorf("dependents (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindingInitialState(t *testing.T) {
	b := newTestBinding(t)

	sel := b.Selection()
	if sel.Site != models.AllSites {
		t.Errorf("initial site: got %q", sel.Site)
	}
	if sel.Payload != (models.PayloadRange{Low: 0, High: 9600}) {
		t.Errorf("initial payload: got %+v", sel.Payload)
	}

	for _, out := range []Output{OutputProportion, OutputScatter} {
		if b.Renders(out) != 1 {
			t.Errorf("%s renders: got %d, want 1", out, b.Renders(out))
		}
		if b.State(out) != CellIdle {
			t.Errorf("%s state: got %s, want idle", out, b.State(out))
		}
	}

	pie, _ := b.View(OutputProportion)
	if len(pie.Proportion.Slices) != 4 {
		t.Errorf("initial pie slices: got %d, want 4", len(pie.Proportion.Slices))
	}
	scatter, _ := b.View(OutputScatter)
	if scatter.Scatter.PointCount() != 11 {
		t.Errorf("initial scatter points: got %d, want 11", scatter.Scatter.PointCount())
	}
}

func TestBindingSiteChangeRebuildsBoth(t *testing.T) {
	b := newTestBinding(t)

	rebuilt := b.SetSite("CCAFS LC-40")
	if diff := cmp.Diff([]Output{OutputProportion, OutputScatter}, rebuilt); diff != "" {
		t.Errorf("rebuilt (-want +got):\n%s", diff)
	}
	if b.Renders(OutputProportion) != 2 || b.Renders(OutputScatter) != 2 {
		t.Errorf("renders: pie=%d scatter=%d, want 2/2", b.Renders(OutputProportion), b.Renders(OutputScatter))
	}

	pie, _ := b.View(OutputProportion)
	if pie.Proportion.Title != "Total Success Launches for Site CCAFS LC-40" {
		t.Errorf("pie title: got %q", pie.Proportion.Title)
	}
	if len(pie.Proportion.Slices) > 2 {
		t.Errorf("site pie has %d slices, want at most 2", len(pie.Proportion.Slices))
	}
}

func TestBindingPayloadChangeRebuildsScatterOnly(t *testing.T) {
	b := newTestBinding(t)

	rebuilt := b.SetPayloadRange(models.PayloadRange{Low: 2000, High: 4000})
	if diff := cmp.Diff([]Output{OutputScatter}, rebuilt); diff != "" {
		t.Errorf("rebuilt (-want +got):\n%s", diff)
	}
	if b.Renders(OutputProportion) != 1 {
		t.Errorf("pie should not be rebuilt, renders=%d", b.Renders(OutputProportion))
	}

	scatter, _ := b.View(OutputScatter)
	for _, s := range scatter.Scatter.Series {
		for _, p := range s.Points {
			if p.X < 2000 || p.X > 4000 {
				t.Errorf("point %v outside [2000, 4000]", p.X)
			}
		}
	}
	if scatter.Scatter.PointCount() != 5 {
		t.Errorf("points: got %d, want 5", scatter.Scatter.PointCount())
	}
}

func TestBindingUnchangedValueIsNoop(t *testing.T) {
	b := newTestBinding(t)

	if got := b.SetSite(models.AllSites); got != nil {
		t.Errorf("same site should rebuild nothing, got %v", got)
	}
	if got := b.SetPayloadRange(b.Selection().Payload); got != nil {
		t.Errorf("same range should rebuild nothing, got %v", got)
	}
	if b.Renders(OutputScatter) != 1 {
		t.Errorf("scatter renders: got %d, want 1", b.Renders(OutputScatter))
	}
}

func TestBindingEmptyResults(t *testing.T) {
	b := newTestBinding(t)

	b.SetSite("VAFB SLC-4E")
	b.SetPayloadRange(models.PayloadRange{Low: 2000, High: 4000})
	scatter, _ := b.View(OutputScatter)
	if len(scatter.Scatter.Series) != 0 {
		t.Errorf("expected empty scatter, got %d series", len(scatter.Scatter.Series))
	}

	b.SetPayloadRange(models.PayloadRange{Low: 4000, High: 2000})
	scatter, _ = b.View(OutputScatter)
	if scatter.Scatter.PointCount() != 0 {
		t.Errorf("inverted range should yield no points, got %d", scatter.Scatter.PointCount())
	}

	b.SetSite("Boca Chica")
	pie, _ := b.View(OutputProportion)
	if len(pie.Proportion.Slices) != 0 {
		t.Errorf("unknown site should yield empty pie, got %d slices", len(pie.Proportion.Slices))
	}
}

func TestBindingCellStateDuringRender(t *testing.T) {
	var b *Binding
	var observed []CellState

	render := func(ds *models.Dataset, sel models.FilterSelection) models.ChartView {
		if b != nil {
			observed = append(observed, b.State(OutputScatter))
		}
		return models.ChartView{Kind: models.ChartScatter, Scatter: &models.ScatterView{}}
	}
	reg, err := NewRegistry(Callback{Output: OutputScatter, Inputs: []Input{InputPayload}, Render: render})
	if err != nil {
		t.Fatal(err)
	}

	b = NewBinding(sampleDataset(), reg, nil)
	b.SetPayloadRange(models.PayloadRange{Low: 1, High: 2})

	if diff := cmp.Diff([]CellState{CellRecomputing}, observed); diff != "" {
		t.Errorf("state during render (-want +got):\n%s", diff)
	}
	if b.State(OutputScatter) != CellIdle {
		t.Errorf("state after render: got %s, want idle", b.State(OutputScatter))
	}
}

func TestBindingOnRender(t *testing.T) {
	b := newTestBinding(t)

	var notified []Output
	b.OnRender(func(out Output, view models.ChartView) {
		notified = append(notified, out)
		if view.Title() == "" {
			t.Errorf("%s rendered without a title", out)
		}
	})

	b.SetPayloadRange(models.PayloadRange{Low: 0, High: 5000})
	b.SetSite("KSC LC-39A")

	want := []Output{OutputScatter, OutputProportion, OutputScatter}
	if diff := cmp.Diff(want, notified); diff != "" {
		t.Errorf("notifications (-want +got):\n%s", diff)
	}
}

func TestBindingFullReplacement(t *testing.T) {
	b := newTestBinding(t)
	before, _ := b.View(OutputScatter)

	b.SetSite("KSC LC-39A")
	b.SetSite(models.AllSites)
	after, _ := b.View(OutputScatter)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("returning to the same selection should rebuild an identical view (-before +after):\n%s", diff)
	}
}

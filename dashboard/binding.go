package dashboard

import (
	"fmt"
	"strings"

	"spacex-dashboard/models"
	"spacex-dashboard/services"
	"spacex-dashboard/utils"
)

// Input is a UI control whose value drives chart recomputation.
type Input string

const (
	InputSite    Input = "site-dropdown"
	InputPayload Input = "payload-slider"
)

// Output is a chart region on the page.
type Output string

const (
	OutputProportion Output = "success-pie-chart"
	OutputScatter    Output = "success-payload-scatter-chart"
)

// ParseInput maps a "<id>.value" property id (or a bare id) to an Input.
func ParseInput(propID string) (Input, error) {
	switch in := Input(strings.TrimSuffix(propID, ".value")); in {
	case InputSite, InputPayload:
		return in, nil
	}
	return "", fmt.Errorf("unknown input %q", propID)
}

// RenderFunc rebuilds a chart from the full dataset and the current selection.
type RenderFunc func(ds *models.Dataset, sel models.FilterSelection) models.ChartView

// Callback declares which inputs an output depends on and how it is rendered.
type Callback struct {
	Output Output
	Inputs []Input
	Render RenderFunc
}

// DependsOn reports whether in is one of the callback's inputs.
func (c Callback) DependsOn(in Input) bool {
	for _, i := range c.Inputs {
		if i == in {
			return true
		}
	}
	return false
}

// Rendered pairs an output with its freshly built view.
type Rendered struct {
	Output Output
	View   models.ChartView
}

// Registry is the static output/input dependency table.
type Registry struct {
	callbacks []Callback
}

// NewRegistry validates and stores callbacks in evaluation order.
func NewRegistry(callbacks ...Callback) (*Registry, error) {
	seen := make(map[Output]struct{}, len(callbacks))
	for _, cb := range callbacks {
		if cb.Render == nil {
			return nil, fmt.Errorf("dashboard: callback %q has no render func", cb.Output)
		}
		if len(cb.Inputs) == 0 {
			return nil, fmt.Errorf("dashboard: callback %q has no inputs", cb.Output)
		}
		if _, dup := seen[cb.Output]; dup {
			return nil, fmt.Errorf("dashboard: output %q registered twice", cb.Output)
		}
		seen[cb.Output] = struct{}{}
	}
	return &Registry{callbacks: callbacks}, nil
}

// DefaultRegistry wires the pie chart to the site dropdown and the scatter
// chart to both the site dropdown and the payload slider.
func DefaultRegistry(views *services.ViewBuilder) *Registry {
	r, err := NewRegistry(
		Callback{
			Output: OutputProportion,
			Inputs: []Input{InputSite},
			Render: func(ds *models.Dataset, sel models.FilterSelection) models.ChartView {
				return views.BuildProportionView(ds.Records(), sel.Site)
			},
		},
		Callback{
			Output: OutputScatter,
			Inputs: []Input{InputSite, InputPayload},
			Render: func(ds *models.Dataset, sel models.FilterSelection) models.ChartView {
				return views.BuildScatterView(ds.Records(), sel.Site, sel.Payload)
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Callbacks returns the registered callbacks in evaluation order.
func (r *Registry) Callbacks() []Callback { return r.callbacks }

// Dependents returns the callbacks subscribed to any of changed, in evaluation order.
func (r *Registry) Dependents(changed ...Input) []Callback {
	var out []Callback
	for _, cb := range r.callbacks {
		for _, in := range changed {
			if cb.DependsOn(in) {
				out = append(out, cb)
				break
			}
		}
	}
	return out
}

// Evaluate renders every output depending on changed. It holds no state and
// is safe to call concurrently.
func (r *Registry) Evaluate(ds *models.Dataset, sel models.FilterSelection, changed ...Input) []Rendered {
	deps := r.Dependents(changed...)
	out := make([]Rendered, 0, len(deps))
	for _, cb := range deps {
		out = append(out, Rendered{Output: cb.Output, View: cb.Render(ds, sel)})
	}
	return out
}

// EvaluateAll renders every registered output.
func (r *Registry) EvaluateAll(ds *models.Dataset, sel models.FilterSelection) []Rendered {
	out := make([]Rendered, 0, len(r.callbacks))
	for _, cb := range r.callbacks {
		out = append(out, Rendered{Output: cb.Output, View: cb.Render(ds, sel)})
	}
	return out
}

// CellState is the lifecycle state of a reactive cell.
type CellState int

const (
	CellIdle CellState = iota
	CellRecomputing
)

func (s CellState) String() string {
	switch s {
	case CellIdle:
		return "idle"
	case CellRecomputing:
		return "recomputing"
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

type cell struct {
	callback Callback
	state    CellState
	view     models.ChartView
	renders  int
}

// Binding holds one UI session: the current selection and one reactive cell
// per output. Every input change synchronously rebuilds the dependent cells
// from the full dataset. A Binding is not safe for concurrent use.
type Binding struct {
	dataset   *models.Dataset
	registry  *Registry
	selection models.FilterSelection
	cells     []*cell
	listeners []func(Output, models.ChartView)
	logger    *utils.Logger
}

// NewBinding starts a session at the default selection with every cell rendered once.
func NewBinding(ds *models.Dataset, registry *Registry, logger *utils.Logger) *Binding {
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	b := &Binding{
		dataset:   ds,
		registry:  registry,
		selection: models.DefaultSelection(ds),
		logger:    logger,
	}
	for _, cb := range registry.Callbacks() {
		c := &cell{callback: cb}
		b.cells = append(b.cells, c)
		b.recompute(c)
	}
	return b
}

// OnRender registers fn to be called after each cell rebuild.
func (b *Binding) OnRender(fn func(Output, models.ChartView)) {
	b.listeners = append(b.listeners, fn)
}

// Selection returns the current filter selection.
func (b *Binding) Selection() models.FilterSelection { return b.selection }

// Dataset returns the dataset the binding reads from.
func (b *Binding) Dataset() *models.Dataset { return b.dataset }

// SetSite changes the site selector and returns the outputs that were rebuilt.
// Setting the current value again is not a change and rebuilds nothing.
func (b *Binding) SetSite(site string) []Output {
	if site == b.selection.Site {
		return nil
	}
	b.selection.Site = site
	return b.fire(InputSite)
}

// SetPayloadRange changes the payload range and returns the outputs that were rebuilt.
// An inverted range is accepted; it produces an empty scatter chart.
func (b *Binding) SetPayloadRange(rng models.PayloadRange) []Output {
	if rng == b.selection.Payload {
		return nil
	}
	b.selection.Payload = rng
	return b.fire(InputPayload)
}

// View returns the last view rendered for out.
func (b *Binding) View(out Output) (models.ChartView, bool) {
	if c := b.cell(out); c != nil {
		return c.view, true
	}
	return models.ChartView{}, false
}

// State returns the lifecycle state of out's cell.
func (b *Binding) State(out Output) CellState {
	if c := b.cell(out); c != nil {
		return c.state
	}
	return CellIdle
}

// Renders returns how many times out's cell has been rebuilt.
func (b *Binding) Renders(out Output) int {
	if c := b.cell(out); c != nil {
		return c.renders
	}
	return 0
}

func (b *Binding) cell(out Output) *cell {
	for _, c := range b.cells {
		if c.callback.Output == out {
			return c
		}
	}
	return nil
}

func (b *Binding) fire(changed Input) []Output {
	var rebuilt []Output
	for _, c := range b.cells {
		if !c.callback.DependsOn(changed) {
			continue
		}
		b.recompute(c)
		rebuilt = append(rebuilt, c.callback.Output)
	}
	b.logger.Debug("[binding] %s changed, rebuilt %v", changed, rebuilt)
	return rebuilt
}

func (b *Binding) recompute(c *cell) {
	c.state = CellRecomputing
	c.view = c.callback.Render(b.dataset, b.selection)
	c.renders++
	c.state = CellIdle

	for _, fn := range b.listeners {
		fn(c.callback.Output, c.view)
	}
}

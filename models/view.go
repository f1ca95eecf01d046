package models

// ChartKind identifies which view a ChartView carries.
type ChartKind string

const (
	ChartProportion ChartKind = "pie"
	ChartScatter    ChartKind = "scatter"
)

// ChartView is a derived, render-ready chart. Exactly one of Proportion or
// Scatter is populated, matching Kind.
type ChartView struct {
	Kind       ChartKind       `json:"kind"`
	Proportion *ProportionView `json:"proportion,omitempty"`
	Scatter    *ScatterView    `json:"scatter,omitempty"`
}

// Title returns the title of whichever view is populated.
func (v ChartView) Title() string {
	switch {
	case v.Proportion != nil:
		return v.Proportion.Title
	case v.Scatter != nil:
		return v.Scatter.Title
	}
	return ""
}

// ProportionView is a pie breakdown: one slice per grouping key.
type ProportionView struct {
	Title  string  `json:"title"`
	Slices []Slice `json:"slices"`
}

// Slice is a single pie segment.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Total sums all slice values.
func (p *ProportionView) Total() float64 {
	var total float64
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// ScatterView is a point collection grouped by booster category.
type ScatterView struct {
	Title      string        `json:"title"`
	XAxisTitle string        `json:"xAxisTitle"`
	YAxisTitle string        `json:"yAxisTitle"`
	Series     []PointSeries `json:"series"`
}

// PointCount returns the number of points across all series.
func (s *ScatterView) PointCount() int {
	n := 0
	for _, ps := range s.Series {
		n += len(ps.Points)
	}
	return n
}

// PointSeries is the set of points for one booster category.
type PointSeries struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Point is a single launch plotted as payload mass against outcome class.
type Point struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

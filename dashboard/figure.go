package dashboard

import (
	"spacex-dashboard/config"
	"spacex-dashboard/models"
)

// Figure is a Plotly-compatible figure: traces plus layout.
type Figure struct {
	Data   []any  `json:"data"`
	Layout Layout `json:"layout"`
}

// PieTrace is a Plotly pie trace.
type PieTrace struct {
	Type         string    `json:"type"`
	Labels       []string  `json:"labels"`
	Values       []float64 `json:"values"`
	Hole         float64   `json:"hole"`
	Marker       PieMarker `json:"marker"`
	TextPosition string    `json:"textposition"`
	TextInfo     string    `json:"textinfo"`
	TextFont     Font      `json:"textfont"`
}

// PieMarker holds the per-slice colors.
type PieMarker struct {
	Colors []string `json:"colors"`
}

// ScatterTrace is a Plotly scatter trace in marker mode.
type ScatterTrace struct {
	Type   string        `json:"type"`
	Mode   string        `json:"mode"`
	Name   string        `json:"name"`
	X      []float64     `json:"x"`
	Y      []float64     `json:"y"`
	Text   []string      `json:"text"`
	Marker ScatterMarker `json:"marker"`
}

// ScatterMarker sets marker size and series color.
type ScatterMarker struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// Layout is the themed figure layout; axes and legend are scatter only.
type Layout struct {
	Title        Title   `json:"title"`
	PlotBgColor  string  `json:"plot_bgcolor"`
	PaperBgColor string  `json:"paper_bgcolor"`
	Font         Font    `json:"font"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
}

// Title is a figure or axis title.
type Title struct {
	Text string `json:"text"`
}

// Font styles text in a figure.
type Font struct {
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

// Axis is a themed cartesian axis.
type Axis struct {
	Title     Title  `json:"title"`
	ShowGrid  bool   `json:"showgrid"`
	GridColor string `json:"gridcolor"`
	ZeroLine  bool   `json:"zeroline"`
	TickFont  Font   `json:"tickfont"`
}

// Legend styles the scatter series legend.
type Legend struct {
	Font Font `json:"font"`
}

const markerSize = 10

// NewFigure renders a chart view into a themed Plotly figure.
func NewFigure(view models.ChartView, theme config.Theme) Figure {
	switch {
	case view.Proportion != nil:
		return pieFigure(view.Proportion, theme)
	case view.Scatter != nil:
		return scatterFigure(view.Scatter, theme)
	}
	return Figure{Data: []any{}, Layout: baseLayout("", theme)}
}

func baseLayout(title string, theme config.Theme) Layout {
	return Layout{
		Title:        Title{Text: title},
		PlotBgColor:  theme.PlotBackground,
		PaperBgColor: theme.PaperBackground,
		Font:         Font{Color: theme.Text, Family: theme.FontFamily},
	}
}

func pieFigure(p *models.ProportionView, theme config.Theme) Figure {
	trace := PieTrace{
		Type:         "pie",
		Labels:       make([]string, 0, len(p.Slices)),
		Values:       make([]float64, 0, len(p.Slices)),
		Hole:         0.3,
		Marker:       PieMarker{Colors: make([]string, 0, len(p.Slices))},
		TextPosition: "inside",
		TextInfo:     "percent+label",
		TextFont:     Font{Color: "black"},
	}
	for _, s := range p.Slices {
		trace.Labels = append(trace.Labels, s.Label)
		trace.Values = append(trace.Values, s.Value)
		trace.Marker.Colors = append(trace.Marker.Colors, s.Color)
	}
	return Figure{Data: []any{trace}, Layout: baseLayout(p.Title, theme)}
}

func scatterFigure(s *models.ScatterView, theme config.Theme) Figure {
	data := make([]any, 0, len(s.Series))
	for _, series := range s.Series {
		trace := ScatterTrace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   series.Name,
			X:      make([]float64, 0, len(series.Points)),
			Y:      make([]float64, 0, len(series.Points)),
			Text:   make([]string, 0, len(series.Points)),
			Marker: ScatterMarker{Size: markerSize, Color: series.Color},
		}
		for _, p := range series.Points {
			trace.X = append(trace.X, p.X)
			trace.Y = append(trace.Y, p.Y)
			trace.Text = append(trace.Text, p.Text)
		}
		data = append(data, trace)
	}

	layout := baseLayout(s.Title, theme)
	layout.XAxis = themedAxis(s.XAxisTitle, theme)
	layout.YAxis = themedAxis(s.YAxisTitle, theme)
	layout.Legend = &Legend{Font: Font{Color: theme.Text}}

	return Figure{Data: data, Layout: layout}
}

func themedAxis(title string, theme config.Theme) *Axis {
	return &Axis{
		Title:     Title{Text: title},
		ShowGrid:  true,
		GridColor: theme.GridColor,
		ZeroLine:  false,
		TickFont:  Font{Color: theme.Text},
	}
}

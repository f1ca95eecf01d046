package services

import (
	"fmt"
	"strconv"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

// DefaultPalette is the five-color cycle used by both charts.
var DefaultPalette = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"}

// Chart titles and axis labels.
const (
	ProportionAllSitesTitle = "Total Success Launches by Site"
	ScatterXAxisTitle       = "Payload Mass (kg)"
	ScatterYAxisTitle       = "Class"
)

// ViewBuilder turns filtered launch tables into chart views.
type ViewBuilder struct {
	pieColors     []string
	scatterColors []string
	logger        *utils.Logger
}

// NewViewBuilder creates a ViewBuilder with separate pie and scatter palettes.
// Each palette must hold exactly config.PaletteSize colors.
func NewViewBuilder(pieColors, scatterColors []string, logger *utils.Logger) (*ViewBuilder, error) {
	if len(pieColors) != config.PaletteSize || len(scatterColors) != config.PaletteSize {
		return nil, fmt.Errorf("views: palettes must hold %d colors (pie=%d, scatter=%d)",
			config.PaletteSize, len(pieColors), len(scatterColors))
	}
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	return &ViewBuilder{
		pieColors:     append([]string(nil), pieColors...),
		scatterColors: append([]string(nil), scatterColors...),
		logger:        logger,
	}, nil
}

// NewThemedViewBuilder creates a ViewBuilder from the theme palettes.
func NewThemedViewBuilder(theme config.Theme, logger *utils.Logger) (*ViewBuilder, error) {
	return NewViewBuilder(theme.PieColors, theme.ScatterColors, logger)
}

// PieColor returns the pie palette color for position i.
func (b *ViewBuilder) PieColor(i int) string {
	return b.pieColors[i%len(b.pieColors)]
}

// ScatterColor returns the scatter palette color for the i-th booster category.
func (b *ViewBuilder) ScatterColor(i int) string {
	return b.scatterColors[i%len(b.scatterColors)]
}

// BuildProportionView builds the pie chart for site.
//
// For AllSites it emits one slice per site whose value is the mean outcome
// class (success rate). For a specific site it emits one slice per outcome
// class value with the launch count. Slices keep the first-encountered order
// of their key in records.
func (b *ViewBuilder) BuildProportionView(records []models.LaunchRecord, site string) models.ChartView {
	var view *models.ProportionView
	if site == models.AllSites {
		view = b.successRateBySite(records)
	} else {
		view = b.outcomeCounts(FilterBySite(records, site), site)
	}

	b.logger.Debug("[views] proportion site=%q slices=%d", site, len(view.Slices))
	return models.ChartView{Kind: models.ChartProportion, Proportion: view}
}

func (b *ViewBuilder) successRateBySite(records []models.LaunchRecord) *models.ProportionView {
	type acc struct {
		sum   int
		count int
	}

	var order []string
	groups := make(map[string]*acc)
	for _, r := range records {
		g, ok := groups[r.Site]
		if !ok {
			g = &acc{}
			groups[r.Site] = g
			order = append(order, r.Site)
		}
		g.sum += r.Class
		g.count++
	}

	view := &models.ProportionView{
		Title:  ProportionAllSitesTitle,
		Slices: make([]models.Slice, 0, len(order)),
	}
	for i, site := range order {
		g := groups[site]
		view.Slices = append(view.Slices, models.Slice{
			Label: site,
			Value: float64(g.sum) / float64(g.count),
			Color: b.PieColor(i),
		})
	}
	return view
}

func (b *ViewBuilder) outcomeCounts(records []models.LaunchRecord, site string) *models.ProportionView {
	var order []int
	counts := make(map[int]int)
	for _, r := range records {
		if _, ok := counts[r.Class]; !ok {
			order = append(order, r.Class)
		}
		counts[r.Class]++
	}

	view := &models.ProportionView{
		Title:  ProportionSiteTitle(site),
		Slices: make([]models.Slice, 0, len(order)),
	}
	for i, class := range order {
		view.Slices = append(view.Slices, models.Slice{
			Label: strconv.Itoa(class),
			Value: float64(counts[class]),
			Color: b.PieColor(i),
		})
	}
	return view
}

// BuildScatterView builds the payload/outcome scatter chart for site and rng.
// Points are grouped by booster category in first-encountered order; the k-th
// category gets scatter palette color k mod 5.
func (b *ViewBuilder) BuildScatterView(records []models.LaunchRecord, site string, rng models.PayloadRange) models.ChartView {
	working := FilterSelection(records, models.FilterSelection{Site: site, Payload: rng})

	var order []string
	byCategory := make(map[string][]models.Point)
	for _, r := range working {
		if _, ok := byCategory[r.BoosterCategory]; !ok {
			order = append(order, r.BoosterCategory)
		}
		byCategory[r.BoosterCategory] = append(byCategory[r.BoosterCategory], models.Point{
			X:    r.PayloadMassKg,
			Y:    float64(r.Class),
			Text: r.Site,
		})
	}

	view := &models.ScatterView{
		Title:      ScatterTitle(site),
		XAxisTitle: ScatterXAxisTitle,
		YAxisTitle: ScatterYAxisTitle,
		Series:     make([]models.PointSeries, 0, len(order)),
	}
	for k, category := range order {
		view.Series = append(view.Series, models.PointSeries{
			Name:   category,
			Color:  b.ScatterColor(k),
			Points: byCategory[category],
		})
	}

	b.logger.Debug("[views] scatter site=%q range=[%v, %v] series=%d points=%d",
		site, rng.Low, rng.High, len(view.Series), view.PointCount())
	return models.ChartView{Kind: models.ChartScatter, Scatter: view}
}

// ProportionSiteTitle is the pie title for a single site.
func ProportionSiteTitle(site string) string {
	return "Total Success Launches for Site " + site
}

// ScatterTitle is the scatter title for a site selector.
func ScatterTitle(site string) string {
	if site == models.AllSites {
		return "Correlation Between Payload and Success for All Sites"
	}
	return "Correlation Between Payload and Success for " + site
}

package services

import (
	"fmt"
	"io"
	"strings"

	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

// SiteStats summarises the launches of one site.
type SiteStats struct {
	Site        string
	Launches    int
	Successes   int
	SuccessRate float64
}

// CategoryStats summarises the launches of one booster category.
type CategoryStats struct {
	Category  string
	Launches  int
	Successes int
}

// InsightReport is the dataset overview printed by the summary command.
type InsightReport struct {
	TotalLaunches int
	Successes     int
	SuccessRate   float64
	MinPayload    float64
	MaxPayload    float64
	MeanPayload   float64
	Sites         []SiteStats     // first-encountered order
	Categories    []CategoryStats // first-encountered order
}

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(ds *models.Dataset) *InsightReport {
	report := &InsightReport{}
	if ds == nil || ds.Len() == 0 {
		return report
	}

	records := ds.Records()
	report.TotalLaunches = len(records)
	report.MinPayload = ds.MinPayload()
	report.MaxPayload = ds.MaxPayload()

	siteIdx := make(map[string]int)
	catIdx := make(map[string]int)
	var payloadTotal float64

	for _, r := range records {
		payloadTotal += r.PayloadMassKg
		if r.Succeeded() {
			report.Successes++
		}

		i, ok := siteIdx[r.Site]
		if !ok {
			i = len(report.Sites)
			siteIdx[r.Site] = i
			report.Sites = append(report.Sites, SiteStats{Site: r.Site})
		}
		report.Sites[i].Launches++
		report.Sites[i].Successes += r.Class

		j, ok := catIdx[r.BoosterCategory]
		if !ok {
			j = len(report.Categories)
			catIdx[r.BoosterCategory] = j
			report.Categories = append(report.Categories, CategoryStats{Category: r.BoosterCategory})
		}
		report.Categories[j].Launches++
		report.Categories[j].Successes += r.Class
	}

	for i := range report.Sites {
		st := &report.Sites[i]
		st.SuccessRate = round2(float64(st.Successes) / float64(st.Launches))
	}
	report.SuccessRate = round2(float64(report.Successes) / float64(report.TotalLaunches))
	report.MeanPayload = round2(payloadTotal / float64(report.TotalLaunches))

	s.logger.Debug("[insights] %d launches across %d sites", report.TotalLaunches, len(report.Sites))
	return report
}

func (s *InsightService) Print(w io.Writer, r *InsightReport) {
	sep := strings.Repeat("═", 58)
	thin := strings.Repeat("─", 58)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintf(w, "  SPACEX LAUNCH RECORDS\n")
	fmt.Fprintf(w, "%s\n\n", sep)

	fmt.Fprintf(w, "  Overview\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Total launches   : %d\n", r.TotalLaunches)
	fmt.Fprintf(w, "  Successful       : %d\n", r.Successes)
	fmt.Fprintf(w, "  Success rate     : %.0f%%\n", r.SuccessRate*100)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Payload Mass (kg)\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.TotalLaunches > 0 {
		fmt.Fprintf(w, "  Minimum : %.1f\n", r.MinPayload)
		fmt.Fprintf(w, "  Mean    : %.1f\n", r.MeanPayload)
		fmt.Fprintf(w, "  Maximum : %.1f\n", r.MaxPayload)
	} else {
		fmt.Fprintf(w, "  No payload data available\n")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Launches by Site\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.Sites) == 0 {
		fmt.Fprintf(w, "  No site data\n")
	}
	for _, st := range r.Sites {
		bar := strings.Repeat("█", st.Successes) + strings.Repeat("░", st.Launches-st.Successes)
		fmt.Fprintf(w, "  %-14s %s %d/%d (%.0f%%)\n",
			truncate(st.Site, 14), bar, st.Successes, st.Launches, st.SuccessRate*100)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Launches by Booster Version Category\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.Categories) == 0 {
		fmt.Fprintf(w, "  No booster data\n")
	}
	for _, c := range r.Categories {
		fmt.Fprintf(w, "  %-10s %3d launches, %3d successful\n", truncate(c.Category, 10), c.Launches, c.Successes)
	}

	fmt.Fprintf(w, "\n%s\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

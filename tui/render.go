package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"spacex-dashboard/models"
)

const noMatches = "No launches match the selection"

// ProportionText renders a proportion view as one colored bar per slice.
// Bars are scaled to width by each slice's share of the total.
func ProportionText(view *models.ProportionView, width int) string {
	if view == nil || len(view.Slices) == 0 {
		return noMatches
	}

	labelWidth := 0
	for _, s := range view.Slices {
		labelWidth = max(labelWidth, len(s.Label))
	}

	total := view.Total()
	var b strings.Builder
	for _, s := range view.Slices {
		share := 0.0
		if total > 0 {
			share = s.Value / total
		}
		bar := strings.Repeat("█", int(math.Round(share*float64(width))))
		fmt.Fprintf(&b, "%-*s [%s]%s[-] %s (%.1f%%)\n",
			labelWidth, s.Label, s.Color, bar, formatValue(s.Value), share*100)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ScatterRow summarizes one booster category series.
type ScatterRow struct {
	Name       string
	Color      string
	Points     int
	Successes  int
	MinPayload float64
	MaxPayload float64
}

// Span formats the payload interval covered by the series.
func (r ScatterRow) Span() string {
	return fmt.Sprintf("%s – %s kg", formatValue(r.MinPayload), formatValue(r.MaxPayload))
}

// SummarizeScatter reduces a scatter view to one row per series, in series order.
func SummarizeScatter(view *models.ScatterView) []ScatterRow {
	if view == nil {
		return nil
	}
	rows := make([]ScatterRow, 0, len(view.Series))
	for _, s := range view.Series {
		row := ScatterRow{Name: s.Name, Color: s.Color, Points: len(s.Points)}
		for i, p := range s.Points {
			if i == 0 || p.X < row.MinPayload {
				row.MinPayload = p.X
			}
			if i == 0 || p.X > row.MaxPayload {
				row.MaxPayload = p.X
			}
			if p.Y == 1 {
				row.Successes++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// acceptDigits is the input field acceptance func for payload bounds.
func acceptDigits(text string, last rune) bool {
	return len(text) <= 5 && unicode.IsDigit(last)
}

// parseBound reads a payload bound field, keeping fallback for an empty field.
func parseBound(text string, fallback float64) float64 {
	if text == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fallback
	}
	return v
}

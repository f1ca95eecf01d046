package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PaletteSize is the number of colors every chart palette cycles through.
const PaletteSize = 5

// Theme holds the dashboard colors.
type Theme struct {
	Background         string   `yaml:"background"`
	Text               string   `yaml:"text"`
	PlotBackground     string   `yaml:"plot_background"`
	PaperBackground    string   `yaml:"paper_background"`
	DropdownBackground string   `yaml:"dropdown_background"`
	DropdownText       string   `yaml:"dropdown_text"`
	GridColor          string   `yaml:"grid_color"`
	FontFamily         string   `yaml:"font_family"`
	PieColors          []string `yaml:"pie_colors"`
	ScatterColors      []string `yaml:"scatter_colors"`
}

// DefaultTheme is the dark dashboard theme.
func DefaultTheme() Theme {
	return Theme{
		Background:         "#111111",
		Text:               "#FFFF99",
		PlotBackground:     "#222222",
		PaperBackground:    "#111111",
		DropdownBackground: "#333333",
		DropdownText:       "#CCFFCC",
		GridColor:          "#444444",
		FontFamily:         "Roboto, sans-serif",
		PieColors:          []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"},
		ScatterColors:      []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"},
	}
}

// LoadTheme returns DefaultTheme overlaid with the YAML file at path.
// An empty path returns the default theme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("theme: parse %q: %w", path, err)
	}
	if err := theme.Validate(); err != nil {
		return Theme{}, fmt.Errorf("theme: %q: %w", path, err)
	}
	return theme, nil
}

// Validate checks that both palettes hold exactly PaletteSize colors.
func (t Theme) Validate() error {
	if len(t.PieColors) != PaletteSize {
		return fmt.Errorf("pie_colors must list %d colors, got %d", PaletteSize, len(t.PieColors))
	}
	if len(t.ScatterColors) != PaletteSize {
		return fmt.Errorf("scatter_colors must list %d colors, got %d", PaletteSize, len(t.ScatterColors))
	}
	return nil
}

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"spacex-dashboard/config"
)

// SetupTheme maps the dashboard theme onto the global tview styles.
func SetupTheme(theme config.Theme) {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.GetColor(theme.Background),
		ContrastBackgroundColor:     tcell.GetColor(theme.DropdownBackground),
		MoreContrastBackgroundColor: tcell.GetColor(theme.PlotBackground),
		BorderColor:                 tcell.GetColor(theme.GridColor),
		TitleColor:                  tcell.GetColor(theme.Text),
		GraphicsColor:               tcell.GetColor(theme.GridColor),
		PrimaryTextColor:            tcell.GetColor(theme.Text),
		SecondaryTextColor:          tcell.GetColor(theme.DropdownText),
		TertiaryTextColor:           tcell.GetColor(theme.DropdownText),
		InverseTextColor:            tcell.GetColor(theme.Background),
		ContrastSecondaryTextColor:  tcell.GetColor(theme.Text),
	}
}

package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"spacex-dashboard/dashboard"
	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

const barWidth = 40

// App is the terminal front-end of one dashboard session.
type App struct {
	app     *tview.Application
	binding *dashboard.Binding
	logger  *utils.Logger

	site    *tview.DropDown
	low     *tview.InputField
	high    *tview.InputField
	pie     *tview.TextView
	scatter *tview.Table
	footer  *tview.TextView
}

// New builds the terminal UI over binding and draws its initial views.
func New(binding *dashboard.Binding, logger *utils.Logger) *App {
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	a := &App{
		app:     tview.NewApplication(),
		binding: binding,
		logger:  logger,
	}
	a.build()

	binding.OnRender(a.redraw)
	for _, out := range []dashboard.Output{dashboard.OutputProportion, dashboard.OutputScatter} {
		if view, ok := binding.View(out); ok {
			a.redraw(out, view)
		}
	}
	return a
}

// Run blocks until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()
	if err := a.app.SetRoot(a.layout(), true).SetFocus(a.site).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *App) build() {
	sel := a.binding.Selection()

	options := append([]string{models.AllSites}, models.KnownSites...)
	a.site = tview.NewDropDown().
		SetLabel("Launch site: ").
		SetOptions(options, nil)
	a.site.SetCurrentOption(max(slices.Index(options, sel.Site), 0))
	a.site.SetSelectedFunc(func(text string, _ int) {
		a.report(a.binding.SetSite(text))
	})

	a.low = a.boundField("Payload low (kg): ", sel.Payload.Low)
	a.high = a.boundField("Payload high (kg): ", sel.Payload.High)

	a.pie = tview.NewTextView().SetDynamicColors(true)
	a.pie.SetBorder(true)

	a.scatter = tview.NewTable().SetBorders(false)
	a.scatter.SetBorder(true)

	a.footer = tview.NewTextView().SetDynamicColors(true).
		SetText("[::d]Tab: next field  Enter: apply range  q/Esc: quit")
}

func (a *App) boundField(label string, value float64) *tview.InputField {
	field := tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(7).
		SetText(strconv.FormatFloat(value, 'f', 0, 64)).
		SetAcceptanceFunc(acceptDigits)
	field.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			a.applyRange()
		}
	})
	return field
}

func (a *App) applyRange() {
	current := a.binding.Selection().Payload
	rng := models.PayloadRange{
		Low:  parseBound(a.low.GetText(), current.Low),
		High: parseBound(a.high.GetText(), current.High),
	}
	a.report(a.binding.SetPayloadRange(rng))
}

func (a *App) layout() tview.Primitive {
	controls := tview.NewFlex().
		AddItem(a.site, 0, 2, true).
		AddItem(a.low, 0, 1, false).
		AddItem(a.high, 0, 1, false)

	charts := tview.NewFlex().
		AddItem(a.pie, 0, 1, false).
		AddItem(a.scatter, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("SpaceX Launch Records Dashboard"), 1, 0, false).
		AddItem(controls, 1, 0, true).
		AddItem(charts, 0, 1, false).
		AddItem(a.footer, 1, 0, false)
	root.SetBorderPadding(0, 0, 1, 1)

	focus := []tview.Primitive{a.site, a.low, a.high}
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			a.app.Stop()
			return nil
		case event.Rune() == 'q' && a.app.GetFocus() == a.site:
			a.app.Stop()
			return nil
		case event.Key() == tcell.KeyTab:
			a.applyIfBound()
			next := (slices.Index(focus, a.app.GetFocus()) + 1) % len(focus)
			a.app.SetFocus(focus[next])
			return nil
		}
		return event
	})
	return root
}

func (a *App) applyIfBound() {
	if focused := a.app.GetFocus(); focused == a.low || focused == a.high {
		a.applyRange()
	}
}

// redraw replaces only the panel of the rebuilt output.
func (a *App) redraw(out dashboard.Output, view models.ChartView) {
	switch out {
	case dashboard.OutputProportion:
		a.pie.SetTitle(" " + view.Title() + " ")
		a.pie.SetText(ProportionText(view.Proportion, barWidth))
	case dashboard.OutputScatter:
		a.drawScatter(view)
	}
}

func (a *App) drawScatter(view models.ChartView) {
	a.scatter.Clear()
	a.scatter.SetTitle(" " + view.Title() + " ")

	rows := SummarizeScatter(view.Scatter)
	if len(rows) == 0 {
		a.scatter.SetCell(0, 0, tview.NewTableCell(noMatches).SetSelectable(false))
		return
	}

	for col, h := range []string{"Booster", "Points", "Successes", "Payload"} {
		a.scatter.SetCell(0, col, tview.NewTableCell("[::b]"+h).SetSelectable(false))
	}
	for i, r := range rows {
		row := i + 1
		a.scatter.SetCell(row, 0, tview.NewTableCell(r.Name).SetTextColor(tcell.GetColor(r.Color)))
		a.scatter.SetCell(row, 1, tview.NewTableCell(strconv.Itoa(r.Points)).SetAlign(tview.AlignRight))
		a.scatter.SetCell(row, 2, tview.NewTableCell(strconv.Itoa(r.Successes)).SetAlign(tview.AlignRight))
		a.scatter.SetCell(row, 3, tview.NewTableCell(r.Span()))
	}
}

func (a *App) report(rebuilt []dashboard.Output) {
	if len(rebuilt) == 0 {
		return
	}
	names := make([]string, len(rebuilt))
	for i, out := range rebuilt {
		names[i] = string(out)
	}
	a.logger.Debug("[tui] rebuilt %v", names)
	a.footer.SetText(fmt.Sprintf("[::d]rebuilt %s  Tab: next field  Enter: apply range  q/Esc: quit", strings.Join(names, ", ")))
}

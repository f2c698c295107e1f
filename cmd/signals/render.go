package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/scanner"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/shopspring/decimal"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	HelpStyle    = lipgloss.NewStyle().Faint(true)
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	LongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ShortStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	CellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

var signalHeaders = []string{"Signal", "Conf", "Entry", "SL", "TP", "Entry Price", "Source", "Reasoning"}

// FormatPrice prints a price with two decimals, or "-" when absent.
func FormatPrice(price optional.Option[float64]) string {
	if price.IsNone() {
		return "-"
	}

	return decimal.NewFromFloat(price.Unwrap()).StringFixed(2)
}

func signalRow(signal types.Signal) []string {
	source := signal.Indicator
	if source == "" {
		source = signal.Strategy
	}

	if source == "" {
		source = "-"
	}

	return []string{
		signal.Type,
		fmt.Sprintf("%d", signal.Confidence),
		FormatPrice(signal.Entry),
		FormatPrice(signal.StopLoss),
		FormatPrice(signal.TakeProfit),
		FormatPrice(signal.EntryPrice),
		source,
		signal.Reasoning,
	}
}

// RenderReport formats one scan report as a titled table.
func RenderReport(report scanner.Report) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %d bars", report.Symbol, report.Bars)
	if !report.AsOf.IsZero() {
		title += "  as of " + report.AsOf.Format("2006-01-02 15:04")
	}

	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("run " + report.RunID.String()))
	b.WriteString("\n")

	if report.HeadlineError != "" {
		b.WriteString(WarningStyle.Render("sentiment skipped: " + report.HeadlineError))
		b.WriteString("\n")
	}

	if len(report.Signals) == 0 {
		b.WriteString(HelpStyle.Render("No signals"))
		b.WriteString("\n")

		return b.String()
	}

	rows := make([][]string, 0, len(report.Signals))
	for _, signal := range report.Signals {
		rows = append(rows, signalRow(signal))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(signalHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}

			if row < 0 || row >= len(report.Signals) {
				return CellStyle
			}

			switch report.Signals[row].Direction {
			case types.DirectionLong:
				return CellStyle.Inherit(LongStyle)
			case types.DirectionShort:
				return CellStyle.Inherit(ShortStyle)
			default:
				return CellStyle
			}
		})

	b.WriteString(t.String())
	b.WriteString("\n")

	return b.String()
}

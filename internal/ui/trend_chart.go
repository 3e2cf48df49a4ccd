package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/theme"
)

const (
	trendChartPeriods  = 14 // Days shown in the TUI
	trendChartBarWidth = 40 // Width of the longest bar
	trendChartBlock    = "█"
)

// RenderTrendChart renders one stacked bar per bucket: validated images
// that needed no rework, then retouch and blunder images.
// This is used by both the TUI and CLI to ensure consistent formatting.
func RenderTrendChart(rows []services.TrendRow) string {
	var sb strings.Builder

	var total, retouch, maxTotal int
	labelWidth := 0
	for _, row := range rows {
		total += row.TotalValidated
		retouch += row.RetouchBlunder
		maxTotal = max(maxTotal, row.TotalValidated)
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
	}

	rate := 0.0
	if total > 0 {
		rate = float64(retouch) / float64(total) * 100
	}

	legend := theme.ChartLegendStyle.Render("Validated: ") +
		theme.ChartBaseStyle.Render(trendChartBlock) +
		theme.ChartLegendStyle.Render(fmt.Sprintf(" base: %d  ", total-retouch)) +
		theme.ChartRetouchStyle.Render(trendChartBlock) +
		theme.ChartLegendStyle.Render(fmt.Sprintf(" retouch/blunder: %d (%.1f%%)", retouch, rate))

	sb.WriteString(legend)
	sb.WriteString("\n\n")

	if len(rows) == 0 {
		sb.WriteString(theme.ChartLabelStyle.Render("No validated images yet"))
		return sb.String()
	}

	for i, row := range rows {
		base, rework := barWidths(row, maxTotal)
		sb.WriteString(theme.ChartLabelStyle.Render(padRight(row.Label, labelWidth)))
		sb.WriteString(theme.ChartAxisStyle.Render(" │"))
		sb.WriteString(theme.ChartBaseStyle.Render(strings.Repeat(trendChartBlock, base)))
		sb.WriteString(theme.ChartRetouchStyle.Render(strings.Repeat(trendChartBlock, rework)))
		sb.WriteString(theme.ChartLegendStyle.Render(fmt.Sprintf(" %d (%.0f%%)", row.TotalValidated, row.Percentage)))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// barWidths scales a row against the largest bucket. A non-empty segment is
// always at least one cell wide.
func barWidths(row services.TrendRow, maxTotal int) (int, int) {
	if maxTotal == 0 {
		return 0, 0
	}
	scale := func(n int) int {
		if n <= 0 {
			return 0
		}
		return max(n*trendChartBarWidth/maxTotal, 1)
	}
	return scale(row.BaseValidated), scale(row.RetouchBlunder)
}

// TrendChart displays the daily validation trend of the reviewer
type TrendChart struct {
	analytics *services.AnalyticsService
	reviewer  string
	rows      []services.TrendRow
	visible   bool
}

// NewTrendChart creates a new TrendChart component
func NewTrendChart(analytics *services.AnalyticsService, reviewer string) *TrendChart {
	return &TrendChart{
		analytics: analytics,
		reviewer:  reviewer,
	}
}

// SetVisible sets the visibility of the chart
func (tc *TrendChart) SetVisible(visible bool) {
	tc.visible = visible
	if visible {
		tc.Refresh(context.Background())
	}
}

// IsVisible returns whether the chart is visible
func (tc *TrendChart) IsVisible() bool {
	return tc.visible
}

// Toggle toggles the visibility of the chart
func (tc *TrendChart) Toggle() {
	tc.SetVisible(!tc.visible)
}

// Height returns the total height of the chart component (including spacing after)
func (tc *TrendChart) Height() int {
	if !tc.visible {
		return 0
	}
	return lipgloss.Height(tc.View()) + 1
}

// Refresh reloads the reviewer's rows from the review log
func (tc *TrendChart) Refresh(ctx context.Context) {
	if tc.analytics == nil {
		return
	}

	records, err := tc.analytics.Records(ctx, tc.reviewer)
	if err != nil {
		logging.Logger.Warn("Failed to load trend data", "error", err)
		tc.rows = nil
		return
	}
	tc.rows = services.ValidationTrend(records, services.TimeframeDay, trendChartPeriods)
}

// View renders the trend chart
func (tc *TrendChart) View() string {
	if !tc.visible {
		return ""
	}
	return RenderTrendChart(tc.rows)
}

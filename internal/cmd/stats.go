package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/imagecheck/qcreview/internal/ports"
	"github.com/imagecheck/qcreview/internal/services"
	"github.com/imagecheck/qcreview/internal/ui"
)

// StatsCmd shows validation statistics
type StatsCmd struct {
	Format    string `help:"Output format (table or chart)" default:"table" enum:"table,chart"`
	Periods   int    `help:"Number of periods in the trend" default:"14"`
	Reviewer  string `help:"Reviewer name (defaults to the reviewer in settings.json)" short:"r" env:"QCREVIEW_REVIEWER"`
	Timeframe string `help:"Trend bucket size" default:"day" enum:"day,week,month"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	reviewer := cli.reviewerOr(s.Reviewer)
	if reviewer == "" {
		return errors.New("reviewer is required (use --reviewer or set reviewer in settings.json)")
	}

	ctx := context.Background()
	analytics := cli.Container.AnalyticsService

	summary, err := analytics.Summary(ctx, reviewer)
	if err != nil {
		return err
	}
	records, err := analytics.Records(ctx, reviewer)
	if err != nil {
		return err
	}

	trend := services.ValidationTrend(records, services.Timeframe(s.Timeframe), s.Periods)

	fmt.Printf("Validation Statistics - %s\n\n", reviewer)
	renderSummary(summary)
	fmt.Println()

	switch s.Format {
	case "chart":
		fmt.Println(ui.RenderTrendChart(trend))
	default:
		renderTrendTable(trend)
	}
	fmt.Println()

	renderCounts("Next Action", services.NextActionDistribution(records))
	fmt.Println()
	renderCounts("QC Observation", services.ObservationPatterns(records))
	fmt.Println()
	renderSpeed(services.ValidationSpeed(records))

	return nil
}

func renderSummary(summary *ports.AnalyticsSummary) {
	avg := "-"
	if summary.AverageTimeSeconds != nil {
		avg = fmt.Sprintf("%.1fs", *summary.AverageTimeSeconds)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Images\t%s\n", formatNumber(int(summary.TotalImages)))
	fmt.Fprintf(w, "Right\t%s\n", formatNumber(int(summary.TotalRight)))
	fmt.Fprintf(w, "Wrong\t%s\n", formatNumber(int(summary.TotalWrong)))
	fmt.Fprintf(w, "Average time\t%s\n", avg)
	w.Flush()
}

// renderTrendTable displays the trend in table format
func renderTrendTable(rows []services.TrendRow) {
	if len(rows) == 0 {
		fmt.Println("No validated images yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Period\tValidated\tRetouch/Blunder\tRate")
	fmt.Fprintln(w, "──────\t─────────\t───────────────\t────")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\n",
			row.Label,
			formatNumber(row.TotalValidated),
			formatNumber(row.RetouchBlunder),
			row.Percentage)
	}
	w.Flush()
}

func renderCounts(title string, rows []services.CountRow) {
	if len(rows) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\tCount\n", title)
	fmt.Fprintf(w, "%s\t─────\n", strings.Repeat("─", len(title)))
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Name, formatNumber(row.Count))
	}
	w.Flush()
}

func renderSpeed(rows []services.SpeedRow) {
	if len(rows) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Date\tAverage time")
	fmt.Fprintln(w, "────\t────────────")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%.1fs\n", row.Date, row.AverageSeconds)
	}
	w.Flush()
}

// formatNumber formats a number with comma separators
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}

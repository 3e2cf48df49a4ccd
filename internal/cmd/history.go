package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"

	"github.com/imagecheck/qcreview/internal/ports"
)

// HistoryCmd lists review sessions
type HistoryCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit    int    `help:"Maximum number of sessions to show (0 = all)" default:"20"`
	Reviewer string `help:"Reviewer name (defaults to the reviewer in settings.json)" short:"r" env:"QCREVIEW_REVIEWER"`
}

type historyEntry struct {
	Duration string     `json:"duration,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Folder   string     `json:"folder"`
	ID       int64      `json:"id"`
	Reviewer string     `json:"reviewer"`
	Start    time.Time  `json:"start"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	reviewer := cli.reviewerOr(h.Reviewer)
	if reviewer == "" {
		return errors.New("reviewer is required (use --reviewer or set reviewer in settings.json)")
	}

	sessions, err := cli.Container.AnalyticsService.Sessions(context.Background(), reviewer)
	if err != nil {
		return err
	}
	if h.Limit > 0 && len(sessions) > h.Limit {
		sessions = sessions[:h.Limit]
	}

	entries := make([]historyEntry, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, newHistoryEntry(session))
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Printf("No review sessions for %s.\n", reviewer)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tStarted\tDuration\tFolder")
	fmt.Fprintln(w, "──\t───────\t────────\t──────")
	for _, e := range entries {
		duration := e.Duration
		if duration == "" {
			duration = "open"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Start.Local().Format(time.DateTime), duration, e.Folder)
	}
	w.Flush()
	return nil
}

func newHistoryEntry(session ports.ReviewSession) historyEntry {
	entry := historyEntry{
		End:      session.SessionEnd,
		Folder:   session.FolderPath,
		ID:       session.ID,
		Reviewer: session.QCName,
		Start:    session.SessionStart,
	}
	if session.SessionEnd != nil {
		entry.Duration = session.SessionEnd.Sub(session.SessionStart).Round(time.Second).String()
	}
	return entry
}

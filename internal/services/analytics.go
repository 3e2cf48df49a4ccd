package services

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

const (
	// analyticsCacheTTL is the duration to cache query results before refreshing
	analyticsCacheTTL = 60 * time.Second

	// maxSpeedSampleSeconds excludes breaks from the speed trend
	maxSpeedSampleSeconds = 60.0

	// topObservationCount is the number of observations ranked
	topObservationCount = 10
)

// Timeframe is the bucket size of the validation trend
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeMonth Timeframe = "month"
	TimeframeWeek  Timeframe = "week"
)

// TrendRow is one bucket of the validation trend
type TrendRow struct {
	BaseValidated  int
	Label          string
	Percentage     float64
	RetouchBlunder int
	Start          time.Time
	TotalValidated int
}

// CountRow is a named count
type CountRow struct {
	Count int
	Name  string
}

// SpeedRow is the average review time of one day
type SpeedRow struct {
	AverageSeconds float64
	Date           string
}

// AnalyticsService answers reviewer analytics from the review log with
// caching
type AnalyticsService struct {
	cache  *cache.Cache
	reader ports.ReviewLogReader
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(reader ports.ReviewLogReader) *AnalyticsService {
	return &AnalyticsService{
		cache:  cache.New(analyticsCacheTTL, 2*analyticsCacheTTL),
		reader: reader,
	}
}

// Summary returns the totals of reviewer (cached)
func (s *AnalyticsService) Summary(ctx context.Context, reviewer string) (*ports.AnalyticsSummary, error) {
	return cached(s, "summary:"+reviewer, func() (*ports.AnalyticsSummary, error) {
		return s.reader.GetAnalyticsSummary(ctx, reviewer)
	})
}

// Records returns the counted rows of reviewer (cached)
func (s *AnalyticsService) Records(ctx context.Context, reviewer string) ([]ports.AnalyticsRecord, error) {
	return cached(s, "records:"+reviewer, func() ([]ports.AnalyticsRecord, error) {
		return s.reader.ListAnalyticsRecords(ctx, reviewer)
	})
}

// Sessions returns the review sessions of reviewer, newest first (cached)
func (s *AnalyticsService) Sessions(ctx context.Context, reviewer string) ([]ports.ReviewSession, error) {
	return cached(s, "sessions:"+reviewer, func() ([]ports.ReviewSession, error) {
		return s.reader.ListSessions(ctx, reviewer)
	})
}

// Invalidate drops every cached result
func (s *AnalyticsService) Invalidate() {
	s.cache.Flush()
}

func cached[T any](s *AnalyticsService, key string, load func() (T, error)) (T, error) {
	if value, found := s.cache.Get(key); found {
		logging.Logger.Debug("Analytics cache hit", "key", key)
		return value.(T), nil
	}

	value, err := load()
	if err != nil {
		logging.Logger.Error("Failed to load analytics", "key", key, "error", err)
		var zero T
		return zero, fmt.Errorf("failed to load analytics: %w", err)
	}

	s.cache.Set(key, value, cache.DefaultExpiration)
	logging.Logger.Debug("Analytics cached", "key", key)
	return value, nil
}

// ValidationTrend buckets decided rows by timeframe and keeps the latest
// periods buckets. Blunders count as retouch work.
func ValidationTrend(records []ports.AnalyticsRecord, timeframe Timeframe, periods int) []TrendRow {
	buckets := make(map[time.Time]*TrendRow)

	for _, record := range records {
		if record.QCDate == "" || record.QCDecision == "" {
			continue
		}
		parsed, err := domain.ParseQCDate(record.QCDate)
		if err != nil {
			continue
		}

		start, label := bucketFor(parsed, timeframe)
		row, ok := buckets[start]
		if !ok {
			row = &TrendRow{Label: label, Start: start}
			buckets[start] = row
		}
		row.TotalValidated++
		if record.NextAction == domain.NextActionRetouch || record.NextAction == domain.NextActionBlunder {
			row.RetouchBlunder++
		}
	}

	starts := slices.SortedFunc(maps.Keys(buckets), func(a, b time.Time) int { return a.Compare(b) })
	if periods > 0 && len(starts) > periods {
		starts = starts[len(starts)-periods:]
	}

	rows := make([]TrendRow, 0, len(starts))
	for _, start := range starts {
		row := *buckets[start]
		row.BaseValidated = max(row.TotalValidated-row.RetouchBlunder, 0)
		if row.TotalValidated > 0 {
			row.Percentage = float64(row.RetouchBlunder) / float64(row.TotalValidated) * 100
		}
		rows = append(rows, row)
	}
	return rows
}

func bucketFor(t time.Time, timeframe Timeframe) (time.Time, string) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	switch timeframe {
	case TimeframeWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, fmt.Sprintf("W%d %d", domain.ISOWeek(t), start.Year())
	case TimeframeMonth:
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return start, start.Format("Jan 2006")
	default:
		return day, day.Format("02 Jan")
	}
}

// NextActionDistribution counts rows per next action. Rows without one
// count as "None".
func NextActionDistribution(records []ports.AnalyticsRecord) []CountRow {
	counts := make(map[string]int)
	for _, record := range records {
		action := record.NextAction
		if action == "" {
			action = "None"
		}
		counts[action]++
	}
	return sortedCounts(counts)
}

// ObservationPatterns ranks the most frequent QC observations, ignoring the
// bare comment flag
func ObservationPatterns(records []ports.AnalyticsRecord) []CountRow {
	counts := make(map[string]int)
	for _, record := range records {
		for _, obs := range domain.SplitObservations(record.QCObservations) {
			if obs == "Comment" {
				continue
			}
			counts[obs]++
		}
	}
	rows := sortedCounts(counts)
	if len(rows) > topObservationCount {
		rows = rows[:topObservationCount]
	}
	return rows
}

// ValidationSpeed averages review time per day, ignoring breaks
func ValidationSpeed(records []ports.AnalyticsRecord) []SpeedRow {
	type acc struct {
		count int
		sum   float64
	}
	byDate := make(map[string]*acc)

	for _, record := range records {
		if record.QCDate == "" || record.TimeSpentSeconds > maxSpeedSampleSeconds {
			continue
		}
		parsed, err := domain.ParseQCDate(record.QCDate)
		if err != nil {
			continue
		}
		key := parsed.Format(time.DateOnly)
		a, ok := byDate[key]
		if !ok {
			a = &acc{}
			byDate[key] = a
		}
		a.sum += record.TimeSpentSeconds
		a.count++
	}

	rows := make([]SpeedRow, 0, len(byDate))
	for _, date := range slices.Sorted(maps.Keys(byDate)) {
		a := byDate[date]
		rows = append(rows, SpeedRow{AverageSeconds: a.sum / float64(a.count), Date: date})
	}
	return rows
}

// sortedCounts orders counts by descending count, then name
func sortedCounts(counts map[string]int) []CountRow {
	rows := make([]CountRow, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, CountRow{Count: count, Name: name})
	}
	slices.SortFunc(rows, func(a, b CountRow) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return rows
}

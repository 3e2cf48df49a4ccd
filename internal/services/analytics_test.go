package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/ports"
	portsmocks "github.com/imagecheck/qcreview/internal/ports/mocks"
)

func TestAnalyticsService_CachesPerReviewer(t *testing.T) {
	reader := portsmocks.NewMockReviewLogReader(t)
	avg := 3.5
	alice := &ports.AnalyticsSummary{AverageTimeSeconds: &avg, TotalImages: 4, TotalRight: 3, TotalWrong: 1}
	bob := &ports.AnalyticsSummary{TotalImages: 1}
	reader.EXPECT().GetAnalyticsSummary(mock.Anything, "Alice").Return(alice, nil).Once()
	reader.EXPECT().GetAnalyticsSummary(mock.Anything, "Bob").Return(bob, nil).Once()

	svc := NewAnalyticsService(reader)
	ctx := context.Background()

	for range 3 {
		got, err := svc.Summary(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, alice, got)
	}
	got, err := svc.Summary(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, bob, got)
}

func TestAnalyticsService_Invalidate(t *testing.T) {
	reader := portsmocks.NewMockReviewLogReader(t)
	reader.EXPECT().ListAnalyticsRecords(mock.Anything, "Alice").
		Return([]ports.AnalyticsRecord{{Filename: "a.jpg"}}, nil).Twice()

	svc := NewAnalyticsService(reader)
	ctx := context.Background()

	_, err := svc.Records(ctx, "Alice")
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Records(ctx, "Alice")
	require.NoError(t, err)
}

func TestAnalyticsService_ErrorsAreNotCached(t *testing.T) {
	reader := portsmocks.NewMockReviewLogReader(t)
	reader.EXPECT().ListSessions(mock.Anything, "Alice").Return(nil, errors.New("no such table")).Once()
	reader.EXPECT().ListSessions(mock.Anything, "Alice").Return([]ports.ReviewSession{{ID: 1}}, nil).Once()

	svc := NewAnalyticsService(reader)
	ctx := context.Background()

	_, err := svc.Sessions(ctx, "Alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load analytics")

	sessions, err := svc.Sessions(ctx, "Alice")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestValidationTrend(t *testing.T) {
	records := []ports.AnalyticsRecord{
		{QCDate: "10/03/2025 09:00:00", QCDecision: domain.DecisionRight, NextAction: domain.NextActionRetouch},
		{QCDate: "10/03/2025 10:00:00", QCDecision: domain.DecisionRight, NextAction: domain.NextActionIgnore},
		{QCDate: "12/03/2025 11:00:00", QCDecision: domain.DecisionWrong, NextAction: domain.NextActionBlunder},
		{QCDate: "12/03/2025 11:05:00", QCDecision: domain.DecisionRight, NextAction: domain.NextActionRetake},
		{QCDate: "17/03/2025 08:00:00", QCDecision: domain.DecisionRight, NextAction: domain.NextActionRetouch},
		{QCDate: "17/03/2025 08:10:00", QCDecision: ""},
		{QCDate: "garbage", QCDecision: domain.DecisionRight},
		{QCDate: "", QCDecision: domain.DecisionRight},
	}

	t.Run("day", func(t *testing.T) {
		rows := ValidationTrend(records, TimeframeDay, 0)
		require.Len(t, rows, 3)
		assert.Equal(t, "10 Mar", rows[0].Label)
		assert.Equal(t, 2, rows[0].TotalValidated)
		assert.Equal(t, 1, rows[0].RetouchBlunder)
		assert.Equal(t, 1, rows[0].BaseValidated)
		assert.InDelta(t, 50.0, rows[0].Percentage, 0.001)
		assert.Equal(t, "17 Mar", rows[2].Label)
		assert.InDelta(t, 100.0, rows[2].Percentage, 0.001)
	})

	t.Run("week", func(t *testing.T) {
		rows := ValidationTrend(records, TimeframeWeek, 0)
		require.Len(t, rows, 2)
		assert.Equal(t, "W11 2025", rows[0].Label)
		assert.Equal(t, 4, rows[0].TotalValidated)
		assert.Equal(t, 2, rows[0].RetouchBlunder)
		assert.Equal(t, "W12 2025", rows[1].Label)
	})

	t.Run("month keeps latest periods", func(t *testing.T) {
		extra := append([]ports.AnalyticsRecord{
			{QCDate: "28/02/2025 09:00:00", QCDecision: domain.DecisionRight},
		}, records...)

		rows := ValidationTrend(extra, TimeframeMonth, 1)
		require.Len(t, rows, 1)
		assert.Equal(t, "Mar 2025", rows[0].Label)
		assert.Equal(t, 5, rows[0].TotalValidated)
	})
}

func TestNextActionDistribution(t *testing.T) {
	rows := NextActionDistribution([]ports.AnalyticsRecord{
		{NextAction: domain.NextActionRetouch},
		{NextAction: domain.NextActionIgnore},
		{NextAction: domain.NextActionRetouch},
		{NextAction: ""},
	})

	assert.Equal(t, []CountRow{
		{Count: 2, Name: domain.NextActionRetouch},
		{Count: 1, Name: domain.NextActionIgnore},
		{Count: 1, Name: "None"},
	}, rows)
}

func TestObservationPatterns(t *testing.T) {
	records := []ports.AnalyticsRecord{
		{QCObservations: "Outline;Shadow;Comment"},
		{QCObservations: "Outline"},
		{QCObservations: ""},
	}
	for _, label := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		records = append(records, ports.AnalyticsRecord{QCObservations: label})
	}

	rows := ObservationPatterns(records)

	require.Len(t, rows, 10)
	assert.Equal(t, CountRow{Count: 2, Name: "Outline"}, rows[0])
	assert.Equal(t, CountRow{Count: 1, Name: "Shadow"}, rows[1])
	assert.Equal(t, CountRow{Count: 1, Name: "h"}, rows[9])
	for _, row := range rows {
		assert.NotEqual(t, "Comment", row.Name)
	}
}

func TestValidationSpeed(t *testing.T) {
	rows := ValidationSpeed([]ports.AnalyticsRecord{
		{QCDate: "14/03/2025 09:00:00", TimeSpentSeconds: 4},
		{QCDate: "14/03/2025 09:01:00", TimeSpentSeconds: 6},
		{QCDate: "14/03/2025 09:30:00", TimeSpentSeconds: 600},
		{QCDate: "13/03/2025 15:00:00", TimeSpentSeconds: 60},
		{QCDate: "", TimeSpentSeconds: 1},
	})

	assert.Equal(t, []SpeedRow{
		{AverageSeconds: 60, Date: "2025-03-13"},
		{AverageSeconds: 5, Date: "2025-03-14"},
	}, rows)
}

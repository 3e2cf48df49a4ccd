package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imagecheck/qcreview/internal/ports"
	portsmocks "github.com/imagecheck/qcreview/internal/ports/mocks"
)

func TestShouldPlaySound(t *testing.T) {
	tests := []struct {
		eventType string
		expected  bool
	}{
		{EventNextBlocked, true},
		{EventCSVFallback, true},
		{EventReviewFinished, true},
		{EventNavigation, false},
		{EventCardSaved, false},
		{"unknown", false},
	}

	service := NewNotificationService(nil, true)
	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ShouldPlaySound(tt.eventType))
		})
	}
}

func TestNotify_MapsEventsToSounds(t *testing.T) {
	tests := []struct {
		eventType     string
		expectedSound string
	}{
		{EventNextBlocked, ports.SoundBlocked},
		{EventCSVFallback, ports.SoundBlocked},
		{EventReviewFinished, ports.SoundFinished},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			soundPlayer := portsmocks.NewMockSoundPlayer(t)
			soundPlayer.EXPECT().PlaySoundForEvent(tt.expectedSound).Return(nil)

			NewNotificationService(soundPlayer, true).Notify(tt.eventType)
		})
	}
}

func TestNotify_Disabled(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)

	// No expectations: the mock fails the test if called
	NewNotificationService(soundPlayer, false).Notify(EventNextBlocked)
}

func TestNotify_RoutineEventIsSilent(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)

	NewNotificationService(soundPlayer, true).Notify(EventNavigation)
}

func TestNotify_PlaybackErrorIsSwallowed(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	soundPlayer.EXPECT().PlaySoundForEvent(ports.SoundFinished).Return(errors.New("no audio device"))

	assert.NotPanics(t, func() {
		NewNotificationService(soundPlayer, true).Notify(EventReviewFinished)
	})
}

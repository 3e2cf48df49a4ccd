package services

import (
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// Review events that may be announced with a sound
const (
	EventCardSaved      = "card-saved"
	EventCSVFallback    = "csv-fallback"
	EventNavigation     = "navigation"
	EventNextBlocked    = "next-blocked"
	EventReviewFinished = "review-finished"
)

// NotificationService plays sounds for review events
type NotificationService struct {
	enabled     bool
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService. A disabled
// service stays silent.
func NewNotificationService(soundPlayer ports.SoundPlayer, enabled bool) *NotificationService {
	return &NotificationService{
		enabled:     enabled,
		soundPlayer: soundPlayer,
	}
}

// ShouldPlaySound determines if a sound should be played for the event type
func (s *NotificationService) ShouldPlaySound(eventType string) bool {
	switch eventType {
	case EventNextBlocked, EventCSVFallback, EventReviewFinished:
		return true // Reviewer needs to notice
	case EventNavigation, EventCardSaved:
		return false // Routine
	default:
		return false
	}
}

// Notify plays the sound mapped to eventType when enabled. Playback errors
// are logged only.
func (s *NotificationService) Notify(eventType string) {
	if !s.enabled || s.soundPlayer == nil || !s.ShouldPlaySound(eventType) {
		return
	}

	sound := ports.SoundBlocked
	if eventType == EventReviewFinished {
		sound = ports.SoundFinished
	}

	logging.Logger.Debug("Playing sound for event", "event", eventType, "sound", sound)
	if err := s.soundPlayer.PlaySoundForEvent(sound); err != nil {
		logging.Logger.Warn("Failed to play sound", "event", eventType, "error", err)
	}
}

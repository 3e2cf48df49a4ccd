package sound

import (
	"fmt"

	"github.com/imagecheck/qcreview/internal/ports"
)

// Player implements ports.SoundPlayer
type Player struct{}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays the completion sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(ports.SoundFinished)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	return playForEvent(eventType)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}

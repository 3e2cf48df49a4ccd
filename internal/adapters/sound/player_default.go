//go:build !darwin && !linux && !windows

package sound

// playForEvent rings the terminal bell where no sound player is known
func playForEvent(eventType string) error {
	return terminalBell()
}

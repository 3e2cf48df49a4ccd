//go:build windows

package sound

import (
	"os/exec"

	"github.com/imagecheck/qcreview/internal/ports"
)

// playForEvent plays sounds on Windows using PowerShell
func playForEvent(eventType string) error {
	var soundCommands []string

	switch eventType {
	case ports.SoundFinished:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case ports.SoundBlocked:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Hand.Play()",
			"[System.Media.SystemSounds]::Exclamation.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}

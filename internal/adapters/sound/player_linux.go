//go:build linux

package sound

import (
	"os/exec"

	"github.com/imagecheck/qcreview/internal/ports"
)

type soundCommand struct {
	args []string
	cmd  string
}

// playForEvent plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForEvent(eventType string) error {
	var sounds []soundCommand

	switch eventType {
	case ports.SoundFinished:
		sounds = []soundCommand{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case ports.SoundBlocked:
		sounds = []soundCommand{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/dialog-warning.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/dialog-warning.wav"}},
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		}
	default:
		sounds = []soundCommand{
			{cmd: "paplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{cmd: "aplay", args: []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}

//go:build linux

package viewer

import "os/exec"

var defaultViewers = []string{
	"xdg-open",
	"eog",
	"feh",
	"display",
}

func findPlatformViewer(path string) (string, []string) {
	for _, viewer := range defaultViewers {
		if _, err := exec.LookPath(viewer); err == nil {
			return viewer, []string{path}
		}
	}
	return "", nil
}

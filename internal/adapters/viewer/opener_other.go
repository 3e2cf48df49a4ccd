//go:build !darwin && !linux && !windows

package viewer

func findPlatformViewer(path string) (string, []string) {
	return "", nil
}

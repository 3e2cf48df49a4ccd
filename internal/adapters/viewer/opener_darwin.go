//go:build darwin

package viewer

func findPlatformViewer(path string) (string, []string) {
	return "open", []string{path}
}

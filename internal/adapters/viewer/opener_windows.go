//go:build windows

package viewer

func findPlatformViewer(path string) (string, []string) {
	// The empty argument is the window title expected by start
	return "cmd.exe", []string{"/C", "start", "", path}
}

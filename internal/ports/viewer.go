package ports

// ImageViewer opens images in an external application
type ImageViewer interface {
	// Open opens the specified image in a viewer
	// cliViewer is the viewer specified via CLI flag (takes precedence)
	Open(path string, cliViewer string) error
}

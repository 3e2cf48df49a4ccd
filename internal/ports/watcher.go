package ports

// ImageWatcher reports images added to a directory while it is reviewed
type ImageWatcher interface {
	Close() error
	Errors() <-chan error
	// Events delivers the full path of each new image
	Events() <-chan string
}

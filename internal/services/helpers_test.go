package services

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/ports"
)

// fixedClock returns now, advanced explicitly by tests
type fixedClock struct {
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// memFS is an in-memory ports.FileSystem
type memFS struct {
	mu      sync.Mutex
	files   map[string]string
	locked  map[string]bool
	failing map[string]error
	copies  map[string]string
	writes  []string
}

func newMemFS() *memFS {
	return &memFS{
		files:   make(map[string]string),
		locked:  make(map[string]bool),
		failing: make(map[string]error),
		copies:  make(map[string]string),
	}
}

var _ ports.FileSystem = (*memFS)(nil)

func (m *memFS) ReadTextFile(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("failed to read %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (m *memFS) WriteTextFile(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked[path] {
		return fmt.Errorf("failed to lock %s: %w", path, ports.ErrFileLocked)
	}
	if err := m.failing[path]; err != nil {
		return err
	}
	m.files[path] = content
	m.writes = append(m.writes, path)
	return nil
}

func (m *memFS) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *memFS) ListImageFiles(dir string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for path := range m.files {
		if filepath.Dir(path) == dir && domain.IsImageFile(path) {
			out = append(out, path)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (m *memFS) CopyFile(src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[src]; err != nil {
		return err
	}
	content, ok := m.files[src]
	if !ok {
		return fmt.Errorf("failed to open %s: %w", src, fs.ErrNotExist)
	}
	m.files[dst] = content
	m.copies[dst] = src
	return nil
}

func (m *memFS) content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[path]
}

func (m *memFS) has(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

func (m *memFS) writeCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.writes {
		if p == path {
			n++
		}
	}
	return n
}

func (m *memFS) copiedTo(dir string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for dst := range maps.Keys(m.copies) {
		if strings.HasPrefix(dst, dir+string(filepath.Separator)) {
			out = append(out, filepath.Base(dst))
		}
	}
	slices.Sort(out)
	return out
}

// addImages creates empty image files in dir
func (m *memFS) addImages(dir string, names ...string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		m.files[paths[i]] = "jpeg:" + name
	}
	return paths
}

var errDiskFull = errors.New("no space left on device")

// completePatch returns the fields that make a record pass the gate
func completePatch() domain.RecordPatch {
	return domain.RecordPatch{
		domain.FieldQCDecision:          domain.DecisionRight,
		domain.FieldQCObservations:      "Outline",
		domain.FieldRetouchQuality:      domain.QualityGood,
		domain.FieldRetouchObservations: "",
		domain.FieldNextAction:          domain.NextActionIgnore,
	}
}

package viewer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindViewer_Priority(t *testing.T) {
	t.Setenv("QCREVIEW_VIEWER", "envviewer")

	viewer, args := findViewer("/x/a.jpg", "cliviewer")
	assert.Equal(t, "cliviewer", viewer)
	assert.Equal(t, []string{"/x/a.jpg"}, args)

	viewer, _ = findViewer("/x/a.jpg", "")
	assert.Equal(t, "envviewer", viewer)
}

func TestOpen_Errors(t *testing.T) {
	o := NewOpener()

	assert.Error(t, o.Open("", ""))
	assert.Error(t, o.Open(filepath.Join(t.TempDir(), "missing.jpg"), "true"))
}

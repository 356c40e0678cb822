package raster

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildsWithoutCgo checks the pure Go backend and the overlay package it
// draws for do not pull in OpenCV
func TestBuildsWithoutCgo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping go toolchain invocation in short mode")
	}

	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not found")
	}

	cmd := exec.Command(goBin, "list", "-deps", "-f", "{{.ImportPath}}", ".")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")

	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	deps := strings.Fields(string(out))
	assert.Contains(t, deps, "github.com/swdee/go-faceoverlay")

	for _, dep := range deps {
		assert.NotContains(t, dep, "gocv.io", "unexpected dependency")
		assert.NotEqual(t, "github.com/swdee/go-faceoverlay/preprocess", dep)
		assert.NotEqual(t, "github.com/swdee/go-faceoverlay/render", dep)
	}

	build := exec.Command(goBin, "build", ".")
	build.Env = append(os.Environ(), "CGO_ENABLED=0")

	out, err = build.CombinedOutput()
	assert.NoError(t, err, string(out))
}

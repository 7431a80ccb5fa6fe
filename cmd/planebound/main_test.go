package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const unitScene = `
rectangles:
  - name: unit
    plane: { origin: [1, 1, 1], hx: [2, 1, 1], hy: [1, 2, 1], hz: [1, 1, 2] }
    half_x: 1
    half_y: 1
points:
  - name: inside
    at: [1.5, 1, 1]
  - name: outside
    at: [2.5, 1, 1]
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "1x+2y+3z + 0 = 0")
	assert.Contains(t, out, "Does the point (0.000000, 0.000000, 0.000000) lie on the plane true")
	assert.Contains(t, out, "Does the point (0.000000, 0.000000, 0.000000) lie on the oriented plane false")
	assert.Contains(t, out, "Does the point (0.000000, 0.000000, 1.000000) lie on the oriented plane true")
	assert.Contains(t, out, "Does the point (1.500000, 1.000000, 1.000000) lie on the rectangle bound true")
	assert.Contains(t, out, "Does the point (2.500000, 1.000000, 1.000000) lie on the rectangle bound false")
	assert.Contains(t, out, "Local coordinates of (1.366025, 2.366025, 1.000000) are (1.000000, 1.000000)")
}

func TestDemoDump(t *testing.T) {
	out, err := execute(t, "demo", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "geometry.RectangleBound")
	assert.Contains(t, out, "HalfX: (float64) 1")
}

func TestProject(t *testing.T) {
	out, err := execute(t, "project", "--point", "1.5,1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "has local coordinates (0.500000, 0.000000)")

	out, err = execute(t, "project", "--point", "1.5,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "is off the plane")

	out, err = execute(t, "project", "--origin", "0,0,0", "--hx", "1,0,0", "--hy", "0,1,0", "--hz", "0,0,1", "--point", "3,4,0")
	require.NoError(t, err)
	assert.Contains(t, out, "has local coordinates (3.000000, 4.000000)")
}

func TestProjectRequiresPoint(t *testing.T) {
	_, err := execute(t, "project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point")
}

func TestLift(t *testing.T) {
	out, err := execute(t, "lift", "--local", "0.5,0")
	require.NoError(t, err)
	assert.Contains(t, out, "is global point (0.500000, 0.000000, 0.000000)")
}

func TestContains(t *testing.T) {
	out, err := execute(t, "contains", "--point", "2,1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "lie on the rectangle bound true")

	out, err = execute(t, "contains", "--point", "2.5,1,1", "--half-x", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "lie on the rectangle bound false")

	_, err = execute(t, "contains", "--point", "1.5,1,1", "--half-x", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rectangle")
}

func TestInvalidVectorFlag(t *testing.T) {
	_, err := execute(t, "project", "--point", "1,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 comma separated numbers")

	_, err = execute(t, "project", "--point", "1,a,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", writeScene(t, unitScene))
	require.NoError(t, err)

	assert.Contains(t, out, "Shapes: 1, Points: 2")
	assert.Contains(t, out, "1 of 2 checks hit")
	assert.Contains(t, out, "(0.500000, 0.000000)")
}

func TestCheckMissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open scene")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "planebound version dev")
}

func TestVectorValue(t *testing.T) {
	var v r3.Vector
	value := vectorValue{&v}
	require.NoError(t, value.Set(" 1.5, -2 ,3"))
	assert.Equal(t, r3.Vector{X: 1.5, Y: -2, Z: 3}, v)
	assert.Equal(t, "1.5,-2,3", value.String())

	var p r2.Point
	pv := pointValue{&p}
	require.NoError(t, pv.Set("0.25,4"))
	assert.Equal(t, r2.Point{X: 0.25, Y: 4}, p)
	assert.Error(t, pv.Set("1,2,3"))
}

// syncBuffer is a bytes.Buffer safe for concurrent use
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRechecksOnChange(t *testing.T) {
	path := writeScene(t, unitScene)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, &out, &errOut, path, 20*time.Millisecond, &options{})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Watching file for changes")
	}, 5*time.Second, 10*time.Millisecond)

	edited := strings.Replace(unitScene, "half_x: 1", "half_x: 2", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "2 of 2 checks hit")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "File changed:")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

package meshgen

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	sphere := &Mesh{
		Vertices: []r3.Vec{{Z: 1}, {X: 1}, {Y: 1}, {X: -1}, {Y: -1}, {Z: -1}},
		Faces: []Face{
			{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
			{5, 2, 1}, {5, 3, 2}, {5, 4, 3}, {5, 1, 4},
		},
	}
	if _, err := Bisect(sphere, Plane{Normal: r3.Vec{Z: -1}}, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "bisect filled") || !strings.Contains(buf.String(), "capped=1") {
		t.Errorf("missing bisect log, got %q", buf.String())
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	defer SetLogger(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(nopHandler{}))
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
}

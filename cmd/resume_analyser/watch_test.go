package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestFileWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "resume.txt", "Jane Doe")

	w, err := newFileWatcher(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	go w.Run(ctx, 100*time.Millisecond, func() { changes <- struct{}{} })

	// unrelated files in the same directory are ignored
	writeFile(t, dir, "other.txt", "noise")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nEngineer"), 0644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changes:
		t.Fatal("a single save should be reported once")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestFileWatcher_StopsOnCancel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", "Jane Doe")

	w, err := newFileWatcher(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx, time.Millisecond, func() {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestFileWatcher_ShouldProcessEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	w := &fileWatcher{path: path}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write", event: fsnotify.Event{Name: path, Op: fsnotify.Write}, want: true},
		{name: "create", event: fsnotify.Event{Name: path, Op: fsnotify.Create}, want: true},
		{name: "rename", event: fsnotify.Event{Name: path, Op: fsnotify.Rename}, want: true},
		{name: "chmod", event: fsnotify.Event{Name: path, Op: fsnotify.Chmod}, want: false},
		{name: "other file", event: fsnotify.Event{Name: path + ".swp", Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.shouldProcessEvent(tt.event))
		})
	}
}

func TestWatchCommand_InitialAnalysis(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	stdout, _, err := executeContext(t, ctx, "watch", "--file", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "OVERALL SCORE"))
}

func TestWatchCommand_TraceAfterInterrupt(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
	path := writeFile(t, t.TempDir(), "resume.txt", sampleResume)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, stderr, err := executeContext(t, ctx, "watch", "--file", path, "--trace")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name":"analysis.Analyse"`)
}

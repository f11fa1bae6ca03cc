package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces the burst of events an editor produces on save
const watchDebounce = 200 * time.Millisecond

func newWatchCmd(c *cli) *cobra.Command {
	var (
		file     string
		format   string
		jobMatch bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-analyse a resume every time it is saved",
		Long:  "Analyse a resume, then analyse it again whenever the file changes, until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outFormat, err := c.outputFormat(format)
			if err != nil {
				return err
			}

			path, err := filepath.Abs(file)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			w, err := newFileWatcher(path, c.logger)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			analyse := func() {
				if err := c.runAnalyse(cmd, &analyseOptions{file: path, format: outFormat, jobMatch: jobMatch}); err != nil {
					// a half-written file is expected while editing
					c.logger.Warn("analysis failed", "file", path, "error", err)
				}
			}

			analyse()
			w.Run(cmd.Context(), watchDebounce, analyse)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the resume (required)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json, text or markdown")
	cmd.Flags().BoolVar(&jobMatch, "job-match", false, "Also match the resume against the reference job requirements")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// fileWatcher reports changes to a single file.
// The parent directory is watched so saves that replace the file are seen too.
type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

func newFileWatcher(path string, logger *slog.Logger) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &fileWatcher{path: filepath.Clean(path), watcher: watcher, logger: logger}, nil
}

// Run calls onChange once per burst of changes until ctx is done or the watcher is closed
func (w *fileWatcher) Run(ctx context.Context, debounce time.Duration, onChange func()) {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.shouldProcessEvent(event) {
				fire = time.After(debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-fire:
			fire = nil
			w.logger.Info("file changed", "file", w.path)
			onChange()
		}
	}
}

func (w *fileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Print a summary whenever the file changes",
		Long: `Watch prints a summary of the given project file and reprints it on
every change until interrupted. The containing directory is watched
rather than the file itself: most editors replace the file on save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(cmd, args[0])
		},
	}
}

func watch(cmd *cobra.Command, path string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := summarize(cmd.OutOrStdout(), path); err != nil {
		logger.Error("summary failed", "path", path, "error", err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Info("file changed", "path", path, "op", event.Op.String())
			if err := summarize(cmd.OutOrStdout(), path); err != nil {
				logger.Error("summary failed", "path", path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

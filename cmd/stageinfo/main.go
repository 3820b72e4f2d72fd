// Command stageinfo inspects animation project files: scene documents
// (.xstage) and multi-scene project documents (.sboard). It prints
// summaries of their structure and can watch a file for changes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var ran bool
	root := newRootCmd(&ran)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "stageinfo:", err)
		if !ran {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stageinfo",
		Short: "Inspect animation project files",
		Long: `Stageinfo inspects animation project files without loading them into
an authoring application. It reads scene documents (.xstage) and
multi-scene project documents (.sboard) and prints their structure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			*ran = true
		},
	}
	cmd.AddCommand(newSceneCmd(), newGraphCmd(), newBoardCmd(), newWatchCmd())
	return cmd
}

// summarize dispatches on the file extension and writes the matching
// summary to w.
func summarize(w io.Writer, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xstage":
		return summarizeScene(w, path)
	case ".sboard":
		return summarizeBoard(w, path)
	default:
		return fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}

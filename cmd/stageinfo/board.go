package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/sboard"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board <file.sboard>",
		Short: "Summarize a multi-scene project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeBoard(cmd.OutOrStdout(), args[0])
		},
	}
}

func summarizeBoard(w io.Writer, path string) error {
	project, err := sboard.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse project: %w", err)
	}

	title, err := project.Title()
	if err != nil {
		return err
	}
	rate, err := project.FrameRate()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "project %q at %g fps\n", title, rate)

	if err := printSequences(w, project); err != nil {
		return err
	}
	return printTimeline(w, project)
}

func printSequences(w io.Writer, project *sboard.Project) error {
	sequences, err := project.Sequences()
	if err != nil {
		return err
	}
	for _, sequence := range sequences {
		fmt.Fprintf(w, "sequence %s\n", sequence.Name())
		scenes, err := sequence.Scenes()
		if err != nil {
			return err
		}
		for _, scene := range scenes {
			if err := printScene(w, scene); err != nil {
				return err
			}
		}
	}
	return nil
}

func printScene(w io.Writer, scene *sboard.Scene) error {
	name, err := scene.Name()
	if err != nil {
		return err
	}
	bounds, err := scene.TimelineRange()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  scene %s frames %d-%d\n", name, bounds.Start, bounds.End)

	panels, err := scene.Panels()
	if err != nil {
		return err
	}
	for _, panel := range panels {
		number, err := panel.Number()
		if err != nil {
			return err
		}
		bounds, err := panel.TimelineRange()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    panel %d frames %d-%d", number, bounds.Start, bounds.End)

		layers, err := panel.Layers(false, true)
		if err != nil {
			return err
		}
		for _, layer := range layers {
			name, err := layer.Name()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " %s", name)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printTimeline(w io.Writer, project *sboard.Project) error {
	timeline, err := project.Timeline()
	if err != nil {
		return err
	}

	tracks, err := timeline.VideoTracks()
	if err != nil {
		return err
	}
	for _, track := range tracks {
		name, err := track.Name()
		if err != nil {
			return err
		}
		enabled, err := track.IsEnabled()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "video track %s enabled=%t\n", name, enabled)

		clips, err := track.Clips()
		if err != nil {
			return err
		}
		for _, clip := range clips {
			bounds, err := clip.TimelineRange()
			if err != nil {
				return err
			}
			line := fmt.Sprintf("  clip frames %d-%d", bounds.Start, bounds.End)
			mediaPath, err := clip.Path()
			switch {
			case err == nil:
				line += " " + mediaPath
			case !errors.IsLookup(err):
				return err
			}
			fmt.Fprintln(w, line)
		}
	}

	audio, err := timeline.AudioTracks()
	if err != nil {
		return err
	}
	for _, track := range audio {
		name, err := track.Name()
		if err != nil {
			return err
		}
		enabled, err := track.IsEnabled()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "audio track %s enabled=%t\n", name, enabled)

		clips, err := track.Clips()
		if err != nil {
			return err
		}
		for _, clip := range clips {
			mediaPath, err := clip.Path()
			if err != nil {
				return err
			}
			bounds, err := clip.TimelineRange()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  clip frames %d-%d %s\n", bounds.Start, bounds.End, mediaPath)
		}
	}
	return nil
}

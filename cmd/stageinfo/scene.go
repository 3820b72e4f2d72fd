package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stagekit/harmony"
	"github.com/stagekit/harmony/errors"
)

func newSceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene <file.xstage>",
		Short: "Summarize a scene document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return summarizeScene(cmd.OutOrStdout(), args[0])
		},
	}
}

func summarizeScene(w io.Writer, path string) error {
	scene, err := harmony.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	id, err := scene.ID()
	if err != nil {
		return err
	}
	start, err := scene.StartFrame()
	if err != nil {
		return err
	}
	end, err := scene.EndFrame()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "scene %s frames %d-%d\n", id, start, end)

	columns, err := scene.Columns()
	if err != nil {
		return err
	}
	for _, column := range columns {
		name, err := column.Name()
		if err != nil {
			return err
		}
		kind, err := column.Type()
		if err != nil {
			return err
		}
		line := fmt.Sprintf("  column %s type %d", name, kind)
		element, err := column.Element()
		switch {
		case err == nil:
			elementName, err := element.Name()
			if err != nil {
				return err
			}
			line += " element " + elementName
		case !errors.IsLookup(err):
			return err
		}
		fmt.Fprintln(w, line)
	}

	elements, err := scene.Elements()
	if err != nil {
		return err
	}
	for _, element := range elements {
		name, err := element.Name()
		if err != nil {
			return err
		}
		rootFolder, err := element.RootFolder()
		if err != nil {
			return err
		}
		folder, err := element.Folder()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  element %s at %s/%s\n", name, rootFolder, folder)
	}
	return nil
}

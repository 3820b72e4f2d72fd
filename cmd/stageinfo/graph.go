package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stagekit/harmony"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <file.xstage>",
		Short: "Print the node graph of a scene document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := harmony.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse scene: %w", err)
			}
			root, err := scene.Graph()
			if err != nil {
				return err
			}
			return printNode(cmd.OutOrStdout(), root, 0)
		},
	}
}

func printNode(w io.Writer, node *harmony.GraphNode, depth int) error {
	name, err := node.Name()
	if err != nil {
		return err
	}
	kind, err := node.Type()
	if err != nil {
		return err
	}

	var from string
	inputs, err := node.InputNodes()
	if err != nil {
		return err
	}
	if len(inputs) > 0 {
		names := make([]string, 0, len(inputs))
		for _, input := range inputs {
			inputName, err := input.Name()
			if err != nil {
				return err
			}
			names = append(names, inputName)
		}
		from = " <- " + strings.Join(names, ", ")
	}

	fmt.Fprintf(w, "%s%s (%s)%s\n", strings.Repeat("  ", depth), name, kind, from)

	for child := range node.Children(false) {
		if err := printNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Package harmony provides a read-only object model over Harmony scene
// files (.xstage): an XML document describing a node graph, exposure
// columns and a table of referenced media elements. Every type is a view
// wrapping a node of the parsed tree; relationships are resolved lazily
// on access and nothing is cached or mutated.
//
// The legacy multi-scene project format (.sboard) is covered by the
// sboard subpackage.
package harmony

import (
	"io"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
)

// ParseFile reads and parses a scene file from a path.
func ParseFile(path string) (*Scene, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	return sceneFromDocument(doc)
}

// Parse reads and parses a scene document from r.
func Parse(r io.Reader) (*Scene, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return sceneFromDocument(doc)
}

func sceneFromDocument(doc *etree.Document) (*Scene, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.CodeMissingChild, "document has no root element")
	}
	return NewScene(root), nil
}

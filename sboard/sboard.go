// Package sboard provides a read-only object model over legacy
// multi-scene project files (.sboard): sequences, scenes, panels, layer
// graphs, timeline tracks with clips, and a library of referenced media
// files. Like the harmony package it wraps the parsed XML tree with lazy
// views; nothing is precomputed, cached or mutated.
package sboard

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
)

// ParseFile reads and parses a project file from a path.
func ParseFile(path string) (*Project, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	return projectFromDocument(doc)
}

// Parse reads and parses a project document from r.
func Parse(r io.Reader) (*Project, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return projectFromDocument(doc)
}

func projectFromDocument(doc *etree.Document) (*Project, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.CodeMissingChild, "document has no root element")
	}
	return NewProject(root), nil
}

// Project is the root view of a project document.
type Project struct {
	el *etree.Element
}

// NewProject wraps an already parsed document root element.
func NewProject(el *etree.Element) *Project {
	return &Project{el: el}
}

// XMLElement returns the backing document root element.
func (p *Project) XMLElement() *etree.Element {
	return p.el
}

// top returns the Top scene element, the global timeline of the project.
func (p *Project) top() (*etree.Element, error) {
	return attr.Child(p.el, "./scenes/scene[@name='Top']")
}

// Title returns the project title.
func (p *Project) Title() (string, error) {
	meta, err := attr.Child(p.el, "./metas/meta[@name='projectTitle']/string")
	if err != nil {
		return "", err
	}
	return attr.String(meta, "value")
}

// FrameRate returns the frame rate of the project.
func (p *Project) FrameRate() (float64, error) {
	rate, err := attr.Child(p.el, "./options/framerate")
	if err != nil {
		return 0, err
	}
	return attr.Float(rate, "val")
}

// Scenes returns the scenes of the project in document order. Scene
// elements are recognized by their name attribute; the same element pool
// also stores panels and clip media, which are not scenes.
func (p *Project) Scenes() ([]*Scene, error) {
	var scenes []*Scene
	for _, el := range p.el.FindElements("./scenes/scene") {
		name, err := attr.String(el, "name")
		if err != nil {
			return nil, err
		}
		if !strings.Contains(name, "shot") {
			continue
		}
		scenes = append(scenes, &Scene{el: el, project: p})
	}
	return scenes, nil
}

// Sequences returns the sequences of the project: virtual groupings of
// scenes sharing a sequence name. Order follows the first appearance of
// each name. The result is empty when the project's sequenceExists meta
// is false.
func (p *Project) Sequences() ([]Sequence, error) {
	for _, meta := range p.el.FindElements("./metas/meta[@name='sequenceExists']") {
		flag, err := attr.Child(meta, "./bool")
		if err != nil {
			return nil, err
		}
		value, err := attr.String(flag, "value")
		if err != nil {
			return nil, err
		}
		if value != "true" {
			return nil, nil
		}
	}

	scenes, err := p.Scenes()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var sequences []Sequence
	for _, scene := range scenes {
		seq, err := scene.Sequence()
		if err != nil {
			return nil, err
		}
		if seen[seq.Name()] {
			continue
		}
		seen[seq.Name()] = true
		sequences = append(sequences, seq)
	}
	return sequences, nil
}

// Timeline returns the global timeline of the project.
func (p *Project) Timeline() (*Timeline, error) {
	top, err := p.top()
	if err != nil {
		return nil, err
	}
	return &Timeline{el: top, project: p}, nil
}

// Library returns the library of file references used by the project.
// Audio files are not part of the library.
func (p *Project) Library() (*Library, error) {
	el, err := attr.Child(p.el, "./elements")
	if err != nil {
		return nil, err
	}
	return &Library{el: el, project: p}, nil
}

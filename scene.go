package harmony

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
	"github.com/stagekit/harmony/internal/nodegraph"
)

// Scene is the root view of a scene document. It wraps the document root
// element; the scene element proper sits at scenes/scene[@name='Top'] and
// is resolved on every access.
type Scene struct {
	el *etree.Element
}

// NewScene wraps an already parsed document root element.
func NewScene(el *etree.Element) *Scene {
	return &Scene{el: el}
}

// XMLElement returns the backing document root element.
func (s *Scene) XMLElement() *etree.Element {
	return s.el
}

func (s *Scene) sceneRoot() (*etree.Element, error) {
	return attr.Child(s.el, "./scenes/scene[@name='Top']")
}

// ID returns the scene identifier.
func (s *Scene) ID() (string, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return "", err
	}
	return attr.String(root, "id")
}

// StartFrame returns the first frame of the scene.
func (s *Scene) StartFrame() (int, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return 0, err
	}
	return attr.Int(root, "startFrame")
}

// EndFrame returns the last frame of the scene.
func (s *Scene) EndFrame() (int, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return 0, err
	}
	return attr.Int(root, "stopFrame")
}

// Columns returns the exposure columns of the scene in document order.
func (s *Scene) Columns() ([]*Column, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return nil, err
	}
	var columns []*Column
	for _, el := range root.FindElements("./columns/column") {
		columns = append(columns, &Column{el: el, scene: s})
	}
	return columns, nil
}

// ColumnByID returns the column with the given id.
func (s *Scene) ColumnByID(id int) (*Column, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return nil, err
	}
	el := attr.Find(root, fmt.Sprintf("./columns/column[@id='%d']", id))
	if el == nil {
		return nil, errors.Newf(errors.CodeColumnNotFound, "no column with id %d found", id)
	}
	return &Column{el: el, scene: s}, nil
}

// ColumnByName returns the column with the given name.
func (s *Scene) ColumnByName(name string) (*Column, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return nil, err
	}
	el := attr.Find(root, fmt.Sprintf("./columns/column[@name='%s']", name))
	if el == nil {
		return nil, errors.Newf(errors.CodeColumnNotFound, "no column with name %q found", name)
	}
	return &Column{el: el, scene: s}, nil
}

// Elements returns the media elements of the scene in document order.
func (s *Scene) Elements() ([]*Element, error) {
	var elements []*Element
	for _, el := range s.el.FindElements("./elements/element") {
		elements = append(elements, &Element{el: el})
	}
	return elements, nil
}

// ElementByID returns the element with the given id.
func (s *Scene) ElementByID(id int) (*Element, error) {
	el := attr.Find(s.el, fmt.Sprintf("./elements/element[@id='%d']", id))
	if el == nil {
		return nil, errors.Newf(errors.CodeElementNotFound, "no element with id %d found", id)
	}
	return &Element{el: el}, nil
}

// ElementByName returns the element with the given name.
func (s *Scene) ElementByName(name string) (*Element, error) {
	el := attr.Find(s.el, fmt.Sprintf("./elements/element[@elementName='%s']", name))
	if el == nil {
		return nil, errors.Newf(errors.CodeElementNotFound, "no element with name %q found", name)
	}
	return &Element{el: el}, nil
}

// Graph returns the root node of the scene's node graph.
func (s *Scene) Graph() (*GraphNode, error) {
	root, err := s.sceneRoot()
	if err != nil {
		return nil, err
	}
	group, err := attr.Child(root, "./rootgroup")
	if err != nil {
		return nil, err
	}
	return &GraphNode{node: nodegraph.NewRoot(group)}, nil
}

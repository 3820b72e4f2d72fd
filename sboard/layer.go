package sboard

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
	"github.com/stagekit/harmony/internal/nodegraph"
)

// GroupLayerType is the type tag marking a layer group.
const GroupLayerType = "PEG"

// Layer is a module node of a panel's layer graph. Leaf layers expose a
// drawing backed by a library element; group layers contain nested
// layers resolved through the graph's link table.
type Layer struct {
	node  *nodegraph.Node
	panel *Panel
}

// XMLElement returns the backing tree element.
func (l *Layer) XMLElement() *etree.Element {
	return l.node.XMLElement()
}

// Panel returns the panel the layer belongs to.
func (l *Layer) Panel() *Panel {
	return l.panel
}

// Name returns the layer name.
func (l *Layer) Name() (string, error) {
	return l.node.Name()
}

// Type returns the layer type tag.
func (l *Layer) Type() (string, error) {
	return l.node.Type()
}

// IsGroup reports whether the layer is a group.
func (l *Layer) IsGroup() (bool, error) {
	typ, err := l.Type()
	if err != nil {
		return false, err
	}
	return typ == GroupLayerType, nil
}

// children returns the layers linked under this layer, unfiltered.
func (l *Layer) children() ([]*Layer, error) {
	nodes, err := l.node.Outputs()
	if err != nil {
		return nil, err
	}
	var layers []*Layer
	for _, node := range nodes {
		layers = append(layers, &Layer{node: node, panel: l.panel})
	}
	return layers, nil
}

// Layers returns the layers nested under this layer. Leaf layers have
// none. Filtering follows the same rules as Panel.Layers.
func (l *Layer) Layers(groups, recursive bool) ([]*Layer, error) {
	isGroup, err := l.IsGroup()
	if err != nil {
		return nil, err
	}
	if !isGroup {
		return nil, nil
	}
	children, err := l.children()
	if err != nil {
		return nil, err
	}
	return filterLayers(children, groups, recursive)
}

// Element returns the library element backing this layer's drawing. The
// resolution joins three subtrees: the layer's drawing attribute names a
// column of the panel, the column's element sequence carries a category
// id and element name, and the pair resolves against the project
// library. A break at any hop surfaces as the corresponding lookup
// error.
func (l *Layer) Element() (*LibraryElement, error) {
	draw, err := attr.Child(l.node.XMLElement(), "./attrs/drawing/element")
	if err != nil {
		return nil, err
	}
	columnName, err := attr.String(draw, "col")
	if err != nil {
		return nil, err
	}

	seq := attr.Find(l.panel.el, fmt.Sprintf("./columns/column[@name='%s']/elementSeq", columnName))
	if seq == nil {
		return nil, errors.Newf(errors.CodeColumnNotFound, "panel has no column named %q with an element sequence", columnName)
	}
	categoryID, err := attr.String(seq, "id")
	if err != nil {
		return nil, err
	}
	elementName, err := attr.String(seq, "val")
	if err != nil {
		return nil, err
	}

	library, err := l.panel.scene.project.Library()
	if err != nil {
		return nil, err
	}
	category, err := library.CategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	return category.ElementByName(elementName)
}

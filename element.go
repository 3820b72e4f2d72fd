package harmony

import (
	"github.com/beevik/etree"

	"github.com/stagekit/harmony/internal/attr"
)

// Element is a named, identified reference to an external media asset of
// the scene's element table.
type Element struct {
	el *etree.Element
}

// XMLElement returns the backing tree element.
func (e *Element) XMLElement() *etree.Element {
	return e.el
}

// ID returns the element id, unique within the scene's element table.
func (e *Element) ID() (int, error) {
	return attr.Int(e.el, "id")
}

// Name returns the element name.
func (e *Element) Name() (string, error) {
	return attr.String(e.el, "elementName")
}

// Folder returns the folder holding the element's files.
func (e *Element) Folder() (string, error) {
	return attr.String(e.el, "elementFolder")
}

// RootFolder returns the root folder the element folder lives under.
func (e *Element) RootFolder() (string, error) {
	return attr.String(e.el, "rootFolder")
}

package harmony

import (
	"github.com/beevik/etree"

	"github.com/stagekit/harmony/internal/attr"
)

// ColumnType is the integer type tag of an exposure column.
type ColumnType int

const (
	// ColumnTypeDrawing marks a drawing or video column.
	ColumnTypeDrawing ColumnType = 0
	// ColumnTypeSound marks a sound column.
	ColumnTypeSound ColumnType = 1
)

// Column is a named, typed exposure track. A column is associated with at
// most one element through a shared id.
type Column struct {
	el    *etree.Element
	scene *Scene
}

// XMLElement returns the backing tree element.
func (c *Column) XMLElement() *etree.Element {
	return c.el
}

// ID returns the column id.
func (c *Column) ID() (int, error) {
	return attr.Int(c.el, "id")
}

// Name returns the column name.
func (c *Column) Name() (string, error) {
	return attr.String(c.el, "name")
}

// Type returns the column type tag.
func (c *Column) Type() (ColumnType, error) {
	n, err := attr.Int(c.el, "type")
	if err != nil {
		return 0, err
	}
	return ColumnType(n), nil
}

// Color returns the display color of the column in hexadecimal format.
func (c *Column) Color() (string, error) {
	return attr.String(c.el, "color")
}

// Element returns the element backing this column, matched by the shared
// id.
func (c *Column) Element() (*Element, error) {
	id, err := c.ID()
	if err != nil {
		return nil, err
	}
	return c.scene.ElementByID(id)
}

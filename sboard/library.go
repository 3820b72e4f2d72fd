package sboard

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
)

// extensionByCategory maps lowercased category names to the file
// extension of the category's elements. Unmapped categories use their
// own name as extension.
var extensionByCategory = map[string]string{
	"draw":      "tvg",
	"fbxmodels": "fbx",
	"abcmodels": "abc",
}

// Library stores the references to the files used by the project. Audio
// files live outside the library folder and are not part of it.
type Library struct {
	el      *etree.Element
	project *Project
}

// XMLElement returns the backing tree element.
func (l *Library) XMLElement() *etree.Element {
	return l.el
}

// Project returns the owning project.
func (l *Library) Project() *Project {
	return l.project
}

// Categories returns the categories of the library in document order.
func (l *Library) Categories() ([]*LibraryCategory, error) {
	var categories []*LibraryCategory
	for _, el := range l.el.FindElements("./element") {
		categories = append(categories, &LibraryCategory{el: el, library: l})
	}
	return categories, nil
}

// CategoryByID returns the category with the given id.
func (l *Library) CategoryByID(id string) (*LibraryCategory, error) {
	el := attr.Find(l.el, fmt.Sprintf("./element[@id='%s']", id))
	if el == nil {
		return nil, errors.Newf(errors.CodeCategoryNotFound, "no library category with id %q found", id)
	}
	return &LibraryCategory{el: el, library: l}, nil
}

// Elements returns every element of every category, grouped by category
// in document order.
func (l *Library) Elements() ([]*LibraryElement, error) {
	categories, err := l.Categories()
	if err != nil {
		return nil, err
	}
	var elements []*LibraryElement
	for _, category := range categories {
		items, err := category.Elements()
		if err != nil {
			return nil, err
		}
		elements = append(elements, items...)
	}
	return elements, nil
}

// LibraryCategory is a named bucket of files sharing a folder and an
// extension.
type LibraryCategory struct {
	el      *etree.Element
	library *Library
}

// XMLElement returns the backing tree element.
func (c *LibraryCategory) XMLElement() *etree.Element {
	return c.el
}

// Library returns the owning library.
func (c *LibraryCategory) Library() *Library {
	return c.library
}

// UID returns the category id. Ids vary across projects and are not
// comparable between them.
func (c *LibraryCategory) UID() (string, error) {
	return attr.String(c.el, "id")
}

// Name returns the category name.
func (c *LibraryCategory) Name() (string, error) {
	return attr.String(c.el, "elementName")
}

// RootFolder returns the root folder of the category.
func (c *LibraryCategory) RootFolder() (string, error) {
	return attr.String(c.el, "rootFolder")
}

// Folder returns the folder of the category under its root folder.
func (c *LibraryCategory) Folder() (string, error) {
	return attr.String(c.el, "elementFolder")
}

// Extension returns the file extension of the category's elements,
// matched case-insensitively against the known category names and
// falling back to the category's own name.
func (c *LibraryCategory) Extension() (string, error) {
	name, err := c.Name()
	if err != nil {
		return "", err
	}
	if ext, ok := extensionByCategory[strings.ToLower(name)]; ok {
		return ext, nil
	}
	return name, nil
}

// Elements returns the elements of the category in document order.
func (c *LibraryCategory) Elements() ([]*LibraryElement, error) {
	var elements []*LibraryElement
	for _, el := range c.el.FindElements("./drawings/dwg") {
		elements = append(elements, &LibraryElement{el: el, category: c})
	}
	return elements, nil
}

// ElementByName returns the element of the category with the given name.
func (c *LibraryCategory) ElementByName(name string) (*LibraryElement, error) {
	el := attr.Find(c.el, fmt.Sprintf("./drawings/dwg[@name='%s']", name))
	if el == nil {
		categoryName, nameErr := c.Name()
		if nameErr != nil {
			categoryName = "<unnamed>"
		}
		return nil, errors.Newf(errors.CodeElementNotFound, "no element named %q in library category %q", name, categoryName)
	}
	return &LibraryElement{el: el, category: c}, nil
}

// LibraryElement is one file reference within a category.
type LibraryElement struct {
	el       *etree.Element
	category *LibraryCategory
}

// XMLElement returns the backing tree element.
func (e *LibraryElement) XMLElement() *etree.Element {
	return e.el
}

// Category returns the category the element belongs to.
func (e *LibraryElement) Category() *LibraryCategory {
	return e.category
}

// Name returns the element name.
func (e *LibraryElement) Name() (string, error) {
	return attr.String(e.el, "name")
}

// Path returns the path of the file relative to the project file:
// the category's root folder, its folder, and the element name with the
// category extension.
func (e *LibraryElement) Path() (string, error) {
	name, err := e.Name()
	if err != nil {
		return "", err
	}
	rootFolder, err := e.category.RootFolder()
	if err != nil {
		return "", err
	}
	folder, err := e.category.Folder()
	if err != nil {
		return "", err
	}
	extension, err := e.category.Extension()
	if err != nil {
		return "", err
	}
	return filepath.Join(rootFolder, folder, name+"."+extension), nil
}

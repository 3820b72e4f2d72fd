// Package attr provides typed attribute and child access over etree
// elements. Every accessor fails with a coded structural error when the
// expected attribute or child path is absent, so malformed documents
// surface at the first read instead of producing zero values.
package attr

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
)

// String returns the value of a required attribute.
func String(el *etree.Element, key string) (string, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return "", errors.Newf(errors.CodeMissingAttribute, "element <%s> has no attribute %q", el.Tag, key)
	}
	return a.Value, nil
}

// Int returns a required attribute parsed as an integer.
func Int(el *etree.Element, key string) (int, error) {
	s, err := String(el, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidAttribute, "element <%s> attribute %q: %q is not an integer", el.Tag, key, s)
	}
	return n, nil
}

// Float returns a required attribute parsed as a float.
func Float(el *etree.Element, key string) (float64, error) {
	s, err := String(el, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidAttribute, "element <%s> attribute %q: %q is not a number", el.Tag, key, s)
	}
	return f, nil
}

// Child resolves a required child path below el.
func Child(el *etree.Element, path string) (*etree.Element, error) {
	child := el.FindElement(path)
	if child == nil {
		return nil, errors.Newf(errors.CodeMissingChild, "element <%s> has no child at path %q", el.Tag, path)
	}
	return child, nil
}

// Find resolves an optional child path below el. A nil result means the
// path has no match; callers decide whether that is an error.
func Find(el *etree.Element, path string) *etree.Element {
	return el.FindElement(path)
}

package attr_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
)

func element(t *testing.T, raw string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(raw))
	return doc.Root()
}

func TestString(t *testing.T) {
	el := element(t, `<column name="Drawing" type="0"/>`)

	name, err := attr.String(el, "name")
	require.NoError(t, err)
	assert.Equal(t, "Drawing", name)

	_, err = attr.String(el, "color")
	assert.True(t, errors.HasCode(err, errors.CodeMissingAttribute))
}

func TestInt(t *testing.T) {
	el := element(t, `<scene startFrame="1" id="abc"/>`)

	n, err := attr.Int(el, "startFrame")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = attr.Int(el, "id")
	assert.True(t, errors.HasCode(err, errors.CodeInvalidAttribute))

	_, err = attr.Int(el, "stopFrame")
	assert.True(t, errors.HasCode(err, errors.CodeMissingAttribute))
}

func TestFloat(t *testing.T) {
	el := element(t, `<framerate val="24.0" unit="fps"/>`)

	f, err := attr.Float(el, "val")
	require.NoError(t, err)
	assert.InDelta(t, 24.0, f, 1e-9)

	_, err = attr.Float(el, "unit")
	assert.True(t, errors.HasCode(err, errors.CodeInvalidAttribute))
}

func TestChild(t *testing.T) {
	el := element(t, `<project><metas><meta name="projectTitle"><string value="Demo"/></meta></metas></project>`)

	title, err := attr.Child(el, "./metas/meta[@name='projectTitle']/string")
	require.NoError(t, err)

	value, err := attr.String(title, "value")
	require.NoError(t, err)
	assert.Equal(t, "Demo", value)

	_, err = attr.Child(el, "./options/framerate")
	assert.True(t, errors.HasCode(err, errors.CodeMissingChild))

	assert.Nil(t, attr.Find(el, "./options"))
	assert.NotNil(t, attr.Find(el, "./metas"))
}

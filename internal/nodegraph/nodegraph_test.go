package nodegraph_test

import (
	"slices"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/nodegraph"
)

const graphXML = `
<rootgroup name="Top">
  <nodeslist>
    <module name="Drawing" type="READ"/>
    <module name="Composite" type="COMPOSITE"/>
    <module name="Write" type="WRITE"/>
    <module name="Effects" type="GROUP">
      <nodeslist>
        <module name="Blur" type="READ"/>
      </nodeslist>
    </module>
  </nodeslist>
  <linkedlist>
    <link out="Drawing" in="Composite"/>
    <link out="Composite" in="Write"/>
  </linkedlist>
</rootgroup>`

func root(t *testing.T) *nodegraph.Node {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(graphXML))
	return nodegraph.NewRoot(doc.Root())
}

func names(t *testing.T, nodes []*nodegraph.Node) []string {
	t.Helper()
	var out []string
	for _, n := range nodes {
		name, err := n.Name()
		require.NoError(t, err)
		out = append(out, name)
	}
	return out
}

func TestRootNode(t *testing.T) {
	top := root(t)

	assert.True(t, top.IsRoot())
	assert.Nil(t, top.Parent())

	typ, err := top.Type()
	require.NoError(t, err)
	assert.Equal(t, nodegraph.RootType, typ)

	// Root path is the root's own name, no separator.
	path, err := top.Path()
	require.NoError(t, err)
	assert.Equal(t, "Top", path)

	inputs, err := top.Inputs()
	require.NoError(t, err)
	assert.Empty(t, inputs)

	outputs, err := top.Outputs()
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestChildrenOrder(t *testing.T) {
	top := root(t)

	direct := names(t, slices.Collect(top.Children(false)))
	assert.Equal(t, []string{"Drawing", "Composite", "Write", "Effects"}, direct)

	// Pre-order: descendants interleave right after their parent.
	recursive := names(t, slices.Collect(top.Children(true)))
	assert.Equal(t, []string{"Drawing", "Composite", "Write", "Effects", "Blur"}, recursive)
}

func TestChildrenFreshPerCall(t *testing.T) {
	top := root(t)

	seq := top.Children(false)
	assert.Len(t, slices.Collect(seq), 4)
	assert.Len(t, slices.Collect(seq), 4)
}

func TestChildDeepSearch(t *testing.T) {
	top := root(t)

	blur, err := top.Child("Blur")
	require.NoError(t, err)

	// Deep search parents the found node to the searched node.
	assert.Same(t, top, blur.Parent())
	path, err := blur.Path()
	require.NoError(t, err)
	assert.Equal(t, "Top/Blur", path)
}

func TestChildNotFound(t *testing.T) {
	top := root(t)

	_, err := top.Child("unknown")
	assert.True(t, errors.HasCode(err, errors.CodeChildNotFound))
	assert.Contains(t, err.Error(), "Top")
	assert.Contains(t, err.Error(), "unknown")
}

func TestChildAtPath(t *testing.T) {
	top := root(t)

	blur, err := top.ChildAtPath("Effects/Blur")
	require.NoError(t, err)

	path, err := blur.Path()
	require.NoError(t, err)
	assert.Equal(t, "Top/Effects/Blur", path)

	typ, err := blur.Type()
	require.NoError(t, err)
	assert.Equal(t, "READ", typ)

	_, err = top.ChildAtPath("Effects/unknown")
	assert.True(t, errors.HasCode(err, errors.CodeChildNotFound))
}

func TestNonRootPathComposition(t *testing.T) {
	top := root(t)

	composite, err := top.Child("Composite")
	require.NoError(t, err)

	path, err := composite.Path()
	require.NoError(t, err)
	assert.Equal(t, "Top/Composite", path)
}

func TestLinks(t *testing.T) {
	top := root(t)

	assert.Equal(t, []nodegraph.Link{
		{Out: "Drawing", In: "Composite"},
		{Out: "Composite", In: "Write"},
	}, top.Links())
}

func TestInputsOutputsInverse(t *testing.T) {
	top := root(t)

	composite, err := top.Child("Composite")
	require.NoError(t, err)
	drawing, err := top.Child("Drawing")
	require.NoError(t, err)
	write, err := top.Child("Write")
	require.NoError(t, err)

	inputs, err := composite.Inputs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Drawing"}, names(t, inputs))

	outputs, err := drawing.Outputs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Composite"}, names(t, outputs))

	inputs, err = drawing.Inputs()
	require.NoError(t, err)
	assert.Empty(t, inputs)

	outputs, err = write.Outputs()
	require.NoError(t, err)
	assert.Empty(t, outputs)

	inputs, err = write.Inputs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Composite"}, names(t, inputs))
}

func TestDanglingLinkSurfaces(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`
<rootgroup name="Top">
  <nodeslist>
    <module name="A" type="READ"/>
  </nodeslist>
  <linkedlist>
    <link out="Ghost" in="A"/>
  </linkedlist>
</rootgroup>`))
	top := nodegraph.NewRoot(doc.Root())

	a, err := top.Child("A")
	require.NoError(t, err)

	_, err = a.Inputs()
	assert.True(t, errors.HasCode(err, errors.CodeChildNotFound))
}

package harmony

import (
	"iter"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/internal/nodegraph"
)

// RootNodeType is the synthesized type tag of the graph root node.
const RootNodeType = nodegraph.RootType

// GraphNode is a node of the scene's composition graph. The root node is
// synthesized over the rootgroup element: it has no parent and reports
// RootNodeType instead of a type read from the tree.
type GraphNode struct {
	node *nodegraph.Node
}

// XMLElement returns the backing tree element.
func (g *GraphNode) XMLElement() *etree.Element {
	return g.node.XMLElement()
}

// Name returns the node name, locally unique among its siblings.
func (g *GraphNode) Name() (string, error) {
	return g.node.Name()
}

// Type returns the node type tag, or RootNodeType for the root.
func (g *GraphNode) Type() (string, error) {
	return g.node.Type()
}

// Parent returns the parent node, nil for the graph root.
func (g *GraphNode) Parent() *GraphNode {
	parent := g.node.Parent()
	if parent == nil {
		return nil
	}
	return &GraphNode{node: parent}
}

// IsRoot reports whether this node is the graph root.
func (g *GraphNode) IsRoot() bool {
	return g.node.IsRoot()
}

// Path returns the slash joined chain of names from the root to this
// node. The root path is its own name.
func (g *GraphNode) Path() (string, error) {
	return g.node.Path()
}

// Children returns a lazy sequence of child nodes in document order.
// When recursive is set, descendants follow each child in pre-order. The
// sequence is finite and rebuilt on every call.
func (g *GraphNode) Children(recursive bool) iter.Seq[*GraphNode] {
	return func(yield func(*GraphNode) bool) {
		for child := range g.node.Children(recursive) {
			if !yield(&GraphNode{node: child}) {
				return
			}
		}
	}
}

// Child searches depth first under this node for a descendant with the
// given name.
func (g *GraphNode) Child(name string) (*GraphNode, error) {
	child, err := g.node.Child(name)
	if err != nil {
		return nil, err
	}
	return &GraphNode{node: child}, nil
}

// ChildAtPath resolves a slash separated chain of names via Child,
// failing at the first unresolved segment.
func (g *GraphNode) ChildAtPath(path string) (*GraphNode, error) {
	child, err := g.node.ChildAtPath(path)
	if err != nil {
		return nil, err
	}
	return &GraphNode{node: child}, nil
}

// InputNodes returns the nodes feeding this node, resolved through the
// link table scoped to this node's parent. The root has no inputs.
func (g *GraphNode) InputNodes() ([]*GraphNode, error) {
	return wrapNodes(g.node.Inputs())
}

// OutputNodes returns the nodes this node feeds. The root has no outputs.
func (g *GraphNode) OutputNodes() ([]*GraphNode, error) {
	return wrapNodes(g.node.Outputs())
}

func wrapNodes(nodes []*nodegraph.Node, err error) ([]*GraphNode, error) {
	if err != nil {
		return nil, err
	}
	var wrapped []*GraphNode
	for _, n := range nodes {
		wrapped = append(wrapped, &GraphNode{node: n})
	}
	return wrapped, nil
}

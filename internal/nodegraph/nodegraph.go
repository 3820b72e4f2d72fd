// Package nodegraph implements traversal over the node graphs embedded in
// animation project documents. A graph lives under a group element holding
// a nodeslist container (the ordered children) and a linkedlist container
// (the connection records, keyed by node name). The tree itself carries no
// parent or edge pointers, so nodes here pair the backing element with a
// non-owning parent reference and resolve relationships on demand.
package nodegraph

import (
	"fmt"
	"iter"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
)

// RootType is the synthesized type tag of a graph root. It is never read
// from the tree.
const RootType = "ROOT"

// Node is a view over one graph element. The parent reference is used only
// for traversal; children are always reconstructed from their parent's
// element, never cached.
type Node struct {
	el     *etree.Element
	parent *Node
}

// Link is one connection record of a link table: the out endpoint feeds
// the in endpoint.
type Link struct {
	Out string
	In  string
}

// NewRoot wraps el as a graph root. The root has no parent and reports the
// synthesized RootType.
func NewRoot(el *etree.Element) *Node {
	return &Node{el: el}
}

// XMLElement returns the backing tree element.
func (n *Node) XMLElement() *etree.Element {
	return n.el
}

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether the node is the graph root.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Name returns the node name. Names are unique among siblings by
// convention of the authoring tool; this is not enforced here.
func (n *Node) Name() (string, error) {
	return attr.String(n.el, "name")
}

// Type returns the node type tag, or RootType for the root.
func (n *Node) Type() (string, error) {
	if n.IsRoot() {
		return RootType, nil
	}
	return attr.String(n.el, "type")
}

// Path returns the slash joined chain of names from the root to this node.
func (n *Node) Path() (string, error) {
	name, err := n.Name()
	if err != nil {
		return "", err
	}
	if n.IsRoot() {
		return name, nil
	}
	parentPath, err := n.parent.Path()
	if err != nil {
		return "", err
	}
	return parentPath + "/" + name, nil
}

// Children returns a lazy sequence of the nodes under this node's
// nodeslist container, in document order. When recursive is set,
// descendants are interleaved immediately after each child (pre-order).
// The sequence is rebuilt on every call.
func (n *Node) Children(recursive bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.children(recursive, yield)
	}
}

func (n *Node) children(recursive bool, yield func(*Node) bool) bool {
	for _, el := range n.el.FindElements("./nodeslist/*") {
		child := &Node{el: el, parent: n}
		if !yield(child) {
			return false
		}
		if recursive && !child.children(recursive, yield) {
			return false
		}
	}
	return true
}

// Child searches depth first anywhere under this node for a descendant
// with the given name. The returned node is parented to this node
// regardless of its depth in the tree.
func (n *Node) Child(name string) (*Node, error) {
	found := n.el.FindElement(fmt.Sprintf(".//*[@name='%s']", name))
	if found == nil {
		path, pathErr := n.Path()
		if pathErr != nil {
			path = "<unnamed>"
		}
		return nil, errors.Newf(errors.CodeChildNotFound, "node %q has no child named %q", path, name)
	}
	return &Node{el: found, parent: n}, nil
}

// ChildAtPath resolves a slash separated chain of names segment by
// segment, failing at the first segment without a match.
func (n *Node) ChildAtPath(path string) (*Node, error) {
	current := n
	for segment := range splitPath(path) {
		child, err := current.Child(segment)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// Links returns the connection records of this node's own link table, in
// document order. Elements under the container lacking either endpoint
// attribute are not link records and are skipped.
func (n *Node) Links() []Link {
	var links []Link
	for _, el := range n.el.FindElements("./linkedlist//*") {
		out := el.SelectAttr("out")
		in := el.SelectAttr("in")
		if out == nil || in == nil {
			continue
		}
		links = append(links, Link{Out: out.Value, In: in.Value})
	}
	return links
}

// Inputs returns the nodes feeding this node: for every link record of
// the parent's table naming this node as the in endpoint, the out
// counterpart is resolved by name. The root has no parent and therefore
// no inputs.
func (n *Node) Inputs() ([]*Node, error) {
	if n.IsRoot() {
		return nil, nil
	}
	name, err := n.Name()
	if err != nil {
		return nil, err
	}
	var nodes []*Node
	for _, link := range n.parent.Links() {
		if link.In != name {
			continue
		}
		node, err := n.parent.Child(link.Out)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Outputs returns the nodes this node feeds, resolved symmetrically to
// Inputs.
func (n *Node) Outputs() ([]*Node, error) {
	if n.IsRoot() {
		return nil, nil
	}
	name, err := n.Name()
	if err != nil {
		return nil, err
	}
	var nodes []*Node
	for _, link := range n.parent.Links() {
		if link.Out != name {
			continue
		}
		node, err := n.parent.Child(link.In)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func splitPath(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i <= len(path); i++ {
			if i == len(path) || path[i] == '/' {
				if !yield(path[start:i]) {
					return
				}
				start = i + 1
			}
		}
	}
}

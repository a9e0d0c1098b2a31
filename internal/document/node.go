package document

// Node is one element of a parsed document.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string // character data before the first child element
	Children []*Node
}

// Attr returns the attribute value and whether it was present
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// ChildrenByTag returns the direct children carrying tag, in document order
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from visit stops the walk.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// Collect returns every node in n's subtree, n included, for which match is true
func Collect(n *Node, match func(*Node) bool) []*Node {
	var out []*Node
	Walk(n, func(cur *Node) bool {
		if match(cur) {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// HasTag builds a predicate matching nodes by local tag name
func HasTag(tag string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Tag == tag
	}
}

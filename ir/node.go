package ir

import (
	"maps"
	"slices"
)

// Node is one value in a parsed document. Scalars carry their text in
// Scalar; the format has no typed scalars, so "3", "true" and "3s" are all
// plain text. Maps keep Keys and Values as parallel slices in insertion
// order with unique keys (last write wins); lists use Values alone.
//
// Any is never set by the parser. It carries a caller-typed payload
// attached by a parse transform, and is preferred by [Node.ToAny].
type Node struct {
	Type   Type
	Scalar string
	Any    any
	Keys   []string
	Values []*Node

	// Line is the 1-based source line the node started on, 0 for nodes
	// built programmatically.
	Line int
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, Scalar: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewMap() *Node {
	return &Node{Type: MapType}
}

func NewList() *Node {
	return &Node{Type: ListType}
}

// FromMap builds a map node with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewMap()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ListType, Values: vs}
}

// Set writes key in a map node, replacing the value of an existing key in
// place.
func (n *Node) Set(key string, v *Node) {
	for i, k := range n.Keys {
		if k == key {
			n.Values[i] = v
			return
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
}

// Append adds an element to a list node.
func (n *Node) Append(v *Node) {
	n.Values = append(n.Values, v)
}

// Get returns the value for key in a map node, or nil.
func (n *Node) Get(key string) *Node {
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Len() int {
	return len(n.Values)
}

// Visit walks the tree depth first. f is called before and after each
// node's children; returning false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Clone() *Node {
	res := &Node{
		Type:   n.Type,
		Scalar: n.Scalar,
		Any:    n.Any,
		Line:   n.Line,
	}
	if n.Keys != nil {
		res.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// ToAny converts the tree to plain Go values: nil, string, []any and
// map[string]any. Map ordering is lost. A node with Any set converts to
// that payload as-is.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	if n.Any != nil {
		return n.Any
	}
	switch n.Type {
	case NullType:
		return nil
	case ScalarType:
		return n.Scalar
	case ListType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.ToAny()
		}
		return res
	case MapType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k] = n.Values[i].ToAny()
		}
		return res
	default:
		return nil
	}
}

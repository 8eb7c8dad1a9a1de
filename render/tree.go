// Package render turns a parsed turtle program into human-readable dumps.
//
// The typed AST is first flattened into the uniform shape downstream tools
// expect: every node is a mapping with a "name" key followed by either a
// "children" or a "value" sequence. Lightweight tuples such as
// (Parameter, (Identifier, length)) become nested sequences.
package render

import (
	"github.com/martinemde/turtle/turtleparser"
)

// Element is one node of the uniform tree.
//
// Items holds strings, int64s, *Element values and []any sequences.
type Element struct {
	Name  string
	Shape turtleparser.Shape
	Items []any
}

// Compose builds a composite element whose ordered children are captured
// as given.
func Compose(name string, children ...any) *Element {
	return &Element{Name: name, Shape: turtleparser.ShapeComposite, Items: children}
}

// Leaf builds a leaf element whose value tuple is captured as given.
func Leaf(name string, values ...any) *Element {
	return &Element{Name: name, Shape: turtleparser.ShapeLeaf, Items: values}
}

// Key returns the payload key of the element: "children" or "value".
func (e *Element) Key() string {
	return e.Shape.String()
}

// Tree converts prog into its uniform representation.
func Tree(prog *turtleparser.Program) *Element {
	if prog == nil {
		return nil
	}
	return element(prog)
}

func element(n turtleparser.Node) *Element {
	items := make([]any, 0, len(n.Fields()))
	for _, f := range n.Fields() {
		items = append(items, convert(f))
	}
	if n.Shape() == turtleparser.ShapeComposite {
		return Compose(n.Name(), items...)
	}
	return Leaf(n.Name(), items...)
}

func convert(v any) any {
	switch v := v.(type) {
	case turtleparser.Node:
		return element(v)
	case turtleparser.Tuple:
		return []any{v.Label(), convert(v.Item())}
	case []*turtleparser.Statement:
		seq := make([]any, 0, len(v))
		for _, s := range v {
			seq = append(seq, element(s))
		}
		return seq
	case []*turtleparser.Parameter:
		seq := make([]any, 0, len(v))
		for _, p := range v {
			seq = append(seq, convert(p))
		}
		return seq
	default:
		return v
	}
}

package turtleparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeShapes(t *testing.T) {
	prog := parseString(t, "TO A :x FD :x END A 1 IF c THEN END IF c THEN ELSE END WHILE c END -2 (1) 3 * 4")

	var names []string
	Walk(prog, func(n Node) bool {
		if n.Shape() == ShapeComposite {
			assert.Equal(t, "Program", n.Name())
		}
		names = append(names, n.Name())
		return true
	})

	assert.Equal(t, []string{
		"Program",
		"Statement", "Declare function", "Statement", "Call function",
		"Statement", "Call function",
		"Statement", "IF",
		"Statement", "IF ELSE",
		"Statement", "WHILE",
		"Statement", "MATH EXPRESSION", "Number",
		"Statement", "MATH EXPRESSION", "Number",
		"Statement", "MATH EXPRESSION", "Number", "Number",
	}, names)
}

func TestWalkSkipsChildren(t *testing.T) {
	prog := parseString(t, "TO A FD 1 END B")

	var visited []string
	Walk(prog, func(n Node) bool {
		visited = append(visited, n.Name())
		_, isDecl := n.(*DeclareFunction)
		return !isDecl
	})

	assert.Equal(t, []string{"Program", "Statement", "Declare function", "Statement", "Call function"}, visited)
}

func TestFieldsPayloadOrder(t *testing.T) {
	decl := onlyStatement(t, "to Square :len FD :len end").(*DeclareFunction)
	fields := decl.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, "to", fields[0])
	assert.Equal(t, "Square", fields[1])
	assert.Equal(t, decl.Params, fields[2])
	assert.Equal(t, decl.Body, fields[3])

	ifElse := onlyStatement(t, "IF c THEN A ELSE B END").(*IfElse)
	assert.Equal(t, []any{"c", ifElse.Then, ifElse.Else}, ifElse.Fields())
}

func TestTuples(t *testing.T) {
	call := onlyStatement(t, "FD :dist 7").(*CallFunction)
	require.Len(t, call.Params, 2)

	ref := call.Params[0]
	assert.Equal(t, "Parameter", ref.Label())
	ident, ok := ref.Item().(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "Identifier", ident.Label())
	assert.Equal(t, "dist", ident.Item())

	lit := call.Params[1].Item().(*NumberLiteral)
	assert.Equal(t, "number", lit.Label())
	assert.Equal(t, int64(7), lit.Item())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "children", ShapeComposite.String())
	assert.Equal(t, "value", ShapeLeaf.String())
}

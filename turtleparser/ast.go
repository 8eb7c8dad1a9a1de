package turtleparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Shape says how a node carries its payload: as ordered children
// (composite) or as a captured value tuple (leaf).
type Shape int

const (
	ShapeComposite Shape = iota
	ShapeLeaf
)

func (s Shape) String() string {
	if s == ShapeComposite {
		return "children"
	}
	return "value"
}

// Node is implemented by every AST node type in this package.
//
// Name is the production label ("Program", "IF", "MATH EXPRESSION", ...).
// Fields is the ordered positional payload: the children of a composite
// node or the value tuple of a leaf node. Elements are strings, int64s,
// Nodes, Tuples, []*Statement or []*Parameter.
type Node interface {
	Name() string
	Shape() Shape
	Fields() []any
	Start() Position
	node()
}

// Stmt is a construct that may appear inside a Statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an arithmetic expression. Expressions are also statements.
type Expr interface {
	Stmt
	exprNode()
}

// Tuple is a lightweight labelled value that is absorbed into its parent
// node rather than standing on its own.
type Tuple interface {
	Label() string
	Item() any
}

// Program is the root of every successful parse.
type Program struct {
	Statements []*Statement
	Pos        Position
}

// Statement wraps one top-level or nested construct.
type Statement struct {
	Body Stmt
	Pos  Position
}

// DeclareFunction is "TO name params... statements... END".
type DeclareFunction struct {
	Keyword  string // the TO keyword as written
	FuncName string
	Params   []*Parameter
	Body     []*Statement
	Pos      Position
}

// CallFunction is "name params...".
type CallFunction struct {
	FuncName string
	Params   []*Parameter
	Pos      Position
}

// If is "IF cond THEN statements END".
type If struct {
	Cond string
	Then []*Statement
	Pos  Position
}

// IfElse is "IF cond THEN statements ELSE statements END".
type IfElse struct {
	Cond string
	Then []*Statement
	Else []*Statement
	Pos  Position
}

// While is "WHILE cond statements END".
type While struct {
	Cond string
	Body []*Statement
	Pos  Position
}

// BinaryMath applies one of + - * / to two operands.
type BinaryMath struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Position
}

// UnaryMath is a signed factor: "+f" or "-f".
type UnaryMath struct {
	Op      string
	Operand Expr
	Pos     Position
}

// Grouped is a parenthesized expression.
type Grouped struct {
	Inner Expr
	Pos   Position
}

// Number is an integer literal in expression position.
type Number struct {
	Value int64
	Pos   Position
}

// Parameter is one function parameter: an *Identifier for ":name" or a
// *NumberLiteral for a bare number.
type Parameter struct {
	Arg Tuple
	Pos Position
}

// Identifier is a ":name" parameter reference.
type Identifier struct {
	Ident string
}

// NumberLiteral is a bare number used as a parameter.
type NumberLiteral struct {
	Value int64
}

func (*Program) Name() string         { return "Program" }
func (*Statement) Name() string       { return "Statement" }
func (*DeclareFunction) Name() string { return "Declare function" }
func (*CallFunction) Name() string    { return "Call function" }
func (*If) Name() string              { return "IF" }
func (*IfElse) Name() string          { return "IF ELSE" }
func (*While) Name() string           { return "WHILE" }
func (*BinaryMath) Name() string      { return "MATH EXPRESSION" }
func (*UnaryMath) Name() string       { return "MATH EXPRESSION" }
func (*Grouped) Name() string         { return "MATH EXPRESSION" }
func (*Number) Name() string          { return "Number" }

func (*Program) Shape() Shape         { return ShapeComposite }
func (*Statement) Shape() Shape       { return ShapeLeaf }
func (*DeclareFunction) Shape() Shape { return ShapeLeaf }
func (*CallFunction) Shape() Shape    { return ShapeLeaf }
func (*If) Shape() Shape              { return ShapeLeaf }
func (*IfElse) Shape() Shape          { return ShapeLeaf }
func (*While) Shape() Shape           { return ShapeLeaf }
func (*BinaryMath) Shape() Shape      { return ShapeLeaf }
func (*UnaryMath) Shape() Shape       { return ShapeLeaf }
func (*Grouped) Shape() Shape         { return ShapeLeaf }
func (*Number) Shape() Shape          { return ShapeLeaf }

func (n *Program) Fields() []any   { return []any{n.Statements} }
func (n *Statement) Fields() []any { return []any{n.Body} }
func (n *DeclareFunction) Fields() []any {
	return []any{n.Keyword, n.FuncName, n.Params, n.Body}
}
func (n *CallFunction) Fields() []any { return []any{n.FuncName, n.Params} }
func (n *If) Fields() []any           { return []any{n.Cond, n.Then} }
func (n *IfElse) Fields() []any       { return []any{n.Cond, n.Then, n.Else} }
func (n *While) Fields() []any        { return []any{n.Cond, n.Body} }
func (n *BinaryMath) Fields() []any   { return []any{n.Op, n.Left, n.Right} }
func (n *UnaryMath) Fields() []any    { return []any{n.Op, n.Operand} }
func (n *Grouped) Fields() []any      { return []any{n.Inner} }
func (n *Number) Fields() []any       { return []any{n.Value} }

func (n *Program) Start() Position         { return n.Pos }
func (n *Statement) Start() Position       { return n.Pos }
func (n *DeclareFunction) Start() Position { return n.Pos }
func (n *CallFunction) Start() Position    { return n.Pos }
func (n *If) Start() Position              { return n.Pos }
func (n *IfElse) Start() Position          { return n.Pos }
func (n *While) Start() Position           { return n.Pos }
func (n *BinaryMath) Start() Position      { return n.Pos }
func (n *UnaryMath) Start() Position       { return n.Pos }
func (n *Grouped) Start() Position         { return n.Pos }
func (n *Number) Start() Position          { return n.Pos }

func (*Program) node()         {}
func (*Statement) node()       {}
func (*DeclareFunction) node() {}
func (*CallFunction) node()    {}
func (*If) node()              {}
func (*IfElse) node()          {}
func (*While) node()           {}
func (*BinaryMath) node()      {}
func (*UnaryMath) node()       {}
func (*Grouped) node()         {}
func (*Number) node()          {}

func (*DeclareFunction) stmtNode() {}
func (*CallFunction) stmtNode()    {}
func (*If) stmtNode()              {}
func (*IfElse) stmtNode()          {}
func (*While) stmtNode()           {}
func (*BinaryMath) stmtNode()      {}
func (*UnaryMath) stmtNode()       {}
func (*Grouped) stmtNode()         {}
func (*Number) stmtNode()          {}

func (*BinaryMath) exprNode() {}
func (*UnaryMath) exprNode()  {}
func (*Grouped) exprNode()    {}
func (*Number) exprNode()     {}

func (*Parameter) Label() string     { return "Parameter" }
func (p *Parameter) Item() any       { return p.Arg }
func (*Identifier) Label() string    { return "Identifier" }
func (i *Identifier) Item() any      { return i.Ident }
func (*NumberLiteral) Label() string { return "number" }
func (n *NumberLiteral) Item() any   { return n.Value }

// Walk traverses the tree rooted at n depth-first, in payload order. fn is
// called for each node before its descendants; returning false skips the
// descendants of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, f := range n.Fields() {
		switch v := f.(type) {
		case Node:
			Walk(v, fn)
		case []*Statement:
			for _, s := range v {
				Walk(s, fn)
			}
		}
	}
}

// Functions returns the procedure declarations of the program in source
// order, including declarations nested inside other blocks.
func (n *Program) Functions() []*DeclareFunction {
	var fns []*DeclareFunction
	Walk(n, func(node Node) bool {
		if d, ok := node.(*DeclareFunction); ok {
			fns = append(fns, d)
		}
		return true
	})
	return fns
}

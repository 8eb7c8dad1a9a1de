// Package turtleparser implements the front-end of a small turtle-graphics
// command language.
//
// A program is a sequence of statements: procedure declarations
// (TO name :param ... END), procedure calls (FORWARD 10), IF/THEN/ELSE and
// WHILE blocks keyed on a single identifier, and arithmetic expressions.
// Keywords are case-insensitive; identifiers keep their original case.
//
// The package has three layers:
//
//   - Lexer: converts raw bytes into a token stream. Illegal characters are
//     reported as *LexError values and skipped; they never stop the scan.
//   - Parser: a recursive-descent parser with one token of lookahead that
//     builds the tree bottom-up and stops at the first *SyntaxError.
//   - AST types: a closed set of node structs (Program, Statement,
//     DeclareFunction, CallFunction, If, IfElse, While, BinaryMath,
//     UnaryMath, Grouped, Number) behind the Node interface.
//
// Usage:
//
//	prog, err := turtleparser.Parse(src, turtleparser.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(prog.Statements), len(prog.Functions()))
//
// Arithmetic follows the usual precedence (* and / bind tighter than + and
// -) but each level applies at most one operator: "2 + 3 * 4" is a single
// expression, "1 + 2 + 3" is the expression "1 + 2" followed by the
// statement "+3", and "1 * 2 * 3" is a syntax error. Use parentheses to
// nest further. AND, OR, NOT and SET are reserved words with no grammar
// rule; any use of them is a syntax error.
package turtleparser

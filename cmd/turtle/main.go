// turtle is the command-line front-end for the turtle command language.
//
// Usage:
//
//	# Dump the syntax tree of a program as YAML
//	turtle parse square.turtle
//
//	# Read from stdin and dump JSON
//	cat square.turtle | turtle parse --format json
//
//	# Show the token stream
//	turtle tokens square.turtle
//
// Flags can also be set through TURTLE_* environment variables or a yaml
// config file passed with --config.
package main

func main() {
	Execute()
}

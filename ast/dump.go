package ast

import "github.com/alecthomas/repr"

// Dump renders n as an indented, Go-syntax-like tree. Intended for test
// failure messages on tree-shaped assertions, not for production output.
func Dump(n Node) string {
	return repr.String(n, repr.Indent("  "))
}

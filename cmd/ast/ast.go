package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate sh -c "go run . > ../../internal/expr.go && gofmt -w ../../internal/expr.go"

var nodes = []string{
	"Literal: value interface{}",
	"Variable: name *Token",
	"Grouping: expression Expr",
	"Unary: operator *Token, right Expr",
	"Binary: left Expr, operator *Token, right Expr",
	"Assign: name *Token, value Expr",
	"Block: brace *Token, stmts []Expr",
	"If: keyword *Token, condition Expr, thenBranch Expr, elifs []*struct{ condition, thenBranch Expr }, elseBranch Expr",
	"For: keyword *Token, name *Token, iterable Expr, body Expr",
	"Function: pipe *Token, params []*Token, body Expr",
	"Call: callee Expr, paren *Token, arguments []Expr",
}

func main() {
	if len(os.Args) > 1 && os.Args[1] != "Expr" {
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(1)
	}
	fmt.Print(generateAst("Expr", nodes))
}

func generateAst(baseName string, types []string) string {
	lower := strings.ToLower(baseName)

	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "// " + baseName + " is a node of the syntax tree\n"
	out += "type " + baseName + " interface {\n"
	out += "\taccept(" + lower + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", lower)
	for _, t := range types {
		name := strings.TrimSpace(strings.SplitN(t, ":", 2)[0])
		out += "\tvisit" + name + baseName + "(" + lower + " *" + structName(name, baseName) + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		out += generateType(baseName, strings.TrimSpace(typeDef[0]), strings.TrimSpace(typeDef[1]))
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := structName(name, baseName)
	out := "type " + structName + " struct {\n"
	for _, field := range splitFields(fields) {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}

// splitFields splits on commas outside of braces so inline struct types
// survive as a single field.
func splitFields(fields string) []string {
	var out []string
	depth, start := 0, 0
	for i, c := range fields {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, fields[start:i])
				start = i + 1
			}
		}
	}
	return append(out, fields[start:])
}

func structName(name, baseName string) string {
	return strings.ToLower(string(name[0])) + name[1:] + baseName
}

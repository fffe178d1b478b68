package internal

import (
	"fmt"
	"strings"
)

// R generic type
type R interface{}

// Format renders expr back into source text that parses to an equivalent tree
func Format(expr Expr) string {
	return expr.accept(stringVisitor{}).(string)
}

// FormatValue renders a runtime value the way print shows it
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return null.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

type stringVisitor struct{}

func (v stringVisitor) str(expr Expr) string {
	return expr.accept(v).(string)
}

// operand parenthesizes expressions that would swallow the tokens after them
func (v stringVisitor) operand(expr Expr) string {
	switch expr.(type) {
	case *literalExpr, *variableExpr, *groupingExpr, *callExpr, *blockExpr:
		return v.str(expr)
	}
	return "(" + v.str(expr) + ")"
}

// branch renders a body as a block so a following `else` stays attached
func (v stringVisitor) branch(expr Expr) string {
	if _, ok := expr.(*blockExpr); ok {
		return v.str(expr)
	}
	return "{ " + v.str(expr) + " }"
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if s, ok := expr.value.(henryString); ok {
		return s.Repr()
	}
	return FormatValue(expr.value)
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.Lexeme
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return "(" + v.str(expr.expression) + ")"
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return expr.operator.Lexeme + v.operand(expr.right)
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return v.operand(expr.left) + " " + expr.operator.Lexeme + " " + v.operand(expr.right)
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return expr.name.Lexeme + " := " + v.str(expr.value)
}

func (v stringVisitor) visitBlockExpr(expr *blockExpr) R {
	if len(expr.stmts) == 0 {
		return "{}"
	}
	stmts := make([]string, len(expr.stmts))
	for i, st := range expr.stmts {
		stmts[i] = v.str(st)
	}
	return "{ " + strings.Join(stmts, "; ") + " }"
}

func (v stringVisitor) visitIfExpr(expr *ifExpr) R {
	out := "if " + v.operand(expr.condition) + " " + v.branch(expr.thenBranch)
	for _, elif := range expr.elifs {
		out += " else if " + v.operand(elif.condition) + " " + v.branch(elif.thenBranch)
	}
	if expr.elseBranch != nil {
		out += " else " + v.branch(expr.elseBranch)
	}
	return out
}

func (v stringVisitor) visitForExpr(expr *forExpr) R {
	return fmt.Sprintf(
		"for %s := %s %s",
		expr.name.Lexeme,
		v.operand(expr.iterable),
		v.branch(expr.body),
	)
}

func (v stringVisitor) visitFunctionExpr(expr *functionExpr) R {
	params := make([]string, len(expr.params))
	for i, param := range expr.params {
		params[i] = param.Lexeme
	}
	return "|" + strings.Join(params, " ") + "| " + v.str(expr.body)
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	args := make([]string, len(expr.arguments))
	for i, arg := range expr.arguments {
		args[i] = v.str(arg)
	}
	return v.operand(expr.callee) + "(" + strings.Join(args, ", ") + ")"
}

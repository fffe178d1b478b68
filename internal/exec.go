package internal

import (
	"errors"

	"github.com/sirupsen/logrus"
)

type exec struct {
	state *interpreterState

	env *Env
}

// interpret evaluates a single top level expression, turning a raised
// runtime error back into a returned one.
func (e *exec) interpret(expr Expr) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			e.state.log.WithFields(logrus.Fields{
				"line":  runErr.Line,
				"error": runErr.Err,
			}).Debug(runErr.Message)
			result, err = nil, runErr
		}
	}()
	return e.evaluate(expr), nil
}

func (e *exec) evaluate(expr Expr) interface{} {
	return expr.accept(e)
}

// evaluateIn evaluates expr with env as the current scope
func (e *exec) evaluateIn(expr Expr, env *Env) interface{} {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return expr.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.env.get(expr.name)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return e.evaluate(expr.expression)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := e.evaluate(expr.right)
	switch expr.operator.Type {
	case tkMinus:
		if operand, ok := value.(operable); ok {
			if apply, err := operand.getOperator(opNeg); err == nil {
				result, err := apply()
				if err == nil {
					return result
				}
				if errors.Is(err, ErrIntegerOverflow) {
					runtimeErr(ErrIntegerOverflow, expr.operator, "Integer overflow")
				}
			}
		}
		runtimeErr(ErrTypeError, expr.operator, "Bad operand type for unary -: %s", typeName(value))
	case tkBang:
		return henryBool(!truthy(value))
	}
	return null
}

// visitBinaryExpr evaluates both operands before looking at the operator,
// so `and` and `or` never short-circuit.
func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)

	switch expr.operator.Type {
	case tkEqual:
		return henryBool(equals(left, right))
	case tkBangEqual:
		return henryBool(!equals(left, right))
	case tkAnd:
		if !truthy(left) {
			return left
		}
		return right
	case tkOr:
		if truthy(left) {
			return left
		}
		return right
	case tkTo:
		r, ok := newRange(left, right)
		if !ok {
			runtimeErr(ErrTypeError, expr.operator, "Range bounds must be integers, got %s and %s", typeName(left), typeName(right))
		}
		return r
	}

	op, ok := binaryOperators[expr.operator.Type]
	if !ok {
		return null
	}
	return e.applyOperator(expr.operator, op, left, right)
}

func (e *exec) applyOperator(tk *Token, op operator, left, right interface{}) interface{} {
	if operand, ok := left.(operable); ok {
		if apply, err := operand.getOperator(op); err == nil {
			result, err := apply(right)
			if err == nil {
				return result
			}
			switch {
			case errors.Is(err, ErrDivisionByZero):
				runtimeErr(ErrDivisionByZero, tk, "Division by zero")
			case errors.Is(err, ErrIntegerOverflow):
				runtimeErr(ErrIntegerOverflow, tk, "Integer overflow")
			}
		}
	}
	runtimeErr(ErrTypeError, tk, "Unsupported operand types for %s: %s and %s", tk.Lexeme, typeName(left), typeName(right))
	return nil
}

// visitAssignExpr binds in the current frame, never in an enclosing one
func (e *exec) visitAssignExpr(expr *assignExpr) R {
	value := e.evaluate(expr.value)
	e.env.Define(expr.name.Lexeme, value)
	return value
}

func (e *exec) visitBlockExpr(expr *blockExpr) R {
	if len(expr.stmts) == 0 {
		return null
	}
	return e.executeBlock(expr.stmts, NewEnv(e.env))
}

func (e *exec) executeBlock(stmts []Expr, env *Env) interface{} {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	var value interface{} = null
	for _, s := range stmts {
		value = e.evaluate(s)
	}
	return value
}

func (e *exec) visitIfExpr(expr *ifExpr) R {
	if truthy(e.evaluate(expr.condition)) {
		return e.evaluateIn(expr.thenBranch, NewEnv(e.env))
	}
	for _, elif := range expr.elifs {
		if truthy(e.evaluate(elif.condition)) {
			return e.evaluateIn(elif.thenBranch, NewEnv(e.env))
		}
	}
	if expr.elseBranch != nil {
		return e.evaluateIn(expr.elseBranch, NewEnv(e.env))
	}
	return null
}

// visitForExpr maps the body over the iterable, one fresh frame per item
func (e *exec) visitForExpr(expr *forExpr) R {
	value := e.evaluate(expr.iterable)
	items, ok := value.(iterable)
	if !ok {
		runtimeErr(ErrTypeError, expr.keyword, "%s is not iterable", typeName(value))
	}

	outer := e.env
	results := make(henryList, 0)
	items.iterate(func(item interface{}) {
		env := NewEnv(outer)
		env.Define(expr.name.Lexeme, item)
		results = append(results, e.evaluateIn(expr.body, env))
	})
	return results
}

func (e *exec) visitFunctionExpr(expr *functionExpr) R {
	return &function{declaration: expr}
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.evaluate(expr.callee)

	fn, isFn := callee.(callable)
	if !isFn {
		runtimeErr(ErrNotCallable, expr.paren, "%s is not a function", FormatValue(callee))
	}

	return fn.call(e, expr.paren, e.env, expr.arguments)
}

package internal

import "strings"

// callable receives its arguments unevaluated together with the caller's
// scope, each implementation decides when to evaluate them.
type callable interface {
	arity() int
	call(exec *exec, paren *Token, env *Env, arguments []Expr) interface{}
}

const variadic = -1

// function is a user defined function. It does not capture the scope it was
// defined in: every call frame is parented to the caller's scope.
type function struct {
	declaration *functionExpr
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *exec, paren *Token, env *Env, arguments []Expr) interface{}
}

func checkArity(fn callable, paren *Token, got int) {
	if want := fn.arity(); want != variadic && want != got {
		runtimeErr(ErrArityMismatch, paren, "Expected %d arguments but got %d", want, got)
	}
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, paren *Token, env *Env, arguments []Expr) interface{} {
	checkArity(n, paren, len(arguments))
	return n.callFn(exec, paren, env, arguments)
}

func (n *nativeFn) String() string {
	return "<builtin " + n.name + ">"
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

func (f *function) call(exec *exec, paren *Token, env *Env, arguments []Expr) interface{} {
	checkArity(f, paren, len(arguments))

	values := make([]interface{}, len(arguments))
	for i, arg := range arguments {
		values[i] = exec.evaluateIn(arg, env)
	}

	frame := NewEnv(env)
	for i, param := range f.declaration.params {
		frame.Define(param.Lexeme, values[i])
	}

	return exec.evaluateIn(f.declaration.body, frame)
}

func (f *function) String() string {
	params := make([]string, len(f.declaration.params))
	for i, param := range f.declaration.params {
		params[i] = param.Lexeme
	}
	return "function(" + strings.Join(params, " ") + ")"
}

// thunk wraps an already computed value so it can be passed where an
// unevaluated argument is expected.
func thunk(value interface{}) Expr {
	return &literalExpr{value: value}
}

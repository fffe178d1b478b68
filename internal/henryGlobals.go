package internal

import "strings"

// NewGlobals creates a root scope holding the builtins, print writes to p
func NewGlobals(p IPrinter) *Env {
	globals := NewEnv(nil)
	defineGlobals(globals, p)
	return globals
}

func defineGlobals(e *Env, p IPrinter) {
	definePrint(e, p)
	defineMap(e)
	defineFilter(e)
	defineReduce(e)
}

func definePrint(e *Env, p IPrinter) {
	e.Define("print", &nativeFn{
		name:       "print",
		arityValue: variadic,
		callFn: func(exec *exec, paren *Token, env *Env, arguments []Expr) interface{} {
			parts := make([]string, len(arguments))
			for i, arg := range arguments {
				parts[i] = FormatValue(exec.evaluateIn(arg, env))
			}
			line := strings.Join(parts, " ")
			p.Println(line)
			return henryString(line)
		},
	})
}

func defineMap(e *Env) {
	e.Define("map", &nativeFn{
		name:       "map",
		arityValue: 2,
		callFn: func(exec *exec, paren *Token, env *Env, arguments []Expr) interface{} {
			fn, items := collectionArgs(exec, "map", paren, env, arguments)
			results := make(henryList, 0)
			items.iterate(func(item interface{}) {
				results = append(results, fn.call(exec, paren, env, []Expr{thunk(item)}))
			})
			return results
		},
	})
}

func defineFilter(e *Env) {
	e.Define("filter", &nativeFn{
		name:       "filter",
		arityValue: 2,
		callFn: func(exec *exec, paren *Token, env *Env, arguments []Expr) interface{} {
			fn, items := collectionArgs(exec, "filter", paren, env, arguments)
			results := make(henryList, 0)
			items.iterate(func(item interface{}) {
				if truthy(fn.call(exec, paren, env, []Expr{thunk(item)})) {
					results = append(results, item)
				}
			})
			return results
		},
	})
}

func defineReduce(e *Env) {
	e.Define("reduce", &nativeFn{
		name:       "reduce",
		arityValue: 2,
		callFn: func(exec *exec, paren *Token, env *Env, arguments []Expr) interface{} {
			fn, items := collectionArgs(exec, "reduce", paren, env, arguments)
			var acc interface{}
			empty := true
			items.iterate(func(item interface{}) {
				if empty {
					acc, empty = item, false
					return
				}
				acc = fn.call(exec, paren, env, []Expr{thunk(acc), thunk(item)})
			})
			if empty {
				runtimeErr(ErrEmptyReduce, paren, "reduce expects at least 1 element")
			}
			return acc
		},
	})
}

// collectionArgs evaluates the (function, collection) pair shared by
// map, filter and reduce.
func collectionArgs(exec *exec, name string, paren *Token, env *Env, arguments []Expr) (callable, iterable) {
	fnValue := exec.evaluateIn(arguments[0], env)
	listValue := exec.evaluateIn(arguments[1], env)

	fn, ok := fnValue.(callable)
	if !ok {
		runtimeErr(ErrTypeError, paren, "%s expects a function, got %s", name, typeName(fnValue))
	}
	items, ok := listValue.(iterable)
	if !ok {
		runtimeErr(ErrTypeError, paren, "%s expects a collection, got %s", name, typeName(listValue))
	}
	return fn, items
}

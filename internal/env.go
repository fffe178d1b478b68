package internal

// Env is a scope frame. Frames only ever point to frames that were
// created before them, so the chain is acyclic.
type Env struct {
	enclosing *Env
	values    map[string]interface{}
}

// NewEnv creates a frame whose lookups fall back to enclosing
func NewEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

// Lookup walks the chain until name is found
func (e *Env) Lookup(name string) (interface{}, bool) {
	for env := e; env != nil; env = env.enclosing {
		if value, ok := env.values[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Define binds name in this frame, shadowing any outer binding
func (e *Env) Define(name string, value interface{}) {
	if e.values == nil {
		e.values = make(map[string]interface{})
	}
	e.values[name] = value
}

func (e *Env) get(name *Token) interface{} {
	if value, ok := e.Lookup(name.Lexeme); ok {
		return value
	}
	runtimeErr(ErrUndefinedVariable, name, "Undefined variable %s", name.Lexeme)
	return nil
}

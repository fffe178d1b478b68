package internal

import (
	"errors"
	"testing"
)

func TestEnvLookup(t *testing.T) {
	globals := NewEnv(nil)
	globals.Define("a", henryInt(1))
	globals.Define("b", henryInt(2))

	local := NewEnv(globals)
	local.Define("a", henryString("shadow"))

	if v, ok := local.Lookup("a"); !ok || v != henryString("shadow") {
		t.Errorf("a should be shadowed, found %v", v)
	}
	if v, ok := local.Lookup("b"); !ok || v != henryInt(2) {
		t.Errorf("b should come from the enclosing frame, found %v", v)
	}
	if v, ok := globals.Lookup("a"); !ok || v != henryInt(1) {
		t.Errorf("enclosing frame should be untouched, found %v", v)
	}
	if _, ok := local.Lookup("c"); ok {
		t.Error("c should not be defined")
	}

	// Redefinition replaces the binding in place
	local.Define("a", henryInt(3))
	if v, _ := local.Lookup("a"); v != henryInt(3) {
		t.Errorf("a should be redefined, found %v", v)
	}
}

func TestEnvUndefined(t *testing.T) {
	env := NewEnv(NewEnv(nil))
	name := &Token{Type: tkIdentifier, Lexeme: "missing", Line: 7}

	defer func() {
		r := recover()
		err, ok := r.(*RuntimeError)
		if !ok {
			t.Fatalf("expected a runtime error, found %v", r)
		}
		if !errors.Is(err, ErrUndefinedVariable) || err.Line != 7 {
			t.Errorf("unexpected error %v", err)
		}
		if err.Error() != "runtime error on line 7: Undefined variable missing" {
			t.Errorf("unexpected message %q", err.Error())
		}
	}()
	env.get(name)
}

package internal

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
}

// Interpreter runs programs against a global scope that outlives each run
type Interpreter struct {
	globals *Env
	printer IPrinter
	log     *logrus.Logger
	verbose bool
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sends diagnostics to log instead of the standard logger
func WithLogger(log *logrus.Logger) Option {
	return func(i *Interpreter) {
		i.log = log
	}
}

// WithVerbose prints every top level statement before evaluating it
func WithVerbose(verbose bool) Option {
	return func(i *Interpreter) {
		i.verbose = verbose
	}
}

// NewInterpreter creates an interpreter whose print builtin writes to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	i := &Interpreter{
		printer: p,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.globals = NewGlobals(p)
	return i
}

// Run scans, parses and evaluates source, returning the value of the last
// statement. Nothing is evaluated when the source has syntax errors.
func (i *Interpreter) Run(source string) (interface{}, error) {
	state := newInterpreterState(source, i.log)

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	state.log.WithField("tokens", len(state.tokens)).Debug("scanned source")

	parser := &parser{
		state: state,
	}
	parser.parse()
	state.log.WithField("statements", len(state.stmts)).Debug("parsed source")

	if err := state.Err(); err != nil {
		return nil, err
	}

	exec := &exec{
		state: state,
		env:   i.globals,
	}

	var value interface{} = null
	for n, st := range state.stmts {
		state.log.WithField("statement", n).Debug("evaluating")
		if i.verbose {
			i.printer.Println(Format(st))
		}
		result, err := exec.interpret(st)
		if err != nil {
			return nil, err
		}
		value = result
	}
	return value, nil
}

// Globals returns the root scope of the interpreter
func (i *Interpreter) Globals() *Env {
	return i.globals
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance.
// Errors are written to p.
func RunSourceWithPrinter(source string, p IPrinter) (interface{}, bool) {
	value, err := NewInterpreter(p).Run(source)
	if err != nil {
		p.Println(err.Error())
		return nil, false
	}
	return value, true
}

// Scan turns source into tokens. The returned slice always ends with EOF,
// err joins every diagnostic.
func Scan(source string) ([]Token, error) {
	state := newInterpreterState(source, nil)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state.tokens, state.Err()
}

// Parse builds the statements of a program. Statements that fail to parse
// are skipped and reported in err.
func Parse(tokens []Token) ([]Expr, error) {
	state := newInterpreterState("", nil)
	state.tokens = tokens
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != tkEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		state.tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: tkEOF, Line: line})
	}
	parser := &parser{
		state: state,
	}
	parser.parse()
	return state.stmts, state.Err()
}

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (n int, err error) {
	return 0, nil
}

// Evaluate evaluates expr in env. A nil env evaluates in a fresh global
// scope whose print discards its output.
func Evaluate(expr Expr, env *Env) (interface{}, error) {
	if env == nil {
		env = NewGlobals(discardPrinter{})
	}
	exec := &exec{
		state: newInterpreterState("", nil),
		env:   env,
	}
	return exec.interpret(expr)
}

// Check reports the syntax errors of source without logging them
func Check(source string) error {
	log := logrus.New()
	log.Out = ioutil.Discard
	state := newInterpreterState(source, log)
	(&lexer{line: 1, state: state}).scan()
	(&parser{state: state}).parse()
	return state.Err()
}

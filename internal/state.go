package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Lexer errors
var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// Parser errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidNumber   = errors.New("invalid number literal")
)

// Runtime errors
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrNotCallable       = errors.New("not callable")
	ErrArityMismatch     = errors.New("wrong number of arguments")
	ErrTypeError         = errors.New("type error")
	ErrEmptyReduce       = errors.New("reduce of empty sequence")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrIntegerOverflow   = errors.New("integer overflow")
)

// SyntaxError is reported by the scanner and the parser
type SyntaxError struct {
	Err     error
	Line    int
	Lexeme  string
	Message string

	atEnd bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// RuntimeError aborts the evaluation of a program
type RuntimeError struct {
	Err     error
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error on line %d: %s", e.Line, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsIncomplete reports whether err was caused by the source ending before
// a construct was closed.
func IsIncomplete(err error) bool {
	// Only the last error can be caused by the end of the input
	var syntaxErrs interface{ Unwrap() []error }
	if errors.As(err, &syntaxErrs) {
		errs := syntaxErrs.Unwrap()
		return len(errs) > 0 && IsIncomplete(errs[len(errs)-1])
	}
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr) && syntaxErr.atEnd
}

// interpreterState stores the state of an interpreter run
type interpreterState struct {
	source string
	tokens []Token
	stmts  []Expr

	errors []error

	log *logrus.Logger
}

func newInterpreterState(source string, log *logrus.Logger) *interpreterState {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &interpreterState{
		source: source,
		errors: make([]error, 0),
		log:    log,
	}
}

func (s *interpreterState) setError(err *SyntaxError) {
	s.errors = append(s.errors, err)
	fields := logrus.Fields{"line": err.Line}
	if err.Lexeme != "" {
		fields["lexeme"] = err.Lexeme
	}
	s.log.WithFields(fields).Error(err.Message)
}

// Valid returns true if no syntax error was reported
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Err joins every syntax error reported so far
func (s *interpreterState) Err() error {
	if s.Valid() {
		return nil
	}
	return errors.Join(s.errors...)
}

func runtimeErr(kind error, tk *Token, format string, args ...interface{}) {
	line := 0
	if tk != nil {
		line = tk.Line
	}
	panic(&RuntimeError{
		Err:     kind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

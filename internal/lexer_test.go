package internal

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tk := range tokens {
		out[i] = tk.Type
	}
	return out
}

func checkTokenTypes(t *testing.T, source string, expected ...TokenType) {
	t.Helper()
	tokens, err := Scan(source)
	if err != nil {
		t.Errorf("Error on: %q\n\tunexpected error %v", source, err)
	}
	got := tokenTypes(tokens)
	if len(got) != len(expected) {
		t.Errorf("Error on: %q\n\ttokens should be %v instead of %v", source, expected, got)
		return
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Error on: %q\n\ttokens should be %v instead of %v", source, expected, got)
			return
		}
	}
}

func TestScanTokens(t *testing.T) {
	// Punctuation
	checkTokenTypes(t, "(){}|,:;",
		tkLeftParen, tkRightParen, tkLeftCurlyBrace, tkRightCurlyBrace,
		tkPipe, tkComma, tkColon, tkSemicolon, tkEOF)

	// Operators, two-character ones first
	checkTokenTypes(t, "= != > < >= <= + - / * ! := ==",
		tkEqual, tkBangEqual, tkGreater, tkLess, tkGreaterEqual, tkLessEqual,
		tkPlus, tkMinus, tkSlash, tkStar, tkBang, tkAssign, tkEqual, tkEOF)
	checkTokenTypes(t, "a:=b", tkIdentifier, tkAssign, tkIdentifier, tkEOF)
	checkTokenTypes(t, "!!=", tkBang, tkBangEqual, tkEOF)

	// Keywords
	checkTokenTypes(t, "and or type if else true false for to",
		tkAnd, tkOr, tkType, tkIf, tkElse, tkTrue, tkFalse, tkFor, tkTo, tkEOF)
	checkTokenTypes(t, "android format _to to2", tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier, tkEOF)

	// Whitespace and comments
	checkTokenTypes(t, " \t\r", tkEOF)
	checkTokenTypes(t, "a\nb", tkIdentifier, tkNewline, tkIdentifier, tkEOF)
	checkTokenTypes(t, "", tkEOF)
}

func TestScanLiterals(t *testing.T) {
	tokens, err := Scan(`12 3.25 "a b" true false abc`)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	expected := []Token{
		{Type: tkInt, Lexeme: "12", Literal: "12", Line: 1},
		{Type: tkFloat, Lexeme: "3.25", Literal: "3.25", Line: 1},
		{Type: tkString, Lexeme: `"a b"`, Literal: "a b", Line: 1},
		{Type: tkTrue, Lexeme: "true", Literal: true, Line: 1},
		{Type: tkFalse, Lexeme: "false", Literal: false, Line: 1},
		{Type: tkIdentifier, Lexeme: "abc", Line: 1},
		{Type: tkEOF, Line: 1},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("tokens should be %v instead of %v", expected, tokens)
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("token %d should be %v instead of %v", i, expected[i], tokens[i])
		}
	}
}

func TestScanNumbers(t *testing.T) {
	checkTokenTypes(t, "10", tkInt, tkEOF)
	checkTokenTypes(t, "10.5", tkFloat, tkEOF)
	checkTokenTypes(t, "1 to 5", tkInt, tkTo, tkInt, tkEOF)

	// A dot needs a digit after it to start a fraction
	tokens, err := Scan("1.")
	if !errors.Is(err, ErrUnexpectedCharacter) {
		t.Errorf("expected unexpected character error, got %v", err)
	}
	if got := tokenTypes(tokens); len(got) != 2 || got[0] != tkInt {
		t.Errorf("tokens should be [INT EOF] instead of %v", got)
	}
}

func TestScanLines(t *testing.T) {
	tokens, _ := Scan("a\n\"b\nc\"\nd")
	lines := map[string]int{}
	for _, tk := range tokens {
		lines[tk.Type.String()+tk.Lexeme] = tk.Line
	}
	if lines["IDENTa"] != 1 {
		t.Errorf("a should be on line 1, found %d", lines["IDENTa"])
	}
	if lines["STR\"b\nc\""] != 3 {
		t.Errorf("multiline string should end on line 3, found %d", lines["STR\"b\nc\""])
	}
	if lines["IDENTd"] != 4 {
		t.Errorf("d should be on line 4, found %d", lines["IDENTd"])
	}
	if last := tokens[len(tokens)-1]; last.Type != tkEOF || last.Line != 4 {
		t.Errorf("EOF should be on line 4, found %v", last)
	}
}

func TestScanErrors(t *testing.T) {
	// Illegal characters are skipped
	tokens, err := Scan("1 @ 2 $")
	if !errors.Is(err, ErrUnexpectedCharacter) {
		t.Errorf("expected unexpected character error, got %v", err)
	}
	if got := tokenTypes(tokens); len(got) != 3 || got[0] != tkInt || got[1] != tkInt || got[2] != tkEOF {
		t.Errorf("tokens should be [INT INT EOF] instead of %v", got)
	}
	if err.Error() != "line 1: Unexpected character @\nline 1: Unexpected character $" {
		t.Errorf("unexpected message %q", err.Error())
	}

	// `?` is not a comment
	tokens, err = Scan("1 ? 2")
	if !errors.Is(err, ErrUnexpectedCharacter) || err.Error() != "line 1: Unexpected character ?" {
		t.Errorf("expected one unexpected character error, got %v", err)
	}
	if got := tokenTypes(tokens); len(got) != 3 || got[0] != tkInt || got[1] != tkInt {
		t.Errorf("tokens should be [INT INT EOF] instead of %v", got)
	}

	// A multi-byte character is reported once
	tokens, err = Scan("a é b")
	if err == nil || err.Error() != "line 1: Unexpected character é" {
		t.Errorf("expected one unexpected character error, got %v", err)
	}
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) || syntaxErr.Lexeme != "é" {
		t.Errorf("lexeme should be the whole character, got %v", syntaxErr)
	}
	if got := tokenTypes(tokens); len(got) != 3 || got[1] != tkIdentifier {
		t.Errorf("tokens should be [IDENT IDENT EOF] instead of %v", got)
	}

	// Unterminated strings produce no token
	tokens, err = Scan("x := \"abc\n")
	if !errors.Is(err, ErrUnterminatedString) {
		t.Errorf("expected unterminated string error, got %v", err)
	}
	if got := tokenTypes(tokens); len(got) != 3 || got[2] != tkEOF {
		t.Errorf("tokens should be [IDENT ASSIGN EOF] instead of %v", got)
	}
	if !IsIncomplete(err) {
		t.Errorf("unterminated string should be incomplete input")
	}
}

func TestScanErrorsAreLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	state := newInterpreterState("a\n#", logger)
	lexer := &lexer{line: 1, state: state}
	lexer.scan()

	if state.Valid() {
		t.Fatal("state should not be valid")
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("expected 1 log entry, found %d", len(hook.Entries))
	}
	entry := hook.LastEntry()
	if entry.Level != logrus.ErrorLevel {
		t.Errorf("expected error level, found %v", entry.Level)
	}
	if entry.Data["line"] != 2 || entry.Data["lexeme"] != "#" {
		t.Errorf("unexpected fields %v", entry.Data)
	}
	if entry.Message != "Unexpected character #" {
		t.Errorf("unexpected message %q", entry.Message)
	}
}

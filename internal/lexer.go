package internal

import (
	"fmt"
	"unicode/utf8"
)

type lexer struct {
	start   int
	current int
	line    int

	state *interpreterState
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.state.tokens = append(l.state.tokens, Token{
		Type: tkEOF,
		Line: l.line,
	})
}

func (l *lexer) scanToken() {
	c := l.advance()

	// Two-character tokens
	switch {
	case c == '!' && l.match('='):
		l.emit(tkBangEqual, nil)
		return
	case c == '>' && l.match('='):
		l.emit(tkGreaterEqual, nil)
		return
	case c == '<' && l.match('='):
		l.emit(tkLessEqual, nil)
		return
	case c == ':' && l.match('='):
		l.emit(tkAssign, nil)
		return
	case c == '=' && l.match('='):
		l.emit(tkEqual, nil)
		return
	}

	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftCurlyBrace, nil)
	case '}':
		l.emit(tkRightCurlyBrace, nil)
	case '|':
		l.emit(tkPipe, nil)
	case ',':
		l.emit(tkComma, nil)
	case ':':
		l.emit(tkColon, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '=':
		l.emit(tkEqual, nil)
	case '>':
		l.emit(tkGreater, nil)
	case '<':
		l.emit(tkLess, nil)
	case '+':
		l.emit(tkPlus, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '/':
		l.emit(tkSlash, nil)
	case '*':
		l.emit(tkStar, nil)
	case '!':
		l.emit(tkBang, nil)
	// Ignore whitespace
	case ' ', '\r', '\t':

	case '\n':
		l.emit(tkNewline, nil)
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			// Report a multi-byte character once
			r, width := utf8.DecodeRuneInString(l.state.source[l.start:])
			l.current = l.start + width
			l.state.setError(&SyntaxError{
				Err:     ErrUnexpectedCharacter,
				Line:    l.line,
				Lexeme:  l.state.source[l.start:l.current],
				Message: fmt.Sprintf("Unexpected character %c", r),
			})
		}
	}
}

func (l *lexer) string() {
	for !l.isAtEnd() && l.peek(0) != '"' {
		if l.advance() == '\n' {
			l.line++
		}
	}

	if l.isAtEnd() {
		l.state.setError(&SyntaxError{
			Err:     ErrUnterminatedString,
			Line:    l.line,
			Message: "Unterminated string",
			atEnd:   true,
		})
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tkString, l.state.source[l.start+1:l.current-1])
}

// number leaves the conversion of the literal to the parser
func (l *lexer) number() {
	tk := tkInt
	for isDigit(l.peek(0)) {
		l.advance()
	}

	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		tk = tkFloat
		l.advance()
		for isDigit(l.peek(0)) {
			l.advance()
		}
	}

	l.emit(tk, l.state.source[l.start:l.current])
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek(0)) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	switch tokenType, ok := keywords[identifier]; {
	case !ok:
		l.emit(tkIdentifier, nil)
	case tokenType == tkTrue:
		l.emit(tokenType, true)
	case tokenType == tkFalse:
		l.emit(tokenType, false)
	default:
		l.emit(tokenType, nil)
	}
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek(offset int) byte {
	if l.current+offset >= len(l.state.source) {
		return 0
	}
	return l.state.source[l.current+offset]
}

func (l *lexer) emit(token TokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, Token{
		Type:    token,
		Lexeme:  l.state.source[l.start:l.current],
		Literal: literal,
		Line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

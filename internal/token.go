package internal

import "fmt"

// TokenType identifies the kind of a token
type TokenType int

const (
	tkEOF TokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, |, ',', :, ;
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkPipe
	tkComma
	tkColon
	tkSemicolon

	// Operators.
	// =, !=, >, <, >=, <=, +, -, /, *, !, :=
	tkEqual
	tkBangEqual
	tkGreater
	tkLess
	tkGreaterEqual
	tkLessEqual
	tkPlus
	tkMinus
	tkSlash
	tkStar
	tkBang
	tkAssign

	tkNewline

	// Literals.
	// *identifier*, int, float, string
	tkIdentifier
	tkInt
	tkFloat
	tkString

	// Keywords.
	// and, or, type, if, else, true, false, for, to
	tkAnd
	tkOr
	tkType
	tkIf
	tkElse
	tkTrue
	tkFalse
	tkFor
	tkTo
)

var tokenNames = map[TokenType]string{
	tkEOF:             "EOF",
	tkLeftParen:       "LPAREN",
	tkRightParen:      "RPAREN",
	tkLeftCurlyBrace:  "LBRACE",
	tkRightCurlyBrace: "RBRACE",
	tkPipe:            "VBAR",
	tkComma:           "COMMA",
	tkColon:           "COLON",
	tkSemicolon:       "SEMICOLON",
	tkEqual:           "EQ",
	tkBangEqual:       "NEQ",
	tkGreater:         "GT",
	tkLess:            "LT",
	tkGreaterEqual:    "GEQ",
	tkLessEqual:       "LEQ",
	tkPlus:            "PLUS",
	tkMinus:           "MINUS",
	tkSlash:           "SLASH",
	tkStar:            "STAR",
	tkBang:            "BANG",
	tkAssign:          "ASSIGN",
	tkNewline:         "NEWLINE",
	tkIdentifier:      "IDENT",
	tkInt:             "INT",
	tkFloat:           "FLOAT",
	tkString:          "STR",
	tkAnd:             "AND",
	tkOr:              "OR",
	tkType:            "TYPE",
	tkIf:              "IF",
	tkElse:            "ELSE",
	tkTrue:            "TRUE",
	tkFalse:           "FALSE",
	tkFor:             "FOR",
	tkTo:              "TO",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"and":   tkAnd,
	"or":    tkOr,
	"type":  tkType,
	"if":    tkIf,
	"else":  tkElse,
	"true":  tkTrue,
	"false": tkFalse,
	"for":   tkFor,
	"to":    tkTo,
}

// Token is a lexeme produced by the scanner. Tokens are never mutated
// after the scanner emits them.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%d %s %q %v", t.Line, t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%d %s %q", t.Line, t.Type, t.Lexeme)
}

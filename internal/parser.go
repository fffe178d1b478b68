package internal

import (
	"strconv"
)

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

func (p *parser) parse() {
	p.skipSeparators()
	for !p.isAtEnd() {
		// A statement that failed to parse is reported and dropped,
		// the parser resumes on the next statement boundary.
		if st := p.parseStmt(); st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
		p.skipSeparators()
	}
}

func (p *parser) parseStmt() (st Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*SyntaxError); !ok {
				panic(r)
			}
			st = nil
			p.synchronize()
		}
	}()
	return p.statement()
}

// statement is a plain expression, no separator is required after it
func (p *parser) statement() Expr {
	return p.expression()
}

func (p *parser) expression() Expr {
	return p.or()
}

func (p *parser) or() Expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() Expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(tkEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

// comparison parses its right operand at addition level, so `a < 1 to 3`
// is a comparison between `a` and `1` followed by a dangling `to`.
func (p *parser) comparison() Expr {
	expr := p.rangeExpr()
	for p.match(tkGreater, tkLess, tkGreaterEqual, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) rangeExpr() Expr {
	expr := p.addition()
	for p.match(tkTo) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() Expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() Expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	// Every operand goes through here, a line break before it is allowed
	p.skipNewlines()
	if p.match(tkMinus, tkBang) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() Expr {
	expr := p.primary()
	for p.match(tkLeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee Expr) Expr {
	paren := p.previous()
	arguments := make([]Expr, 0)
	p.skipNewlines()
	if !p.check(tkRightParen) {
		arguments = append(arguments, p.statement())
		for p.skipNewlines(); p.match(tkComma); p.skipNewlines() {
			arguments = append(arguments, p.statement())
		}
	}
	p.consume(tkRightParen, "Expect ')' after arguments.")
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() Expr {
	if p.match(tkFor) {
		return p.forExpr()
	}
	if p.match(tkIf) {
		return p.ifExpr()
	}
	if p.check(tkIdentifier) && p.peekAt(1).Type == tkAssign {
		name := p.advance()
		p.advance()
		return &assignExpr{
			name:  name,
			value: p.statement(),
		}
	}
	if p.match(tkLeftCurlyBrace) {
		return p.block()
	}
	if p.match(tkPipe) {
		return p.function()
	}
	if p.match(tkFalse) {
		return &literalExpr{value: henryBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: henryBool(true)}
	}
	if p.match(tkInt, tkFloat) {
		return &literalExpr{value: p.number(p.previous())}
	}
	if p.match(tkString) {
		return &literalExpr{value: henryString(p.previous().Literal.(string))}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.skipNewlines()
		p.consume(tkRightParen, "Expect ')' after expression.")
		return &groupingExpr{expression: expr}
	}

	p.fatalError(ErrUnexpectedToken, p.peek(), "Expect expression.")
	return nil
}

func (p *parser) forExpr() Expr {
	keyword := p.previous()
	name := p.consume(tkIdentifier, "Expect variable name.")
	p.consume(tkAssign, "Expect ':=' after variable name.")
	iterable := p.statement()
	body := p.statement()
	return &forExpr{
		keyword:  keyword,
		name:     name,
		iterable: iterable,
		body:     body,
	}
}

func (p *parser) ifExpr() Expr {
	expr := &ifExpr{
		keyword: p.previous(),
	}
	expr.condition = p.statement()
	expr.thenBranch = p.statement()

	for p.matchAfterNewlines(tkElse) {
		if p.match(tkIf) {
			elif := &struct{ condition, thenBranch Expr }{}
			elif.condition = p.statement()
			elif.thenBranch = p.statement()
			expr.elifs = append(expr.elifs, elif)
			continue
		}
		expr.elseBranch = p.statement()
		break
	}

	return expr
}

func (p *parser) block() Expr {
	brace := p.previous()
	stmts := make([]Expr, 0)
	p.skipSeparators()
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.statement())
		p.skipSeparators()
	}
	p.consume(tkRightCurlyBrace, "Expect '}' after block.")
	return &blockExpr{
		brace: brace,
		stmts: stmts,
	}
}

func (p *parser) function() Expr {
	pipe := p.previous()
	params := make([]*Token, 0)
	for !p.check(tkPipe) && !p.isAtEnd() {
		params = append(params, p.consume(tkIdentifier, "Expect parameter name."))
	}
	p.consume(tkPipe, "Expect '|' after parameters.")
	return &functionExpr{
		pipe:   pipe,
		params: params,
		body:   p.statement(),
	}
}

func (p *parser) number(tk *Token) interface{} {
	if tk.Type == tkFloat {
		value, err := strconv.ParseFloat(tk.Lexeme, 64)
		if err != nil {
			p.fatalError(ErrInvalidNumber, tk, "Invalid number literal.")
		}
		return henryFloat(value)
	}
	value, err := strconv.ParseInt(tk.Lexeme, 10, 64)
	if err != nil {
		p.fatalError(ErrInvalidNumber, tk, "Invalid number literal.")
	}
	return henryInt(value)
}

func (p *parser) fatalError(kind error, tk *Token, message string) {
	err := &SyntaxError{
		Err:     kind,
		Line:    tk.Line,
		Lexeme:  tk.Lexeme,
		Message: message,
		atEnd:   tk.Type == tkEOF,
	}
	p.state.setError(err)
	panic(err)
}

func (p *parser) consume(tk TokenType, message string) *Token {
	if p.check(tk) {
		return p.advance()
	}
	p.fatalError(ErrUnexpectedToken, p.peek(), message)
	return nil
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

// matchAfterNewlines consumes the line breaks before tk only when tk follows them
func (p *parser) matchAfterNewlines(tk TokenType) bool {
	offset := 0
	for p.peekAt(offset).Type == tkNewline {
		offset++
	}
	if p.peekAt(offset).Type != tk {
		return false
	}
	p.current += offset + 1
	return true
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == token
}

func (p *parser) skipNewlines() {
	for p.check(tkNewline) {
		p.current++
	}
}

func (p *parser) skipSeparators() {
	for p.check(tkNewline) || p.check(tkSemicolon) {
		p.current++
	}
}

func (p *parser) peek() *Token {
	return &p.state.tokens[p.current]
}

func (p *parser) peekAt(offset int) *Token {
	if p.current+offset >= len(p.state.tokens) {
		return &p.state.tokens[len(p.state.tokens)-1]
	}
	return &p.state.tokens[p.current+offset]
}

func (p *parser) previous() *Token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == tkEOF
}

func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if prev := p.previous().Type; prev == tkNewline || prev == tkSemicolon {
			return
		}
		switch p.peek().Type {
		case tkType, tkIf:
			return
		}
		p.advance()
	}
}

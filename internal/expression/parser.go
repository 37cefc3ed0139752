package expression

/*
Infix grammar, lowest precedence first. All binary operators are
left-associative.

	expression => term ( ( "+" | "-" ) term )*
	term       => factor ( ( "*" | "/" ) factor )*
	factor     => NUMBER | VARIABLE | "-" factor | "(" expression ")"

Unary minus is represented as 0 - factor so trees only ever contain Num, Var
and BinOp nodes.
*/

type parser struct {
	tokens  []Token
	current int
	// depth is the number of currently open parentheses.
	depth int
}

// Parse parses a complete infix expression. Tokens left over after the
// expression are an error.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}
	n, rest, err := ParseExpression(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		if rest[0].Kind == TokenRightParenthesis {
			return nil, ErrUnmatchedRightParenthesis
		}
		return nil, ErrExtraTokensDetected
	}
	return n, nil
}

// ParseExpression parses one expression from the start of tokens and returns
// it along with the tokens it did not consume.
func ParseExpression(tokens []Token) (Node, []Token, error) {
	p := &parser{tokens: tokens}
	n, err := p.expression()
	if err != nil {
		return nil, nil, err
	}
	return n, tokens[p.current:], nil
}

func (p *parser) expression() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(TokenPlus, TokenMinus) {
		op, _ := p.previous().operator()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(TokenMultiply, TokenDivide) {
		op, _ := p.previous().operator()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) factor() (Node, error) {
	if p.isAtEnd() {
		return nil, ErrParse
	}
	tok := p.advance()
	switch tok.Kind {
	case TokenNumber:
		return &Num{Value: tok.Value}, nil
	case TokenVariable:
		return &Var{Name: tok.Name}, nil
	case TokenMinus:
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &BinOp{Left: &Num{Value: 0}, Op: Sub, Right: operand}, nil
	case TokenLeftParenthesis:
		p.depth++
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.isAtEnd() {
			return nil, ErrUnmatchedLeftParenthesis
		}
		if !p.match(TokenRightParenthesis) {
			return nil, ErrExtraTokensDetected
		}
		p.depth--
		return inner, nil
	case TokenRightParenthesis:
		if p.depth == 0 {
			return nil, ErrUnmatchedRightParenthesis
		}
		// "()" or an operator directly before ")".
		return nil, ErrParse
	case TokenEqual:
		return nil, ErrUnexpectedToken
	default:
		return nil, ErrParse
	}
}

func (p *parser) match(kinds ...TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	for _, k := range kinds {
		if p.tokens[p.current].Kind == k {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) advance() Token {
	tok := p.tokens[p.current]
	p.current++
	return tok
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

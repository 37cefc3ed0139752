package expression

import (
	"errors"
	"math"
	"strconv"
	"unicode"
)

// lexer converts source text into tokens. Function applications and named
// constants are resolved here, so the parser only ever sees numbers,
// variables, operators, parentheses and "=".
type lexer struct {
	src     []rune
	start   int
	current int
	// offset is added to reported columns when lexing a function argument.
	offset int
	tokens []Token
}

// Lex tokenizes input. Whitespace is skipped and any character that cannot
// start a token is reported as ErrUnexpectedToken.
func Lex(input string) ([]Token, error) {
	return lexRunes([]rune(input), 0)
}

func lexRunes(src []rune, offset int) ([]Token, error) {
	l := &lexer{src: src, offset: offset}
	for !l.isAtEnd() {
		// we're at the beginning of the next lexeme
		l.start = l.current
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

func (l *lexer) scanToken() error {
	r := l.advance()
	switch r {
	case ' ', '\t', '\r', '\n':
		return nil
	case '(':
		l.addImplicit(symbol(TokenLeftParenthesis))
	case ')':
		l.add(symbol(TokenRightParenthesis))
	case '+':
		l.add(symbol(TokenPlus))
	case '-':
		l.add(symbol(TokenMinus))
	case '*':
		l.add(symbol(TokenMultiply))
	case '/':
		l.add(symbol(TokenDivide))
	case '=':
		l.add(symbol(TokenEqual))
	default:
		switch {
		case isDigit(r) || r == '.':
			l.current--
			v, err := l.number()
			if err != nil {
				return err
			}
			l.add(Number(v))
		case isAlpha(r):
			l.current--
			return l.identifier()
		case unicode.IsSpace(r):
			return nil
		default:
			return l.error(ErrUnexpectedToken, l.start, string(r))
		}
	}
	return nil
}

// add appends a token as-is.
func (l *lexer) add(tok Token) {
	l.tokens = append(l.tokens, tok)
}

// addImplicit appends a token that may be the right-hand side of an implicit
// multiplication, as in "2x", "1.5pi", "2(3+4)" or "(1+2)(3+4)".
func (l *lexer) addImplicit(tok Token) {
	if n := len(l.tokens); n > 0 {
		switch prev := l.tokens[n-1]; prev.Kind {
		case TokenNumber, TokenRightParenthesis:
			l.add(symbol(TokenMultiply))
		case TokenVariable:
			if tok.Kind != TokenVariable {
				l.add(symbol(TokenMultiply))
			}
		}
	}
	l.add(tok)
}

// number scans a run of digits and decimal points.
func (l *lexer) number() (float64, error) {
	begin := l.current
	for isDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}
	text := string(l.src[begin:l.current])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, l.error(ErrParse, begin, text)
	}
	return v, nil
}

// identifier resolves a run of letters. A reserved word at the start of the
// run is consumed on its own so that "sinpi" reads as sin applied to pi; any
// other run is a single variable name.
func (l *lexer) identifier() error {
	word, ok := l.matchReserved()
	if !ok {
		begin := l.current
		for isAlpha(l.peek()) {
			l.advance()
		}
		l.addImplicit(Variable(string(l.src[begin:l.current])))
		return nil
	}

	v, err := l.resolve(word)
	if err != nil {
		return err
	}
	l.addImplicit(Number(v))
	return nil
}

// resolve evaluates a reserved word that has just been matched at the cursor:
// a constant yields its value, a function is applied to its argument.
func (l *lexer) resolve(word string) (float64, error) {
	begin := l.current
	l.current += len([]rune(word))

	if v, ok := constants[word]; ok {
		return v, nil
	}

	var v float64
	if word == logFunc {
		var err error
		if v, err = l.logarithm(); err != nil {
			return 0, err
		}
	} else {
		arg, err := l.argument(word)
		if err != nil {
			return 0, err
		}
		v = funcs[word](arg)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, l.error(ErrInvalidExpression, begin, string(l.src[begin:l.current]))
	}
	return v, nil
}

// logarithm reads the optional base digits after "log" and then the
// argument. With a base and nothing to apply it to, the digits are also the
// argument: "log10" is the base-10 logarithm of 10.
func (l *lexer) logarithm() (float64, error) {
	base := 10.0
	hasBase := false
	if isDigit(l.peek()) || l.peek() == '.' {
		b, err := l.number()
		if err != nil {
			return 0, err
		}
		base, hasBase = b, true
	}

	l.skipSpace()
	// A minus after the base is subtraction, never a negated argument.
	if hasBase && l.peek() != '(' && (!l.startsOperand() || l.peek() == '-') {
		return logBase(base, base), nil
	}
	arg, err := l.argument(logFunc)
	if err != nil {
		return 0, err
	}
	return logBase(base, arg), nil
}

// argument reads what a function is applied to: a parenthesised expression,
// or else the single operand that follows.
func (l *lexer) argument(fn string) (float64, error) {
	l.skipSpace()
	if l.peek() == '(' {
		return l.group()
	}
	if !l.startsOperand() {
		return 0, l.error(ErrParse, l.current, fn)
	}
	return l.operand()
}

// group evaluates the parenthesised expression at the cursor as infix.
func (l *lexer) group() (float64, error) {
	open := l.current
	depth := 0
	closing := -1
	for i := open; i < len(l.src); i++ {
		switch l.src[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			closing = i
			break
		}
	}
	if closing < 0 {
		return 0, l.error(ErrUnmatchedLeftParenthesis, open, "(")
	}

	tokens, err := lexRunes(l.src[open+1:closing], l.offset+open+1)
	if err != nil {
		return 0, err
	}
	node, err := Parse(tokens)
	if errors.Is(err, ErrEmptyExpression) {
		return 0, l.error(ErrParse, open, string(l.src[open:closing+1]))
	}
	if err != nil {
		return 0, err
	}
	v, err := EvaluateInfix(node)
	if err != nil {
		return 0, err
	}
	l.current = closing + 1
	return v, nil
}

// operand reads a single unparenthesised function argument: a number, a
// constant, another function application or a negated operand.
func (l *lexer) operand() (float64, error) {
	r := l.peek()
	switch {
	case r == '-':
		l.advance()
		l.skipSpace()
		if !l.startsOperand() && l.peek() != '(' {
			return 0, l.error(ErrParse, l.current, "-")
		}
		if l.peek() == '(' {
			v, err := l.group()
			return -v, err
		}
		v, err := l.operand()
		return -v, err
	case isDigit(r) || r == '.':
		return l.number()
	case isAlpha(r):
		word, ok := l.matchReserved()
		if !ok {
			// f(x) is never linear and cannot be evaluated.
			begin := l.current
			for isAlpha(l.peek()) {
				l.advance()
			}
			return 0, l.error(ErrInvalidExpression, begin, string(l.src[begin:l.current]))
		}
		return l.resolve(word)
	}
	return 0, l.error(ErrParse, l.current, string(r))
}

// startsOperand reports whether the rune at the cursor can begin an operand.
func (l *lexer) startsOperand() bool {
	r := l.peek()
	return isDigit(r) || r == '.' || isAlpha(r) || r == '-'
}

// matchReserved returns the longest reserved word starting at the cursor
// without consuming it.
func (l *lexer) matchReserved() (string, bool) {
	rest := l.src[l.current:]
	for _, w := range reserved {
		rw := []rune(w)
		if len(rw) <= len(rest) && string(rest[:len(rw)]) == w {
			return w, true
		}
	}
	return "", false
}

func (l *lexer) skipSpace() {
	for !l.isAtEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.src)
}

func (l *lexer) advance() rune {
	r := l.src[l.current]
	l.current++
	return r
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *lexer) error(kind Error, at int, text string) error {
	return &PositionError{Err: kind, Col: l.offset + at + 1, Text: text}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

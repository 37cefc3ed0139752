package expression

import "strconv"

// TokenKind identifies the lexical class of a Token.
type TokenKind uint8

const (
	TokenNumber TokenKind = iota
	TokenVariable
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenLeftParenthesis
	TokenRightParenthesis
	TokenEqual
)

var tokenKindNames = [...]string{
	TokenNumber:           "Number",
	TokenVariable:         "Variable",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenMultiply:         "Multiply",
	TokenDivide:           "Divide",
	TokenLeftParenthesis:  "LeftParenthesis",
	TokenRightParenthesis: "RightParenthesis",
	TokenEqual:            "Equal",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single lexical unit. Value is set for numbers and Name for
// variables; both are zero for every other kind.
type Token struct {
	Kind  TokenKind
	Value float64
	Name  string
}

// Number returns a number token.
func Number(v float64) Token { return Token{Kind: TokenNumber, Value: v} }

// Variable returns a variable token.
func Variable(name string) Token { return Token{Kind: TokenVariable, Name: name} }

func symbol(k TokenKind) Token { return Token{Kind: k} }

// IsOperator reports whether t is one of + - * /.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case TokenPlus, TokenMinus, TokenMultiply, TokenDivide:
		return true
	}
	return false
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenVariable:
		return t.Name
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMultiply:
		return "*"
	case TokenDivide:
		return "/"
	case TokenLeftParenthesis:
		return "("
	case TokenRightParenthesis:
		return ")"
	case TokenEqual:
		return "="
	}
	return t.Kind.String()
}

// operator maps an operator token to its tree operator.
func (t Token) operator() (Operator, bool) {
	switch t.Kind {
	case TokenPlus:
		return Add, true
	case TokenMinus:
		return Sub, true
	case TokenMultiply:
		return Mul, true
	case TokenDivide:
		return Div, true
	}
	return 0, false
}

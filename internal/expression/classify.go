package expression

// IsPostfix guesses whether tokens are in reverse Polish order. Anything
// with parentheses or "=" is infix. Otherwise the tokens are postfix as soon
// as an operator directly follows a number and leaves exactly one operand
// pending. This only separates the two notations for well-formed input; it
// does not validate.
func IsPostfix(tokens []Token) bool {
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLeftParenthesis, TokenRightParenthesis, TokenEqual:
			return false
		}
	}

	var numbers, operators int
	lastWasNumber := false
	for _, tok := range tokens {
		switch {
		case tok.Kind == TokenNumber:
			numbers++
			lastWasNumber = true
		case tok.IsOperator():
			operators++
			if lastWasNumber && numbers-operators == 1 {
				return true
			}
			lastWasNumber = false
		default:
			lastWasNumber = false
		}
	}
	return false
}

// FindVariable returns the name of the single variable in tokens, if any.
// A second, differently named variable is an error.
func FindVariable(tokens []Token) (string, bool, error) {
	var name string
	found := false
	for _, tok := range tokens {
		if tok.Kind != TokenVariable {
			continue
		}
		if !found {
			name, found = tok.Name, true
			continue
		}
		if tok.Name != name {
			return "", false, ErrMultipleVariables
		}
	}
	return name, found, nil
}

// HasEqual reports whether tokens contain "=".
func HasEqual(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Kind == TokenEqual {
			return true
		}
	}
	return false
}

package expression

// EvaluateInfix walks the tree and computes its value. A variable cannot be
// evaluated outside of equation solving.
func EvaluateInfix(n Node) (float64, error) {
	switch n := n.(type) {
	case *Num:
		return n.Value, nil
	case *Var:
		return 0, ErrInvalidExpression
	case *BinOp:
		l, err := EvaluateInfix(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := EvaluateInfix(n.Right)
		if err != nil {
			return 0, err
		}
		return n.Op.apply(l, r)
	}
	return 0, ErrInvalidExpression
}

// EvaluatePostfix runs tokens in reverse Polish order on a value stack. The
// top of the stack is the right-hand operand.
func EvaluatePostfix(tokens []Token) (float64, error) {
	stack := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == TokenNumber {
			stack = append(stack, tok.Value)
			continue
		}
		op, ok := tok.operator()
		if !ok {
			return 0, ErrUnexpectedToken
		}
		if len(stack) < 2 {
			return 0, ErrInvalidExpression
		}
		lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		v, err := op.apply(lhs, rhs)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, ErrInvalidExpression
	}
	return stack[0], nil
}

package expression

// affine is a value known to equal coefficient*x + constant for the single
// unknown x.
type affine struct {
	coefficient float64
	constant    float64
}

func (a affine) isConstant() bool {
	return a.coefficient == 0
}

func (a affine) scale(k float64) affine {
	return affine{coefficient: a.coefficient * k, constant: a.constant * k}
}

// reduce rewrites a tree as an affine form. Products of two terms that both
// depend on x, and division by anything depending on x, are not linear.
func reduce(n Node) (affine, error) {
	switch n := n.(type) {
	case *Num:
		return affine{constant: n.Value}, nil
	case *Var:
		return affine{coefficient: 1}, nil
	case *BinOp:
		l, err := reduce(n.Left)
		if err != nil {
			return affine{}, err
		}
		r, err := reduce(n.Right)
		if err != nil {
			return affine{}, err
		}
		switch n.Op {
		case Add:
			return affine{l.coefficient + r.coefficient, l.constant + r.constant}, nil
		case Sub:
			return affine{l.coefficient - r.coefficient, l.constant - r.constant}, nil
		case Mul:
			switch {
			case l.isConstant():
				return r.scale(l.constant), nil
			case r.isConstant():
				return l.scale(r.constant), nil
			}
			return affine{}, ErrInvalidExpression
		case Div:
			if !r.isConstant() {
				return affine{}, ErrInvalidExpression
			}
			if r.constant == 0 {
				return affine{}, ErrDivisionByZero
			}
			return l.scale(1 / r.constant), nil
		}
	}
	return affine{}, ErrInvalidExpression
}

// SolveEquation solves a linear equation in one unknown. tokens must contain
// "="; both sides are parsed independently and rearranged into a*x = b.
// Equations with no solution and identities are both rejected.
func SolveEquation(tokens []Token) (float64, error) {
	eq := -1
	for i, tok := range tokens {
		if tok.Kind == TokenEqual {
			eq = i
			break
		}
	}
	if eq < 0 {
		return 0, ErrParse
	}

	left, err := Parse(tokens[:eq])
	if err != nil {
		return 0, err
	}
	right, err := Parse(tokens[eq+1:])
	if err != nil {
		return 0, err
	}

	l, err := reduce(left)
	if err != nil {
		return 0, err
	}
	r, err := reduce(right)
	if err != nil {
		return 0, err
	}

	a := l.coefficient - r.coefficient
	b := r.constant - l.constant
	if a == 0 {
		return 0, ErrInvalidExpression
	}
	return b / a, nil
}

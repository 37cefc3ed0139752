package expression

import "strconv"

// Operator is a binary arithmetic operator.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// apply computes l op r. Division by an exact zero fails.
func (op Operator) apply(l, r float64) (float64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	}
	return 0, ErrInvalidExpression
}

// Node is a node of an infix expression tree. The set of implementations is
// closed: *Num, *Var and *BinOp.
type Node interface {
	String() string
	node()
}

// Num is a numeric leaf.
type Num struct {
	Value float64
}

// Var is the unknown of an equation.
type Var struct {
	Name string
}

// BinOp applies Op to its two children. Each child is owned by exactly one
// parent.
type BinOp struct {
	Left  Node
	Op    Operator
	Right Node
}

func (*Num) node()   {}
func (*Var) node()   {}
func (*BinOp) node() {}

func (n *Num) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (v *Var) String() string {
	return v.Name
}

// String renders the tree fully parenthesised.
func (b *BinOp) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

package expression

import (
	"math"
	"strconv"
)

// Notation is the evaluation path an input took.
type Notation string

const (
	NotationInfix    Notation = "infix"
	NotationPostfix  Notation = "postfix"
	NotationEquation Notation = "equation"
)

// Result is a computed value. Variable is set only for solved equations.
type Result struct {
	Value    float64
	Variable string
	Notation Notation
}

// String formats the result the way ProcessExpression returns it.
func (r Result) String() string {
	if r.Variable != "" {
		return r.Variable + "=" + FormatValue(r.Value)
	}
	return FormatValue(r.Value)
}

// Evaluate runs the full pipeline on input. Equations in one variable are
// solved; everything else is evaluated as postfix or infix arithmetic. The
// value is rounded to eight decimal places.
func Evaluate(input string) (Result, error) {
	tokens, err := Lex(input)
	if err != nil {
		return Result{}, err
	}
	if len(tokens) == 0 {
		return Result{}, ErrEmptyExpression
	}

	name, hasVariable, err := FindVariable(tokens)
	if err != nil {
		return Result{}, err
	}

	var res Result
	switch {
	case hasVariable && HasEqual(tokens):
		v, err := SolveEquation(tokens)
		if err != nil {
			return Result{}, err
		}
		res = Result{Value: v, Variable: name, Notation: NotationEquation}
	case IsPostfix(tokens):
		v, err := EvaluatePostfix(tokens)
		if err != nil {
			return Result{}, err
		}
		res = Result{Value: v, Notation: NotationPostfix}
	default:
		n, err := Parse(tokens)
		if err != nil {
			return Result{}, err
		}
		v, err := EvaluateInfix(n)
		if err != nil {
			return Result{}, err
		}
		res = Result{Value: v, Notation: NotationInfix}
	}

	if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		return Result{}, ErrInvalidExpression
	}
	res.Value = Round(res.Value)
	return res, nil
}

// ProcessExpression evaluates input and returns the formatted result, e.g.
// "14" or "x=0.25".
func ProcessExpression(input string) (string, error) {
	res, err := Evaluate(input)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

const roundingScale = 1e8

// Round rounds v to eight decimal places. Rounding an already rounded value
// leaves it unchanged.
func Round(v float64) float64 {
	scaled := v * roundingScale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return v
	}
	r := math.Round(scaled) / roundingScale
	if r == 0 {
		// drop the sign of negative zero
		return 0
	}
	return r
}

// FormatValue renders v in its shortest decimal form without an exponent.
func FormatValue(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package expression

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	plus := symbol(TokenPlus)
	minus := symbol(TokenMinus)
	mul := symbol(TokenMultiply)
	div := symbol(TokenDivide)
	open := symbol(TokenLeftParenthesis)
	closing := symbol(TokenRightParenthesis)
	eq := symbol(TokenEqual)

	tests := []struct {
		src  string
		want []Token
	}{
		{"", nil},
		{" \t \r\n ", nil},
		{"0", []Token{Number(0)}},
		{"12.5", []Token{Number(12.5)}},
		{".5", []Token{Number(0.5)}},
		{"1 0", []Token{Number(1), Number(0)}},
		{"1+2", []Token{Number(1), plus, Number(2)}},
		{"3 - 4 * 5 / 6", []Token{Number(3), minus, Number(4), mul, Number(5), div, Number(6)}},
		{"(1)", []Token{open, Number(1), closing}},
		{"x = 2", []Token{Variable("x"), eq, Number(2)}},
		{"foo", []Token{Variable("foo")}},
		// constants
		{"pi", []Token{Number(math.Pi)}},
		{"π", []Token{Number(math.Pi)}},
		{"e", []Token{Number(math.E)}},
		// implicit multiplication
		{"2x", []Token{Number(2), mul, Variable("x")}},
		{"1.5pi", []Token{Number(1.5), mul, Number(math.Pi)}},
		{"2(1)", []Token{Number(2), mul, open, Number(1), closing}},
		{"(1)(2)", []Token{open, Number(1), closing, mul, open, Number(2), closing}},
		{"x(1)", []Token{Variable("x"), mul, open, Number(1), closing}},
		{"(1)x", []Token{open, Number(1), closing, mul, Variable("x")}},
		{"3 4 +", []Token{Number(3), Number(4), plus}},
		// functions
		{"cos(0)", []Token{Number(1)}},
		{"cos 0", []Token{Number(1)}},
		{"2cos(0)", []Token{Number(2), mul, Number(1)}},
		{"abs -4", []Token{Number(4)}},
		{"sqrtsqrt16", []Token{Number(2)}},
		{"exp0", []Token{Number(1)}},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Lex(tc.src)
			if err != nil {
				t.Fatalf("lexing %q: unexpected error %v", tc.src, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("lexing %q: expected %v, got %v", tc.src, tc.want, got)
			}
		})
	}
}

func TestLexFunctionValues(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"log10", 1},
		{"log(1000)", 3},
		{"log 1000", 3},
		{"log2 8", 3},
		{"log100(10)", 0.5},
		{"ln(e)", 1},
		{"sinpi", 0},
		{"sin(pi/2)", 1},
		{"tan(pi/4)", 1},
		{"cos -pi", -1},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Lex(tc.src)
			if err != nil {
				t.Fatalf("lexing %q: unexpected error %v", tc.src, err)
			}
			if len(got) != 1 || got[0].Kind != TokenNumber {
				t.Fatalf("lexing %q: expected a single number, got %v", tc.src, got)
			}
			if math.Abs(got[0].Value-tc.want) > 1e-12 {
				t.Fatalf("lexing %q: expected %v, got %v", tc.src, tc.want, got[0].Value)
			}
		})
	}

	for _, src := range []string{"log10 + 1", "log10 - 1", "log10-1"} {
		got, err := Lex(src)
		if err != nil {
			t.Fatalf("lexing %q: unexpected error %v", src, err)
		}
		if len(got) != 3 || got[0].Kind != TokenNumber || got[0].Value != 1 || !got[1].IsOperator() {
			t.Fatalf("lexing %q: expected the base to be its own argument before the operator, got %v", src, got)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind Error
		col  int
	}{
		{src: "$", kind: ErrUnexpectedToken, col: 1},
		{src: "1 + #", kind: ErrUnexpectedToken, col: 5},
		{src: "1.2.3", kind: ErrParse, col: 1},
		{src: ".", kind: ErrParse, col: 1},
		{src: "sin(0", kind: ErrUnmatchedLeftParenthesis, col: 4},
		{src: "cos(1 + ?)", kind: ErrUnexpectedToken, col: 9},
		{src: "sqrt(-1)", kind: ErrInvalidExpression, col: 1},
		{src: "1 + tan", kind: ErrParse, col: 8},
		{src: "cosx", kind: ErrInvalidExpression, col: 4},
		{src: "log1(5)", kind: ErrInvalidExpression, col: 1},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			_, err := Lex(tc.src)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("lexing %q: expected %v, got %v", tc.src, tc.kind, err)
			}
			var perr *PositionError
			if !errors.As(err, &perr) {
				t.Fatalf("lexing %q: expected *PositionError, got %T", tc.src, err)
			}
			if perr.Col != tc.col {
				t.Fatalf("lexing %q: expected column %d, got %d", tc.src, tc.col, perr.Col)
			}
		})
	}
}

func TestLexFunctionArgumentErrorsKeepKind(t *testing.T) {
	_, err := Lex("sin(1/0)")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected %v, got %v", ErrDivisionByZero, err)
	}

	_, err = Lex("cos()")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected %v, got %v", ErrParse, err)
	}
}

func FuzzLex(f *testing.F) {
	f.Add("x")
	f.Add("sin(1.5pi)")
	f.Add("log100(10)")
	f.Fuzz(func(t *testing.T, s string) {
		Lex(s)
	})
}

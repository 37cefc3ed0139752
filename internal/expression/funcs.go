package expression

import "math"

// constants are substituted as numbers wherever their name appears.
var constants = map[string]float64{
	"pi": math.Pi,
	"π":  math.Pi,
	"e":  math.E,
}

// funcs are the functions of one argument. log is handled separately because
// it may carry a base suffix.
var funcs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"exp":  math.Exp,
	"abs":  math.Abs,
}

const logFunc = "log"

// reserved lists every name the lexer recognises, longest first so that
// "exp" wins over "e".
var reserved = []string{
	"sqrt",
	"sin", "cos", "tan", "exp", "abs", "log",
	"ln", "pi",
	"π", "e",
}

// logBase computes the logarithm of x in the given base.
func logBase(base, x float64) float64 {
	if base <= 0 || base == 1 {
		return math.NaN()
	}
	if base == 10 {
		return math.Log10(x)
	}
	return math.Log(x) / math.Log(base)
}

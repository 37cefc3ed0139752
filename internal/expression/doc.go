// Package expression evaluates arithmetic entered as text.
//
// Input is infix ("2 * (3 + 4)") or postfix ("3 4 + 2 *") arithmetic over
// float64, optionally using the constants pi and e and the functions sin,
// cos, tan, ln, log, logN, sqrt, exp and abs. A function applies to a
// parenthesised argument or to the single operand right after it, so "sinpi"
// is sin(pi) and "log100(10)" is the base-100 logarithm of 10. A number or
// closing parenthesis directly before a name or an opening parenthesis is an
// implicit multiplication: "2x", "1.5pi", "2(3+4)".
//
// An input with one unknown and "=" is solved as a linear equation, e.g.
// "2 * x + 1 = 2 * (1 - x)" gives x=0.25.
//
// Every failure is one of the Error kinds. Nothing here keeps state between
// calls, so all functions are safe for concurrent use.
package expression

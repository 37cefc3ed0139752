package expression

import (
	"strconv"
)

// Error is the closed set of failures the calculator reports. Values are
// comparable, so callers test for a kind with errors.Is.
type Error int

const (
	ErrEmptyExpression Error = iota + 1
	ErrMultipleVariables
	ErrParse
	ErrUnexpectedToken
	ErrUnmatchedLeftParenthesis
	ErrUnmatchedRightParenthesis
	ErrExtraTokensDetected
	ErrInvalidExpression
	ErrDivisionByZero
)

var errorText = map[Error]string{
	ErrEmptyExpression:           "empty expression",
	ErrMultipleVariables:         "more than one variable in expression",
	ErrParse:                     "parse error",
	ErrUnexpectedToken:           "unexpected token",
	ErrUnmatchedLeftParenthesis:  "unmatched left parenthesis",
	ErrUnmatchedRightParenthesis: "unmatched right parenthesis",
	ErrExtraTokensDetected:       "extra tokens after expression",
	ErrInvalidExpression:         "invalid expression",
	ErrDivisionByZero:            "division by zero",
}

var errorCodes = map[Error]string{
	ErrEmptyExpression:           "empty_expression",
	ErrMultipleVariables:         "multiple_variables",
	ErrParse:                     "parse_error",
	ErrUnexpectedToken:           "unexpected_token",
	ErrUnmatchedLeftParenthesis:  "unmatched_left_parenthesis",
	ErrUnmatchedRightParenthesis: "unmatched_right_parenthesis",
	ErrExtraTokensDetected:       "extra_tokens_detected",
	ErrInvalidExpression:         "invalid_expression",
	ErrDivisionByZero:            "division_by_zero",
}

func (e Error) Error() string {
	if s, ok := errorText[e]; ok {
		return s
	}
	return "calculator error " + strconv.Itoa(int(e))
}

// Code returns a stable snake_case identifier for the error kind.
func (e Error) Code() string {
	if s, ok := errorCodes[e]; ok {
		return s
	}
	return "unknown"
}

// PositionError is a tokenizer failure at a known place in the input. It
// unwraps to its Error kind.
type PositionError struct {
	// Err is the failure kind.
	Err Error
	// Col is the 1-based rune column where the offending text starts.
	Col int
	// Text is the offending input.
	Text string
}

func (err *PositionError) Error() string {
	return strconv.Itoa(err.Col) + ": " + err.Err.Error() + " " + strconv.Quote(err.Text)
}

func (err *PositionError) Unwrap() error {
	return err.Err
}

// Code returns the code of the wrapped kind.
func (err *PositionError) Code() string {
	return err.Err.Code()
}

// Coder is implemented by every error this package returns.
type Coder interface {
	error
	Code() string
}

var (
	_ Coder = Error(0)
	_ Coder = (*PositionError)(nil)
)

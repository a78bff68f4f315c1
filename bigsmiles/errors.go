package bigsmiles

import "fmt"

// TokenizeError reports an unrecognized lexeme. Symbol holds the offending
// substring and Column its byte offset in the input.
type TokenizeError struct {
	Msg    string
	Symbol string
	Column int
}

func (e *TokenizeError) Error() string {
	if e.Symbol == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s (starting with %q; column: %d)", e.Msg, e.Symbol, e.Column)
}

// ConstructorError reports a structural or chemical violation hit while
// building the object graph: a bond with no prior atom, an unclosable scope,
// a valence that cannot be escalated.
type ConstructorError struct {
	Msg string
	Err error
}

func (e *ConstructorError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConstructorError) Unwrap() error { return e.Err }

// ValidationError reports a semantic violation found by the pre-checks or
// the post-construction validator: unbalanced brackets, an unclosed ring, a
// bonding descriptor without a partner.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ParseError wraps any failure of Parse with the original input so the
// causal chain always names the string that failed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing failed on %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func constructorErrorf(format string, args ...any) error {
	return &ConstructorError{Msg: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

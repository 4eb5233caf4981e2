package types

import "fmt"

// ErrorCode identifies a Balsa error kind.
type ErrorCode string

// Error codes, split by the phase that can produce them. Compile errors
// abort Compile before any artifact is produced; render errors abort a
// single Render call and leave the compiled template reusable.
const (
	// C0xxx: compile-time errors
	ErrTemplateParseFail           ErrorCode = "C0101"
	ErrInvalidParameterIdentifier  ErrorCode = "C0201"
	ErrInvalidDeclarationIdentifier ErrorCode = "C0202"
	ErrInvalidTypeExpression       ErrorCode = "C0203"
	ErrInvalidExpression           ErrorCode = "C0204"
	ErrInvalidParameter            ErrorCode = "C0205"
	ErrInvalidTypeCast             ErrorCode = "C0301"

	// R0xxx: render-time errors
	ErrMissingParameter     ErrorCode = "R0101"
	ErrInvalidParameterType ErrorCode = "R0102"
)

// Error is a structured Balsa error. Every validation failure is reported
// as an *Error so callers and tests can assert on the code and context
// fields rather than on message text.
type Error struct {
	Code    ErrorCode
	Message string
	// Position is the character offset in the template source at which
	// the failure occurred, or -1 for render errors, which are not
	// positional.
	Position int
	// Name is the parameter or declaration identifier involved, when one
	// is known.
	Name string
	// Key is the unrecognized option key for ErrInvalidParameter.
	Key string
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// TemplateParseFail reports that the grammar could not recognize a
// {{-prefixed construct at pos.
func TemplateParseFail(pos int) *Error {
	return &Error{
		Code:     ErrTemplateParseFail,
		Message:  "parser failed",
		Position: pos,
	}
}

// InvalidParameterIdentifier reports a parameter block whose name is not
// an identifier.
func InvalidParameterIdentifier(pos int, expr Expression) *Error {
	return &Error{
		Code:     ErrInvalidParameterIdentifier,
		Message:  fmt.Sprintf("invalid identifier `%s` in parameter block", expr),
		Position: pos,
	}
}

// InvalidDeclarationIdentifier reports a declaration whose name is not an
// identifier.
func InvalidDeclarationIdentifier(pos int, expr Expression) *Error {
	return &Error{
		Code:     ErrInvalidDeclarationIdentifier,
		Message:  fmt.Sprintf("invalid identifier `%s` in declaration block", expr),
		Position: pos,
	}
}

// InvalidTypeExpression reports an expression that does not resolve to a
// known type where one was required.
func InvalidTypeExpression(pos int, expr Expression) *Error {
	return &Error{
		Code:     ErrInvalidTypeExpression,
		Message:  fmt.Sprintf("expression `%s` is not a valid type", expr),
		Position: pos,
	}
}

// InvalidExpression reports an expression of the wrong syntactic class,
// such as a type keyword where a literal value was required.
func InvalidExpression(pos int, expr Expression) *Error {
	return &Error{
		Code:     ErrInvalidExpression,
		Message:  fmt.Sprintf("invalid expression `%s`", expr),
		Position: pos,
	}
}

// InvalidParameter reports an unrecognized option key in a parameter
// block.
func InvalidParameter(pos int, key string) *Error {
	return &Error{
		Code:     ErrInvalidParameter,
		Message:  fmt.Sprintf("unrecognized parameter `%s`", key),
		Position: pos,
		Key:      key,
	}
}

// InvalidTypeCast reports a failed compile-time cast of a literal value.
func InvalidTypeCast(pos int, cause *TypeCastError) *Error {
	return &Error{
		Code:     ErrInvalidTypeCast,
		Message:  cause.Error(),
		Position: pos,
		Err:      cause,
	}
}

// MissingParameter reports a parameter with no runtime value and no
// default.
func MissingParameter(name string) *Error {
	return &Error{
		Code:     ErrMissingParameter,
		Message:  fmt.Sprintf("missing parameter `%s`", name),
		Position: -1,
		Name:     name,
	}
}

// InvalidParameterType reports a runtime value that cannot be cast to the
// parameter's declared type.
func InvalidParameterType(name string, value Value, received, expected Type) *Error {
	return &Error{
		Code: ErrInvalidParameterType,
		Message: fmt.Sprintf(
			"invalid value `%s` of type `%s` for parameter `%s` of type `%s`",
			value, received, name, expected,
		),
		Position: -1,
		Name:     name,
		Err:      &TypeCastError{Value: value, From: received, To: expected},
	}
}

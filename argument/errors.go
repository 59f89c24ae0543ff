package argument

import (
	"errors"
	"fmt"
)

var (
	// ErrBadToken indicates a token was syntactically wrong for its
	// argument type.
	ErrBadToken = errors.New("bad token")

	// ErrUnknownChoice indicates a choice argument received a token
	// outside its set.
	ErrUnknownChoice = errors.New("no choice matched")
)

// BadTokenError carries the argument kind and the offending token.
type BadTokenError struct {
	Kind   string
	Detail string
}

// Error implements the error interface.
func (e *BadTokenError) Error() string {
	return fmt.Sprintf("invalid %s token: %s", e.Kind, e.Detail)
}

// Unwrap makes the error match ErrBadToken under errors.Is.
func (e *BadTokenError) Unwrap() error {
	return ErrBadToken
}

// badToken builds a BadTokenError for the given kind and token.
func badToken(kind, detail string) error {
	return &BadTokenError{Kind: kind, Detail: detail}
}

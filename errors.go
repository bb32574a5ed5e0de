package tst

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error returned for a malformed key.
var ErrInvalidInput = errors.New("tst: invalid input")

// InvalidInputError reports a key that cannot be stored in or looked up from a Tree.
// No operation that returns it has mutated the tree.
type InvalidInputError struct {
	Key    string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("tst: invalid key %q: %s", e.Key, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for every InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(key, reason string) error {
	return &InvalidInputError{Key: key, Reason: reason}
}

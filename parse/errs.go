package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/go-datalog/token"
)

var (
	ErrParse = errors.New("parse error")
	ErrRead  = fmt.Errorf("%w: read failed", ErrParse)
)

// Error reports the first token that does not continue the grammar
// production being recognized.
type Error struct {
	Token token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: unexpected %s", ErrParse, e.Token)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

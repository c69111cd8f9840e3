package route

import (
	"errors"
	"fmt"
)

// ErrTurn is wrapped by every InvalidTurnToken error.
var ErrTurn = errors.New("must be L or R")

// ErrorKind tells which half of a token failed to parse.
type ErrorKind int

const (
	InvalidTurnToken ErrorKind = iota + 1
	InvalidDistance
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidTurnToken:
		return "invalid turn"
	case InvalidDistance:
		return "invalid distance"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports the first token Parse could not read.
type ParseError struct {
	Kind  ErrorKind
	Index int // position of the token in the input, from 0
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("instruction %d %q: %s: %v", e.Index, e.Token, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

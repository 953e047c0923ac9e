package shared

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrEncodingOverflow  = errors.New("value does not fit in the requested byte width")
	ErrDegenerateModulus = errors.New("modulus must be greater than 1")
	ErrInvalidProof      = errors.New("invalid proof")
	ErrInvalidChallenge  = errors.New("invalid challenge")
	ErrProofNotExist     = errors.New("proof doesn't exist")
)

type ConfigMismatchError struct {
	Param    string
	Expected string
	Found    string
	DataDir  string
}

func (err ConfigMismatchError) Error() string {
	return fmt.Sprintf("`%v` config mismatch; expected: %v, found: %v, datadir: %v",
		err.Param, err.Expected, err.Found, err.DataDir)
}

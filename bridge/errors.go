package bridge

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNetwork   = errors.New("invalid network")
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrQuoteUnavailable = errors.New("quote unavailable")
	ErrQuoteMalformed   = errors.New("quote malformed")
	ErrFeeExceedsAmount = errors.New("relay fee exceeds amount")
)

// BridgeError carries one of the error kinds above and the underlying cause.
// errors.Is(err, ErrInvalidAmount) matches on the kind.
type BridgeError struct {
	Kind error
	Err  error
}

func newError(kind error, err error) *BridgeError {
	return &BridgeError{
		Kind: kind,
		Err:  err,
	}
}

func (e *BridgeError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *BridgeError) Is(target error) bool {
	return target == e.Kind
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

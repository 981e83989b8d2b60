package krypto

import (
	"errors"
	"fmt"
)

// Kind identifies the step of a stretch computation that failed.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in this package.
	KindUnknown Kind = iota
	// KindInvalidCount indicates a non-positive iteration count.
	KindInvalidCount
	// KindUnknownAlgorithm indicates the digest name is not registered.
	KindUnknownAlgorithm
	// KindContextCreate indicates the hashing context could not be created.
	KindContextCreate
	// KindDigestInit indicates a round could not be initialised.
	KindDigestInit
	// KindSaltUpdate indicates feeding the salt failed.
	KindSaltUpdate
	// KindPasswordUpdate indicates feeding the password or previous digest failed.
	KindPasswordUpdate
	// KindDigestFinal indicates the digest could not be finalised.
	KindDigestFinal
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidCount:
		return "invalid count"
	case KindUnknownAlgorithm:
		return "unknown algorithm"
	case KindContextCreate:
		return "context create"
	case KindDigestInit:
		return "digest init"
	case KindSaltUpdate:
		return "salt update"
	case KindPasswordUpdate:
		return "password update"
	case KindDigestFinal:
		return "digest final"
	default:
		return "unknown"
	}
}

// Error is returned by every failing operation in this package.
type Error struct {
	Kind      Kind
	Algorithm string
	Err       error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidCount:
		msg = "count must be positive"
	case KindUnknownAlgorithm:
		msg = fmt.Sprintf("unknown hash algorithm %q", e.Algorithm)
	default:
		msg = fmt.Sprintf("%s %s failed", e.Algorithm, e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so callers can
// match with errors.Is(err, &krypto.Error{Kind: krypto.KindSaltUpdate}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the Kind of err, looking through wrapping.
func KindOf(err error) Kind {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Kind
	}
	return KindUnknown
}

func newError(kind Kind, alg string, err error) error {
	return &Error{Kind: kind, Algorithm: alg, Err: err}
}

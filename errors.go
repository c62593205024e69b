package grid9

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a CodecError the way spec.md §7 describes the error
// taxonomy: by kind, not by a per-function error value.
type Kind int

const (
	// InvalidCoordinate means a latitude or longitude was out of range,
	// NaN, or infinite.
	InvalidCoordinate Kind = iota

	// InvalidCode means a code had the wrong length, an alphabet
	// character outside the Crockford-style base-32 set, a misplaced
	// dash, or (defensively) decoded indices out of range.
	InvalidCode

	// InvalidArgument means a non-coordinate, non-code argument (a
	// search radius, a batch-operation entry) was malformed.
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case InvalidCoordinate:
		return "InvalidCoordinate"
	case InvalidCode:
		return "InvalidCode"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// CodecError names the offending input alongside its Kind, so callers can
// both classify a failure (errors.As) and report what was wrong with it.
type CodecError struct {
	Kind  Kind
	Input string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("grid9: invalid %s: %s", e.Kind, e.Input)
}

func newCoordinateError(lat, lon float64) error {
	return &CodecError{Kind: InvalidCoordinate, Input: fmt.Sprintf("(%v, %v)", lat, lon)}
}

func newCodeError(code string) error {
	return &CodecError{Kind: InvalidCode, Input: fmt.Sprintf("%q", code)}
}

func newArgumentError(what string) error {
	return &CodecError{Kind: InvalidArgument, Input: what}
}

// wrapArgument adds a message naming the argument to a failure that
// findNearby delegates to coordinate validation, the one place the core
// composes a derived error (see SPEC_FULL.md §2, Ambient Stack). The
// wrapped CodecError keeps its own Kind (InvalidCoordinate), which
// errors.As still finds.
func wrapArgument(err error, what string) error {
	return errors.Wrapf(err, "grid9: invalid %s", what)
}

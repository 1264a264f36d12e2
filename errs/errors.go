// Package errs defines the sentinel errors shared by every ufwire package.
//
// Decode failures fall into three classes and every decode error wraps exactly
// one of them, so callers can classify a failure with errors.Is:
//
//   - ErrOutOfData: the cursor ran out of bits before the layout was satisfied
//   - ErrCapacityExceeded: a decoded count is larger than the declared maximum
//   - ErrStructural: the stream contradicts the layout (misaligned integer read,
//     array payload without its mask, unsupported section, ...)
//
// All three are fatal for the current decode call. The remaining errors belong
// to the capture and replay layers.
package errs

import "errors"

// Decode error classes.
var (
	ErrOutOfData        = errors.New("out of data")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrStructural       = errors.New("structural invariant violation")
)

// Structural violations. Each one wraps ErrStructural.
var (
	ErrMisaligned       = structural("integer read with pending bits")
	ErrArrayPhase       = structural("array payload decoded before its update mask")
	ErrUnsupportedField = structural("unsupported field in change mask")
	ErrInvalidBitCount  = structural("invalid bit count")
	ErrTrailingData     = structural("trailing data after decode")
	ErrGuardMismatch    = structural("block guard set on an empty block")
	ErrMaskOverflow     = structural("mask bit beyond declared length")
)

// Configuration and lookup errors.
var (
	ErrUnknownVersion  = errors.New("unknown protocol version")
	ErrSchemaExists    = errors.New("schema already registered")
	ErrInvalidSchema   = errors.New("invalid schema")
	ErrUnknownKind     = errors.New("unknown object type")
	ErrUnknownEntity   = errors.New("update for unknown entity")
	ErrNilDestination  = errors.New("nil decode destination")
	ErrInvalidOption   = errors.New("invalid option")
	ErrInvalidFlagName = errors.New("invalid visibility flag name")
)

// Capture container errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrSchemaMismatch     = errors.New("schema fingerprint mismatch")
	ErrInvalidRecord      = errors.New("invalid capture record")
	ErrWriterFinished     = errors.New("capture writer already finished")
)

type structuralError struct {
	msg string
}

func structural(msg string) error {
	return &structuralError{msg: msg}
}

func (e *structuralError) Error() string {
	return e.msg
}

func (e *structuralError) Unwrap() error {
	return ErrStructural
}

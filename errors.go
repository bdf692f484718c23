package ipspatch

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader = errors.New("ips: missing PATCH header")
	ErrTruncatedRecord = errors.New("ips: truncated record")
	ErrOutOfBounds     = errors.New("ips: record out of bounds")
)

// HeaderError reports the bytes found where the PATCH magic was expected.
type HeaderError struct {
	Found []byte
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%v, found %q", ErrMalformedHeader, e.Found)
}

func (e *HeaderError) Unwrap() error { return ErrMalformedHeader }

// TruncatedError is returned when the patch ends while a record field is
// still expected. Pos is the patch offset at which the field starts.
type TruncatedError struct {
	Field string
	Pos   int
	Got   int
	Want  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: expecting %q field at %d, got %d of %d bytes before end of patch",
		ErrTruncatedRecord, e.Field, e.Pos, e.Got, e.Want)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncatedRecord }

// BoundsError identifies the record that would write past Limit.
type BoundsError struct {
	Index  int
	Record Record
	Limit  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: record %d (%v) ends at %#x, limit %#x",
		ErrOutOfBounds, e.Index, e.Record, e.Record.Start()+e.Record.Len(), e.Limit)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

package export

import "fmt"

// UnsupportedFormatError represents a request for a format the pipeline does
// not produce.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}

// EncodeError represents a failure inside one of the format encoders.
type EncodeError struct {
	Format Format
	Cause  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s encoding failed: %v", e.Format, e.Cause)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

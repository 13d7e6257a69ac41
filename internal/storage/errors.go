package storage

import "fmt"

// CorruptStateError indicates the persisted document blob could not be
// parsed. Loading recovers with default content; this error exists so the
// recovery can be logged, not to abort startup.
type CorruptStateError struct {
	Key   string
	Cause error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt persisted state under %q: %v", e.Key, e.Cause)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Cause
}

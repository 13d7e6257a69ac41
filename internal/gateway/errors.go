package gateway

import "fmt"

// ValidationRejectedError indicates an operation's precondition was not met;
// the request is blocked before anything is dispatched and the message is
// shown to the user as a prompt.
type ValidationRejectedError struct {
	Reason string
}

func (e *ValidationRejectedError) Error() string {
	return e.Reason
}

// ServiceError indicates the AI call itself failed. The operation's loading
// flag is cleared and the document left unchanged.
type ServiceError struct {
	Op    string
	Cause error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: AI service call failed: %v", e.Op, e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ResponseParseError indicates the AI returned text that is not valid per the
// expected schema. Most operations downgrade this to a placeholder result;
// job-match scoring and resume parsing escalate it to the caller with no
// partial result.
type ResponseParseError struct {
	Op    string
	Cause error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("%s: could not parse AI response: %v", e.Op, e.Cause)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Cause
}

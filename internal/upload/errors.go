package upload

import "fmt"

// FileReadError indicates the upload could not be read into memory.
type FileReadError struct {
	Name  string
	Cause error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error reading resume file %s: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("error reading resume file %s: empty file", e.Name)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError indicates the upload is not a PDF, DOC, DOCX or plain
// text file.
type UnsupportedTypeError struct {
	Name     string
	MIMEType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported resume file type %s (%s)", e.MIMEType, e.Name)
}

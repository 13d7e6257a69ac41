// Package upload reads a user-supplied resume file fully into memory and
// prepares it as a mime-typed payload for the AI parse operation.
package upload

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Payload is an in-memory uploaded file.
type Payload struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Accepted upload types. Anything else is rejected before the AI call.
var acceptedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// Read loads the file at path into a Payload. Read failures become
// *FileReadError; unsupported types become *UnsupportedTypeError.
func Read(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, &FileReadError{Name: filepath.Base(path), Cause: err}
	}
	return FromBytes(filepath.Base(path), data)
}

// FromBytes wraps already-read file content, e.g. from a multipart form.
func FromBytes(name string, data []byte) (Payload, error) {
	if len(data) == 0 {
		return Payload{}, &FileReadError{Name: name}
	}

	mimeType := detectMIMEType(name, data)
	if !acceptedMIMETypes[mimeType] {
		return Payload{}, &UnsupportedTypeError{Name: name, MIMEType: mimeType}
	}

	return Payload{Name: name, MIMEType: mimeType, Data: data}, nil
}

// Base64 returns the payload body encoded for transports that need text.
func (p Payload) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Data)
}

// detectMIMEType resolves the type from the file extension, falling back to
// content sniffing. DOC/DOCX cannot be distinguished by sniffing (both are
// container formats), so the extension wins when present.
func detectMIMEType(name string, data []byte) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	}

	sniffed := http.DetectContentType(data)
	if idx := strings.Index(sniffed, ";"); idx >= 0 {
		sniffed = sniffed[:idx]
	}
	return sniffed
}

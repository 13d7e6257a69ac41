package store

import "fmt"

// UnknownFieldError indicates a mutation addressed a field path that does not
// exist on the document.
type UnknownFieldError struct {
	Path string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown document field: %s", e.Path)
}

// UnknownCollectionError indicates a mutation named a collection that does
// not exist on the document.
type UnknownCollectionError struct {
	Collection string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown document collection: %s", e.Collection)
}

package domain

import "errors"

var (
	// ErrInvalidQuery signals a search term that is absent or too short.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnknownEntityType signals an unrecognized entity type name.
	ErrUnknownEntityType = errors.New("unknown entity type")
	// ErrUnknownSortKey signals an unrecognized sort key.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)

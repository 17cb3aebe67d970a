package domain

import "errors"

var (
	ErrFetchFailed      = errors.New("catalog fetch failed")
	ErrMalformedCatalog = errors.New("catalog document is not an array of objects")
	ErrNotLoaded        = errors.New("catalog not loaded")
	ErrRecordNotFound   = errors.New("project not found")
)

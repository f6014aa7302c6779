package db

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDataCorrupted    = errors.New("data is corrupted")
	ErrDocumentTooLarge = errors.New("document has too many nodes")
)

package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrStorageCorrupt = errors.New("stored data is corrupt")
	ErrStorageWrite   = errors.New("failed to write stored data")
)

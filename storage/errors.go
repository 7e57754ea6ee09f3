package storage

import "errors"

var (
	// ErrNotFound is returned when a requested entry does not exist in the
	// persistent store. Note: badger.ErrKeyNotFound is the error returned by
	// the badger API; the storage/badger packages convert it to ErrNotFound
	// before returning.
	ErrNotFound = errors.New("key not found")

	// ErrAlreadyExists is returned when a write would overwrite an existing
	// key that must stay unique.
	ErrAlreadyExists = errors.New("key already exists")
)

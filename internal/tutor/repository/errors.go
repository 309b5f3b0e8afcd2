package repository

import "errors"

// Store-level sentinel errors. The use case layer maps these onto the
// domain taxonomy; SQL details never leave this package.
var (
	ErrFailedToInsert = errors.New("failed to insert row")
	ErrFailedToGet    = errors.New("failed to get row")
	ErrFailedToList   = errors.New("failed to list rows")
	ErrFailedToUpdate = errors.New("failed to update row")
	ErrFailedToDelete = errors.New("failed to delete row")
	ErrFailedToUpsert = errors.New("failed to upsert row")
)

// Package repository holds what the entity repositories share.
package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate reports that an insert violated a unique index.
var ErrDuplicate = errors.New("duplicate key")

// MapWriteError converts driver duplicate-key errors into ErrDuplicate.
func MapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

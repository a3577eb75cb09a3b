// Package store holds the relational persistence layer: one component per
// entity, all sharing a single gorm handle injected at boot.
package store

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUserNotFound is returned by creates whose user_id does not match a
	// directory entry.
	ErrUserNotFound = errors.New("user not found")
)

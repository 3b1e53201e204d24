// Package store wraps the Mongo collections behind typed stores. Handlers
// only see these and the sentinel errors below; no bson leaks upward.
package store

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

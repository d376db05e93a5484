package repository

import "errors"

// ErrUserNotFound is returned when an operation references a user id
// with no matching row. Services map it to a 404.
var ErrUserNotFound = errors.New("user not found")

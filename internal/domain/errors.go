package domain

import "errors"

// ErrEmailTaken is returned by storage when the users email index rejects an insert.
var ErrEmailTaken = errors.New("email already registered")

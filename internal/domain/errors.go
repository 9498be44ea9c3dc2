package domain

import (
	"errors"
)

// Absence of an entity is signalled by a nil return from the store, never an
// error. The errors below cover rule violations that creates must reject.
var (
	ErrDuplicateUsername     = errors.New("username already taken")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicateRegistration = errors.New("registration already registered")
	ErrActiveSessionExists   = errors.New("vehicle already has an active parking session")
)

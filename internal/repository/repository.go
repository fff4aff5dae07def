package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., memory) inside this directory.

import "errors"

// ErrNotFound is returned by every repository when the requested id does not
// exist. Services translate it into their own not-found errors.
var ErrNotFound = errors.New("record not found")

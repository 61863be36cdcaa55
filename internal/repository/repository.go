// Package repository implements all database queries for the event
// recommender. It uses pgx directly (no ORM) for transparency.
//
// List-valued columns (interests, tags, preferred days) are stored as
// JSON-encoded strings; the codec in this package is the only boundary
// where the encoded form appears. Everything above the repository works
// with native string slices.
package repository

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyRegistered is returned when a (user, event) pair is
// registered a second time.
var ErrAlreadyRegistered = errors.New("user already registered for this event")

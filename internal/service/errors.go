package service

import "errors"

// ErrNotFound reports a get/update/delete against an id that is not in the
// store. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrValidation reports malformed input rejected before any write: an empty
// food name, a negative numeric field, an unknown method, a bad day key.
var ErrValidation = errors.New("invalid input")

package types

import "errors"

// ErrQuoteNotFound is returned by store backends when a quote ID does not exist.
// Defined here so backends and their consumers share one sentinel.
var ErrQuoteNotFound = errors.New("quote not found")

package services

import "errors"

var (
	// ErrNotFound means the referenced wish does not exist.
	ErrNotFound = errors.New("wish not found")
	// ErrAlreadyFulfilled means the fulfillment precondition was violated.
	ErrAlreadyFulfilled = errors.New("wish already fulfilled")
	// ErrEmptyComment means the comment text was blank after trimming.
	ErrEmptyComment = errors.New("empty comment")
	// ErrUpstream means the external payment provider call failed.
	ErrUpstream = errors.New("payment provider request failed")
)

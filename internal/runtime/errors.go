package runtime

import "errors"

// ErrNotBooted is returned when an input is dispatched before Boot.
var ErrNotBooted = errors.New("machine not booted")

// ErrAlreadyBooted is returned when Boot is called twice.
var ErrAlreadyBooted = errors.New("machine already booted")

// ErrClosed is returned when an input is dispatched after Close.
var ErrClosed = errors.New("machine closed")

// ErrOutsideHandler is returned when Emit is called while no input is being
// dispatched.
var ErrOutsideHandler = errors.New("emit called outside a handler")

package store

import (
	"errors"
	"fmt"
)

// ErrCorruptDocument marks a backing file that exists but does not
// parse. Distinct from a missing file, which is expected on first run
// and answered with defaults.
var ErrCorruptDocument = errors.New("document is corrupt")

// ErrUnknownCollection is returned for a collection name outside
// projects, services, feedbacks.
var ErrUnknownCollection = errors.New("unknown collection")

// PersistenceError wraps a failure to read or write a backing
// document. Handlers surface it as a generic server failure; the
// wrapped cause stays in the server log.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

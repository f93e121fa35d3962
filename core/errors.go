package core

import (
	"errors"
	"fmt"
)

// ErrBadGraph indicates the CSR arrays passed to NewFromCSR are internally
// inconsistent (non-monotone Xadj, Adjncy index out of [0,N), mismatched
// edge-weight length, and so on).
var ErrBadGraph = fmt.Errorf("core: %w", errBadGraph)

var errBadGraph = errors.New("malformed CSR graph")

// ErrEmptyGraph indicates an operation was given a Graph with zero nodes.
var ErrEmptyGraph = fmt.Errorf("core: %w", errEmptyGraph)

var errEmptyGraph = errors.New("graph has no nodes")

// badGraphf wraps errBadGraph with a caller-supplied detail, mirroring the
// sentinel + fmt.Errorf wrapping convention used throughout this module.
func badGraphf(format string, args ...interface{}) error {
	return fmt.Errorf("core: %w: %s", errBadGraph, fmt.Sprintf(format, args...))
}

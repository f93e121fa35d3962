package evoclust

import (
	"errors"
	"fmt"
)

// ErrBadGraph is the root package's own sentinel for callers that only
// import the root package: Cluster wraps it, together with core's error,
// whenever the supplied CSRGraph fails core.NewFromCSR's validation.
var ErrBadGraph = errors.New("evoclust: malformed CSR graph")

// ErrBudgetExhausted is a sentinel for callers that want to detect, via
// errors.Is, that a run terminated because its time budget ran out
// rather than because of a failure. Nothing in this module returns it:
// running out of time is the expected, successful end of a round loop,
// so neither island.Controller.Run nor Cluster reports it.
var ErrBudgetExhausted = errors.New("evoclust: time budget exhausted before any round completed")

// InvariantError reports a consistency check failing inside core,
// modularity, or coarsen (e.g. a partition index referencing a
// nonexistent cluster). The type is defined for callers' errors.As
// checks; nothing in this module currently constructs or returns it, and
// there is no separate assertions build.
type InvariantError struct {
	What string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("evoclust: invariant violated: %s", e.What)
}

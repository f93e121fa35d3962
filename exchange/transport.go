package exchange

import (
	"context"

	"github.com/katalvlaran/evoclust/population"
)

// Transport moves Individuals between islands. Rank and Size identify
// this island's position in the island group, matching the MPI
// communicator rank/size pair the original exchanger_clustering wraps.
type Transport interface {
	Rank() int
	Size() int

	// Send delivers ind to the island at rank `to`. Implementations may
	// drop the message under backpressure rather than block a round on a
	// slow peer — callers that need delivery guarantees must re-push on
	// the next round, which Bus already does via its per-peer
	// alreadyPushed reset-on-improvement policy.
	Send(ctx context.Context, to int, ind population.Individual) error

	// TryRecv returns one pending inbound Individual without blocking, or
	// (zero, false) if none is available.
	TryRecv() (population.Individual, bool)
}

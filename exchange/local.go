package exchange

import (
	"context"

	"github.com/katalvlaran/evoclust/population"
)

// LocalTransport connects islands running as goroutines in the same
// process via a shared mesh of per-rank inbound channels, replacing the
// original's MPI_Isend/MPI_Irecv buffers
// (m_partition_map_buffers/m_request_pointers) with Go channels.
type LocalTransport struct {
	rank    int
	size    int
	inboxes []chan population.Individual
}

// NewLocalTransport builds a fully-connected mesh of `size` islands, each
// with an inbound channel buffered to bufferPerPeer, and returns one
// Transport handle per rank. Every returned LocalTransport shares the
// same inbox slice, so sends from any rank are visible to the target
// rank's TryRecv.
func NewLocalTransport(size, bufferPerPeer int) []*LocalTransport {
	inboxes := make([]chan population.Individual, size)
	for i := range inboxes {
		inboxes[i] = make(chan population.Individual, bufferPerPeer)
	}
	transports := make([]*LocalTransport, size)
	for r := 0; r < size; r++ {
		transports[r] = &LocalTransport{rank: r, size: size, inboxes: inboxes}
	}
	return transports
}

// Rank returns this handle's island rank.
func (t *LocalTransport) Rank() int { return t.rank }

// Size returns the total number of islands in the mesh.
func (t *LocalTransport) Size() int { return t.size }

// Send enqueues ind on rank `to`'s inbox. A full inbox or a canceled
// context drops the send rather than blocking the sender's round; the
// next PushBest will retry once the island's best objective changes (or
// the receiver has drained enough to make room).
func (t *LocalTransport) Send(ctx context.Context, to int, ind population.Individual) error {
	select {
	case t.inboxes[to] <- ind:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// TryRecv pops one Individual addressed to this rank, if any is pending.
func (t *LocalTransport) TryRecv() (population.Individual, bool) {
	select {
	case ind := <-t.inboxes[t.rank]:
		return ind, true
	default:
		return population.Individual{}, false
	}
}

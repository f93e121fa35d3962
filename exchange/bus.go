package exchange

import (
	"context"

	"github.com/katalvlaran/evoclust/population"
)

// Bus applies a push/drain policy on top of a Transport: PushBest
// announces the island's current best Individual to every peer it hasn't
// already been announced to since the last improvement, and Drain pulls
// in everything peers have sent, inserting each into the island's
// Population.
type Bus struct {
	transport         Transport
	alreadyPushed     []bool
	prevBestObjective float64
	maxPushesPerRound int
}

// NewBus wraps transport with a push/drain policy capped at
// maxPushesPerRound outgoing sends per PushBest call, matching the
// original's m_max_num_pushes budget.
func NewBus(transport Transport, maxPushesPerRound int) *Bus {
	return &Bus{
		transport:         transport,
		alreadyPushed:     make([]bool, transport.Size()),
		prevBestObjective: -1,
		maxPushesPerRound: maxPushesPerRound,
	}
}

// PushBest sends pop's current best Individual to up to maxPushesPerRound
// peers that haven't received it yet this "epoch" (an epoch ends, and
// every peer becomes eligible again, whenever the island's best objective
// improves on prevBestObjective — matching the original's
// m_allready_send_to reset on a new best).
func (b *Bus) PushBest(ctx context.Context, pop *population.Population) error {
	if pop.Size() == 0 {
		return nil
	}
	best := pop.GetBest()
	if best.Objective > b.prevBestObjective {
		for i := range b.alreadyPushed {
			b.alreadyPushed[i] = false
		}
		b.prevBestObjective = best.Objective
	}

	rank := b.transport.Rank()
	pushes := 0
	for peer := 0; peer < b.transport.Size() && pushes < b.maxPushesPerRound; peer++ {
		if peer == rank || b.alreadyPushed[peer] {
			continue
		}
		if err := b.transport.Send(ctx, peer, best); err != nil {
			return err
		}
		b.alreadyPushed[peer] = true
		pushes++
	}
	return nil
}

// PeerCount returns the total number of islands reachable through this
// bus's transport, including this one.
func (b *Bus) PeerCount() int { return b.transport.Size() }

// Drain inserts every Individual currently pending on the transport into
// pop, returning how many were received, matching recv_incoming.
func (b *Bus) Drain(pop *population.Population) int {
	received := 0
	for {
		ind, ok := b.transport.TryRecv()
		if !ok {
			break
		}
		pop.Insert(ind)
		received++
	}
	return received
}

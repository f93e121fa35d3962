package exchange_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evoclust/exchange"
	"github.com/katalvlaran/evoclust/population"
)

func mkIndividual(objective float64) population.Individual {
	return population.Individual{PartitionMap: []int32{0}, Objective: objective, ID: uuid.New()}
}

func TestLocalTransport_SendIsVisibleToTargetRank(t *testing.T) {
	transports := exchange.NewLocalTransport(3, 4)
	ind := mkIndividual(0.5)

	require.NoError(t, transports[0].Send(context.Background(), 2, ind))

	got, ok := transports[2].TryRecv()
	require.True(t, ok)
	assert.Equal(t, ind.ID, got.ID)

	_, ok = transports[1].TryRecv()
	assert.False(t, ok)
}

func TestLocalTransport_TryRecvFalseWhenEmpty(t *testing.T) {
	transports := exchange.NewLocalTransport(2, 1)
	_, ok := transports[0].TryRecv()
	assert.False(t, ok)
}

func TestSingleTransport_NeverSendsOrReceives(t *testing.T) {
	tr := exchange.NewSingleTransport()
	assert.Equal(t, 1, tr.Size())
	assert.Equal(t, 0, tr.Rank())
	require.NoError(t, tr.Send(context.Background(), 0, mkIndividual(1)))
	_, ok := tr.TryRecv()
	assert.False(t, ok)
}

func TestBus_PushBestAnnouncesToEveryOtherPeerOnce(t *testing.T) {
	transports := exchange.NewLocalTransport(3, 4)
	bus := exchange.NewBus(transports[0], 10)

	pop := population.New(2)
	pop.Insert(mkIndividual(0.5))

	require.NoError(t, bus.PushBest(context.Background(), pop))

	for _, peer := range []int{1, 2} {
		_, ok := transports[peer].TryRecv()
		assert.True(t, ok, "peer %d should have received a push", peer)
	}

	// Pushing again without an improved objective should not re-announce.
	require.NoError(t, bus.PushBest(context.Background(), pop))
	for _, peer := range []int{1, 2} {
		_, ok := transports[peer].TryRecv()
		assert.False(t, ok, "peer %d should not receive a duplicate push", peer)
	}
}

func TestBus_PushBestReAnnouncesAfterImprovement(t *testing.T) {
	transports := exchange.NewLocalTransport(2, 4)
	bus := exchange.NewBus(transports[0], 10)

	pop := population.New(2)
	pop.Insert(mkIndividual(0.5))
	require.NoError(t, bus.PushBest(context.Background(), pop))
	_, _ = transports[1].TryRecv()

	pop.Insert(mkIndividual(0.9))
	require.NoError(t, bus.PushBest(context.Background(), pop))

	_, ok := transports[1].TryRecv()
	assert.True(t, ok)
}

func TestBus_DrainInsertsEveryPendingIndividual(t *testing.T) {
	transports := exchange.NewLocalTransport(2, 4)
	require.NoError(t, transports[1].Send(context.Background(), 0, mkIndividual(0.3)))
	require.NoError(t, transports[1].Send(context.Background(), 0, mkIndividual(0.7)))

	bus := exchange.NewBus(transports[0], 10)
	pop := population.New(5)

	received := bus.Drain(pop)
	assert.Equal(t, 2, received)
	assert.Equal(t, 2, pop.Size())
}

func TestBus_RespectsMaxPushesPerRound(t *testing.T) {
	transports := exchange.NewLocalTransport(4, 4)
	bus := exchange.NewBus(transports[0], 1)

	pop := population.New(2)
	pop.Insert(mkIndividual(0.5))
	require.NoError(t, bus.PushBest(context.Background(), pop))

	received := 0
	for _, peer := range []int{1, 2, 3} {
		if _, ok := transports[peer].TryRecv(); ok {
			received++
		}
	}
	assert.Equal(t, 1, received)
}

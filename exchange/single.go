package exchange

import (
	"context"

	"github.com/katalvlaran/evoclust/population"
)

// SingleTransport is the degenerate one-island Transport: there is no one
// to push to and nothing ever arrives. The island controller itself skips
// exchange when its Bus is nil or has a single peer, and RunIslands,
// although it creates a SingleTransport for a one-island run, gives that
// island no Bus, so the transport's methods are never called there.
type SingleTransport struct{}

// NewSingleTransport returns the one-island Transport.
func NewSingleTransport() *SingleTransport { return &SingleTransport{} }

func (SingleTransport) Rank() int { return 0 }
func (SingleTransport) Size() int { return 1 }

func (SingleTransport) Send(context.Context, int, population.Individual) error { return nil }

func (SingleTransport) TryRecv() (population.Individual, bool) { return population.Individual{}, false }

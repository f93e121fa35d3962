// Package evoclust implements a parallel evolutionary graph-clustering
// engine: several islands evolve populations of modularity-scored graph
// partitions concurrently, exchanging their best individuals, grounded
// on parallel_mh_clustering's top-level driver
// (parallel_mh_async_clustering.{h,cpp}).
//
// A Graph is supplied in raw compressed-sparse-row form (CSRGraph); every
// other type in this module (core.Graph, population.Individual,
// island.Controller, exchange.Bus) is an internal implementation detail
// reached only through Cluster.
//
//	result, err := evoclust.Cluster(ctx, csrGraph, evoclust.NewConfig(
//		evoclust.WithIslandCount(4),
//		evoclust.WithTimeLimit(5*time.Second),
//	))
//
// Islands run as goroutines coordinated by golang.org/x/sync/errgroup,
// communicating over an in-process exchange.LocalTransport mesh
// (a single island does no exchange at all) — there is no MPI
// binding, file I/O, or CLI surface; those remain out of scope.
package evoclust

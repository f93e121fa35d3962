package population

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/evoclust/rng"
)

// Population is one island's fixed-capacity pool of Individuals, grounded
// on population_clustering's m_internal_population_clustering plus its
// size/selection/eviction methods.
type Population struct {
	capacity      int
	individuals   []Individual
	bestObjective float64
}

// New returns an empty Population with the given capacity
// (m_population_clustering_size).
func New(capacity int) *Population {
	return &Population{capacity: capacity, bestObjective: -1}
}

// Size reports how many Individuals are currently held.
func (p *Population) Size() int { return len(p.individuals) }

// IsFull reports whether the pool has reached capacity, matching is_full.
func (p *Population) IsFull() bool { return len(p.individuals) == p.capacity }

// BestObjective returns the best objective ever inserted, even if that
// Individual has since been evicted (mirrors best_objective, which the
// original never rolls back on eviction).
func (p *Population) BestObjective() float64 { return p.bestObjective }

// Insert adds ind to the pool, matching insert's three-way policy:
//   - below capacity: always accepted.
//   - at capacity and ind's objective is not below the current worst
//     (a tie with the worst is accepted): evict the
//     individual with the smallest cut-edge symmetric difference to ind
//     among those whose objective is <= ind's (a tie-break recomputed
//     per-candidate; see symmetricDifferenceCount), i.e. replace the most
//     similar, no-better individual.
//   - at capacity and ind's objective is strictly below the worst:
//     discard ind.
func (p *Population) Insert(ind Individual) {
	if ind.Objective > p.bestObjective {
		p.bestObjective = ind.Objective
	}

	if len(p.individuals) < p.capacity {
		p.individuals = append(p.individuals, ind)
		return
	}

	worst := 1.0
	for _, x := range p.individuals {
		if x.Objective < worst {
			worst = x.Objective
		}
	}
	if ind.Objective < worst {
		return
	}

	evictIdx := 0
	bestSimilarity := int(^uint(0) >> 1) // max int, matching std::numeric_limits<unsigned>::max()
	for i, candidate := range p.individuals {
		if candidate.Objective > ind.Objective {
			continue
		}
		similarity := symmetricDifferenceCount(candidate.CutEdges, ind.CutEdges)
		if similarity < bestSimilarity {
			bestSimilarity = similarity
			evictIdx = i
		}
	}
	p.individuals[evictIdx] = ind
}

// Replace swaps out the Individual with the given id for out, matching
// replace()'s find-by-identity-then-overwrite behavior (adapted to ID
// equality since Individual no longer carries pointer identity).
func (p *Population) Replace(id uuid.UUID, out Individual) {
	for i, x := range p.individuals {
		if x.ID == id {
			p.individuals[i] = out
			return
		}
	}
}

// Extinction clears the pool, matching extinction().
func (p *Population) Extinction() { p.individuals = nil }

// RandomPair draws two distinct Individuals uniformly at random, matching
// get_two_random_individuals's retry-until-distinct-index loop.
func (p *Population) RandomPair(r *rng.Source) (first, second Individual) {
	n := len(p.individuals)
	firstIdx := r.IntRange(0, n-1)
	secondIdx := r.IntRange(0, n-1)
	for secondIdx == firstIdx {
		secondIdx = r.IntRange(0, n-1)
	}
	return p.individuals[firstIdx], p.individuals[secondIdx]
}

// TournamentOne draws two random individuals and returns the fitter one,
// matching get_one_individual_tournament.
func (p *Population) TournamentOne(r *rng.Source) Individual {
	one, two := p.RandomPair(r)
	if one.Objective > two.Objective {
		return one
	}
	return two
}

// TournamentPair draws a fitter-of-two winner twice, matching
// get_two_individuals_tournament exactly, including its >= tie-break
// against the second draw's pair when both winners tie in objective.
func (p *Population) TournamentPair(r *rng.Source) (first, second Individual) {
	oneA, twoA := p.RandomPair(r)
	if oneA.Objective > twoA.Objective {
		first = oneA
	} else {
		first = twoA
	}

	oneB, twoB := p.RandomPair(r)
	if oneB.Objective > twoB.Objective {
		second = oneB
	} else {
		second = twoB
	}

	if first.Objective == second.Objective {
		if oneB.Objective >= twoB.Objective {
			second = oneB
		} else {
			second = twoB
		}
	}
	return first, second
}

// GetRandom returns a uniformly random Individual, matching
// get_random_individuum.
func (p *Population) GetRandom(r *rng.Source) Individual {
	return p.individuals[r.IntRange(0, len(p.individuals)-1)]
}

// GetBest returns the highest-objective Individual currently held,
// matching get_best_individuum.
func (p *Population) GetBest() Individual {
	maxObjective := -1.0
	idx := 0
	for i, x := range p.individuals {
		if x.Objective > maxObjective {
			maxObjective = x.Objective
			idx = i
		}
	}
	return p.individuals[idx]
}

// ApplyFittest returns the best-held Individual (whose PartitionMap is the
// clustering) together with its objective, matching apply_fittest (simplified from the
// original's redundant per-individual graph-mutation loop, which only
// ever kept its last write — the best one's — before returning).
func (p *Population) ApplyFittest() (Individual, float64) {
	best := p.GetBest()
	return best, best.Objective
}

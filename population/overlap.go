package population

// overlapKey identifies a pair of cluster ids from two clusterings being
// overlapped — the coarsest common refinement of a and b.
type overlapKey struct{ a, b int32 }

// MaximumOverlap returns the coarsest clustering that refines both a and
// b: two nodes land in the same overlap cluster iff they agree in both a
// and b. Grounded on maxmimum_overlap, with the original's custom-hashed
// unordered_map replaced by a plain Go map keyed on the (a[v],b[v]) pair.
func MaximumOverlap(a, b []int32) []int32 {
	overlap := make([]int32, len(a))
	mapping := make(map[overlapKey]int32, len(a))
	var nextID int32
	for v := range a {
		key := overlapKey{a[v], b[v]}
		id, ok := mapping[key]
		if !ok {
			id = nextID
			mapping[key] = id
			nextID++
		}
		overlap[v] = id
	}
	return overlap
}

// Canonicalize remaps clustering's cluster ids in place to a dense,
// first-seen-order range starting at 0, matching canonicalize().
func Canonicalize(clustering []int32) {
	mapping := make(map[int32]int32, len(clustering))
	var next int32
	for i, c := range clustering {
		id, ok := mapping[c]
		if !ok {
			id = next
			mapping[c] = id
			next++
		}
		clustering[i] = id
	}
}

// UpdateClustering canonicalizes newCoarseClustering in place, then
// rewrites every entry of clustering to the coarse cluster its current
// value now maps to. clustering's values must each be a valid index into
// newCoarseClustering (i.e. newCoarseClustering has one entry per cluster
// id clustering currently uses). Matches update_clustering.
func UpdateClustering(clustering, newCoarseClustering []int32) {
	Canonicalize(newCoarseClustering)
	for i, c := range clustering {
		clustering[i] = newCoarseClustering[c]
	}
}

// ApplyFineClusteringToCoarseGraph projects fineGood (a clustering judged
// "good", over the same node set as overlap) onto the coarser clustering
// overlap induces: a coarse cluster keeps its own id unless every fine
// node that collapsed into it agrees on a different fineGood cluster, in
// which case it's relabeled to that cluster. Matches
// apply_fine_clustering_to_coarse_graph.
func ApplyFineClusteringToCoarseGraph(fineGood, overlap []int32, coarseCount int32) []int32 {
	coarse := make([]int32, coarseCount)
	for i := range coarse {
		coarse[i] = int32(i)
	}
	for i := range fineGood {
		if fineGood[i] != overlap[i] {
			coarse[overlap[i]] = fineGood[i]
		}
	}
	return coarse
}

// ContractBetterClusteringByContractedOverlap re-derives, over the
// contracted-overlap graph's node set, which coarse nodes must land in
// which final cluster so that the result matches `better`'s clustering
// wherever overlap and better agree on a fine node. Matches
// contract_better_clustering_by_contracted_overlap.
func ContractBetterClusteringByContractedOverlap(overlap, contractedOverlap, better []int32) []int32 {
	mapping := make(map[int32]int32, len(better))
	for i := range better {
		if _, ok := mapping[overlap[i]]; !ok {
			mapping[overlap[i]] = better[i]
		}
	}
	out := make([]int32, len(contractedOverlap))
	for i, c := range contractedOverlap {
		out[i] = mapping[c]
	}
	return out
}

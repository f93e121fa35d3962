// Package modularity implements the Clauset–Newman–Moore modularity
// metric used by every clustering stage to score and incrementally update
// a candidate partition:
//
//	Q = Σ_c [ (Σ_in,c / W) - (Σ_tot,c / W)^2 ]
//
// where Σ_in,c is the weighted number of edge endpoints internal to
// cluster c, Σ_tot,c is the weighted number of edge endpoints incident to
// c (internal or not), and W is twice the total edge weight of the graph
// (self-loops counted once, exactly as computeSumOfAllEdgeWeights does).
//
// Metric maintains Σ_in,c and Σ_tot,c incrementally as nodes move between
// clusters via InsertNode/RemoveNode, so a single node move costs O(deg(v))
// rather than O(n+m).
package modularity

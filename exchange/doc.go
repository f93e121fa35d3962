// Package exchange carries Individuals between islands, replacing the
// original engine's MPI point-to-point exchange
// (parallel_mh_clustering/exchange/exchanger_clustering.h) with Go
// channels and an explicit Transport interface.
//
// Only exchanger_clustering.h was retrieved from the original source tree
// (its .cpp body was not present in the corpus), so this package's
// push/drain policy is inferred from the header's member list rather than
// ported line-for-line: m_allready_send_to becomes Bus's per-peer
// alreadyPushed flags (reset whenever the island's best objective
// improves, so a new best gets re-announced to everyone), and
// m_max_num_pushes/m_cur_num_pushes becomes Bus's per-round push budget.
package exchange

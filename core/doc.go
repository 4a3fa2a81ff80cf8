// Package core provides the read-only graph accessor shared by every algorithm
// in graphalgo, plus the Builder used to assemble it.
//
// The accessor G = (V,E) is a compressed sparse row (CSR) layout over dense node
// ids in [0, NodeCount()):
//
//   - offsets[n]..offsets[n+1] delimit the targets of node n
//   - targets are stored in relationship insertion order (deterministic traversal)
//   - external string ids map to dense ids through an ordered IDMap (B-tree)
//
// Orientation is fixed when the graph is built:
//
//	– Natural    stores source→target as given
//	– Reverse    stores target→source (incoming view)
//	– Undirected stores both directions (a self-loop is stored once)
//
// Algorithms never look at the orientation: they always read the relationships
// of a source node and aggregate over its targets. Degree(n) is the number of
// stored relationships of n in the configured orientation.
//
// Concurrency:
//
//	A built *CSR is immutable and safe for concurrent readers. Algorithms still
//	acquire one ConcurrentCopy() per worker task: a copy shares the immutable
//	arrays but owns its traversal state (closed flag, traversed counter), and is
//	released with Close() when the task ends.
//
// Builder options (GraphOption):
//
//	– WithOrientation(o)   Natural (default), Reverse or Undirected
//	– WithLoops()          permit source == target
//	– WithMultiEdges()     permit parallel relationships between the same endpoints
//
// Errors:
//
//	ErrEmptyNodeID            – zero-length external node id
//	ErrNodeOutOfRange         – dense id outside [0, NodeCount())
//	ErrLoopNotAllowed         – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed    – parallel relationship when multi-edges are disabled
//	ErrClosed                 – traversal through a released concurrent copy
//	ErrUnknownOrientation     – orientation value outside the defined set
package core

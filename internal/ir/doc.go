// Package ir holds the in-memory dataflow graph that the compiler passes
// operate on.
//
// A Graph owns an ordered list of operator Nodes connected by Values. A
// Value is produced by at most one node and consumed by any number of
// nodes, in the order the consumers were wired. Node order within the
// graph is a total order, so passes can ask "does this node appear before
// that one" in O(1).
//
// The graph is built once from a config.ModelSpec and then mutated only by
// passes that splice new nodes in (see the scheduler's boundary
// materialization). It is not safe for concurrent mutation.
package ir

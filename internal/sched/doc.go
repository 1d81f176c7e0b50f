// Package sched implements the node scheduling pass: it assigns every
// operator node in a dataflow graph to an execution resource of the
// target and produces the dispatch order.
//
// The pass runs in three stages:
//
//  1. Boundary materialization. Every graph input gains an explicit Load
//     node spliced in front of its earliest consumer, and every graph
//     output gains an explicit Store node, so boundary values behave like
//     any other node output during scheduling.
//  2. Dependency analysis. A degree map counts, per node, how many of its
//     producer dependencies are still unscheduled. Degree-zero nodes seed
//     the worklist in graph declaration order.
//  3. List scheduling. Each round a greedy dispatcher walks the worklist
//     in order and seats every candidate whose resource class has a free
//     unit; a node unblocks its dependents the moment it is dispatched.
//     Between rounds a virtual clock advances to the next release event,
//     freeing units whose occupants have run out their cycle cost.
//
// The pass is single-threaded and runs to completion in one call.
package sched

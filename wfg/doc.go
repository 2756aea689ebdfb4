// Package wfg derives the Wait-For Graph from a rag.Graph store.
//
// What:
//
//   - Graph is a directed process-to-process graph: edge p1→p2 exists iff
//     some resource r has a request edge from p1 and is currently held by
//     p2. Multiple witness resources collapse into one edge.
//   - Build is a pure function of the store's current request/allocation
//     state; it never mutates the store, and the result is never cached —
//     detection rebuilds it on every run so the WFG can never drift from
//     the ground truth.
//
// Why:
//
//   - Deadlock is precisely a cycle in this graph; deriving it is the one
//     reduction that turns the bipartite RAG into a plain directed graph
//     any cycle search can consume.
//
// Determinism:
//
//   - Out(p) returns neighbors in ascending index order, which fixes the
//     tie-break for DFS and makes cycle discovery reproducible.
//
// Complexity:
//
//   - Build: O(P + E_req + W log W) where E_req is the number of request
//     edges and W the number of derived wait edges.
//   - Out, Order: O(1). HasEdge: O(log d) for out-degree d.
package wfg

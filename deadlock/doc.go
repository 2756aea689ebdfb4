// Package deadlock detects deadlocks in a rag.Graph store by finding the
// first cycle in the derived Wait-For Graph, and explains that cycle in
// terms of the resources causing each wait.
//
// Detect rebuilds the Wait-For Graph from the store, then runs a
// depth-first search with three-color marking (White=unvisited, Gray=on
// the recursion stack, Black=settled). Roots are tried in ascending
// process-index order and out-edges are explored in ascending target
// order, so the first cycle discovered is deterministic and reproducible.
// A Gray→Gray back-edge closes a cycle; the cycle is the recursion-stack
// segment from the back-edge target to the top. The search short-circuits
// there: only the first cycle is ever reported, by contract.
//
// The explainer then walks the cycle's consecutive pairs (wrapping at the
// end) and names, for each wait p→p2, the lowest-index resource r with a
// request edge from p and p2 as holder. A pair with no qualifying resource
// is reported with NoResource rather than failing the detection.
//
// A self-loop — a process requesting a resource it itself holds — is a
// valid one-node cycle and is detected.
//
// Complexity:
//
//   - Time:   O(P + E_req + W log W) to build the WFG, O(P + W) to search.
//   - Memory: O(P) for state and the recursion stack.
//
// Detection is idempotent: two calls without intervening store mutation
// yield identical reports.
package deadlock

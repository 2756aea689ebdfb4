// Package raglock models Resource Allocation Graphs and detects deadlocks
// by finding cycles in the derived Wait-For Graph.
//
// 🚀 What is raglock?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• rag/      — the Resource Allocation Graph store: processes, resources,
//		              request edges (P→R) and single-holder allocation edges (R→P)
//		• wfg/      — the Wait-For Graph builder: derives the P→P waiting relation
//		              from the current request/allocation state
//		• deadlock/ — first-cycle DFS detection plus a cycle explainer that maps
//		              every process-to-process wait back to a witness resource
//
// ✨ Why choose raglock?
//
//   - Deterministic by construction – dense integer indices, ascending
//     traversal order, reproducible cycle reports
//   - Rock-solid guarantees – all-or-nothing mutations, sentinel errors,
//     structural single-holder invariant
//   - Pure Go – no cgo, no hidden deps
//
// A deadlock is a cycle in the Wait-For Graph: edge p1→p2 exists iff some
// resource r is requested by p1 and currently held by p2. Detection rebuilds
// the WFG from the store on every run, searches it depth-first, stops at the
// first cycle, and explains each link of that cycle with the lowest-index
// resource justifying it.
//
// Quick ASCII example:
//
//	P0 ──request──▶ R0 ──held by──▶ P1
//	P1 ──request──▶ R1 ──held by──▶ P0
//
//	collapses to the Wait-For cycle P0 → P1 → P0.
//
// The store is not safe for concurrent use; callers that mutate from
// multiple goroutines must fence a whole mutate-then-detect pass with their
// own lock.
//
//	go get github.com/lockgraph/raglock
package raglock

// Package wfg: Wait-For Graph type and builder.
package wfg

import (
	"sort"

	"github.com/lockgraph/raglock/rag"
)

// Graph is a derived, immutable Wait-For Graph over process indices
// 0..Order()-1. Construct with Build; the zero value is an empty graph.
type Graph struct {
	// out[p] lists p's wait targets in ascending index order, deduplicated.
	out [][]rag.ProcessID
}

// Build derives the Wait-For Graph from the store's current state:
// for every request edge (p, r) whose resource r has a holder p2, the wait
// edge p→p2 is set. A nil store yields an empty graph.
//
// Pure with respect to the store: no mutation, no retained references.
// Complexity: O(P + E_req + W log W).
func Build(store *rag.Graph) *Graph {
	// 1) Empty input, empty output
	if store == nil || store.NumProcesses() == 0 {
		return &Graph{}
	}

	n := store.NumProcesses()
	g := &Graph{out: make([][]rag.ProcessID, n)}

	// 2) Derive wait edges per process, deduplicating multiple witnesses
	//    for the same target through a scratch set.
	targets := make(map[rag.ProcessID]struct{})
	for p := rag.ProcessID(0); int(p) < n; p++ {
		clear(targets)
		for _, r := range store.Requests(p) {
			if holder := store.Holder(r); holder != rag.NoProcess {
				targets[holder] = struct{}{}
			}
		}
		if len(targets) == 0 {
			continue
		}

		// 3) Fix the deterministic neighbor order: ascending indices
		row := make([]rag.ProcessID, 0, len(targets))
		for t := range targets {
			row = append(row, t)
		}
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		g.out[p] = row
	}

	return g
}

// Order reports the number of process nodes.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.out) }

// Out returns p's wait targets in ascending index order. The returned
// slice is shared and must not be modified; unknown p yields nil.
// Complexity: O(1).
func (g *Graph) Out(p rag.ProcessID) []rag.ProcessID {
	if p < 0 || int(p) >= len(g.out) {
		return nil
	}

	return g.out[p]
}

// HasEdge reports whether the wait edge u→v is present.
// Complexity: O(log d) for out-degree d.
func (g *Graph) HasEdge(u, v rag.ProcessID) bool {
	row := g.Out(u)
	i := sort.Search(len(row), func(i int) bool { return row[i] >= v })

	return i < len(row) && row[i] == v
}

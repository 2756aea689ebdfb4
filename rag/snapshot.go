// Package rag: read-only snapshot view.
//
// Snapshot is the display surface consumed by outer layers (textual graph
// dumps, menus). It deep-copies on read so no caller can reach back into
// live store state, and it emits every list in ascending index order so
// renderings are reproducible.
package rag

// RequestEdge is one Process→Resource waiting relation in a Snapshot.
type RequestEdge struct {
	Process  ProcessID
	Resource ResourceID
}

// AllocationEdge is one Resource→Process holding relation in a Snapshot.
type AllocationEdge struct {
	Resource ResourceID
	Process  ProcessID
}

// Snapshot is a deep-copied, immutable view of the whole store.
//
// Processes[i] and Resources[j] are the display names of process i and
// resource j. Requests is ordered ascending by (Process, Resource);
// Allocations is ordered ascending by Resource (at most one entry per
// resource).
type Snapshot struct {
	Processes   []string
	Resources   []string
	Requests    []RequestEdge
	Allocations []AllocationEdge
}

// Snapshot captures the current store state.
// Complexity: O(P·log R + R + E) — request edges are emitted per process in
// ascending resource order.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		Processes: append([]string(nil), g.procNames...),
		Resources: append([]string(nil), g.resNames...),
	}

	// Request edges, ascending by (process, resource)
	for p := ProcessID(0); int(p) < len(g.procNames); p++ {
		for _, r := range g.Requests(p) {
			snap.Requests = append(snap.Requests, RequestEdge{Process: p, Resource: r})
		}
	}

	// Allocation edges, ascending by resource; free resources are skipped
	for r := ResourceID(0); int(r) < len(g.holder); r++ {
		if p := g.holder[r]; p != NoProcess {
			snap.Allocations = append(snap.Allocations, AllocationEdge{Resource: r, Process: p})
		}
	}

	return snap
}

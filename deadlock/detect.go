// Package deadlock: first-cycle DFS over the Wait-For Graph.
package deadlock

import (
	"github.com/lockgraph/raglock/rag"
	"github.com/lockgraph/raglock/wfg"
)

// detector encapsulates the state of one detection pass.
type detector struct {
	graph *wfg.Graph      // the Wait-For Graph being searched
	state []int           // visitation state per node: White, Gray, Black
	stack []rag.ProcessID // current recursion path, for cycle reconstruction
}

// Detect rebuilds the Wait-For Graph from the store's current state and
// searches it for a cycle, stopping at the first one found.
//
// Roots are tried in ascending process-index order; out-edges are explored
// in ascending target order; roots already settled by an earlier traversal
// are skipped. A nil store reports no deadlock.
// Complexity: O(P + E_req + W log W) build + O(P + W) search.
func Detect(store *rag.Graph) Report {
	// 1) Derive the Wait-For Graph; detection never reads the raw store
	//    edges directly, so the report is a pure function of this build.
	graph := wfg.Build(store)

	// 2) Initialize traversal state
	d := &detector{
		graph: graph,
		state: make([]int, graph.Order()),
		stack: make([]rag.ProcessID, 0, graph.Order()),
	}

	// 3) Launch DFS from each unvisited node, ascending
	for p := rag.ProcessID(0); int(p) < graph.Order(); p++ {
		if d.state[p] != White {
			continue
		}
		if cycle, found := d.visit(p); found {
			// 4) First cycle wins: explain it and stop
			return Report{
				Deadlocked: true,
				Cycle:      cycle,
				Links:      explain(store, cycle),
			}
		}
	}

	return Report{}
}

// visit runs DFS from node u. On a Gray→Gray back-edge it reconstructs the
// cycle from the recursion stack and reports found=true; the caller
// propagates immediately without exploring further neighbors.
func (d *detector) visit(u rag.ProcessID) (cycle []rag.ProcessID, found bool) {
	// 1) Mark u Gray and push it onto the recursion path
	d.state[u] = Gray
	d.stack = append(d.stack, u)

	// 2) Explore out-edges in ascending target order
	for _, v := range d.graph.Out(u) {
		switch d.state[v] {
		case White:
			// 2a) Unvisited: recurse; short-circuit on a found cycle
			if cycle, found = d.visit(v); found {
				return cycle, true
			}
		case Gray:
			// 2b) Back-edge into the recursion path: the cycle is the
			//     stack segment from v's position to the top. A self-loop
			//     (v == u) yields a one-element segment.
			idx := indexOf(d.stack, v)
			cycle = append([]rag.ProcessID(nil), d.stack[idx:]...)

			return cycle, true
		}
	}

	// 3) Backtrack: u is settled, pop it from the recursion path
	d.stack = d.stack[:len(d.stack)-1]
	d.state[u] = Black

	return nil, false
}

// indexOf returns the first index of val in s. val is always present when
// called on a Gray back-edge target.
func indexOf(s []rag.ProcessID, val rag.ProcessID) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Package deadlock defines the detection states and the report types.
package deadlock

import (
	"fmt"
	"strings"

	"github.com/lockgraph/raglock/rag"
)

// VertexState represents the DFS visitation state of a process node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants are settled.
)

// Link is one process-to-process wait inside a detected cycle, together
// with the witness resource justifying it. Resource is rag.NoResource when
// no witness exists (a store inconsistency the explainer tolerates).
type Link struct {
	From     rag.ProcessID
	To       rag.ProcessID
	Resource rag.ResourceID
}

// Report is the outcome of one detection pass.
//
// When Deadlocked, Cycle holds the processes of the first discovered cycle
// in encounter order (implicitly closing back to Cycle[0]), and Links holds
// one explained wait per consecutive cyclic pair, so len(Links) ==
// len(Cycle). A one-element cycle is a self-wait. When not Deadlocked,
// Cycle and Links are nil.
type Report struct {
	Deadlocked bool
	Cycle      []rag.ProcessID
	Links      []Link
}

// String renders the cycle trace in P<i>/R<j> notation, e.g.
//
//	P0 -(R0)-> P1 -(R1)-> P0
//
// An unwitnessed link renders as -(?)->. The empty string means no
// deadlock.
func (rep Report) String() string {
	if !rep.Deadlocked {
		return ""
	}

	var b strings.Builder
	for _, l := range rep.Links {
		if l.Resource == rag.NoResource {
			fmt.Fprintf(&b, "P%d -(?)-> ", l.From)
			continue
		}
		fmt.Fprintf(&b, "P%d -(R%d)-> ", l.From, l.Resource)
	}
	// Close the loop on the first process
	fmt.Fprintf(&b, "P%d", rep.Cycle[0])

	return b.String()
}

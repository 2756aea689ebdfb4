// Package deadlock: cycle explanation against the originating store.
package deadlock

import "github.com/lockgraph/raglock/rag"

// explain maps each consecutive cyclic pair of the detected cycle back to
// a witness resource. The witness for the wait from→to is the lowest-index
// resource requested by from and held by to; scanning Requests(from) in
// ascending order yields exactly that. A pair with no witness — possible
// only if the store mutated mid-pass, which the concurrency contract
// forbids — is reported with rag.NoResource instead of aborting.
// Complexity: O(len(cycle) · k) for k pending requests per process.
func explain(store *rag.Graph, cycle []rag.ProcessID) []Link {
	links := make([]Link, 0, len(cycle))
	for i, from := range cycle {
		// The last pair wraps back to the first process
		to := cycle[(i+1)%len(cycle)]
		links = append(links, Link{From: from, To: to, Resource: witness(store, from, to)})
	}

	return links
}

// witness returns the lowest-index resource r with request(from, r) and
// holder(r) == to, or rag.NoResource when none qualifies.
func witness(store *rag.Graph, from, to rag.ProcessID) rag.ResourceID {
	for _, r := range store.Requests(from) {
		if store.Holder(r) == to {
			return r
		}
	}

	return rag.NoResource
}

// Package rag: Graph store mutations and queries.
//
// Every mutation validates all of its inputs before touching state, so a
// returned error guarantees the store is exactly as it was before the call.
package rag

import (
	"fmt"
	"sort"
)

// AddProcess registers a new process under the next dense index and
// returns that index.
// Returns ErrEmptyName, ErrDuplicateName, or ErrCapacityExceeded.
// Complexity: O(1) amortized.
func (g *Graph) AddProcess(name string) (ProcessID, error) {
	// 1) Validate the name before any allocation
	if name == "" {
		return NoProcess, ErrEmptyName
	}
	if _, exists := g.procIndex[name]; exists {
		return NoProcess, fmt.Errorf("rag: AddProcess(%q): %w", name, ErrDuplicateName)
	}
	// 2) Enforce the opt-in capacity bound
	if g.maxProcs > Unbounded && len(g.procNames) >= g.maxProcs {
		return NoProcess, fmt.Errorf("rag: AddProcess(%q): %w", name, ErrCapacityExceeded)
	}

	// 3) Allocate the next dense index and register both directions
	id := ProcessID(len(g.procNames))
	g.procNames = append(g.procNames, name)
	g.procIndex[name] = id

	return id, nil
}

// AddResource registers a new resource under the next dense index and
// returns that index. Symmetric to AddProcess.
// Returns ErrEmptyName, ErrDuplicateName, or ErrCapacityExceeded.
// Complexity: O(1) amortized.
func (g *Graph) AddResource(name string) (ResourceID, error) {
	if name == "" {
		return NoResource, ErrEmptyName
	}
	if _, exists := g.resIndex[name]; exists {
		return NoResource, fmt.Errorf("rag: AddResource(%q): %w", name, ErrDuplicateName)
	}
	if g.maxRes > Unbounded && len(g.resNames) >= g.maxRes {
		return NoResource, fmt.Errorf("rag: AddResource(%q): %w", name, ErrCapacityExceeded)
	}

	id := ResourceID(len(g.resNames))
	g.resNames = append(g.resNames, name)
	g.resIndex[name] = id
	// Fresh resources start free
	g.holder = append(g.holder, NoProcess)

	return id, nil
}

// AddRequest records that process p is waiting to acquire resource r.
// Returns ErrInvalidIndex for an unknown p or r, ErrEdgeExists if the
// request is already recorded.
// Complexity: O(1).
func (g *Graph) AddRequest(p ProcessID, r ResourceID) error {
	// 1) Validate both endpoints
	if err := g.checkProcess("AddRequest", p); err != nil {
		return err
	}
	if err := g.checkResource("AddRequest", r); err != nil {
		return err
	}
	// 2) Reject a duplicate edge
	if _, exists := g.requests[p][r]; exists {
		return fmt.Errorf("rag: AddRequest(%d, %d): %w", p, r, ErrEdgeExists)
	}

	// 3) Set the bit (lazy inner set)
	if g.requests[p] == nil {
		g.requests[p] = make(map[ResourceID]struct{})
	}
	g.requests[p][r] = struct{}{}

	return nil
}

// AddAllocation records that resource r is held by process p.
//
// If r is currently held by another process, that holder's edge is revoked
// first and reported through prev; revocation is a deliberate side effect,
// not an error. prev is NoProcess when r was free.
// Returns ErrInvalidIndex for an unknown r or p, ErrEdgeExists if p
// already holds r (prev is NoProcess in every error case).
// Complexity: O(1).
func (g *Graph) AddAllocation(r ResourceID, p ProcessID) (prev ProcessID, err error) {
	// 1) Validate both endpoints
	if err = g.checkResource("AddAllocation", r); err != nil {
		return NoProcess, err
	}
	if err = g.checkProcess("AddAllocation", p); err != nil {
		return NoProcess, err
	}
	// 2) Same pair twice is a duplicate edge, not a revocation
	if g.holder[r] == p {
		return NoProcess, fmt.Errorf("rag: AddAllocation(%d, %d): %w", r, p, ErrEdgeExists)
	}

	// 3) Revoke the prior holder (if any) and install the new one.
	//    The holder slice admits one entry per resource, so the
	//    single-holder invariant cannot be violated here.
	prev = g.holder[r]
	g.holder[r] = p

	return prev, nil
}

// RemoveRequest clears the request edge p→r.
// Returns ErrInvalidIndex for an unknown p or r, ErrEdgeNotFound if the
// edge is absent.
// Complexity: O(1).
func (g *Graph) RemoveRequest(p ProcessID, r ResourceID) error {
	if err := g.checkProcess("RemoveRequest", p); err != nil {
		return err
	}
	if err := g.checkResource("RemoveRequest", r); err != nil {
		return err
	}
	if _, exists := g.requests[p][r]; !exists {
		return fmt.Errorf("rag: RemoveRequest(%d, %d): %w", p, r, ErrEdgeNotFound)
	}

	delete(g.requests[p], r)

	return nil
}

// RemoveAllocation clears the allocation edge r→p.
// Returns ErrInvalidIndex for an unknown r or p, ErrEdgeNotFound if p is
// not the current holder of r.
// Complexity: O(1).
func (g *Graph) RemoveAllocation(r ResourceID, p ProcessID) error {
	if err := g.checkResource("RemoveAllocation", r); err != nil {
		return err
	}
	if err := g.checkProcess("RemoveAllocation", p); err != nil {
		return err
	}
	if g.holder[r] != p {
		return fmt.Errorf("rag: RemoveAllocation(%d, %d): %w", r, p, ErrEdgeNotFound)
	}

	g.holder[r] = NoProcess

	return nil
}

// Reset clears all processes, resources, and edges; index assignment
// restarts at 0.
// Complexity: O(1) (old storage is released to the collector).
func (g *Graph) Reset() {
	g.procNames = nil
	g.resNames = nil
	g.holder = nil
	g.procIndex = make(map[string]ProcessID)
	g.resIndex = make(map[string]ResourceID)
	g.requests = make(map[ProcessID]map[ResourceID]struct{})
}

// NumProcesses reports how many processes exist.
// Complexity: O(1).
func (g *Graph) NumProcesses() int { return len(g.procNames) }

// NumResources reports how many resources exist.
// Complexity: O(1).
func (g *Graph) NumResources() int { return len(g.resNames) }

// ProcessName returns the display name of process p.
// Returns ErrInvalidIndex for an unknown index.
// Complexity: O(1).
func (g *Graph) ProcessName(p ProcessID) (string, error) {
	if err := g.checkProcess("ProcessName", p); err != nil {
		return "", err
	}

	return g.procNames[p], nil
}

// ResourceName returns the display name of resource r.
// Returns ErrInvalidIndex for an unknown index.
// Complexity: O(1).
func (g *Graph) ResourceName(r ResourceID) (string, error) {
	if err := g.checkResource("ResourceName", r); err != nil {
		return "", err
	}

	return g.resNames[r], nil
}

// HasRequest reports whether the request edge p→r is present.
// Unknown indices are simply absent.
// Complexity: O(1).
func (g *Graph) HasRequest(p ProcessID, r ResourceID) bool {
	_, exists := g.requests[p][r]

	return exists
}

// Requests returns the resources process p is waiting for, in ascending
// index order. The slice is freshly allocated; unknown p yields nil.
// Complexity: O(k log k) for k pending requests.
func (g *Graph) Requests(p ProcessID) []ResourceID {
	pending := g.requests[p]
	if len(pending) == 0 {
		return nil
	}

	out := make([]ResourceID, 0, len(pending))
	for r := range pending {
		out = append(out, r)
	}
	// Ascending order is the stable enumeration surface the builder and
	// the explainer rely on for reproducible output.
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Holder returns the current holder of resource r, or NoProcess when r is
// free or unknown.
// Complexity: O(1).
func (g *Graph) Holder(r ResourceID) ProcessID {
	if r < 0 || int(r) >= len(g.holder) {
		return NoProcess
	}

	return g.holder[r]
}

// checkProcess validates a process index, wrapping ErrInvalidIndex with
// the operation and the offending index.
func (g *Graph) checkProcess(op string, p ProcessID) error {
	if p < 0 || int(p) >= len(g.procNames) {
		return fmt.Errorf("rag: %s: process %d: %w", op, p, ErrInvalidIndex)
	}

	return nil
}

// checkResource validates a resource index, wrapping ErrInvalidIndex with
// the operation and the offending index.
func (g *Graph) checkResource(op string, r ResourceID) error {
	if r < 0 || int(r) >= len(g.resNames) {
		return fmt.Errorf("rag: %s: resource %d: %w", op, r, ErrInvalidIndex)
	}

	return nil
}

// Package rag declares the Graph store type, its identifier types,
// sentinel errors, and construction options.
//
// This file contains no algorithms; behavior lives in rag.go and
// snapshot.go.
package rag

import "errors"

// Sentinel errors for store operations.
var (
	// ErrEmptyName indicates a process or resource name was the empty string.
	ErrEmptyName = errors.New("rag: name is empty")

	// ErrDuplicateName indicates the name is already used within its kind.
	ErrDuplicateName = errors.New("rag: name already in use")

	// ErrCapacityExceeded indicates an opt-in capacity bound was reached.
	ErrCapacityExceeded = errors.New("rag: capacity exceeded")

	// ErrInvalidIndex indicates a process or resource index out of range.
	ErrInvalidIndex = errors.New("rag: index out of range")

	// ErrEdgeExists indicates an edge-add found the edge already present.
	ErrEdgeExists = errors.New("rag: edge already exists")

	// ErrEdgeNotFound indicates an edge-remove found no such edge.
	ErrEdgeNotFound = errors.New("rag: edge not found")
)

// ProcessID identifies a process by its dense 0-based creation index.
type ProcessID int

// ResourceID identifies a resource by its dense 0-based creation index.
type ResourceID int

const (
	// NoProcess is the absent-process sentinel (free resource, no revocation).
	NoProcess ProcessID = -1

	// NoResource is the absent-resource sentinel (unwitnessed wait link).
	NoResource ResourceID = -1
)

// Unbounded disables a capacity bound (the default for both kinds).
const Unbounded = 0

// Option configures a Graph before first use.
type Option func(*Graph)

// WithProcessCapacity bounds the number of processes; AddProcess returns
// ErrCapacityExceeded once n processes exist. n <= 0 means unbounded.
func WithProcessCapacity(n int) Option {
	return func(g *Graph) { g.maxProcs = n }
}

// WithResourceCapacity bounds the number of resources; AddResource returns
// ErrCapacityExceeded once n resources exist. n <= 0 means unbounded.
func WithResourceCapacity(n int) Option {
	return func(g *Graph) { g.maxRes = n }
}

// Graph is the in-memory Resource Allocation Graph store.
//
// Processes and resources are arenas indexed by their dense IDs; request
// edges live in a nested set keyed by process then resource; allocation
// edges live in a holder slice indexed by resource, which makes the
// at-most-one-holder invariant structural.
//
// The zero value is not usable; construct with NewGraph.
// Not safe for concurrent use (see package documentation).
type Graph struct {
	// Configuration (immutable after NewGraph)
	maxProcs int // process capacity; Unbounded disables the check
	maxRes   int // resource capacity; Unbounded disables the check

	// Storage
	procNames []string                           // process index → display name
	resNames  []string                           // resource index → display name
	procIndex map[string]ProcessID               // display name → process index
	resIndex  map[string]ResourceID              // display name → resource index
	requests  map[ProcessID]map[ResourceID]struct{} // request edges P→R
	holder    []ProcessID                        // resource index → holder, NoProcess when free
}

// NewGraph creates an empty Graph with the given options.
// By default both capacities are unbounded.
// Complexity: O(len(opts)).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		procIndex: make(map[string]ProcessID),
		resIndex:  make(map[string]ResourceID),
		requests:  make(map[ProcessID]map[ResourceID]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

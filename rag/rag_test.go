package rag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockgraph/raglock/rag"
)

// TestAddProcess_DenseAscendingIndices verifies that indices are 0-based,
// dense, and strictly increasing across a sequence of adds.
func TestAddProcess_DenseAscendingIndices(t *testing.T) {
	g := rag.NewGraph()

	for i, name := range []string{"editor", "compiler", "linker"} {
		id, err := g.AddProcess(name)
		require.NoError(t, err)
		assert.Equal(t, rag.ProcessID(i), id) // next dense index, no gaps
	}
	assert.Equal(t, 3, g.NumProcesses())
}

// TestAddResource_DenseAscendingIndices mirrors the process case for resources.
func TestAddResource_DenseAscendingIndices(t *testing.T) {
	g := rag.NewGraph()

	for i, name := range []string{"printer", "scanner"} {
		id, err := g.AddResource(name)
		require.NoError(t, err)
		assert.Equal(t, rag.ResourceID(i), id)
	}
	assert.Equal(t, 2, g.NumResources())
}

// TestAddProcess_DuplicateName ensures a reused name is rejected and the
// store is untouched by the failed call.
func TestAddProcess_DuplicateName(t *testing.T) {
	g := rag.NewGraph()
	_, err := g.AddProcess("editor")
	require.NoError(t, err)

	_, err = g.AddProcess("editor")
	assert.ErrorIs(t, err, rag.ErrDuplicateName)
	assert.Equal(t, 1, g.NumProcesses()) // all-or-nothing: nothing was added
}

// TestNames_UniquePerKind verifies the same name may be used by a process
// and a resource simultaneously (uniqueness holds within a kind only).
func TestNames_UniquePerKind(t *testing.T) {
	g := rag.NewGraph()
	_, err := g.AddProcess("spool")
	require.NoError(t, err)

	_, err = g.AddResource("spool")
	assert.NoError(t, err) // different kind, different namespace
}

// TestAdd_EmptyName covers the non-empty-name invariant for both kinds.
func TestAdd_EmptyName(t *testing.T) {
	g := rag.NewGraph()

	_, err := g.AddProcess("")
	assert.ErrorIs(t, err, rag.ErrEmptyName)
	_, err = g.AddResource("")
	assert.ErrorIs(t, err, rag.ErrEmptyName)
}

// TestAddProcess_CapacityExceeded exercises the opt-in process bound.
func TestAddProcess_CapacityExceeded(t *testing.T) {
	g := rag.NewGraph(rag.WithProcessCapacity(2))

	_, err := g.AddProcess("a")
	require.NoError(t, err)
	_, err = g.AddProcess("b")
	require.NoError(t, err)

	_, err = g.AddProcess("c")
	assert.ErrorIs(t, err, rag.ErrCapacityExceeded)
	assert.Equal(t, 2, g.NumProcesses())
}

// TestAddResource_CapacityExceeded exercises the opt-in resource bound.
func TestAddResource_CapacityExceeded(t *testing.T) {
	g := rag.NewGraph(rag.WithResourceCapacity(1))

	_, err := g.AddResource("tape")
	require.NoError(t, err)

	_, err = g.AddResource("disk")
	assert.ErrorIs(t, err, rag.ErrCapacityExceeded)
	assert.Equal(t, 1, g.NumResources())
}

// TestAddRequest covers the set/duplicate/invalid-index cases.
func TestAddRequest(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r, _ := g.AddResource("printer")

	require.NoError(t, g.AddRequest(p, r))
	assert.True(t, g.HasRequest(p, r))

	// Setting the same bit twice signals ErrEdgeExists
	assert.ErrorIs(t, g.AddRequest(p, r), rag.ErrEdgeExists)

	// Unknown endpoints are rejected before any mutation
	assert.ErrorIs(t, g.AddRequest(p+1, r), rag.ErrInvalidIndex)
	assert.ErrorIs(t, g.AddRequest(p, r+1), rag.ErrInvalidIndex)
}

// TestAddAllocation_FreeResource verifies a fresh grant reports no revocation.
func TestAddAllocation_FreeResource(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r, _ := g.AddResource("printer")

	prev, err := g.AddAllocation(r, p)
	require.NoError(t, err)
	assert.Equal(t, rag.NoProcess, prev) // resource was free
	assert.Equal(t, p, g.Holder(r))
}

// TestAddAllocation_RevokesPriorHolder verifies the override semantics:
// the old edge is cleared, the new one set, exactly one holder remains,
// and the revocation is surfaced through the return value.
func TestAddAllocation_RevokesPriorHolder(t *testing.T) {
	g := rag.NewGraph()
	p1, _ := g.AddProcess("editor")
	p2, _ := g.AddProcess("compiler")
	r, _ := g.AddResource("printer")

	_, err := g.AddAllocation(r, p1)
	require.NoError(t, err)

	prev, err := g.AddAllocation(r, p2)
	require.NoError(t, err)          // override is a side effect, not an error
	assert.Equal(t, p1, prev)        // the revoked holder is reported
	assert.Equal(t, p2, g.Holder(r)) // exactly one holder remains

	snap := g.Snapshot()
	assert.Equal(t,
		[]rag.AllocationEdge{{Resource: r, Process: p2}},
		snap.Allocations,
	)
}

// TestAddAllocation_SamePair ensures re-granting to the current holder is a
// duplicate edge, not a revocation.
func TestAddAllocation_SamePair(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r, _ := g.AddResource("printer")
	_, _ = g.AddAllocation(r, p)

	prev, err := g.AddAllocation(r, p)
	assert.ErrorIs(t, err, rag.ErrEdgeExists)
	assert.Equal(t, rag.NoProcess, prev)
	assert.Equal(t, p, g.Holder(r)) // holder untouched
}

// TestRemoveRequest covers present/absent/invalid cases.
func TestRemoveRequest(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r, _ := g.AddResource("printer")
	require.NoError(t, g.AddRequest(p, r))

	assert.NoError(t, g.RemoveRequest(p, r))
	assert.False(t, g.HasRequest(p, r))

	assert.ErrorIs(t, g.RemoveRequest(p, r), rag.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveRequest(p+1, r), rag.ErrInvalidIndex)
}

// TestRemoveAllocation covers holder/non-holder/invalid cases.
func TestRemoveAllocation(t *testing.T) {
	g := rag.NewGraph()
	p1, _ := g.AddProcess("editor")
	p2, _ := g.AddProcess("compiler")
	r, _ := g.AddResource("printer")
	_, _ = g.AddAllocation(r, p1)

	// p2 is not the holder: removal must not clear p1's edge
	assert.ErrorIs(t, g.RemoveAllocation(r, p2), rag.ErrEdgeNotFound)
	assert.Equal(t, p1, g.Holder(r))

	assert.NoError(t, g.RemoveAllocation(r, p1))
	assert.Equal(t, rag.NoProcess, g.Holder(r))
}

// TestRequests_AscendingOrder verifies the stable enumeration surface.
func TestRequests_AscendingOrder(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r0, _ := g.AddResource("printer")
	r1, _ := g.AddResource("scanner")
	r2, _ := g.AddResource("plotter")

	// Insert out of order; enumeration must still ascend
	require.NoError(t, g.AddRequest(p, r2))
	require.NoError(t, g.AddRequest(p, r0))
	require.NoError(t, g.AddRequest(p, r1))

	assert.Equal(t, []rag.ResourceID{r0, r1, r2}, g.Requests(p))
}

// TestReset verifies the store returns to the empty state and index
// assignment restarts at 0.
func TestReset(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r, _ := g.AddResource("printer")
	_ = g.AddRequest(p, r)
	_, _ = g.AddAllocation(r, p)

	g.Reset()

	assert.Equal(t, 0, g.NumProcesses())
	assert.Equal(t, 0, g.NumResources())
	snap := g.Snapshot()
	assert.Empty(t, snap.Requests)
	assert.Empty(t, snap.Allocations)

	// Indices restart at 0 and previously used names are free again
	id, err := g.AddProcess("editor")
	require.NoError(t, err)
	assert.Equal(t, rag.ProcessID(0), id)
}

// TestSnapshot_OrderingAndIsolation verifies deterministic edge order and
// that the view is a deep copy.
func TestSnapshot_OrderingAndIsolation(t *testing.T) {
	g := rag.NewGraph()
	p0, _ := g.AddProcess("editor")
	p1, _ := g.AddProcess("compiler")
	r0, _ := g.AddResource("printer")
	r1, _ := g.AddResource("scanner")

	require.NoError(t, g.AddRequest(p1, r1))
	require.NoError(t, g.AddRequest(p0, r1))
	require.NoError(t, g.AddRequest(p0, r0))
	_, _ = g.AddAllocation(r1, p0)
	_, _ = g.AddAllocation(r0, p1)

	snap := g.Snapshot()
	assert.Equal(t, []string{"editor", "compiler"}, snap.Processes)
	assert.Equal(t, []string{"printer", "scanner"}, snap.Resources)
	// Ascending by (process, resource)
	assert.Equal(t, []rag.RequestEdge{
		{Process: p0, Resource: r0},
		{Process: p0, Resource: r1},
		{Process: p1, Resource: r1},
	}, snap.Requests)
	// Ascending by resource
	assert.Equal(t, []rag.AllocationEdge{
		{Resource: r0, Process: p1},
		{Resource: r1, Process: p0},
	}, snap.Allocations)

	// Mutating the view must not reach live store state
	snap.Processes[0] = "mutated"
	name, err := g.ProcessName(p0)
	require.NoError(t, err)
	assert.Equal(t, "editor", name)
}

// TestNameLookups covers the name getters and their invalid-index paths.
func TestNameLookups(t *testing.T) {
	g := rag.NewGraph()
	p, _ := g.AddProcess("editor")
	r, _ := g.AddResource("printer")

	name, err := g.ProcessName(p)
	require.NoError(t, err)
	assert.Equal(t, "editor", name)

	name, err = g.ResourceName(r)
	require.NoError(t, err)
	assert.Equal(t, "printer", name)

	_, err = g.ProcessName(rag.NoProcess)
	assert.ErrorIs(t, err, rag.ErrInvalidIndex)
	_, err = g.ResourceName(r + 1)
	assert.ErrorIs(t, err, rag.ErrInvalidIndex)
}

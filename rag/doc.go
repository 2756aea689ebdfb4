// Package rag implements the Resource Allocation Graph store: the ground
// truth that the Wait-For builder and the deadlock detector derive from.
//
// What:
//
//   - Graph holds processes and resources under dense 0-based integer
//     indices, assigned at creation time and never reused.
//   - Request edges (Process→Resource) record that a process is waiting to
//     acquire a resource; any number of processes may request one resource.
//   - Allocation edges (Resource→Process) record the current holder; each
//     resource has at most one holder, enforced by representation (a holder
//     slice indexed by resource), never by runtime checks that could drift.
//   - Snapshot produces a deep-copied, deterministically ordered view for
//     display layers.
//
// Why:
//
//   - OS course material: model the classic single-instance RAG and observe
//     deadlocks form and dissolve edge by edge.
//   - Lock managers and schedulers: a minimal store to drive wait-for
//     analysis without committing to any transport or persistence.
//
// Behavior highlights:
//
//   - All mutations are all-or-nothing: validation happens before any state
//     changes, so a failed call never leaves a partial edit.
//   - Granting an allocation for an already-held resource revokes the prior
//     holder's edge and reports it through the return value; this is a
//     deliberate non-error side effect, not a failure.
//   - Names are unique per kind and non-empty; indices stay dense because
//     entities are only removed by Reset.
//
// Complexity:
//
//   - Entity/edge mutations: O(1) amortized.
//   - Requests(p): O(k log k) for k pending requests (sorted ascending).
//   - Snapshot: O(P + R + E) with edges emitted in ascending order.
//
// Errors:
//
//   - ErrEmptyName: entity name is the empty string.
//   - ErrDuplicateName: name already used within the same kind.
//   - ErrCapacityExceeded: opt-in capacity bound reached.
//   - ErrInvalidIndex: process or resource index out of range.
//   - ErrEdgeExists: edge-add found the edge already present.
//   - ErrEdgeNotFound: edge-remove found no such edge.
//
// Graph is not safe for concurrent use. A caller that mutates from several
// goroutines must fence an entire mutate-then-detect pass with its own lock;
// per-operation locking could not make that pass atomic anyway.
package rag

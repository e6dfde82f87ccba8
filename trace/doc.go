// Package trace walks the single closed loop of a pipe grid, resolves the
// entry tile's true shape, and measures distances along the loop.
//
// What:
//
//   - Trace: follows tile connectivity from the entry tile until it returns
//     there, counting steps and marking every visited cell as on-loop.
//     The first step probes the entry's neighbors in tile.ProbeOrder
//     (West, North, East, South) and requires exactly two of them to point
//     back at the entry.
//   - ResolveEntry: inspects the entry's loop-marked neighbors in the same
//     order and freezes the entry to the unique tile with that connector pair.
//   - Distances: breadth-first search along the loop from the entry, giving
//     every loop cell its distance; the maximum equals Loop.Farthest().
//
// Why:
//
//   - Interior classification needs on-loop membership and a concrete entry
//     shape; a wildcard entry would corrupt the parity scan.
//
// Complexity:
//
//   - Trace:        Time O(L) ≤ O(W×H), Memory O(W×H)   (L = loop length).
//   - ResolveEntry: Time O(1).
//   - Distances:    Time O(L), Memory O(L).
//
// Errors:
//
//   - ErrGridNil / ErrLoopNil: nil input.
//   - ErrOptionViolation: an invalid Option (negative step limit).
//   - ErrMalformedLoop (*MalformedLoopError): a tile without the expected
//     continuation, a revisited cell, or a walk exceeding the step limit.
//   - ErrAmbiguousEntry (*AmbiguousEntryShapeError): the entry does not have
//     exactly two connecting neighbors.
//   - ErrEntryUnresolved: Distances called before ResolveEntry.
//   - hook errors: propagated from the OnStep hook.
package trace

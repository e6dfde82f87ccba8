// Package classify labels every cell of a traced pipe grid as loop, interior
// or exterior using a row-wise even-odd parity scan.
//
// What:
//
//   - Classify scans each row left to right keeping a crossing counter.
//     Every loop tile except Horizontal counts as one crossing of the scan
//     line; a non-loop tile seen while the counter is odd is interior.
//   - Bends that together make one real crossing (BendNE…BendSW and
//     BendSE…BendNW, possibly with Horizontal tiles between them) would be
//     counted twice, so the closing bend takes one crossing back. A small
//     two-state machine (no pending corner / pending corner) remembers the
//     opening bend.
//
// Why:
//
//   - This is the even-odd point-in-polygon rule adapted to a loop drawn
//     from orthogonal tiles, where bend pairing replaces the usual epsilon
//     shift for continuous polygons.
//
// Complexity:
//
//   - Classify: Time O(W×H), Memory O(W×H) for the per-cell labels.
//
// Errors:
//
//   - ErrGridNil: grid pointer is nil.
//   - ErrMembership: membership is nil or sized for another grid.
//   - ErrEntryUnresolved: the entry tile is still a wildcard.
package classify

// Package pipeloop finds the single closed loop in a grid of pipe tiles,
// measures it, and counts the tiles it encloses.
//
// What is pipeloop?
//
//	A small pipeline over four packages:
//		• tile/       the closed set of connector tiles and directions
//		• gridgraph/  text loader, padded grid, entry state, region flood fill
//		• trace/      loop walk, entry shape resolution, distances along the loop
//		• classify/   row-wise even-odd parity scan with bend pairing
//
// Solve runs Loader → Tracer → Entry resolution → Classifier and reports the
// farthest distance from the entry (half the loop's length) and the number
// of enclosed tiles. Any malformed input fails fast; there are no partial
// reports.
//
// Quick ASCII example:
//
//	..F7.
//	.FJ|.
//	SJ.L7      farthest = 8
//	|F--J      interior = 1
//	LJ...
//
// Render prints the same grid with box-drawing glyphs for the loop, `I` for
// enclosed tiles, `O` for tiles reachable from outside and `o` for exterior
// tiles sealed between pipes.
package pipeloop

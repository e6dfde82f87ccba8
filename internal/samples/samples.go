// Package samples holds reference pipe grids: the built-in input used when no
// file is given, and the fixtures the test suites share.
package samples

// Complex is the default input: a loop with farthest distance 8 and one
// enclosed tile.
const Complex = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

// Square is the smallest possible loop: four bends, nothing enclosed.
const Square = `S7
LJ
`

// Simple is a 5×5 grid with a 3×3 loop and stray pipes around it.
// Farthest distance 4, one enclosed tile.
const Simple = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

// Squeeze has two enclosed pockets joined only by a gap between pipes.
// Four tiles are enclosed.
const Squeeze = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

// Dense is a 10×20 grid with many bends and junk pipes; ten tiles are
// enclosed.
const Dense = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

// Large is a 10×20 grid whose loop encloses eight tiles.
const Large = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

// Ambiguous has a third pipe pointing at the entry.
const Ambiguous = `.F-7
.|.|
-S-J
`

// Broken has a loop with a gap in its bottom-right corner.
const Broken = `S-7
|.|
L-.
`

// Invalid contains a character outside the tile alphabet.
const Invalid = `S-7
|X|
L-J
`

package tile

// Direction is one of the four cardinal directions, or None.
type Direction uint8

const (
	// None is the sentinel before a traversal has moved; never a valid heading.
	None Direction = iota
	North
	East
	South
	West
)

// ProbeOrder is the fixed order in which the neighbors of an entry tile are
// inspected. Both the first traversal step and entry shape resolution use it,
// so the directions they report always agree.
var ProbeOrder = [4]Direction{West, North, East, South}

// Tile is a closed variant over the eight kinds of grid cell.
// The zero value is Ground.
type Tile uint8

const (
	Ground Tile = iota
	Entry
	Vertical   // North-South
	Horizontal // East-West
	BendNE     // North-East
	BendNW     // North-West
	BendSE     // South-East
	BendSW     // South-West
)

// shapes lists the connector pair of every fixed-shape tile.
var shapes = [...]struct {
	t    Tile
	a, b Direction
}{
	{Vertical, North, South},
	{Horizontal, East, West},
	{BendNE, North, East},
	{BendNW, North, West},
	{BendSE, South, East},
	{BendSW, South, West},
}

// symbols maps the text format onto tiles.
var symbols = map[rune]Tile{
	'|': Vertical,
	'-': Horizontal,
	'L': BendNE,
	'J': BendNW,
	'7': BendSW,
	'F': BendSE,
	'S': Entry,
	'.': Ground,
}

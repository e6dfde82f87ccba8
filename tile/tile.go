package tile

// Opposite returns the direction pointing the other way. None maps to None.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// Delta returns the (row, column) offset of one step in direction d.
// Rows grow southwards, columns grow eastwards.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Parse maps a text symbol onto its tile.
// Returns *InvalidSymbolError for anything outside `| - L J 7 F S .`.
func Parse(r rune) (Tile, error) {
	t, ok := symbols[r]
	if !ok {
		return Ground, &InvalidSymbolError{Rune: r}
	}

	return t, nil
}

// FromConnections returns the fixed-shape tile connecting exactly a and b,
// in either order. ok is false when no such tile exists (a == b, or None).
func FromConnections(a, b Direction) (t Tile, ok bool) {
	for _, s := range shapes {
		if (s.a == a && s.b == b) || (s.a == b && s.b == a) {
			return s.t, true
		}
	}

	return Ground, false
}

// Connects reports whether t has a connector facing d.
// Entry is a wildcard and connects every real direction.
func (t Tile) Connects(d Direction) bool {
	if d == None {
		return false
	}
	switch t {
	case Entry:
		return true
	case Ground:
		return false
	default:
		a, b := t.pair()
		return d == a || d == b
	}
}

// Connections lists the directions t connects, in ProbeOrder.
func (t Tile) Connections() []Direction {
	var out []Direction
	for _, d := range ProbeOrder {
		if t.Connects(d) {
			out = append(out, d)
		}
	}

	return out
}

// Exit returns the heading a traversal leaves t with after entering it while
// moving in direction in. ok is false when t has no connector facing back
// along in, or when t has no unique other end (Ground, Entry).
func (t Tile) Exit(in Direction) (out Direction, ok bool) {
	if t == Entry || t == Ground {
		return None, false
	}
	back := in.Opposite()
	a, b := t.pair()
	switch back {
	case a:
		return b, true
	case b:
		return a, true
	}

	return None, false
}

// IsBend reports whether t joins two perpendicular directions.
func (t Tile) IsBend() bool {
	return t == BendNE || t == BendNW || t == BendSE || t == BendSW
}

// Symbol returns the text-format rune for t.
func (t Tile) Symbol() rune {
	for r, s := range symbols {
		if s == t {
			return r
		}
	}

	return '.'
}

// Glyph returns the box-drawing rune used when rendering loop tiles.
func (t Tile) Glyph() rune {
	switch t {
	case Vertical:
		return '│'
	case Horizontal:
		return '─'
	case BendNE:
		return '└'
	case BendNW:
		return '┘'
	case BendSE:
		return '┌'
	case BendSW:
		return '┐'
	case Entry:
		return 'S'
	default:
		return ' '
	}
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	switch t {
	case Entry:
		return "entry"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case BendNE:
		return "bend-ne"
	case BendNW:
		return "bend-nw"
	case BendSE:
		return "bend-se"
	case BendSW:
		return "bend-sw"
	default:
		return "ground"
	}
}

// pair returns the fixed connector pair of a shaped tile, or (None, None).
func (t Tile) pair() (Direction, Direction) {
	for _, s := range shapes {
		if s.t == t {
			return s.a, s.b
		}
	}

	return None, None
}

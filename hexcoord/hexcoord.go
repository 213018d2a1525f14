package hexcoord

import "fmt"

// Coord is a cube coordinate identifying one hex cell.
// A Coord is valid only when Q + R + S == 0.
type Coord struct {
	Q, R, S int
}

// Directions holds the six neighbor offsets, indexed 0..5.
var Directions = [6]Coord{
	{Q: +1, R: -1, S: 0},
	{Q: +1, R: 0, S: -1},
	{Q: 0, R: +1, S: -1},
	{Q: -1, R: +1, S: 0},
	{Q: -1, R: 0, S: +1},
	{Q: 0, R: -1, S: +1},
}

// New builds a valid Coord from axial (q, r), deriving s = -q - r.
func New(q, r int) Coord {
	return Coord{Q: q, R: r, S: -q - r}
}

// Cube builds a Coord from all three components verbatim.
// The result may be invalid; check it with IsValid.
func Cube(q, r, s int) Coord {
	return Coord{Q: q, R: r, S: s}
}

// IsValid reports whether c satisfies q + r + s == 0.
func IsValid(c Coord) bool {
	return c.Q+c.R+c.S == 0
}

// Valid is the method form of IsValid.
func (c Coord) Valid() bool { return IsValid(c) }

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

// Scale multiplies every component by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k, S: c.S * k}
}

// String renders the coordinate as "(q,r,s)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S)
}

// Distance returns (|Δq| + |Δr| + |Δs|) / 2.
func Distance(a, b Coord) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// Neighbor returns c moved one step along Directions[dir mod 6].
func Neighbor(c Coord, dir int) Coord {
	dir %= len(Directions)
	if dir < 0 {
		dir += len(Directions)
	}

	return c.Add(Directions[dir])
}

// Neighbors returns the six adjacent coordinates in Directions order.
// No existence filtering is performed.
func Neighbors(c Coord) [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}

	return out
}

// Ring returns the 6*radius coordinates at exactly Distance == radius from center.
// The walk starts at center + Directions[4]*radius and follows each direction in turn.
// Radius 0 yields just the center; negative radius yields nil.
func Ring(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Coord{center}
	}
	out := make([]Coord, 0, 6*radius)
	cur := center.Add(Directions[4].Scale(radius))
	for side := 0; side < len(Directions); side++ {
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = Neighbor(cur, side)
		}
	}

	return out
}

// Disc returns every coordinate within Distance <= radius of center,
// ordered by q then r. It has 3*radius*(radius+1)+1 elements.
func Disc(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	out := make([]Coord, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			out = append(out, center.Add(New(q, r)))
		}
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package drill defines the oriented robot state space for the drilling
// problem: 8-directional headings, the turn/drill action set, deterministic
// successor generation, and the heuristic library used by informed search.
package drill

// Orientation is one of the eight compass headings.
type Orientation int

const (
	North Orientation = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// OrientationAny is the goal-file marker for "orientation irrelevant".
const OrientationAny = 8

var orientationNames = [...]string{
	"North", "Northeast", "East", "Southeast",
	"South", "Southwest", "West", "Northwest",
}

// deltas[o] is the (row, col) step for moving forward while heading o.
var deltas = [8][2]int{
	{-1, 0},  // North
	{-1, 1},  // Northeast
	{0, 1},   // East
	{1, 1},   // Southeast
	{1, 0},   // South
	{1, -1},  // Southwest
	{0, -1},  // West
	{-1, -1}, // Northwest
}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return "N/A"
	}
	return orientationNames[o]
}

// Delta returns the forward (row, col) step for the heading.
func (o Orientation) Delta() (int, int) {
	return deltas[o][0], deltas[o][1]
}

// Left returns the heading after one 45-degree counterclockwise turn.
func (o Orientation) Left() Orientation {
	return (o + 7) % 8
}

// Right returns the heading after one 45-degree clockwise turn.
func (o Orientation) Right() Orientation {
	return (o + 1) % 8
}

// TurnDistance is the minimal number of 45-degree turns between two headings.
func TurnDistance(a, b Orientation) int {
	d := int(a-b) % 8
	if d < 0 {
		d += 8
	}
	if d > 8-d {
		d = 8 - d
	}
	return d
}

// headingFor maps a (row, col) sign pair to its heading index.
func headingFor(dx, dy int) Orientation {
	for o, d := range deltas {
		if d[0] == dx && d[1] == dy {
			return Orientation(o)
		}
	}
	panic("drill: no heading for delta")
}

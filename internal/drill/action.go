package drill

// Action is one of the three robot operators. The action set is fixed:
// anticlockwise turn, clockwise turn, and drilling one cell forward.
// There is no half-turn operator; a 180-degree reversal takes four turns.
type Action int

const (
	TurnLeft Action = iota
	TurnRight
	Drill
)

func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "TURN_LEFT"
	case TurnRight:
		return "TURN_RIGHT"
	case Drill:
		return "DRILL"
	default:
		return "UNKNOWN"
	}
}

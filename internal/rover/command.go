package rover

// Outcome records one evaluated command.
type Outcome struct {
	Command Cardinal
	Before  Rover
	After   Rover
	Blocked bool
}

// Step turns r to face target if needed and moves it one cell. When the
// resulting cell holds an obstacle the whole step is discarded and r is
// returned with ok == false.
func Step(r Rover, target Cardinal, g Grid) (next Rover, ok bool) {
	var candidate Rover
	switch target {
	case r.Orientation:
		candidate = r.Move(Forward, g)
	case r.Orientation.Opposite():
		candidate = r.Move(Backward, g)
	case r.Orientation.Next():
		candidate = r.Turn(Right).Move(Forward, g)
	default:
		candidate = r.Turn(Left).Move(Forward, g)
	}
	if g.HasObstacle(candidate.Position) {
		return r, false
	}
	return candidate, true
}

func Evaluate(r Rover, target Cardinal, g Grid) Rover {
	next, _ := Step(r, target, g)
	return next
}

// Run applies directions in order and returns the final rover.
func Run(directions []Cardinal, r Rover, g Grid) Rover {
	for _, d := range directions {
		r = Evaluate(r, d, g)
	}
	return r
}

// Trace is Run keeping every intermediate step.
func Trace(directions []Cardinal, r Rover, g Grid) []Outcome {
	out := make([]Outcome, 0, len(directions))
	for _, d := range directions {
		next, ok := Step(r, d, g)
		out = append(out, Outcome{Command: d, Before: r, After: next, Blocked: !ok})
		r = next
	}
	return out
}

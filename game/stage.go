package game

// Stage represents the betting street of a round
type Stage uint8

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	Finished
)

func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Next returns the stage that follows s. Finished is terminal and maps to itself.
func (s Stage) Next() Stage {
	switch s {
	case PreFlop:
		return Flop
	case Flop:
		return Turn
	case Turn:
		return River
	default:
		return Finished
	}
}

// Revealed returns how many community cards are face up during s.
func (s Stage) Revealed() int {
	switch s {
	case PreFlop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return 5
	}
}

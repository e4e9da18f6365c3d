package tictactoe

import "fmt"

// Outcome is derived from a board on demand and never stored inside it.
type Outcome uint8

const (
	InProgress Outcome = iota
	Draw
	ComputerWins
	HumanWins
)

var outcomeNames = map[Outcome]string{
	InProgress:   "in_progress",
	Draw:         "draw",
	ComputerWins: "computer_wins",
	HumanWins:    "human_wins",
}

func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

func (that Outcome) String() string {
	if name, ok := outcomeNames[that]; ok {
		return name
	}

	return fmt.Sprintf("outcome(%d)", uint8(that))
}

func (that Outcome) MarshalText() ([]byte, error) {
	name, ok := outcomeNames[that]
	if !ok {
		return nil, fmt.Errorf("unknown outcome %d", uint8(that))
	}

	return []byte(name), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}

func winnerOutcome(mark Cell) Outcome {
	if mark == Computer {
		return ComputerWins
	}

	return HumanWins
}

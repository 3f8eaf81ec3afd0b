package fallingtrash

import "fmt"

// State is the state of the episode state machine
type State int

const (
	NotStarted State = iota
	Active
	Ended
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Active:
		return "Active"
	case Ended:
		return "Ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Telemetry is a read-only snapshot of episode statistics, suitable for
// a debug overlay
type Telemetry struct {
	Episode           int // 1-indexed, 0 before the first episode
	CompletedEpisodes int
	Step              int
	CumulativeReward  float64
	LastOutcome       Outcome
	State             State
}

func (t Telemetry) String() string {
	return fmt.Sprintf("Episode: %d | Step: %d | Reward: %.3f | Last: %v",
		t.Episode, t.Step, t.CumulativeReward, t.LastOutcome)
}

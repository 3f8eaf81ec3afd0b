package trackers

import (
	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	"github.com/samuelfneumann/fallingtrash/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
type EpisodeLength struct {
	episodeLengths []int
	store          tracker.Store
	key            string
}

// NewEpisodeLength returns a new EpisodeLength tracker which saves its
// data to s under key
func NewEpisodeLength(s tracker.Store, key string) *EpisodeLength {
	return &EpisodeLength{store: s, key: key}
}

// Track caches the episode length if t is the last timestep of an
// episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Lengths returns the lengths of all finished episodes
func (e *EpisodeLength) Lengths() []int {
	return e.episodeLengths
}

// Save saves the episode lengths
func (e *EpisodeLength) Save() error {
	return tracker.Encode(e.store, e.key, e.episodeLengths)
}

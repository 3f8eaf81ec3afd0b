package fallingtrash

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/fallingtrash/utils/floatutils"
)

// Outcome is the way in which an episode ended
type Outcome int

const (
	// NoOutcome means the episode has not ended, or was cut off
	NoOutcome Outcome = iota
	Caught
	Landed
	OutOfBounds
	Missed
)

func (o Outcome) String() string {
	switch o {
	case NoOutcome:
		return "None"
	case Caught:
		return "Caught"
	case Landed:
		return "Landed"
	case OutOfBounds:
		return "OutOfBounds"
	case Missed:
		return "Missed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Success returns whether the outcome is a successful catch
func (o Outcome) Success() bool {
	return o == Caught
}

// RewardConfig holds the constants used to shape rewards
type RewardConfig struct {
	// Dense reward constants
	TrackingScale float64 `json:"trackingScale"`
	TrackingClip  float64 `json:"trackingClip"`
	OverheadBonus float64 `json:"overheadBonus"`
	TimePenalty   float64 `json:"timePenalty"`

	// Terminal reward constants
	CatchReward       float64 `json:"catchReward"`
	LandedNearReward  float64 `json:"landedNearReward"`
	LandedFarReward   float64 `json:"landedFarReward"`
	MaxRewardDistance float64 `json:"maxRewardDistance"`
	OutOfBoundsReward float64 `json:"outOfBoundsReward"`
	MissedReward      float64 `json:"missedReward"`
}

// DefaultReward returns the default reward constants
func DefaultReward() RewardConfig {
	return RewardConfig{
		TrackingScale: 0.025,
		TrackingClip:  0.03,
		OverheadBonus: 0.001,
		TimePenalty:   0.0005,

		CatchReward:       1.5,
		LandedNearReward:  1.0,
		LandedFarReward:   -1.0,
		MaxRewardDistance: 3.0,
		OutOfBoundsReward: -1.0,
		MissedReward:      -1.0,
	}
}

// Validate returns an error if the reward constants are invalid
func (r RewardConfig) Validate() error {
	if r.TrackingClip < 0 {
		return fmt.Errorf("validate: tracking clip must be non-negative, "+
			"have %v", r.TrackingClip)
	}
	if r.MaxRewardDistance <= 0 {
		return fmt.Errorf("validate: max reward distance must be positive, "+
			"have %v", r.MaxRewardDistance)
	}
	return nil
}

// RewardShaper computes dense per-step rewards and terminal rewards
type RewardShaper struct {
	RewardConfig
}

// NewRewardShaper returns a new RewardShaper
func NewRewardShaper(c RewardConfig) (*RewardShaper, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newRewardShaper: %v", err)
	}
	return &RewardShaper{c}, nil
}

// Tracking returns the clipped reward for closing the horizontal
// distance to the projectile between two consecutive steps
func (r *RewardShaper) Tracking(prevDistance, distance float64) float64 {
	progress := (prevDistance - distance) * r.TrackingScale
	return floatutils.Clip(progress, -r.TrackingClip, r.TrackingClip)
}

// Dense returns the reward given on every step, regardless of whether
// the step is terminal
func (r *RewardShaper) Dense(prevDistance, distance float64,
	overhead bool) float64 {
	reward := r.Tracking(prevDistance, distance) - r.TimePenalty
	if overhead {
		reward += r.OverheadBonus
	}
	return reward
}

// Landing returns the terminal reward when the projectile lands at the
// given horizontal distance from the agent. The reward is interpolated
// linearly from the near reward at distance 0 to the far reward at the
// max reward distance and beyond.
func (r *RewardShaper) Landing(distance float64) float64 {
	return floatutils.Lerp(r.LandedNearReward, r.LandedFarReward,
		distance/r.MaxRewardDistance)
}

// Terminal returns the terminal reward for outcome o. The landing
// distance is only used when o is Landed.
func (r *RewardShaper) Terminal(o Outcome, landingDistance float64) float64 {
	switch o {
	case Caught:
		return r.CatchReward
	case Landed:
		return r.Landing(landingDistance)
	case OutOfBounds:
		return r.OutOfBoundsReward
	case Missed:
		return r.MissedReward
	default:
		return 0
	}
}

// Min returns the minimum reward attainable on a single step
func (r *RewardShaper) Min() float64 {
	dense := -r.TrackingClip - r.TimePenalty
	terminal := math.Min(0, math.Min(r.LandedFarReward, r.LandedNearReward))
	for _, t := range []float64{r.CatchReward, r.OutOfBoundsReward,
		r.MissedReward} {
		terminal = math.Min(terminal, t)
	}
	return dense + terminal
}

// Max returns the maximum reward attainable on a single step
func (r *RewardShaper) Max() float64 {
	dense := r.TrackingClip + r.OverheadBonus - r.TimePenalty
	terminal := math.Max(0, math.Max(r.LandedFarReward, r.LandedNearReward))
	for _, t := range []float64{r.CatchReward, r.OutOfBoundsReward,
		r.MissedReward} {
		terminal = math.Max(terminal, t)
	}
	return dense + terminal
}

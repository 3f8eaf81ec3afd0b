// Package effects implements time-bounded presentation requests raised
// by environments. Environments never render; they push requests to a
// Queue which a presenter drains and plays back.
package effects

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FlashDuration is the default duration of a flash in seconds
const FlashDuration float64 = 0.5

var (
	Success = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	Failure = color.RGBA{R: 200, G: 0, B: 0, A: 255}
)

// Flash is a request to tint the arena floor with a colour which fades
// out linearly over the flash duration
type Flash struct {
	Colour   color.RGBA
	Duration float64

	tween     *gween.Tween
	intensity float64
	done      bool
}

// NewFlash returns a new Flash of colour c lasting duration seconds
func NewFlash(c color.RGBA, duration float64) *Flash {
	return &Flash{
		Colour:    c,
		Duration:  duration,
		tween:     gween.New(1, 0, float32(duration), ease.Linear),
		intensity: 1,
		done:      duration <= 0,
	}
}

// Update advances the flash by dt seconds and returns the current
// intensity in [0, 1] and whether the flash has finished
func (f *Flash) Update(dt float64) (float64, bool) {
	if f.done {
		return 0, true
	}

	intensity, done := f.tween.Update(float32(dt))
	f.intensity = float64(intensity)
	f.done = done
	if done {
		f.intensity = 0
	}
	return f.intensity, f.done
}

// Intensity returns the current intensity of the flash
func (f *Flash) Intensity() float64 {
	return f.intensity
}

// Done returns whether the flash has finished
func (f *Flash) Done() bool {
	return f.done
}

// Tinted returns the colour of the flash blended over base at the
// current intensity
func (f *Flash) Tinted(base color.RGBA) color.RGBA {
	blend := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-f.intensity) + float64(b)*f.intensity)
	}
	return color.RGBA{
		R: blend(base.R, f.Colour.R),
		G: blend(base.G, f.Colour.G),
		B: blend(base.B, f.Colour.B),
		A: base.A,
	}
}

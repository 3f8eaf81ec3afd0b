package effects

import (
	"image/color"
	"math"
	"testing"
)

func TestFlashFades(t *testing.T) {
	f := NewFlash(Success, 1.0)
	if f.Intensity() != 1 {
		t.Errorf("initial intensity: want(1) have(%v)", f.Intensity())
	}

	intensity, done := f.Update(0.5)
	if done {
		t.Error("flash finished early")
	}
	if math.Abs(intensity-0.5) > 1e-6 {
		t.Errorf("intensity at half duration: want(0.5) have(%v)",
			intensity)
	}

	intensity, done = f.Update(0.75)
	if !done || intensity != 0 {
		t.Errorf("finished flash: want(0, true) have(%v, %v)", intensity,
			done)
	}

	// Updates after finishing are no-ops
	if intensity, done = f.Update(1); !done || intensity != 0 {
		t.Errorf("update after finish: want(0, true) have(%v, %v)",
			intensity, done)
	}
}

func TestFlashZeroDuration(t *testing.T) {
	f := NewFlash(Failure, 0)
	if !f.Done() {
		t.Error("zero duration flash should be done immediately")
	}
}

func TestTinted(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	f := NewFlash(color.RGBA{R: 200, A: 255}, 1)

	if have := f.Tinted(base); have.R != 200 || have.G != 0 || have.A != 255 {
		t.Errorf("full intensity tint: have(%v)", have)
	}

	f.Update(2)
	if have := f.Tinted(base); have != base {
		t.Errorf("finished tint: want(%v) have(%v)", base, have)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(0)
	q.Push(NewFlash(Success, 1))
	q.Push(NewFlash(Failure, 1))

	if q.Len() != 2 {
		t.Errorf("len: want(2) have(%v)", q.Len())
	}

	drained := q.Drain()
	if len(drained) != 2 || drained[0].Colour != Success ||
		drained[1].Colour != Failure {
		t.Errorf("drain returned unexpected flashes: %v", drained)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Error("queue not empty after drain")
	}
}

func TestQueueDropsOldest(t *testing.T) {
	q := NewQueue(2)
	first := NewFlash(Success, 1)
	second := NewFlash(Failure, 1)
	third := NewFlash(Success, 2)

	q.Push(first)
	q.Push(second)
	q.Push(third)

	if q.Len() != 2 {
		t.Errorf("len: want(2) have(%v)", q.Len())
	}
	drained := q.Drain()
	if len(drained) != 2 || drained[0] != second || drained[1] != third {
		t.Errorf("drain: want(oldest dropped) have(%v)", drained)
	}
}

func TestQueueBounded(t *testing.T) {
	q := NewQueue(0)
	if q.Cap() != MaxPending {
		t.Errorf("default capacity: want(%v) have(%v)", MaxPending, q.Cap())
	}

	for i := 0; i < 10_000; i++ {
		q.Push(NewFlash(Failure, FlashDuration))
		if q.Len() > MaxPending {
			t.Fatalf("len after %d pushes: want(<= %v) have(%v)", i+1,
				MaxPending, q.Len())
		}
	}
}

package domain

import (
	"context"
	"math"
	"time"
)

// RingProgress clamps value into [0, goal]. A non-positive goal yields 0;
// +Inf is past any goal, NaN counts as nothing.
func RingProgress(value, goal float64) float64 {
	goal = finite(goal)
	if goal <= 0 {
		return 0
	}
	if math.IsInf(value, 1) {
		return goal
	}
	value = finite(value)
	if value < 0 {
		return 0
	}
	if value > goal {
		return goal
	}
	return value
}

// RingFraction returns the clamped progress as a fraction of goal.
func RingFraction(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return RingProgress(value, goal) / goal
}

// EaseInOutQuad is the quadratic ease-in-out curve on t in [0, 1].
func EaseInOutQuad(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 2 * t * t
	default:
		return -1 + (4-2*t)*t
	}
}

// Tween animates a ring from one displayed value to another.
type Tween struct {
	From     float64
	To       float64
	Goal     float64
	Duration time.Duration
}

// At returns the displayed value after elapsed time, clamped to [0, Goal].
func (tw Tween) At(elapsed time.Duration) float64 {
	from := RingProgress(tw.From, tw.Goal)
	to := RingProgress(tw.To, tw.Goal)
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return to
	}
	if elapsed <= 0 {
		return from
	}
	p := EaseInOutQuad(float64(elapsed) / float64(tw.Duration))
	return RingProgress(from+(to-from)*p, tw.Goal)
}

// Animate calls fn once per frame with the tween value, finishing with the
// target value. It returns ctx.Err() if cancelled before the end.
func Animate(ctx context.Context, tw Tween, frame time.Duration, fn func(float64)) error {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	if tw.Duration <= 0 {
		fn(tw.At(0))
		return nil
	}

	start := time.Now()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	fn(tw.At(0))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			elapsed := time.Since(start)
			fn(tw.At(elapsed))
			if elapsed >= tw.Duration {
				return nil
			}
		}
	}
}

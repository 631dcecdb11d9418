package domain_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"fitdiary/internal/domain"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRingProgress_Clamps(t *testing.T) {
	tests := []struct {
		name        string
		value, goal float64
		want        float64
	}{
		{"within", 50, 150, 50},
		{"over goal", 500, 150, 150},
		{"negative", -20, 150, 0},
		{"zero goal", 10, 0, 0},
		{"negative goal", 10, -5, 0},
		{"nan value", math.NaN(), 100, 0},
		{"inf value", math.Inf(1), 100, 100},
		{"negative inf value", math.Inf(-1), 100, 0},
		{"huge", 1e18, 3000, 3000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.RingProgress(tc.value, tc.goal)
			if got != tc.want {
				t.Fatalf("RingProgress(%v, %v) = %v, want %v", tc.value, tc.goal, got, tc.want)
			}
			if got < 0 || (tc.goal > 0 && got > tc.goal) {
				t.Fatalf("RingProgress(%v, %v) = %v out of range", tc.value, tc.goal, got)
			}
		})
	}
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tc := range tests {
		if got := domain.EaseInOutQuad(tc.t); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("EaseInOutQuad(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestTweenAt(t *testing.T) {
	tw := domain.Tween{From: 0, To: 100, Goal: 200, Duration: time.Second}
	if got := tw.At(0); got != 0 {
		t.Fatalf("At(0) = %v", got)
	}
	if got := tw.At(500 * time.Millisecond); !almostEqual(got, 50, 1e-9) {
		t.Fatalf("At(500ms) = %v, want 50", got)
	}
	if got := tw.At(2 * time.Second); got != 100 {
		t.Fatalf("At(2s) = %v, want 100", got)
	}

	over := domain.Tween{From: -50, To: 900, Goal: 300, Duration: time.Second}
	for ms := 0; ms <= 1000; ms += 50 {
		v := over.At(time.Duration(ms) * time.Millisecond)
		if v < 0 || v > 300 {
			t.Fatalf("At(%dms) = %v out of [0, 300]", ms, v)
		}
	}
}

func TestAnimate_ReachesTarget(t *testing.T) {
	tw := domain.Tween{From: 10, To: 80, Goal: 100, Duration: 30 * time.Millisecond}
	var values []float64
	err := domain.Animate(context.Background(), tw, time.Millisecond, func(v float64) {
		values = append(values, v)
	})
	if err != nil {
		t.Fatalf("Animate: %v", err)
	}
	if len(values) < 2 {
		t.Fatalf("expected several frames, got %d", len(values))
	}
	if values[0] != 10 {
		t.Fatalf("first frame = %v, want 10", values[0])
	}
	if last := values[len(values)-1]; last != 80 {
		t.Fatalf("last frame = %v, want 80", last)
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Fatalf("frames not monotonic: %v", values)
		}
	}
}

func TestAnimate_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tw := domain.Tween{From: 0, To: 100, Goal: 100, Duration: time.Hour}

	var mu sync.Mutex
	frames := 0
	done := make(chan error, 1)
	go func() {
		done <- domain.Animate(ctx, tw, time.Millisecond, func(float64) {
			mu.Lock()
			frames++
			mu.Unlock()
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Animate did not stop after cancel")
	}
	mu.Lock()
	defer mu.Unlock()
	if frames == 0 {
		t.Fatal("expected at least one frame")
	}
}

func TestAnimate_ZeroDuration(t *testing.T) {
	var got []float64
	tw := domain.Tween{From: 0, To: 40, Goal: 30}
	if err := domain.Animate(context.Background(), tw, 0, func(v float64) { got = append(got, v) }); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 30 {
		t.Fatalf("got %v, want [30]", got)
	}
}

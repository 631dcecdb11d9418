package app_test

import (
	"context"
	"testing"

	"fitdiary/internal/app"
)

func TestGetDaily_BadUnit(t *testing.T) {
	st, _ := newState(t)
	svc := app.NewChartsService(st.Diary, st.Metrics, fixedClock(t, friday))
	_, err := svc.GetDaily(7, "stones")
	if err == nil {
		t.Fatal("expected error for bad unit")
	}
}

func TestGetDaily_Success(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)
	clock := fixedClock(t, friday)

	if _, err := app.NewWaterService(st.Diary, st.Targets, clock).AddToday(ctx, 2500); err != nil {
		t.Fatalf("AddToday: %v", err)
	}
	if _, err := app.NewMetricsService(st.Metrics, clock).Save(ctx, "2026-10-15", app.MetricsUpdate{Weight: ptr(80.0)}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	svc := app.NewChartsService(st.Diary, st.Metrics, clock)
	points, err := svc.GetDaily(3, "lb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Day != "2026-10-14" || points[2].Day != "2026-10-16" {
		t.Errorf("unexpected range %s..%s", points[0].Day, points[2].Day)
	}
	if points[2].WaterML != 2500 {
		t.Errorf("expected waterMl=2500, got %v", points[2].WaterML)
	}
	if points[0].Weight != nil || points[2].Weight != nil {
		t.Error("expected no weight on days without a measurement")
	}
	w := points[1].Weight
	if w == nil {
		t.Fatal("expected weight point on 2026-10-15")
	}
	if w.Unit != "lb" || w.Value < 176.3 || w.Value > 176.4 {
		t.Errorf("expected ~176.37 lb, got %v %s", w.Value, w.Unit)
	}
}

func TestGetDaily_ClampsDays(t *testing.T) {
	st, _ := newState(t)
	svc := app.NewChartsService(st.Diary, st.Metrics, fixedClock(t, friday))
	points, err := svc.GetDaily(1000, "kg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 366 {
		t.Fatalf("expected 366 points, got %d", len(points))
	}
}

package domain_test

import (
	"testing"
	"time"

	"fitdiary/internal/domain"
)

func TestClockToday_UsesZone(t *testing.T) {
	loc, err := domain.LoadZone(domain.DefaultTimeZone)
	if err != nil {
		t.Fatalf("LoadZone: %v", err)
	}
	// 17:30 UTC is already the next day in Hong Kong.
	clock := domain.Clock{
		Loc: loc,
		Now: func() time.Time { return time.Date(2026, 10, 15, 17, 30, 0, 0, time.UTC) },
	}
	if got := clock.Today(); got != "2026-10-16" {
		t.Fatalf("Today() = %s, want 2026-10-16", got)
	}
	if got := clock.Weekday(); got != domain.Friday {
		t.Fatalf("Weekday() = %s, want Fri", got)
	}
}

func TestLoadZone_UnknownFallsBackToUTC(t *testing.T) {
	loc, err := domain.LoadZone("Mars/Olympus")
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", loc)
	}
}

func TestValidDate(t *testing.T) {
	for _, s := range []string{"2026-10-16", "2024-02-29"} {
		if !domain.ValidDate(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []string{"", "2026-13-01", "2025-02-29", "16/10/2026", "2026-1-1"} {
		if domain.ValidDate(s) {
			t.Errorf("%s should be invalid", s)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	if d, ok := domain.ParseWeekday("Wed"); !ok || d != domain.Wednesday {
		t.Fatalf("ParseWeekday(Wed) = %v, %v", d, ok)
	}
	if _, ok := domain.ParseWeekday("wednesday"); ok {
		t.Fatal("long names are not routine keys")
	}
}

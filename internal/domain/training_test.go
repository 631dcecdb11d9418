package domain_test

import (
	"testing"

	"fitdiary/internal/domain"
)

func TestMaterialize_CopiesTemplate(t *testing.T) {
	routine := domain.DefaultRoutine()
	routine[domain.Monday] = domain.RoutineDay{
		Label: "Push",
		Exercises: []domain.Exercise{
			{Name: "Bench", Kind: domain.KindWeight, Sets: []domain.Set{{Weight: 60, Reps: 8}, {Weight: 65, Reps: 6}}},
			{Name: "Rower", Kind: domain.KindCardio, Sets: []domain.Set{{Weight: 0, Reps: 12}}},
		},
	}

	log := domain.Materialize(routine, "2026-10-12", domain.Monday)
	if log.Label != "Push" || log.Date != "2026-10-12" || log.Weekday != domain.Monday {
		t.Fatalf("unexpected header: %+v", log)
	}
	if len(log.Exercises) != 2 || len(log.Exercises[0].Sets) != 2 {
		t.Fatalf("unexpected exercises: %+v", log.Exercises)
	}
	if log.Exercises[0].Kind != domain.KindWeight || log.Exercises[1].Kind != domain.KindCardio {
		t.Fatalf("kinds not copied: %+v", log.Exercises)
	}
	for _, ex := range log.Exercises {
		for _, s := range ex.Sets {
			if s.Done {
				t.Fatal("materialized sets must start not done")
			}
		}
	}

	// Later template edits do not leak into the snapshot.
	day := routine[domain.Monday]
	day.Exercises[0].Sets[0].Weight = 100
	day.Exercises[0].Name = "Incline"
	if log.Exercises[0].Sets[0].Weight != 60 || log.Exercises[0].Name != "Bench" {
		t.Fatalf("snapshot changed with template: %+v", log.Exercises[0])
	}
}

func TestMaterialize_EmptyTemplate(t *testing.T) {
	log := domain.Materialize(domain.DefaultRoutine(), "2026-10-11", domain.Sunday)
	if log.Exercises == nil {
		t.Fatal("expected empty, non-nil exercise list")
	}
	if len(log.Exercises) != 0 {
		t.Fatalf("expected no exercises, got %d", len(log.Exercises))
	}
}

func TestTrainingLogClone_IsDeep(t *testing.T) {
	orig := domain.TrainingLog{
		Date:      "2026-10-12",
		Exercises: []domain.LoggedExercise{{Name: "Row", Sets: []domain.LoggedSet{{Weight: 40, Reps: 10}}}},
	}
	cp := orig.Clone()
	cp.Exercises[0].Sets[0].Done = true
	cp.Exercises[0].Name = "Pull"
	if orig.Exercises[0].Sets[0].Done || orig.Exercises[0].Name != "Row" {
		t.Fatal("clone shares memory with original")
	}
}

func TestTrainingLogProgress(t *testing.T) {
	log := domain.TrainingLog{Exercises: []domain.LoggedExercise{
		{Sets: []domain.LoggedSet{{Done: true}, {Done: false}}},
		{Sets: []domain.LoggedSet{{Done: true}}},
	}}
	done, total := log.Progress()
	if done != 2 || total != 3 {
		t.Fatalf("Progress() = %d/%d, want 2/3", done, total)
	}
}

func TestRoutineNormalized_FillsWeekdays(t *testing.T) {
	r := domain.WeeklyRoutine{
		domain.Friday: {Label: "Legs", Exercises: []domain.Exercise{{Name: " Squat ", Sets: []domain.Set{{Weight: -5, Reps: 5}}}}},
		"Funday":      {Label: "bogus"},
	}
	n := r.Normalized()
	if len(n) != 7 {
		t.Fatalf("expected 7 weekdays, got %d", len(n))
	}
	if _, ok := n["Funday"]; ok {
		t.Fatal("unknown weekday kept")
	}
	fri := n[domain.Friday]
	if fri.Exercises[0].Name != "Squat" || fri.Exercises[0].Sets[0].Weight != 0 || fri.Exercises[0].Kind != domain.KindWeight {
		t.Fatalf("unexpected friday: %+v", fri)
	}
	if n[domain.Monday].Exercises == nil {
		t.Fatal("expected empty exercise list for missing day")
	}
}

func TestTrainingLogsNormalized_DefaultsKind(t *testing.T) {
	logs := domain.TrainingLogs{
		"2026-10-16": {Exercises: []domain.LoggedExercise{{Name: "Run", Kind: "swim"}, {Name: "Bike", Kind: domain.KindCardio}}},
	}
	n := logs.Normalized()["2026-10-16"]
	if n.Exercises[0].Kind != domain.KindWeight {
		t.Fatalf("expected unknown kind to become %q, got %q", domain.KindWeight, n.Exercises[0].Kind)
	}
	if n.Exercises[1].Kind != domain.KindCardio {
		t.Fatalf("expected cardio kept, got %q", n.Exercises[1].Kind)
	}
}

package usecase

import (
	"testing"

	"github.com/platewise/backend/internal/domain"
)

func TestMatchedTimings(t *testing.T) {
	svc := NewTimingService(false)

	t.Run("locates a timing with its byte offsets", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Fry for 5 minutes, stirring often.",
			Timings: []domain.StepTiming{
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 1 {
			t.Fatalf("matched %d timings, want 1", len(got))
		}
		m := got[0]
		if m.Start != 8 || m.End != 17 {
			t.Errorf("offsets = %d..%d, want 8..17", m.Start, m.End)
		}
		if m.DisplayText != "5 minutes" || m.Seconds != 300 {
			t.Errorf("match = %+v, want 5 minutes / 300s", m)
		}
	})

	t.Run("tolerates missing whitespace between value and unit", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Cook for 20minutes then rest.",
			Timings: []domain.StepTiming{
				{TimeText: "20", TimeUnitText: "minutes", TimeInSeconds: 1200},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 1 {
			t.Fatalf("matched %d timings, want 1", len(got))
		}
		if got[0].Start != 9 || got[0].End != 18 || got[0].DisplayText != "20minutes" {
			t.Errorf("match = %+v, want 20minutes at 9..18", got[0])
		}
	})

	t.Run("tolerates extra whitespace between value and unit", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Rest for 5      minutes.",
			Timings: []domain.StepTiming{
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 1 {
			t.Fatalf("matched %d timings, want 1", len(got))
		}
		if got[0].Start != 9 || got[0].End != 23 {
			t.Errorf("offsets = %d..%d, want 9..23", got[0].Start, got[0].End)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Bake 10 MINUTES more.",
			Timings: []domain.StepTiming{
				{TimeText: "10", TimeUnitText: "minutes", TimeInSeconds: 600},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 1 {
			t.Fatalf("matched %d timings, want 1", len(got))
		}
		if got[0].DisplayText != "10 MINUTES" {
			t.Errorf("DisplayText = %q, want the original casing", got[0].DisplayText)
		}
	})

	t.Run("repeated pairs consume occurrences front to back", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Simmer 5 minutes. Rest 5 minutes.",
			Timings: []domain.StepTiming{
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 2 {
			t.Fatalf("matched %d timings, want 2", len(got))
		}
		if got[0].Start != 7 || got[1].Start != 23 {
			t.Errorf("starts = %d, %d, want 7 and 23", got[0].Start, got[1].Start)
		}
	})

	t.Run("three duplicate mentions resolve left to right", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Cook for 20minutes then another 20    minutes then 20 minutes.",
			Timings: []domain.StepTiming{
				{TimeText: "20", TimeUnitText: "minutes", TimeInSeconds: 1200},
				{TimeText: "20", TimeUnitText: "minutes", TimeInSeconds: 1200},
				{TimeText: "20", TimeUnitText: "minutes", TimeInSeconds: 1200},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 3 {
			t.Fatalf("matched %d timings, want 3", len(got))
		}
		if got[0].Start != 9 || got[0].End != 18 {
			t.Errorf("first = %d..%d, want 9..18", got[0].Start, got[0].End)
		}
		if got[1].DisplayText != "20    minutes" {
			t.Errorf("second DisplayText = %q, want the irregular whitespace preserved", got[1].DisplayText)
		}
		if got[2].Start != 51 || got[2].End != 61 {
			t.Errorf("third = %d..%d, want 51..61", got[2].Start, got[2].End)
		}
	})

	t.Run("exhausted pools drop the extra entry silently", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Simmer 5 minutes. Rest 5 minutes.",
			Timings: []domain.StepTiming{
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
			},
		}
		if got := svc.MatchedTimings(step); len(got) != 2 {
			t.Errorf("matched %d timings, want 2", len(got))
		}
	})

	t.Run("word boundaries prevent partial value matches", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Cook 25 minutes.",
			Timings: []domain.StepTiming{
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
			},
		}
		if got := svc.MatchedTimings(step); len(got) != 0 {
			t.Errorf("matched %v, want none (5 must not match inside 25)", got)
		}
	})

	t.Run("results come back sorted by position", func(t *testing.T) {
		step := domain.RecipeStep{
			InstructionText: "Fry for 5 minutes, then bake for 20 minutes.",
			Timings: []domain.StepTiming{
				{TimeText: "20", TimeUnitText: "minutes", TimeInSeconds: 1200},
				{TimeText: "5", TimeUnitText: "minutes", TimeInSeconds: 300},
			},
		}
		got := svc.MatchedTimings(step)
		if len(got) != 2 {
			t.Fatalf("matched %d timings, want 2", len(got))
		}
		if got[0].Start != 8 || got[0].Seconds != 300 {
			t.Errorf("first match = %+v, want the 5 minute mention", got[0])
		}
		if got[1].Start != 33 || got[1].Seconds != 1200 {
			t.Errorf("second match = %+v, want the 20 minute mention", got[1])
		}
	})

	t.Run("blank entries and empty steps yield nothing", func(t *testing.T) {
		if got := svc.MatchedTimings(domain.RecipeStep{}); got != nil {
			t.Errorf("matched %v for empty step, want nil", got)
		}
		step := domain.RecipeStep{
			InstructionText: "Cook for 5 minutes.",
			Timings:         []domain.StepTiming{{TimeText: "", TimeUnitText: "minutes"}},
		}
		if got := svc.MatchedTimings(step); len(got) != 0 {
			t.Errorf("matched %v for blank entry, want none", got)
		}
	})
}

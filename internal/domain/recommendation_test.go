package domain

import "testing"

func TestGeneratePlan(t *testing.T) {
	plan := GeneratePlan(Profile{
		Experience:    "beginner",
		TimeAvailable: 45,
		Styles:        []Style{StyleYoga, StyleMeditation},
	})

	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	for i, day := range plan {
		if day.Day != i+1 {
			t.Errorf("day %d numbered %d", i, day.Day)
		}
		if day.DurationMinutes != 45 {
			t.Errorf("day %d duration = %d, want 45", day.Day, day.DurationMinutes)
		}
		if day.Style != StyleYoga && day.Style != StyleMeditation {
			t.Errorf("day %d style = %s, not from profile", day.Day, day.Style)
		}
		if len(day.Exercises) != 3 {
			t.Errorf("day %d has %d exercises, want 3", day.Day, len(day.Exercises))
		}
		for _, ex := range day.Exercises {
			if ex.DurationMinutes != 15 {
				t.Errorf("exercise duration = %d, want 15", ex.DurationMinutes)
			}
		}
	}

	if plan[0].Title != "Guided Mindfulness" && plan[0].Title != "Gentle Yoga Flow" {
		t.Errorf("day 1 title = %q, not a beginner title", plan[0].Title)
	}
}

func TestGeneratePlan_Defaults(t *testing.T) {
	plan := GeneratePlan(Profile{})

	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	for _, day := range plan {
		if day.DurationMinutes != DefaultDurationMinutes {
			t.Errorf("day %d duration = %d, want default", day.Day, day.DurationMinutes)
		}
		if day.Style != StyleYoga && day.Style != StyleStretching {
			t.Errorf("day %d style = %s, want a default style", day.Day, day.Style)
		}
	}
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	p := Profile{Experience: "advanced", TimeAvailable: 20, Styles: []Style{StyleCardio}}
	a := GeneratePlan(p)
	b := GeneratePlan(p)
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Style != b[i].Style {
			t.Fatalf("plan not deterministic at day %d", i+1)
		}
	}
}

func TestGeneratePlan_UnknownExperienceFallsBack(t *testing.T) {
	plan := GeneratePlan(Profile{Experience: "wizard", Styles: []Style{StyleYoga}})
	if plan[0].Title != "yoga Session" {
		t.Errorf("fallback title = %q", plan[0].Title)
	}
}

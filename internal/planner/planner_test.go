package planner

import (
	"math/rand/v2"
	"testing"

	"mood-movie-recommender/internal/models"
)

// asSet collapses a plan into a set; query order is randomized by contract.
func asSet(queries []string) map[string]bool {
	set := make(map[string]bool, len(queries))
	for _, q := range queries {
		set[q] = true
	}
	return set
}

func TestPlanMixedHappy(t *testing.T) {
	p := NewWithRand(rand.New(rand.NewPCG(1, 2)))
	got := asSet(p.Plan(models.MoodHappy, "feeling good", models.PreferenceMixed))

	want := []string{
		"happy movies",
		"happy comedy movies",
		"happy romantic movies",
		"happy bollywood movies",
		"happy bollywood romantic movies",
		"happy movies feeling good",
		"happy bollywood feeling good",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d queries, got %d: %v", len(want), len(got), got)
	}
	for _, q := range want {
		if !got[q] {
			t.Errorf("missing query %q", q)
		}
	}
}

func TestPlanEnergeticMoodUsesActionQualifier(t *testing.T) {
	p := New()
	got := asSet(p.Plan(models.MoodExcited, "", models.PreferenceMixed))

	if !got["excited action movies"] {
		t.Errorf("expected action qualifier for energetic mood, got %v", got)
	}
	if got["excited romantic movies"] {
		t.Errorf("did not expect romantic qualifier for energetic mood")
	}
	if !got["excited bollywood action movies"] {
		t.Errorf("expected local action qualifier, got %v", got)
	}
}

func TestPlanForeignSkipsBollywoodVariants(t *testing.T) {
	p := New()
	got := asSet(p.Plan(models.MoodSad, "down", models.PreferenceForeign))

	if !got["sad movies"] {
		t.Errorf("expected bare mood query, got %v", got)
	}
	for q := range got {
		if q == "sad bollywood movies" || q == "sad bollywood romantic movies" || q == "sad bollywood down" {
			t.Errorf("foreign preference must not include %q", q)
		}
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 queries, got %d: %v", len(got), got)
	}
}

func TestPlanLocalSkipsBareMoodQuery(t *testing.T) {
	p := New()
	got := asSet(p.Plan(models.MoodRelaxed, "", models.PreferenceLocal))

	if got["relaxed movies"] {
		t.Errorf("local preference must not include the bare mood query")
	}
	if !got["relaxed bollywood movies"] {
		t.Errorf("expected bollywood variant, got %v", got)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 queries, got %d: %v", len(got), got)
	}
}

func TestPlanLongUserTextNotSpliced(t *testing.T) {
	p := New()
	long := "today has been a very strange and tiring day"
	got := asSet(p.Plan(models.MoodBored, long, models.PreferenceMixed))

	for q := range got {
		if q == "bored movies "+long || q == "bored bollywood "+long {
			t.Errorf("long user text must not be spliced into queries")
		}
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 queries without splices, got %d: %v", len(got), got)
	}
}

func TestPlanUserTextLowercased(t *testing.T) {
	p := New()
	got := asSet(p.Plan(models.MoodHappy, "Beach Day", models.PreferenceForeign))
	if !got["happy movies beach day"] {
		t.Errorf("expected lower-cased splice query, got %v", got)
	}
}

func TestPlanSameSetAcrossSeeds(t *testing.T) {
	a := NewWithRand(rand.New(rand.NewPCG(1, 1)))
	b := NewWithRand(rand.New(rand.NewPCG(99, 7)))

	setA := asSet(a.Plan(models.MoodAngry, "so mad", models.PreferenceMixed))
	setB := asSet(b.Plan(models.MoodAngry, "so mad", models.PreferenceMixed))

	if len(setA) != len(setB) {
		t.Fatalf("plans differ in size: %d vs %d", len(setA), len(setB))
	}
	for q := range setA {
		if !setB[q] {
			t.Errorf("query %q missing under different seed", q)
		}
	}
}

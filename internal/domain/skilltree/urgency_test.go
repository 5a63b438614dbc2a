package skilltree

import (
	"reflect"
	"testing"
)

func TestScore_Formula(t *testing.T) {
	for prof := 0; prof <= 5; prof++ {
		for prio := 1; prio <= 3; prio++ {
			got := Score(Skill{Proficiency: prof, Priority: prio})
			want := prio * (5 - prof)
			if got != want {
				t.Fatalf("Score(prof=%d, prio=%d): expected %d, got %d", prof, prio, want, got)
			}
		}
	}
	if Score(Skill{Proficiency: 5, Priority: 3}) != 0 {
		t.Fatalf("mastered skill should score 0")
	}
	if Score(Skill{Proficiency: 0, Priority: 3}) != 15 {
		t.Fatalf("untouched top-priority skill should score 15")
	}
}

func TestRank_Order(t *testing.T) {
	skills := []Skill{
		{Name: "low", Proficiency: 4, Priority: 1},    // 1
		{Name: "high", Proficiency: 0, Priority: 3},   // 15
		{Name: "mid", Proficiency: 2, Priority: 2},    // 6
		{Name: "tie-a", Proficiency: 3, Priority: 3},  // 6
	}
	ranked := Rank(skills)
	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.Name)
	}
	// Stable sort keeps "mid" before "tie-a" on the score tie.
	want := []string{"high", "mid", "tie-a", "low"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected order %v, got %v", want, names)
	}
}

func TestRank_StableUnderRescoring(t *testing.T) {
	skills := []Skill{
		{Name: "a", Proficiency: 2, Priority: 3},
		{Name: "b", Proficiency: 1, Priority: 2},
		{Name: "c", Proficiency: 2, Priority: 3},
	}
	first := Rank(skills)
	second := Rank(skills)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ranking twice diverged: %v vs %v", first, second)
	}
}

func TestTopN(t *testing.T) {
	skills := []Skill{
		{Name: "a", Proficiency: 4, Priority: 1},
		{Name: "b", Proficiency: 0, Priority: 3},
		{Name: "c", Proficiency: 2, Priority: 2},
	}
	top := TopN(skills, 2)
	if len(top) != 2 || top[0].Name != "b" || top[1].Name != "c" {
		t.Fatalf("unexpected top 2: %+v", top)
	}
	if got := TopN(skills, 10); len(got) != 3 {
		t.Fatalf("expected clamp to len, got %d", len(got))
	}
	if got := TopN(skills, -1); len(got) != 0 {
		t.Fatalf("expected empty for negative n, got %d", len(got))
	}
}

func TestTableOrder(t *testing.T) {
	skills := []Skill{
		{Name: "z", Path: "B", Proficiency: 0, Priority: 1}, // B, 5
		{Name: "y", Path: "A", Proficiency: 4, Priority: 1}, // A, 1
		{Name: "x", Path: "A", Proficiency: 0, Priority: 2}, // A, 10
	}
	got := TableOrder(skills)
	if got[0].Name != "x" || got[1].Name != "y" || got[2].Name != "z" {
		t.Fatalf("unexpected table order: %+v", got)
	}
}

func TestProficiencyColor_Buckets(t *testing.T) {
	cases := map[int]string{
		0: "#e0e0e0",
		1: "#ffcccc",
		2: "#fff4cc",
		3: "#fff4cc",
		4: "#ccffcc",
		5: "#ccffcc",
	}
	for prof, want := range cases {
		if got := ProficiencyColor(prof); got != want {
			t.Fatalf("ProficiencyColor(%d): expected %s, got %s", prof, want, got)
		}
	}
}

package skilltree

import "sort"

// Score is the urgency of a skill: priority weighted by how far
// proficiency is from mastery. 0 when fully proficient, 15 at the
// extreme (priority 3, proficiency 0).
func Score(s Skill) int {
	return s.Priority * (MaxProficiency - s.Proficiency)
}

// ScoredSkill pairs a skill with its derived urgency. The score is never
// persisted; it is recomputed from the stored fields on every read.
type ScoredSkill struct {
	Skill
	UrgencyScore int `json:"urgency_score"`
}

func scoreAll(skills []Skill) []ScoredSkill {
	out := make([]ScoredSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, ScoredSkill{Skill: s, UrgencyScore: Score(s)})
	}
	return out
}

// Rank returns the skills ordered most-urgent first. The sort is stable,
// so equal scores keep their stored order and ranking twice over the same
// input yields the same sequence.
func Rank(skills []Skill) []ScoredSkill {
	out := scoreAll(skills)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UrgencyScore > out[j].UrgencyScore
	})
	return out
}

// TopN returns the n most urgent skills in score-only order.
func TopN(skills []Skill, n int) []ScoredSkill {
	ranked := Rank(skills)
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// TableOrder returns the skills ordered for the list view: path
// ascending, then urgency descending within a path.
func TableOrder(skills []Skill) []ScoredSkill {
	out := scoreAll(skills)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].UrgencyScore > out[j].UrgencyScore
	})
	return out
}

// ProficiencyColor maps a proficiency level onto the four display
// buckets: untouched, weak, developing, strong. Out-of-range values fall
// into the outer buckets.
func ProficiencyColor(proficiency int) string {
	switch {
	case proficiency <= 0:
		return "#e0e0e0"
	case proficiency == 1:
		return "#ffcccc"
	case proficiency <= 3:
		return "#fff4cc"
	default:
		return "#ccffcc"
	}
}

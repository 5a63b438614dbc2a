package usecase

import (
	"context"
	"strings"

	"skill-atlas/internal/domain/skilltree"

	"github.com/google/uuid"
)

const (
	MoveUp   = "up"
	MoveDown = "down"
)

type AddSkillInput struct {
	Name        string
	Path        string
	Proficiency int
	Priority    int
	Memo        string
}

type UpdateSkillInput struct {
	Name        string
	Path        string
	Proficiency int
	Priority    int
	Memo        string
}

// ReplaceSkillRow is one row of a bulk table-edit save. A nil ID means
// the row is new and gets one minted.
type ReplaceSkillRow struct {
	ID          uuid.UUID
	Name        string
	Path        string
	Proficiency int
	Priority    int
	Memo        string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, profile string) ([]skilltree.ScoredSkill, bool, error)
	AddSkill(ctx context.Context, profile string, in AddSkillInput) (skilltree.Skill, error)
	UpdateSkill(ctx context.Context, profile string, id uuid.UUID, in UpdateSkillInput) (skilltree.Skill, error)
	DeleteSkill(ctx context.Context, profile string, id uuid.UUID) error
	MoveSkill(ctx context.Context, profile string, id uuid.UUID, direction string) error
	ReplaceSkills(ctx context.Context, profile string, rows []ReplaceSkillRow) error
}

type SkillService struct {
	docs *DocumentService
}

func NewSkillUsecase(docs *DocumentService) *SkillService {
	return &SkillService{docs: docs}
}

// ListSkills returns the stored order with derived urgency scores, plus
// the parse-warning flag from the underlying load.
func (u *SkillService) ListSkills(ctx context.Context, profile string) ([]skilltree.ScoredSkill, bool, error) {
	doc, warn, err := u.docs.Get(ctx, profile)
	if err != nil {
		return nil, false, err
	}
	out := make([]skilltree.ScoredSkill, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		out = append(out, skilltree.ScoredSkill{Skill: s, UrgencyScore: skilltree.Score(s)})
	}
	return out, warn, nil
}

func (u *SkillService) AddSkill(ctx context.Context, profile string, in AddSkillInput) (skilltree.Skill, error) {
	skill := skilltree.Skill{
		ID:          uuid.New(),
		Name:        in.Name,
		Path:        in.Path,
		Proficiency: in.Proficiency,
		Priority:    in.Priority,
		Memo:        in.Memo,
	}.Normalize()

	if err := skill.Validate(); err != nil {
		return skilltree.Skill{}, ErrInvalidInput
	}
	// The add form always files a skill under a category.
	if skill.Path == "" {
		return skilltree.Skill{}, ErrInvalidInput
	}

	err := u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		doc.Skills = append(doc.Skills, skill)
		return true, nil
	})
	if err != nil {
		return skilltree.Skill{}, err
	}
	return skill, nil
}

func (u *SkillService) UpdateSkill(ctx context.Context, profile string, id uuid.UUID, in UpdateSkillInput) (skilltree.Skill, error) {
	updated := skilltree.Skill{
		ID:          id,
		Name:        in.Name,
		Path:        in.Path,
		Proficiency: in.Proficiency,
		Priority:    in.Priority,
		Memo:        in.Memo,
	}.Normalize()

	if err := updated.Validate(); err != nil {
		return skilltree.Skill{}, ErrInvalidInput
	}

	err := u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		i := doc.IndexOf(id)
		if i < 0 {
			return false, ErrSkillNotFound
		}
		doc.Skills[i] = updated
		return true, nil
	})
	if err != nil {
		return skilltree.Skill{}, err
	}
	return updated, nil
}

func (u *SkillService) DeleteSkill(ctx context.Context, profile string, id uuid.UUID) error {
	return u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		i := doc.IndexOf(id)
		if i < 0 {
			return false, ErrSkillNotFound
		}
		doc.Skills = append(doc.Skills[:i], doc.Skills[i+1:]...)
		return true, nil
	})
}

// MoveSkill swaps the skill with its neighbor in the stored order. A
// move past either end is a no-op, not an error.
func (u *SkillService) MoveSkill(ctx context.Context, profile string, id uuid.UUID, direction string) error {
	direction = strings.ToLower(strings.TrimSpace(direction))
	if direction != MoveUp && direction != MoveDown {
		return ErrInvalidInput
	}

	return u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		i := doc.IndexOf(id)
		if i < 0 {
			return false, ErrSkillNotFound
		}
		j := i - 1
		if direction == MoveDown {
			j = i + 1
		}
		if j < 0 || j >= len(doc.Skills) {
			return false, nil
		}
		doc.Skills[i], doc.Skills[j] = doc.Skills[j], doc.Skills[i]
		return true, nil
	})
}

// ReplaceSkills is the bulk table-edit overwrite: the submitted rows
// become the profile's entire skill list, in the submitted order.
func (u *SkillService) ReplaceSkills(ctx context.Context, profile string, rows []ReplaceSkillRow) error {
	skills := make([]skilltree.Skill, 0, len(rows))
	for _, row := range rows {
		s := skilltree.Skill{
			ID:          row.ID,
			Name:        row.Name,
			Path:        row.Path,
			Proficiency: row.Proficiency,
			Priority:    row.Priority,
			Memo:        row.Memo,
		}.Normalize()
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if err := s.Validate(); err != nil {
			return ErrInvalidInput
		}
		skills = append(skills, s)
	}

	return u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		doc.Skills = skills
		return true, nil
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestAddSkill(t *testing.T) {
	repo := newMockRepo()
	uc := NewSkillUsecase(newTestDocs(repo))
	ctx := context.Background()

	created, err := uc.AddSkill(ctx, "default", AddSkillInput{
		Name: "SQL", Path: "Tech.DB", Proficiency: 1, Priority: 3,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected minted ID")
	}

	items, _, err := uc.ListSkills(ctx, "default")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "SQL" {
		t.Fatalf("unexpected skills: %+v", items)
	}
	if items[0].UrgencyScore != 12 {
		t.Fatalf("expected urgency 12, got %d", items[0].UrgencyScore)
	}
}

func TestAddSkill_Validation(t *testing.T) {
	uc := NewSkillUsecase(newTestDocs(newMockRepo()))
	ctx := context.Background()

	cases := []AddSkillInput{
		{Name: "", Path: "A", Proficiency: 1, Priority: 1},
		{Name: "  ", Path: "A", Proficiency: 1, Priority: 1},
		{Name: "ok", Path: "", Proficiency: 1, Priority: 1},
		{Name: "ok", Path: "A", Proficiency: 6, Priority: 1},
		{Name: "ok", Path: "A", Proficiency: -1, Priority: 1},
		{Name: "ok", Path: "A", Proficiency: 1, Priority: 0},
		{Name: "ok", Path: "A", Proficiency: 1, Priority: 4},
	}
	for _, in := range cases {
		if _, err := uc.AddSkill(ctx, "default", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestUpdateSkill(t *testing.T) {
	repo := newMockRepo()
	uc := NewSkillUsecase(newTestDocs(repo))
	ctx := context.Background()

	created, err := uc.AddSkill(ctx, "default", AddSkillInput{Name: "Go", Path: "Tech", Proficiency: 2, Priority: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	updated, err := uc.UpdateSkill(ctx, "default", created.ID, UpdateSkillInput{
		Name: "Golang", Path: "Tech.Lang", Proficiency: 3, Priority: 1, Memo: "generics",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Golang" || updated.Path != "Tech.Lang" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := uc.UpdateSkill(ctx, "default", uuid.New(), UpdateSkillInput{Name: "x", Proficiency: 1, Priority: 1}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestDeleteSkill(t *testing.T) {
	repo := newMockRepo()
	uc := NewSkillUsecase(newTestDocs(repo))
	ctx := context.Background()

	created, err := uc.AddSkill(ctx, "default", AddSkillInput{Name: "Go", Path: "Tech", Proficiency: 2, Priority: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := uc.DeleteSkill(ctx, "default", created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	items, _, _ := uc.ListSkills(ctx, "default")
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
	if err := uc.DeleteSkill(ctx, "default", created.ID); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestMoveSkill(t *testing.T) {
	repo := newMockRepo()
	uc := NewSkillUsecase(newTestDocs(repo))
	ctx := context.Background()

	a, _ := uc.AddSkill(ctx, "default", AddSkillInput{Name: "a", Path: "P", Proficiency: 1, Priority: 1})
	b, _ := uc.AddSkill(ctx, "default", AddSkillInput{Name: "b", Path: "P", Proficiency: 1, Priority: 1})

	if err := uc.MoveSkill(ctx, "default", b.ID, MoveUp); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	items, _, _ := uc.ListSkills(ctx, "default")
	if items[0].Name != "b" || items[1].Name != "a" {
		t.Fatalf("unexpected order: %+v", items)
	}

	// Moving past the edge is a quiet no-op.
	if err := uc.MoveSkill(ctx, "default", b.ID, MoveUp); err != nil {
		t.Fatalf("edge move failed: %v", err)
	}
	items, _, _ = uc.ListSkills(ctx, "default")
	if items[0].Name != "b" {
		t.Fatalf("edge move should not reorder: %+v", items)
	}

	if err := uc.MoveSkill(ctx, "default", a.ID, "sideways"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReplaceSkills(t *testing.T) {
	repo := newMockRepo()
	uc := NewSkillUsecase(newTestDocs(repo))
	ctx := context.Background()

	existing, _ := uc.AddSkill(ctx, "default", AddSkillInput{Name: "keep", Path: "P", Proficiency: 1, Priority: 1})

	err := uc.ReplaceSkills(ctx, "default", []ReplaceSkillRow{
		{ID: existing.ID, Name: "kept", Path: "P", Proficiency: 2, Priority: 2},
		{Name: "new", Path: "Q", Proficiency: 0, Priority: 3},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	items, _, _ := uc.ListSkills(ctx, "default")
	if len(items) != 2 {
		t.Fatalf("expected 2 skills, got %+v", items)
	}
	if items[0].ID != existing.ID || items[0].Name != "kept" {
		t.Fatalf("expected stable ID on edited row: %+v", items[0])
	}
	if items[1].ID == uuid.Nil {
		t.Fatalf("expected minted ID on new row")
	}

	err = uc.ReplaceSkills(ctx, "default", []ReplaceSkillRow{{Name: "", Path: "P", Proficiency: 1, Priority: 1}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

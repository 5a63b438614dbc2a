package usecase

import (
	"context"
	"errors"

	"skill-atlas/internal/domain/skilltree"
	"skill-atlas/internal/repository"
)

type ProfileUsecase interface {
	ListProfiles(ctx context.Context) ([]string, error)
	CreateProfile(ctx context.Context, name string) error
	RenameProfile(ctx context.Context, oldName, newName string) error
	DeleteProfile(ctx context.Context, name string) error
	ExportDocument(ctx context.Context, name string) (skilltree.Document, bool, error)
	ImportDocument(ctx context.Context, name string, doc ImportInput) error
}

// ImportInput mirrors the persisted document shape but keeps the slices
// as pointers so a payload missing either key is distinguishable from an
// empty one.
type ImportInput struct {
	Skills *[]skilltree.Skill `json:"skills"`
	Paths  *[]string          `json:"paths"`
}

type Profile struct {
	repo repository.ProfileRepository
	docs *DocumentService
}

func NewProfileUsecase(repo repository.ProfileRepository, docs *DocumentService) *Profile {
	return &Profile{repo: repo, docs: docs}
}

func (u *Profile) ListProfiles(ctx context.Context) ([]string, error) {
	names, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return names, nil
}

func (u *Profile) CreateProfile(ctx context.Context, name string) error {
	if err := u.repo.Create(ctx, name); err != nil {
		return mapRepoError(err)
	}
	u.docs.Invalidate(name)
	return nil
}

func (u *Profile) RenameProfile(ctx context.Context, oldName, newName string) error {
	if err := u.repo.Rename(ctx, oldName, newName); err != nil {
		return mapRepoError(err)
	}
	u.docs.Invalidate(oldName)
	u.docs.Invalidate(newName)
	return nil
}

func (u *Profile) DeleteProfile(ctx context.Context, name string) error {
	if err := u.repo.Delete(ctx, name); err != nil {
		return mapRepoError(err)
	}
	u.docs.Invalidate(name)
	return nil
}

func (u *Profile) ExportDocument(ctx context.Context, name string) (skilltree.Document, bool, error) {
	return u.docs.Get(ctx, name)
}

// ImportDocument overwrites the profile wholesale. Both keys must be
// present; skill IDs are re-minted where missing or duplicated.
func (u *Profile) ImportDocument(ctx context.Context, name string, in ImportInput) error {
	if in.Skills == nil || in.Paths == nil {
		return ErrInvalidInput
	}

	doc := skilltree.Document{Skills: *in.Skills, Paths: *in.Paths}
	for i := range doc.Skills {
		doc.Skills[i] = doc.Skills[i].Normalize()
	}
	doc.EnsureIDs()

	if err := u.repo.Save(ctx, name, doc); err != nil {
		return mapRepoError(err)
	}
	u.docs.Invalidate(name)
	return nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidName):
		return ErrInvalidInput
	case errors.Is(err, repository.ErrProfileExists):
		return ErrProfileExists
	case errors.Is(err, repository.ErrProfileNotFound):
		return ErrProfileNotFound
	case errors.Is(err, repository.ErrReservedProfile):
		return ErrReservedProfile
	default:
		return ErrInternal
	}
}

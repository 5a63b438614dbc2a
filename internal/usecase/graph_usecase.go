package usecase

import (
	"context"

	"skill-atlas/internal/domain/skilltree"
)

type GraphUsecase interface {
	Render(ctx context.Context, profile string, showSkills bool) (string, error)
}

type GraphService struct {
	docs  *DocumentService
	title string
}

func NewGraphUsecase(docs *DocumentService, title string) *GraphService {
	return &GraphService{docs: docs, title: title}
}

// Render returns the profile's category forest as Graphviz DOT text.
func (u *GraphService) Render(ctx context.Context, profile string, showSkills bool) (string, error) {
	doc, _, err := u.docs.Get(ctx, profile)
	if err != nil {
		return "", err
	}
	b := skilltree.DotBuilder{Title: u.title, ShowSkills: showSkills}
	return b.Build(doc), nil
}

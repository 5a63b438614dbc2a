package usecase

import (
	"context"

	"skill-atlas/internal/domain/skilltree"
)

type UrgencyUsecase interface {
	RankedTable(ctx context.Context, profile string) ([]skilltree.ScoredSkill, bool, error)
	Top(ctx context.Context, profile string, n int) ([]skilltree.ScoredSkill, error)
}

type UrgencyService struct {
	docs *DocumentService
}

func NewUrgencyUsecase(docs *DocumentService) *UrgencyService {
	return &UrgencyService{docs: docs}
}

// RankedTable returns the list-view order: path ascending, urgency
// descending within a path.
func (u *UrgencyService) RankedTable(ctx context.Context, profile string) ([]skilltree.ScoredSkill, bool, error) {
	doc, warn, err := u.docs.Get(ctx, profile)
	if err != nil {
		return nil, false, err
	}
	return skilltree.TableOrder(doc.Skills), warn, nil
}

// Top returns the n most urgent skills in score-only order.
func (u *UrgencyService) Top(ctx context.Context, profile string, n int) ([]skilltree.ScoredSkill, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	doc, _, err := u.docs.Get(ctx, profile)
	if err != nil {
		return nil, err
	}
	return skilltree.TopN(doc.Skills, n), nil
}

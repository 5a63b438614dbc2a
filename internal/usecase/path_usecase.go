package usecase

import (
	"context"
	"strings"

	"skill-atlas/internal/domain/skilltree"
)

// PathListing is everything the hierarchical selection UI needs: the
// effective path set and the nested tree built from it.
type PathListing struct {
	Paths []string          `json:"paths"`
	Tree  skilltree.PathTree `json:"tree"`
}

type PathUsecase interface {
	ListPaths(ctx context.Context, profile string) (PathListing, error)
	AddChildPath(ctx context.Context, profile, parent, segment string) (string, error)
	AddManualPath(ctx context.Context, profile, path string) (string, error)
	RenamePath(ctx context.Context, profile, oldPath, newPath string, recursive bool) (int, error)
	DeletePath(ctx context.Context, profile, path string) error
}

type PathService struct {
	docs *DocumentService
}

func NewPathUsecase(docs *DocumentService) *PathService {
	return &PathService{docs: docs}
}

func (u *PathService) ListPaths(ctx context.Context, profile string) (PathListing, error) {
	doc, _, err := u.docs.Get(ctx, profile)
	if err != nil {
		return PathListing{}, err
	}
	paths := skilltree.EffectivePaths(doc)
	return PathListing{Paths: paths, Tree: skilltree.BuildPathTree(paths)}, nil
}

// AddChildPath registers a new defined path one level below parent (or
// at the top level when parent is empty). The segment is sanitized so it
// can never span levels.
func (u *PathService) AddChildPath(ctx context.Context, profile, parent, segment string) (string, error) {
	segment = skilltree.SanitizeSegment(segment)
	if segment == "" {
		return "", ErrInvalidInput
	}

	parent = strings.TrimSpace(parent)
	newPath := segment
	if parent != "" {
		newPath = parent + "." + segment
	}
	return newPath, u.addDefinedPath(ctx, profile, newPath)
}

// AddManualPath registers a full dot-delimited path typed by hand.
func (u *PathService) AddManualPath(ctx context.Context, profile, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || len(skilltree.SplitPath(path)) == 0 {
		return "", ErrInvalidInput
	}
	return path, u.addDefinedPath(ctx, profile, path)
}

func (u *PathService) addDefinedPath(ctx context.Context, profile, path string) error {
	return u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		for _, p := range doc.Paths {
			if p == path {
				return false, ErrPathExists
			}
		}
		doc.Paths = skilltree.SortedUniquePaths(append(doc.Paths, path))
		return true, nil
	})
}

// RenamePath cascades oldPath -> newPath through the profile's skills
// and defined paths and returns the number of skills updated.
func (u *PathService) RenamePath(ctx context.Context, profile, oldPath, newPath string, recursive bool) (int, error) {
	oldPath = strings.TrimSpace(oldPath)
	newPath = strings.TrimSpace(newPath)
	if oldPath == "" || newPath == "" || oldPath == newPath {
		return 0, ErrInvalidInput
	}

	updated := 0
	err := u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		count, changed := skilltree.RewriteDocumentPaths(doc, oldPath, newPath, recursive)
		updated = count
		return changed, nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// DeletePath removes the defined-path entry only. Skills still
// referencing it keep their path strings and the node lives on as an
// implied path.
func (u *PathService) DeletePath(ctx context.Context, profile, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrInvalidInput
	}
	return u.docs.Mutate(ctx, profile, func(doc *skilltree.Document) (bool, error) {
		if !skilltree.RemoveDefinedPath(doc, path) {
			return false, ErrPathNotFound
		}
		return true, nil
	})
}

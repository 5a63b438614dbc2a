package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"skill-atlas/internal/domain/skilltree"
	"skill-atlas/internal/repository"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrReservedProfile = errors.New("profile is reserved")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrPathExists      = errors.New("path already exists")
	ErrPathNotFound    = errors.New("path not found")
)

// MutationListener is invoked after every successful write to a profile.
type MutationListener func(profile string, revision uint64)

// DocumentService is the single gate to profile documents: every read
// goes through the revision-keyed cache, every write reloads, transforms
// and rewrites the whole document under one mutex and bumps the
// profile's revision, which both invalidates the cache and feeds the
// mutation listener.
type DocumentService struct {
	repo   repository.ProfileRepository
	cache  DocumentCache
	logger *log.Logger

	mu        sync.Mutex
	revisions map[string]uint64
	listener  MutationListener
}

func NewDocumentService(repo repository.ProfileRepository, cache DocumentCache, logger *log.Logger) *DocumentService {
	return &DocumentService{
		repo:      repo,
		cache:     cache,
		logger:    logger,
		revisions: make(map[string]uint64),
	}
}

// SetMutationListener registers the single listener notified on writes.
// Call before serving traffic.
func (s *DocumentService) SetMutationListener(fn MutationListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}

// Get returns the profile's document plus a parse-warning flag. A
// document loaded from disk with missing or colliding skill IDs is
// healed and written back, so IDs handed to the UI stay addressable.
func (s *DocumentService) Get(ctx context.Context, profile string) (skilltree.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(ctx, profile)
}

func (s *DocumentService) getLocked(ctx context.Context, profile string) (skilltree.Document, bool, error) {
	key := documentCacheKey(profile, s.revisions[profile])
	if doc, ok := s.cache.Get(key); ok {
		return doc, false, nil
	}

	doc, warn, err := s.repo.Load(ctx, profile)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidName) {
			return skilltree.EmptyDocument(), false, ErrInvalidInput
		}
		s.warnf("load failed | profile=%s error=%v", profile, err)
		return skilltree.EmptyDocument(), false, ErrInternal
	}
	if warn {
		s.warnf("document substituted with empty after parse failure | profile=%s", profile)
	}

	if doc.EnsureIDs() {
		if err := s.repo.Save(ctx, profile, doc); err != nil {
			s.warnf("healed IDs not persisted | profile=%s error=%v", profile, err)
		}
	}

	s.cache.Set(key, doc)
	return doc, warn, nil
}

// Mutate loads the profile's document, applies fn and persists the
// result if fn reports a change. The revision is bumped and the listener
// notified only when something was written.
func (s *DocumentService) Mutate(ctx context.Context, profile string, fn func(doc *skilltree.Document) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, _, err := s.getLocked(ctx, profile)
	if err != nil {
		return err
	}

	changed, err := fn(&doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := s.repo.Save(ctx, profile, doc); err != nil {
		s.warnf("save failed | profile=%s error=%v", profile, err)
		return ErrInternal
	}
	rev := s.bumpLocked(profile)
	s.cache.Set(documentCacheKey(profile, rev), doc)
	s.notifyLocked(profile, rev)
	return nil
}

// Invalidate drops any cached state for a profile and notifies the
// listener. Used by profile-level operations (create, rename, delete,
// import) that change storage outside Mutate.
func (s *DocumentService) Invalidate(profile string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rev := s.bumpLocked(profile)
	s.notifyLocked(profile, rev)
}

func (s *DocumentService) bumpLocked(profile string) uint64 {
	s.cache.Delete(documentCacheKey(profile, s.revisions[profile]))
	s.revisions[profile]++
	return s.revisions[profile]
}

func (s *DocumentService) notifyLocked(profile string, revision uint64) {
	if s.listener == nil {
		return
	}
	// The listener runs on its own goroutine so a slow consumer never
	// holds the document lock.
	go s.listener(profile, revision)
}

func (s *DocumentService) warnf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf("[Documents] "+format, args...)
	}
}

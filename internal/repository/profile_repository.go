package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"skill-atlas/internal/domain/skilltree"
)

// DefaultProfile always exists and can never be renamed or deleted.
const DefaultProfile = "default"

const (
	profileExt     = ".json"
	legacyTreeFile = "skilltree.json"
)

// Obsolete files the pre-profile folder layout left next to the tree.
var legacySiblings = []string{"skills.json", "paths.json"}

var (
	ErrInvalidName     = errors.New("invalid profile name")
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrReservedProfile = errors.New("profile is reserved")
)

// ProfileRepository maps profile names to persisted skill-tree documents.
// Load's second return reports a parse warning: the stored file existed
// but could not be decoded, so an empty document was substituted.
type ProfileRepository interface {
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, name string) (bool, error)
	Load(ctx context.Context, name string) (skilltree.Document, bool, error)
	Save(ctx context.Context, name string, doc skilltree.Document) error
	Create(ctx context.Context, name string) error
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}

// ValidateProfileName enforces the filename rules: trimmed non-empty, no
// filesystem-reserved characters, not a relative-path token.
func ValidateProfileName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name {
		return ErrInvalidName
	}
	if name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `\/:*?"<>|`) {
		return ErrInvalidName
	}
	return nil
}

// FileProfileRepository stores one pretty-printed JSON document per
// profile under a data directory. Writes go through a temp file and a
// rename, so a document is always replaced whole or not at all.
type FileProfileRepository struct {
	dir    string
	logger *log.Logger
}

func NewFileProfileRepository(dir string, logger *log.Logger) (*FileProfileRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	r := &FileProfileRepository{dir: dir, logger: logger}
	r.migrateLegacyLayout()

	if err := r.ensureDefault(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileProfileRepository) path(name string) string {
	return filepath.Join(r.dir, name+profileExt)
}

func (r *FileProfileRepository) ensureDefault() error {
	if _, err := os.Stat(r.path(DefaultProfile)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return r.Save(context.Background(), DefaultProfile, skilltree.EmptyDocument())
}

// migrateLegacyLayout moves the old per-profile-folder layout
// (<dir>/<name>/skilltree.json plus obsolete siblings) into the current
// single-file scheme. Every failure is swallowed: migration is
// best-effort and a leftover folder only costs a warning.
func (r *FileProfileRepository) migrateLegacyLayout() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if ValidateProfileName(name) != nil {
			continue
		}

		legacyDir := filepath.Join(r.dir, name)
		src := filepath.Join(legacyDir, legacyTreeFile)
		if _, err := os.Stat(src); err != nil {
			continue
		}

		dst := r.path(name)
		if _, err := os.Stat(dst); err == nil {
			// Already migrated once; leave the folder's copy alone.
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			r.warnf("legacy migration skipped | profile=%s error=%v", name, err)
			continue
		}
		for _, sibling := range legacySiblings {
			_ = os.Remove(filepath.Join(legacyDir, sibling))
		}
		if err := os.Remove(legacyDir); err != nil {
			r.warnf("legacy folder not removed | profile=%s error=%v", name, err)
		}
	}
}

func (r *FileProfileRepository) warnf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf("[ProfileStore] "+format, args...)
	}
}

func (r *FileProfileRepository) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	names := make([]string, 0, len(entries)+1)
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), profileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), profileExt)
		if ValidateProfileName(name) != nil || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if !seen[DefaultProfile] {
		names = append(names, DefaultProfile)
	}
	sort.Strings(names)
	return names, nil
}

func (r *FileProfileRepository) Exists(_ context.Context, name string) (bool, error) {
	if name == DefaultProfile {
		return true, nil
	}
	if err := ValidateProfileName(name); err != nil {
		return false, nil
	}
	_, err := os.Stat(r.path(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (r *FileProfileRepository) Load(_ context.Context, name string) (skilltree.Document, bool, error) {
	if err := ValidateProfileName(name); err != nil {
		return skilltree.EmptyDocument(), false, err
	}

	raw, err := os.ReadFile(r.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return skilltree.EmptyDocument(), false, nil
		}
		return skilltree.EmptyDocument(), false, fmt.Errorf("read profile %s: %w", name, err)
	}

	var doc skilltree.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.warnf("unparsable document, substituting empty | profile=%s error=%v", name, err)
		return skilltree.EmptyDocument(), true, nil
	}
	if doc.Skills == nil {
		doc.Skills = []skilltree.Skill{}
	}
	if doc.Paths == nil {
		doc.Paths = []string{}
	}
	return doc, false, nil
}

func (r *FileProfileRepository) Save(_ context.Context, name string, doc skilltree.Document) error {
	if err := ValidateProfileName(name); err != nil {
		return err
	}
	if doc.Skills == nil {
		doc.Skills = []skilltree.Skill{}
	}
	if doc.Paths == nil {
		doc.Paths = []string{}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write profile %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write profile %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write profile %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), r.path(name)); err != nil {
		return fmt.Errorf("write profile %s: %w", name, err)
	}
	return nil
}

func (r *FileProfileRepository) Create(ctx context.Context, name string) error {
	if err := ValidateProfileName(name); err != nil {
		return err
	}
	ok, err := r.Exists(ctx, name)
	if err != nil {
		return err
	}
	if ok {
		return ErrProfileExists
	}
	return r.Save(ctx, name, skilltree.EmptyDocument())
}

func (r *FileProfileRepository) Rename(ctx context.Context, oldName, newName string) error {
	if oldName == DefaultProfile {
		return ErrReservedProfile
	}
	if err := ValidateProfileName(newName); err != nil {
		return err
	}
	if newName == oldName {
		return ErrInvalidName
	}

	ok, err := r.Exists(ctx, oldName)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProfileNotFound
	}
	ok, err = r.Exists(ctx, newName)
	if err != nil {
		return err
	}
	if ok {
		return ErrProfileExists
	}

	if err := os.Rename(r.path(oldName), r.path(newName)); err != nil {
		return fmt.Errorf("rename profile %s: %w", oldName, err)
	}
	return nil
}

func (r *FileProfileRepository) Delete(_ context.Context, name string) error {
	if name == DefaultProfile {
		return ErrReservedProfile
	}
	if err := ValidateProfileName(name); err != nil {
		return err
	}
	if err := os.Remove(r.path(name)); err != nil {
		if os.IsNotExist(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	return nil
}

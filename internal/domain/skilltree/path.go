package skilltree

import (
	"sort"
	"strings"
)

// PathTree is a nested mapping keyed by path segment, used to drive
// hierarchical selection in the UI.
type PathTree map[string]PathTree

// SplitPath splits a dot-delimited path into trimmed segments, dropping
// empty ones. "A. B..C " becomes ["A", "B", "C"].
func SplitPath(path string) []string {
	parts := strings.Split(path, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// BuildPathTree inserts each path's segment chain into a nested mapping.
func BuildPathTree(paths []string) PathTree {
	tree := PathTree{}
	for _, p := range paths {
		current := tree
		for _, part := range SplitPath(p) {
			next, ok := current[part]
			if !ok {
				next = PathTree{}
				current[part] = next
			}
			current = next
		}
	}
	return tree
}

// EffectivePaths returns the union of the document's defined paths and the
// non-empty paths implied by its skills, preserving order of first
// appearance (defined first).
func EffectivePaths(doc Document) []string {
	seen := make(map[string]bool, len(doc.Paths)+len(doc.Skills))
	out := make([]string, 0, len(doc.Paths)+len(doc.Skills))
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, p := range doc.Paths {
		add(p)
	}
	for _, s := range doc.Skills {
		add(s.Path)
	}
	return out
}

// RewritePath applies a rename of oldPath to newPath to a single path
// value. An exact match is always replaced; with recursive set, a
// dot-boundary descendant has its oldPath prefix replaced and the
// remainder kept verbatim. The prefix test is a literal oldPath+"."
// comparison, so "a.bc" is not a descendant of "a.b" — and neither is
// "a.b " with trailing whitespace, which matches the historic behavior.
func RewritePath(path, oldPath, newPath string, recursive bool) (string, bool) {
	if path == oldPath {
		return newPath, true
	}
	if recursive && strings.HasPrefix(path, oldPath+".") {
		return newPath + path[len(oldPath):], true
	}
	return path, false
}

// RewriteDocumentPaths cascades a path rename through a document: every
// skill path and defined path is rewritten per RewritePath, and the
// defined-paths list is deduplicated and sorted afterwards. It returns
// the number of skills updated (defined-path changes are not counted)
// and whether anything in the document changed.
func RewriteDocumentPaths(doc *Document, oldPath, newPath string, recursive bool) (int, bool) {
	updated := 0
	for i := range doc.Skills {
		if p, ok := RewritePath(doc.Skills[i].Path, oldPath, newPath, recursive); ok {
			doc.Skills[i].Path = p
			updated++
		}
	}

	pathsChanged := false
	rewritten := make([]string, 0, len(doc.Paths))
	for _, p := range doc.Paths {
		np, ok := RewritePath(p, oldPath, newPath, recursive)
		if ok {
			pathsChanged = true
		}
		rewritten = append(rewritten, np)
	}
	if pathsChanged {
		doc.Paths = SortedUniquePaths(rewritten)
	}

	return updated, updated > 0 || pathsChanged
}

// RemoveDefinedPath drops an exact entry from the defined-paths list.
// Skills referencing the path are untouched; the node survives as an
// implied path for as long as any skill uses it.
func RemoveDefinedPath(doc *Document, path string) bool {
	out := doc.Paths[:0]
	removed := false
	for _, p := range doc.Paths {
		if p == path {
			removed = true
			continue
		}
		out = append(out, p)
	}
	doc.Paths = out
	return removed
}

// SortedUniquePaths deduplicates and sorts a path list, the form the
// defined-paths list is persisted in after any path mutation.
func SortedUniquePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// SanitizeSegment prepares user input for use as a single path segment:
// whitespace is trimmed and literal dots are replaced with underscores so
// a segment can never split into multiple levels.
func SanitizeSegment(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ".", "_")
}

package skilltree

import (
	"reflect"
	"testing"
)

func TestSplitPath(t *testing.T) {
	got := SplitPath(" A . B ..C ")
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := SplitPath(""); len(got) != 0 {
		t.Fatalf("expected no segments for empty path, got %v", got)
	}
}

func TestBuildPathTree(t *testing.T) {
	tree := BuildPathTree([]string{"A.B", "A.C", "D"})

	a, ok := tree["A"]
	if !ok {
		t.Fatalf("expected node A, got %v", tree)
	}
	if _, ok := a["B"]; !ok {
		t.Fatalf("expected node A.B")
	}
	if _, ok := a["C"]; !ok {
		t.Fatalf("expected node A.C")
	}
	d, ok := tree["D"]
	if !ok || len(d) != 0 {
		t.Fatalf("expected empty leaf D, got %v", tree)
	}
	if len(tree) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(tree))
	}
}

func TestRewritePath_Recursive(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		changed bool
	}{
		{"a.b", "x.y", true},
		{"a.b.c", "x.y.c", true},
		{"a.bc", "a.bc", false},
	}
	for _, c := range cases {
		got, changed := RewritePath(c.in, "a.b", "x.y", true)
		if got != c.want || changed != c.changed {
			t.Fatalf("RewritePath(%q): expected (%q, %v), got (%q, %v)", c.in, c.want, c.changed, got, changed)
		}
	}
}

func TestRewritePath_NonRecursive(t *testing.T) {
	if got, changed := RewritePath("a.b", "a.b", "x.y", false); got != "x.y" || !changed {
		t.Fatalf("exact match should rewrite, got (%q, %v)", got, changed)
	}
	if got, changed := RewritePath("a.b.c", "a.b", "x.y", false); got != "a.b.c" || changed {
		t.Fatalf("descendant should be untouched without recursive, got (%q, %v)", got, changed)
	}
}

// A stored path equal to the old path plus trailing whitespace is neither
// an exact match nor a dot-boundary descendant, so it survives a rename
// untouched. This keeps the historic literal-prefix behavior.
func TestRewritePath_TrailingWhitespaceNotMatched(t *testing.T) {
	got, changed := RewritePath("a.b ", "a.b", "x.y", true)
	if changed || got != "a.b " {
		t.Fatalf("expected no rewrite, got (%q, %v)", got, changed)
	}
}

func TestRewriteDocumentPaths(t *testing.T) {
	doc := Document{
		Skills: []Skill{
			{Name: "one", Path: "a.b"},
			{Name: "two", Path: "a.b.c"},
			{Name: "three", Path: "a.bc"},
		},
		Paths: []string{"a.b", "a.b.c", "z"},
	}

	updated, changed := RewriteDocumentPaths(&doc, "a.b", "x.y", true)
	if updated != 2 {
		t.Fatalf("expected 2 skills updated, got %d", updated)
	}
	if !changed {
		t.Fatalf("expected document change")
	}
	if doc.Skills[0].Path != "x.y" || doc.Skills[1].Path != "x.y.c" || doc.Skills[2].Path != "a.bc" {
		t.Fatalf("unexpected skill paths: %+v", doc.Skills)
	}
	want := []string{"x.y", "x.y.c", "z"}
	if !reflect.DeepEqual(doc.Paths, want) {
		t.Fatalf("expected defined paths %v, got %v", want, doc.Paths)
	}
}

func TestRewriteDocumentPaths_DedupesDefined(t *testing.T) {
	doc := Document{
		Paths: []string{"a.b", "x.y"},
	}
	_, changed := RewriteDocumentPaths(&doc, "a.b", "x.y", true)
	if !changed {
		t.Fatalf("expected change")
	}
	if !reflect.DeepEqual(doc.Paths, []string{"x.y"}) {
		t.Fatalf("expected deduplicated paths, got %v", doc.Paths)
	}
}

func TestEffectivePaths_Order(t *testing.T) {
	doc := Document{
		Skills: []Skill{
			{Name: "s1", Path: "Impl.One"},
			{Name: "s2", Path: "Def.A"},
			{Name: "s3", Path: ""},
		},
		Paths: []string{"Def.A", "Def.B"},
	}
	got := EffectivePaths(doc)
	want := []string{"Def.A", "Def.B", "Impl.One"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveDefinedPath(t *testing.T) {
	doc := Document{
		Skills: []Skill{{Name: "s", Path: "a.b"}},
		Paths:  []string{"a.b", "c"},
	}
	if !RemoveDefinedPath(&doc, "a.b") {
		t.Fatalf("expected removal")
	}
	if !reflect.DeepEqual(doc.Paths, []string{"c"}) {
		t.Fatalf("unexpected paths: %v", doc.Paths)
	}
	// The skill keeps its path string; the node survives as implied.
	if doc.Skills[0].Path != "a.b" {
		t.Fatalf("skill path should be untouched, got %q", doc.Skills[0].Path)
	}
	if RemoveDefinedPath(&doc, "missing") {
		t.Fatalf("expected no removal for unknown path")
	}
}

func TestSanitizeSegment(t *testing.T) {
	if got := SanitizeSegment(" a.b "); got != "a_b" {
		t.Fatalf("expected a_b, got %q", got)
	}
}

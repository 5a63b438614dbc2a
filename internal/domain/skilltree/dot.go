package skilltree

import (
	"fmt"
	"sort"
	"strings"
)

// DotBuilder renders a profile's category forest as a Graphviz digraph
// description. Output is deterministic: nodes, edges and rank groups are
// emitted sorted, so identical input produces byte-identical text.
type DotBuilder struct {
	// Title labels the synthetic root every top-level category hangs off.
	Title string
	// ShowSkills adds one leaf node per skill under its deepest segment.
	ShowSkills bool
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Build produces the DOT text for the document.
func (b DotBuilder) Build(doc Document) string {
	var out []string
	out = append(out,
		"digraph G {",
		"  rankdir=LR;",
		`  node [fontname="sans-serif", shape=box, style="filled,rounded", fillcolor="#f0f2f6"];`,
	)

	root := b.Title
	if root == "" {
		root = "Skill Atlas"
	}

	edges := make(map[string]bool)
	levels := make(map[int]map[string]bool)
	addLevel := func(depth int, node string) {
		if levels[depth] == nil {
			levels[depth] = make(map[string]bool)
		}
		levels[depth][node] = true
	}
	addLevel(0, quote(root))

	paths := EffectivePaths(doc)
	sort.Strings(paths)

	for _, path := range paths {
		parent := root
		for i, part := range SplitPath(path) {
			edges[quote(parent)+" -> "+quote(part)] = true
			addLevel(i+1, quote(part))
			parent = part
		}
	}

	var leaves []string
	if b.ShowSkills {
		for _, s := range doc.Skills {
			parts := SplitPath(s.Path)
			parent := root
			if len(parts) > 0 {
				parent = parts[len(parts)-1]
			}

			label := s.Name + " " + strings.Repeat("*", clampPriority(s.Priority))
			// Skills sharing (name, path) share a leaf ID and render as one node.
			leafID := fmt.Sprintf("skill_%s_%s", s.Name, s.Path)
			leaves = append(leaves, fmt.Sprintf("  %s [label=%s, shape=note, fillcolor=%s];",
				quote(leafID), quote(label), quote(ProficiencyColor(s.Proficiency))))

			edges[quote(parent)+" -> "+quote(leafID)] = true
			addLevel(len(parts)+1, quote(leafID))
		}
	}

	sort.Strings(leaves)
	out = append(out, dedupeSorted(leaves)...)

	edgeLines := make([]string, 0, len(edges))
	for e := range edges {
		edgeLines = append(edgeLines, e)
	}
	sort.Strings(edgeLines)
	for _, e := range edgeLines {
		out = append(out, "  "+e+";")
	}

	depths := make([]int, 0, len(levels))
	for d := range levels {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	for _, d := range depths {
		if len(levels[d]) < 2 {
			continue
		}
		nodes := make([]string, 0, len(levels[d]))
		for n := range levels[d] {
			nodes = append(nodes, n)
		}
		sort.Strings(nodes)
		out = append(out, "  { rank=same; "+strings.Join(nodes, "; ")+" }")
	}

	out = append(out, "}")
	return strings.Join(out, "\n")
}

func clampPriority(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

func dedupeSorted(lines []string) []string {
	out := lines[:0]
	var prev string
	for i, l := range lines {
		if i > 0 && l == prev {
			continue
		}
		out = append(out, l)
		prev = l
	}
	return out
}

package object

// MergeTree overlays overrides onto base at a single tree level.
//
// The result holds every base entry whose name is not overridden, in base
// order, followed by the overrides in their own order. An overridden entry is
// therefore moved to the end rather than replaced in place. If overrides
// repeat a name, only the last occurrence is kept. Subtrees are not walked.
func MergeTree(base, overrides []TreeEntry) []TreeEntry {
	last := make(map[string]int, len(overrides))
	for i, e := range overrides {
		last[e.Name] = i
	}

	merged := make([]TreeEntry, 0, len(base)+len(overrides))
	for _, e := range base {
		if _, replaced := last[e.Name]; !replaced {
			merged = append(merged, e)
		}
	}
	for i, e := range overrides {
		if last[e.Name] == i {
			merged = append(merged, e)
		}
	}
	return merged
}

package model

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultMinGroupPrefix is the shortest common prefix (in characters) that
// puts two files into the same group
const DefaultMinGroupPrefix = 3

// groupPrefixTrimSet is stripped from the end of a group prefix so that
// "clip_01", "clip_02" group under "clip"
const groupPrefixTrimSet = "0123456789-_"

// FileGroup is a run of file names sharing a common prefix
type FileGroup struct {
	Prefix string   `json:"prefix"`
	Files  []string `json:"files"`
}

// IsSingle reports whether the group holds exactly one file
func (g FileGroup) IsSingle() bool {
	return len(g.Files) == 1
}

// DisplayName returns the file name for single groups, otherwise the prefix,
// falling back to the first file when the prefix trimmed down to nothing
func (g FileGroup) DisplayName() string {
	if len(g.Files) == 0 {
		return g.Prefix
	}
	if g.IsSingle() || g.Prefix == "" {
		return g.Files[0]
	}
	return g.Prefix
}

// LongestCommonPrefix returns the longest prefix shared by a and b. It never
// ends inside a multi-byte character.
func LongestCommonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) {
		ra, size := utf8.DecodeRuneInString(a[i:])
		rb, sizeB := utf8.DecodeRuneInString(b[i:])
		if ra != rb || size != sizeB || (ra == utf8.RuneError && a[i] != b[i]) {
			break
		}
		i += size
	}
	return a[:i]
}

// GroupFilesByPrefix groups file names that share at least minPrefix leading
// characters with the first name of the group. Names are processed in sorted
// order; the input slice is not modified.
func GroupFilesByPrefix(files []string, minPrefix int) []FileGroup {
	if len(files) == 0 {
		return []FileGroup{}
	}
	if minPrefix < 1 {
		minPrefix = DefaultMinGroupPrefix
	}

	sorted := slices.Clone(files)
	slices.Sort(sorted)

	groups := make([]FileGroup, 0)
	used := make([]bool, len(sorted))

	for i, current := range sorted {
		if used[i] {
			continue
		}
		used[i] = true
		group := FileGroup{Prefix: current, Files: []string{current}}

		for j := i + 1; j < len(sorted); j++ {
			if used[j] {
				continue
			}
			prefix := LongestCommonPrefix(current, sorted[j])
			if utf8.RuneCountInString(prefix) < minPrefix {
				continue
			}
			group.Files = append(group.Files, sorted[j])
			used[j] = true
			if len(prefix) < len(group.Prefix) {
				group.Prefix = prefix
			}
		}

		group.Prefix = strings.TrimRight(group.Prefix, groupPrefixTrimSet)
		groups = append(groups, group)
	}

	return groups
}

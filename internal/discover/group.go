package discover

import (
	"strings"

	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// Group is a set of stems judged to share a naming pattern.
type Group struct {
	// Stems in admission order; the seed comes first.
	Stems []string
	// Prefix is the common prefix recomputed over all of Stems.
	Prefix string
}

// Pattern is a group that made it into the report.
type Pattern struct {
	Prefix string
	Count  int
}

// String renders the pattern description, e.g. "kick_0*".
func (p Pattern) String() string {
	return p.Prefix + sampleorg.PatternWildcard
}

// Partition splits stems into groups in formation order. Every stem lands in
// exactly one group. stems is not modified.
func Partition(stems []string) []Group {
	ungrouped := make([]string, len(stems))
	copy(ungrouped, stems)

	var groups []Group
	for len(ungrouped) > 0 {
		seed := ungrouped[0]
		ungrouped = ungrouped[1:]

		members := []string{seed}
		running := seed

		// Admitted candidates are removed in place, so i only advances on a miss.
		i := 0
		for i < len(ungrouped) {
			candidate := ungrouped[i]
			lcp := LongestCommonPrefix([]string{running, candidate})
			if prefixLen(lcp) >= sampleorg.MinPatternPrefixLength {
				members = append(members, candidate)
				ungrouped = append(ungrouped[:i], ungrouped[i+1:]...)
				running = lcp
				continue
			}
			i++
		}

		groups = append(groups, Group{
			Stems:  members,
			Prefix: LongestCommonPrefix(members),
		})
	}
	return groups
}

// SelectPatterns turns groups into report entries, dropping groups whose
// prefix is empty or was already reported (case-insensitively) earlier in
// the same slice.
func SelectPatterns(groups []Group) []Pattern {
	seen := make(map[string]struct{}, len(groups))
	patterns := make([]Pattern, 0, len(groups))
	for _, g := range groups {
		if g.Prefix == "" {
			continue
		}
		key := strings.ToLower(g.Prefix)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		patterns = append(patterns, Pattern{Prefix: g.Prefix, Count: len(g.Stems)})
	}
	return patterns
}

// DiscoverPatterns reports the naming patterns of one folder's stems.
func DiscoverPatterns(stems []string) []Pattern {
	return SelectPatterns(Partition(stems))
}

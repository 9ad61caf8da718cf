package discover

import (
	"unicode"
	"unicode/utf8"
)

// LongestCommonPrefix returns the longest prefix shared by every string in
// strs, comparing code points case-insensitively. The result is taken from
// strs[0], so it keeps the casing of the first string. An empty input yields "".
func LongestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	first := strs[0]
	rest := make([]string, len(strs)-1)
	copy(rest, strs[1:])

	end := 0
	for end < len(first) {
		r, size := utf8.DecodeRuneInString(first[end:])
		want := unicode.ToLower(r)
		for j, s := range rest {
			c, csize := utf8.DecodeRuneInString(s)
			if csize == 0 || unicode.ToLower(c) != want {
				return first[:end]
			}
			// Invalid bytes all decode to RuneError; only the same byte matches.
			if r == utf8.RuneError && first[end:end+size] != s[:csize] {
				return first[:end]
			}
			rest[j] = s[csize:]
		}
		end += size
	}
	return first[:end]
}

// prefixLen is the length of s in code points.
func prefixLen(s string) int {
	return utf8.RuneCountInString(s)
}

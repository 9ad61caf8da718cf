// Package categorize assigns samples to categories using the regular
// expressions of a category table.
package categorize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vvka-141/sampleorg/internal/config"
	"github.com/vvka-141/sampleorg/internal/files/filesystem"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

type rule struct {
	category string
	patterns []*regexp.Regexp
}

// Categorizer matches sample file names against compiled category patterns.
// Safe for concurrent use once constructed.
type Categorizer struct {
	rules []rule
}

// New compiles the patterns of cfg. Categories are tried in name order and
// patterns in the order listed; patterns that fail to compile are skipped.
func New(cfg *config.Config, logger sampleorg.Logger) *Categorizer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if cfg == nil {
		return &Categorizer{}
	}

	categories := make([]string, 0, len(cfg.Patterns))
	for category := range cfg.Patterns {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	rules := make([]rule, 0, len(categories))
	for _, category := range categories {
		r := rule{category: category}
		for _, pattern := range cfg.Patterns[category] {
			re, err := regexp.Compile(pattern)
			if err != nil {
				logger.Verbose("Ignoring invalid pattern %q in category %q: %v", pattern, category, err)
				continue
			}
			r.patterns = append(r.patterns, re)
		}
		rules = append(rules, r)
	}

	return &Categorizer{rules: rules}
}

// Categorize returns the category of the sample at samplePath. The match is
// made against the lower-cased file name only. A path without a file name
// has no category.
func (c *Categorizer) Categorize(samplePath string) (string, bool) {
	name := filesystem.FileName(samplePath)
	if name == "" {
		return "", false
	}
	name = strings.ToLower(name)

	for _, r := range c.rules {
		for _, re := range r.patterns {
			if re.MatchString(name) {
				return r.category, true
			}
		}
	}
	return "", false
}

package services

import (
	"fmt"
	"sort"

	"github.com/vvka-141/sampleorg/internal/copier"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// CopyFunc copies one sample into destRoot/category.
type CopyFunc func(samplePath, destRoot, category string) (copier.Outcome, error)

// OrganizerService implements sampleorg.Organizer.
// Thread-Safety: safe for concurrent calls as long as its collaborators are.
type OrganizerService struct {
	scanner     sampleorg.SampleScanner
	categorizer sampleorg.Categorizer
	copy        CopyFunc
	logger      sampleorg.Logger
}

// NewOrganizerService creates an OrganizerService that copies with
// copier.CopyToDest. Panics on nil dependencies.
func NewOrganizerService(
	scanner sampleorg.SampleScanner,
	categorizer sampleorg.Categorizer,
	logger sampleorg.Logger,
) *OrganizerService {
	return NewOrganizerServiceWithCopier(scanner, categorizer, copier.CopyToDest, logger)
}

// NewOrganizerServiceWithCopier is NewOrganizerService with an explicit copy function.
func NewOrganizerServiceWithCopier(
	scanner sampleorg.SampleScanner,
	categorizer sampleorg.Categorizer,
	copy CopyFunc,
	logger sampleorg.Logger,
) *OrganizerService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if categorizer == nil {
		panic("categorizer cannot be nil")
	}
	if copy == nil {
		panic("copy cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &OrganizerService{
		scanner:     scanner,
		categorizer: categorizer,
		copy:        copy,
		logger:      logger,
	}
}

// Organize copies every categorized sample under source into
// dest/<category>. A failed copy is logged and the run carries on.
func (s *OrganizerService) Organize(source, dest string) (sampleorg.OrganizeSummary, error) {
	var summary sampleorg.OrganizeSummary

	samples, err := s.scanner.FindSamples(source)
	if err != nil {
		return summary, err
	}
	s.logger.Verbose("Found %d samples under %s", len(samples), source)

	for _, sample := range samples {
		category, ok := s.categorizer.Categorize(sample)
		if !ok {
			s.logger.Verbose("No category for %s", sample)
			summary.Uncategorized++
			continue
		}

		outcome, err := s.copy(sample, dest, category)
		switch {
		case err != nil:
			s.logger.Error("Error copying file: %v", err)
			summary.Failed++
		case outcome == copier.OutcomeSkipped:
			s.logger.Info("Skipping %q, file already exists in category '%s'", sample, category)
			summary.Skipped++
		default:
			s.logger.Info("Copied %q to %s", sample, category)
		}
		summary.Copied++
	}

	return summary, nil
}

// CategoryCounts returns the number of samples under source per category,
// sorted by category name. Categories without samples are omitted.
func (s *OrganizerService) CategoryCounts(source string) ([]sampleorg.CategoryCount, error) {
	samples, err := s.scanner.FindSamples(source)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	counts := make(map[string]int)
	for _, sample := range samples {
		if category, ok := s.categorizer.Categorize(sample); ok {
			counts[category]++
		}
	}

	result := make([]sampleorg.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, sampleorg.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })

	return result, nil
}

var _ sampleorg.Organizer = (*OrganizerService)(nil)

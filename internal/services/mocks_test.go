package services

import (
	"path/filepath"
	"strings"

	"github.com/vvka-141/sampleorg/internal/copier"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

type mockScanner struct {
	samples []string
	err     error
}

func (m *mockScanner) FindSamples(_ string) ([]string, error) {
	return m.samples, m.err
}

func (m *mockScanner) ScanFolders(_ string) (sampleorg.FolderStems, error) {
	return nil, m.err
}

// keywordCategorizer matches the category whose keyword appears in the file name.
type keywordCategorizer map[string]string

func (c keywordCategorizer) Categorize(samplePath string) (string, bool) {
	name := strings.ToLower(filepath.Base(samplePath))
	for keyword, category := range c {
		if strings.Contains(name, keyword) {
			return category, true
		}
	}
	return "", false
}

type copyCall struct {
	sample, dest, category string
}

type mockCopier struct {
	calls    []copyCall
	outcomes map[string]copier.Outcome
	errs     map[string]error
}

func (m *mockCopier) copy(samplePath, destRoot, category string) (copier.Outcome, error) {
	m.calls = append(m.calls, copyCall{samplePath, destRoot, category})
	if err := m.errs[samplePath]; err != nil {
		return copier.OutcomeSkipped, err
	}
	return m.outcomes[samplePath], nil
}

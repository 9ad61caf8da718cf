package sampleorg

// Categorizer assigns a sample to a category from its file name.
type Categorizer interface {
	// Categorize returns the category of samplePath and whether one matched.
	Categorize(samplePath string) (string, bool)
}

// Organizer copies categorized samples into per-category folders.
type Organizer interface {
	// Organize copies every categorized sample under source into dest.
	Organize(source, dest string) (OrganizeSummary, error)

	// CategoryCounts reports how many samples under source fall in each category.
	CategoryCounts(source string) ([]CategoryCount, error)
}

// OrganizeSummary is the result of an Organize run.
type OrganizeSummary struct {
	// Copied counts every categorized sample, including ones skipped because
	// the target existed and ones whose copy failed.
	Copied int

	// Skipped counts samples whose target already existed.
	Skipped int

	// Failed counts samples whose copy returned an error.
	Failed int

	// Uncategorized counts samples no pattern matched.
	Uncategorized int
}

// CategoryCount is the number of samples matched to one category.
type CategoryCount struct {
	Category string
	Count    int
}

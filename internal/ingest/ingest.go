// Package ingest reconciles loosely structured spreadsheet exports of course
// offerings into normalized, deduplicated registries. One ingestion run owns
// its registries end to end; nothing is shared across runs.
package ingest

import (
	"go.uber.org/zap"

	"github.com/noah-isme/uta-ingest-api/internal/models"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
)

// Ingestor runs the single-pass normalization pipeline over one document.
type Ingestor struct {
	settings  Settings
	tokenizer *Tokenizer
	logger    *zap.Logger
}

// New constructs an Ingestor.
func New(settings Settings, logger *zap.Logger) *Ingestor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{
		settings:  settings.withDefaults(),
		tokenizer: NewTokenizer(),
		logger:    logger,
	}
}

// Options tunes one ingestion run.
type Options struct {
	// Profile overrides header-based variant detection when set.
	Profile *Profile
	// DisableMerge keeps one allotment per source row instead of
	// coalescing rows that share a (course, faculty) pair.
	DisableMerge bool
	// Seed merges this run into caller-supplied registries instead of
	// starting empty. Merge-vs-replace is the caller's decision.
	Seed *models.NormalizedDataset
}

// Result is the immutable output of one run: registries in order of first
// appearance plus name-keyed lookup maps and a data quality summary.
type Result struct {
	Dataset models.NormalizedDataset

	Departments map[string]models.Department
	Semesters   map[string]models.Semester
	Courses     map[string]models.Course
	Faculty     map[string]models.Faculty
	Rooms       map[string]models.Room

	Summary models.IngestSummary
	Profile Profile
}

// Ingest tokenizes the document, selects the schema profile, and feeds every
// data row through the normalizer. Row-level problems never abort the run;
// the only hard failure is a document without a header and at least one data
// row.
func (i *Ingestor) Ingest(content string, opts Options) (*Result, error) {
	rows := i.tokenizer.Rows(content)
	if len(rows) < 2 {
		return nil, appErrors.ErrStructural
	}

	header := rows[0]
	profile := DetectProfile(header, i.settings)
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	b := newBuilder(profile, profile.MergeAllotments && !opts.DisableMerge)
	if opts.Seed != nil {
		b.seed(*opts.Seed)
	}

	cols := mapColumns(header)
	for _, row := range rows[1:] {
		b.processRow(row, cols)
	}

	result := b.result()
	i.logger.Debug("document ingested",
		zap.String("variant", string(profile.Variant)),
		zap.Int("rows", result.Summary.TotalRows),
		zap.Int("skipped", result.Summary.SkippedRows),
		zap.Int("courses", result.Summary.UniqueCourses),
		zap.Int("allotments", result.Summary.Allotments),
	)
	return result, nil
}

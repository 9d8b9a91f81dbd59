package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uta-ingest-api/internal/ingest"
)

func TestTemplateRoundTripsThroughParser(t *testing.T) {
	svc := NewTemplateService(nil, nil)

	res, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, TemplateFilename, res.Filename)

	result, err := ingest.New(ingest.Settings{}, nil).Ingest(res.Content, ingest.Options{})
	require.NoError(t, err)

	assert.Equal(t, ingest.VariantTimetable, result.Profile.Variant)
	assert.Equal(t, 4, result.Summary.TotalRows)
	assert.Zero(t, result.Summary.SkippedRows)
	assert.Equal(t, 2, result.Summary.UniqueDepartments)
	assert.Equal(t, 4, result.Summary.SchedulesExtracted)
}

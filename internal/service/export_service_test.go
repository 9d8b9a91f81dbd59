package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/models"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
)

func exportFixtureDataset() models.NormalizedDataset {
	return models.NormalizedDataset{
		Courses: []models.Course{
			{ID: "c1", Code: "CP", Name: "Computer Programming", Credits: 3, Type: models.CourseTypeCore, Semester: "Semester 1", Department: "BS-AI", EstimatedStudents: 40},
		},
		Faculty: []models.Faculty{
			{ID: "f1", Name: "Dr. Ada", Initials: "DA", MaxWeeklyHours: 12},
		},
		Rooms: []models.Room{
			{ID: "r1", Name: "R6", Capacity: 50, Type: models.RoomTypeLecture},
		},
		Allotments: []models.CourseAllotment{
			{CourseID: "c1", FacultyID: "f1", ClassIDs: []string{"A", "B"}, PreferredRoomID: "r1", ManualSchedule: &models.ManualSchedule{Day: "Monday", Raw: "08:30 - 10:00 AM"}},
		},
	}
}

func TestExportServiceRendersCourses(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	res, err := svc.Generate(dto.ExportRequest{Dataset: exportFixtureDataset(), Entity: "courses"})
	require.NoError(t, err)

	assert.Equal(t, "courses.csv", res.Filename)
	content := string(res.Payload)
	assert.Contains(t, content, "Computer Programming")
	assert.Contains(t, content, "Semester 1")
}

func TestExportServiceRendersAllotments(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	res, err := svc.Generate(dto.ExportRequest{Dataset: exportFixtureDataset(), Entity: "allotments"})
	require.NoError(t, err)

	content := string(res.Payload)
	assert.Contains(t, content, "A;B")
	assert.Contains(t, content, "Monday")

	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Len(t, lines, 2)
}

func TestExportServiceRejectsUnknownEntity(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	_, err := svc.Generate(dto.ExportRequest{Dataset: exportFixtureDataset(), Entity: "semesters"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

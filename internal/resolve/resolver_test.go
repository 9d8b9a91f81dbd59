package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uta-ingest-api/internal/models"
)

func fixtureDataset() Dataset {
	return Dataset{
		Departments: []models.Department{
			{ID: "d1", Name: "BS-AI", Code: "BS-AI"},
			{ID: "d2", Name: "BS-CS", Code: "BS-CS"},
		},
		Semesters: []models.Semester{
			{ID: "s1", Name: "Semester 1", Type: models.SemesterTypeFall, Year: 2025},
			{ID: "s2", Name: "Semester 2", Type: models.SemesterTypeSpring, Year: 2025},
		},
		Courses: []models.Course{
			{ID: "c1", Code: "CP", Name: "Computer Programming", Semester: "Semester 1"},
			{ID: "c2", Code: "CPL-L", Name: "Computer Programming Lab", Semester: "Semester 1"},
		},
		Allotments: []models.CourseAllotment{
			{CourseID: "c1", FacultyID: "f1", ClassIDs: []string{"BS-AI-1-HM"}},
			{CourseID: "c2", FacultyID: "f1", ClassIDs: []string{"BS-AI-1-HM"}},
		},
		Schemas: []models.SemesterSchema{
			{ID: "sch1", DepartmentID: "d1", SemesterID: "s1", CourseIDs: []string{"c1", "c2"}},
			{ID: "sch2", DepartmentID: "d2", SemesterID: "s2", CourseIDs: []string{"c1"}},
		},
	}
}

func TestResolveSchemaScoreWins(t *testing.T) {
	r := New(fixtureDataset(), nil)

	meta := r.Resolve("BS-AI-1-HM")

	assert.Equal(t, "BS-AI", meta.DepartmentCode)
	assert.Equal(t, "Semester 1", meta.Semester)
	assert.Equal(t, 1, meta.SemesterNum)
	assert.Equal(t, "BS-AI-1-HM (BS-AI - Semester 1)", meta.DisplayName)
}

func TestResolveSchemaTieBreakIsFirstInOrder(t *testing.T) {
	data := fixtureDataset()
	// Both schemas now cover both courses, so the scores tie.
	data.Schemas[1].CourseIDs = []string{"c1", "c2"}
	r := New(data, nil)

	meta := r.Resolve("BS-AI-1-HM")

	assert.Equal(t, "BS-AI", meta.DepartmentCode)
	assert.Equal(t, "Semester 1", meta.Semester)
}

func TestResolveSemesterFallbackWithoutSchemas(t *testing.T) {
	data := fixtureDataset()
	data.Schemas = nil
	data.Courses = []models.Course{
		{ID: "c1", Code: "CP", Semester: "2"},
		{ID: "c2", Code: "CPL-L", Semester: "2"},
	}
	data.Semesters = nil
	r := New(data, nil)

	meta := r.Resolve("BS-AI-1-HM")

	require.Equal(t, "Semester 2", meta.Semester)
	assert.Equal(t, 2, meta.SemesterNum)
	assert.NotEqual(t, models.UnknownCode, meta.Semester)
}

func TestResolveSemesterFallbackPrefersExistingRegistry(t *testing.T) {
	data := fixtureDataset()
	data.Schemas = nil
	r := New(data, nil)

	meta := r.Resolve("BS-AI-1-HM")

	assert.Equal(t, "Semester 1", meta.Semester)
}

func TestResolveDepartmentFromCourseCodes(t *testing.T) {
	data := fixtureDataset()
	data.Schemas = nil
	data.Courses = []models.Course{
		{ID: "c1", Code: "BS-CS-301", Semester: ""},
		{ID: "c2", Code: "BS-CS-302", Semester: ""},
	}
	data.Allotments = []models.CourseAllotment{
		{CourseID: "c1", FacultyID: "f1", ClassIDs: []string{"X1"}},
		{CourseID: "c2", FacultyID: "f2", ClassIDs: []string{"X1"}},
	}
	r := New(data, nil)

	meta := r.Resolve("X1")

	assert.Equal(t, "BS-CS", meta.DepartmentCode)
	assert.Equal(t, "BS-CS", meta.DepartmentName)
}

func TestResolveDepartmentFromClassID(t *testing.T) {
	data := fixtureDataset()
	data.Schemas = nil
	data.Courses = []models.Course{{ID: "c1", Code: "ZZZ", Semester: ""}}
	data.Allotments = []models.CourseAllotment{
		{CourseID: "c1", FacultyID: "f1", ClassIDs: []string{"BS-CS-2-EM"}},
	}
	r := New(data, nil)

	meta := r.Resolve("BS-CS-2-EM")

	assert.Equal(t, "BS-CS", meta.DepartmentCode)
}

func TestResolveDegradesToUnknown(t *testing.T) {
	r := New(Dataset{}, nil)

	meta := r.Resolve("GHOST-99")

	assert.Equal(t, models.UnknownCode, meta.DepartmentCode)
	assert.Equal(t, models.UnknownDepartmentName, meta.DepartmentName)
	assert.Equal(t, models.UnknownCode, meta.Semester)
	assert.Equal(t, 0, meta.SemesterNum)
	assert.Equal(t, "GHOST-99", meta.DisplayName)
}

func TestResolveDisplayNameSemesterOnly(t *testing.T) {
	data := Dataset{
		Courses: []models.Course{{ID: "c1", Code: "ZZZ", Semester: "2"}},
		Allotments: []models.CourseAllotment{
			{CourseID: "c1", FacultyID: "f1", ClassIDs: []string{"Q7"}},
		},
	}
	r := New(data, nil)

	meta := r.Resolve("Q7")

	assert.Equal(t, models.UnknownCode, meta.DepartmentCode)
	assert.Equal(t, "Q7 (Semester 2)", meta.DisplayName)
}

func TestResolveIsDeterministicAcrossCalls(t *testing.T) {
	r := New(fixtureDataset(), nil)

	first := r.Resolve("BS-AI-1-HM")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Resolve("BS-AI-1-HM"))
	}
}

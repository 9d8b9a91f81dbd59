// Package resolve infers the owning department and semester of a class
// section identifier from normalized registries and externally supplied
// curriculum schema data. Resolution never fails; it degrades to "Unknown"
// markers when no strategy is conclusive.
package resolve

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/uta-ingest-api/internal/models"
)

// Dataset is the read-only snapshot a resolver works against. Slice order is
// significant: tie-breaks fall back to first-encountered, so callers supply
// deterministically ordered collections.
type Dataset struct {
	Allotments  []models.CourseAllotment
	Courses     []models.Course
	Departments []models.Department
	Semesters   []models.Semester
	Schemas     []models.SemesterSchema
}

// Resolver answers "which department and semester does this class belong to"
// queries through an ordered chain of scoring strategies.
type Resolver struct {
	data       Dataset
	strategies []strategy
	logger     *zap.Logger
}

// candidate is a partial answer: either field may be nil, and later
// strategies only fill fields still missing.
type candidate struct {
	department *models.Department
	semester   *models.Semester
}

type strategy interface {
	name() string
	resolve(data Dataset, classID string, courseIDs []string) candidate
}

// New constructs a resolver over the given snapshot.
func New(data Dataset, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		data: data,
		strategies: []strategy{
			schemaScoreStrategy{},
			courseSemesterStrategy{},
			courseCodeStrategy{},
			classIDStrategy{},
		},
		logger: logger,
	}
}

// Resolve derives metadata for one class section identifier.
func (r *Resolver) Resolve(classID string) models.ClassMetadata {
	courseIDs := r.reachableCourses(classID)

	var found candidate
	for _, s := range r.strategies {
		if found.department != nil && found.semester != nil {
			break
		}
		partial := s.resolve(r.data, classID, courseIDs)
		if found.department == nil && partial.department != nil {
			found.department = partial.department
			r.logger.Debug("department resolved", zap.String("classId", classID), zap.String("strategy", s.name()))
		}
		if found.semester == nil && partial.semester != nil {
			found.semester = partial.semester
			r.logger.Debug("semester resolved", zap.String("classId", classID), zap.String("strategy", s.name()))
		}
	}

	return buildMetadata(classID, found)
}

// reachableCourses collects the unique course ids linked to the class through
// existing allotments, preserving first-encountered order.
func (r *Resolver) reachableCourses(classID string) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, allotment := range r.data.Allotments {
		if !allotment.HasClass(classID) {
			continue
		}
		if _, ok := seen[allotment.CourseID]; ok {
			continue
		}
		seen[allotment.CourseID] = struct{}{}
		ids = append(ids, allotment.CourseID)
	}
	return ids
}

func buildMetadata(classID string, found candidate) models.ClassMetadata {
	deptCode := models.UnknownCode
	deptName := models.UnknownDepartmentName
	if found.department != nil {
		deptCode = found.department.Code
		deptName = found.department.Name
	}
	semName := models.UnknownCode
	if found.semester != nil {
		semName = found.semester.Name
	}

	displayName := classID
	switch {
	case deptCode != models.UnknownCode && semName != models.UnknownCode:
		displayName = fmt.Sprintf("%s (%s - %s)", classID, deptCode, semName)
	case semName != models.UnknownCode:
		displayName = fmt.Sprintf("%s (%s)", classID, semName)
	}

	return models.ClassMetadata{
		ClassID:        classID,
		DepartmentCode: deptCode,
		DepartmentName: deptName,
		Semester:       semName,
		SemesterNum:    numericSuffix(semName),
		DisplayName:    displayName,
	}
}

func numericSuffix(s string) int {
	var digits strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return value
}

// --- Strategy 1: curriculum schema scoring ---

// schemaScoreStrategy tallies, per schema, how many of the class's courses
// appear in its courseIds and reads department and semester off the schema
// with the strictly highest score. Ties keep the first schema in slice order,
// which makes the tie-break total as long as callers order schemas by id.
type schemaScoreStrategy struct{}

func (schemaScoreStrategy) name() string { return "schema-score" }

func (schemaScoreStrategy) resolve(data Dataset, classID string, courseIDs []string) candidate {
	bestScore := 0
	var best *models.SemesterSchema
	for i := range data.Schemas {
		schema := &data.Schemas[i]
		score := 0
		for _, courseID := range courseIDs {
			for _, id := range schema.CourseIDs {
				if id == courseID {
					score++
					break
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = schema
		}
	}
	if best == nil {
		return candidate{}
	}

	var found candidate
	for i := range data.Departments {
		if data.Departments[i].ID == best.DepartmentID {
			found.department = &data.Departments[i]
			break
		}
	}
	for i := range data.Semesters {
		if data.Semesters[i].ID == best.SemesterID {
			found.semester = &data.Semesters[i]
			break
		}
	}
	return found
}

// --- Strategy 2: most frequent course semester ---

// courseSemesterStrategy takes the most frequent semester value among the
// class's courses (ties broken by first-encountered) and maps it to an
// existing semester by name or id, synthesizing one when nothing matches.
type courseSemesterStrategy struct{}

func (courseSemesterStrategy) name() string { return "course-semester" }

func (courseSemesterStrategy) resolve(data Dataset, classID string, courseIDs []string) candidate {
	counts := make(map[string]int)
	bestCount := 0
	bestValue := ""
	for i := range data.Courses {
		course := &data.Courses[i]
		if !containsID(courseIDs, course.ID) || course.Semester == "" {
			continue
		}
		counts[course.Semester]++
		if counts[course.Semester] > bestCount {
			bestCount = counts[course.Semester]
			bestValue = course.Semester
		}
	}
	if bestValue == "" {
		return candidate{}
	}

	for i := range data.Semesters {
		if data.Semesters[i].Name == bestValue || data.Semesters[i].ID == bestValue {
			return candidate{semester: &data.Semesters[i]}
		}
	}
	return candidate{semester: synthesizeSemester(bestValue)}
}

// synthesizeSemester builds an inferred semester for a value with no registry
// match. Bare numeric values are normalized to the "Semester N" display form;
// the year approximates the study year from the level.
func synthesizeSemester(value string) *models.Semester {
	num := numericSuffix(value)
	name := value
	if num > 0 && strconv.Itoa(num) == strings.TrimSpace(value) {
		name = "Semester " + strings.TrimSpace(value)
	}
	return &models.Semester{
		ID:     "inferred-" + value,
		Name:   name,
		Type:   models.SemesterTypeFall,
		Year:   int(math.Ceil(float64(num) / 2)),
		Active: true,
	}
}

// --- Strategy 3: department code containment in course codes ---

// courseCodeStrategy scores departments by how many of the class's course
// codes contain the department code as a substring (2 points each) and keeps
// the highest scorer, first-encountered on ties.
type courseCodeStrategy struct{}

func (courseCodeStrategy) name() string { return "course-code" }

func (courseCodeStrategy) resolve(data Dataset, classID string, courseIDs []string) candidate {
	bestScore := 0
	var best *models.Department
	for i := range data.Departments {
		dept := &data.Departments[i]
		deptCode := strings.ToUpper(dept.Code)
		if deptCode == "" {
			continue
		}
		score := 0
		for j := range data.Courses {
			course := &data.Courses[j]
			if !containsID(courseIDs, course.ID) {
				continue
			}
			if strings.Contains(strings.ToUpper(course.Code), deptCode) {
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = dept
		}
	}
	if best == nil {
		return candidate{}
	}
	return candidate{department: best}
}

// --- Strategy 4: department code inside the class id ---

type classIDStrategy struct{}

func (classIDStrategy) name() string { return "class-id" }

func (classIDStrategy) resolve(data Dataset, classID string, courseIDs []string) candidate {
	upper := strings.ToUpper(classID)
	for i := range data.Departments {
		code := strings.ToUpper(data.Departments[i].Code)
		if code == "" {
			continue
		}
		if strings.HasPrefix(upper, code) || strings.Contains(upper, code) {
			return candidate{department: &data.Departments[i]}
		}
	}
	return candidate{}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

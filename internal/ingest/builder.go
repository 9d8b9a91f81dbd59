package ingest

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/noah-isme/uta-ingest-api/internal/models"
)

// builder owns the mutable registries for exactly one ingestion run and is
// discarded after producing the immutable result. Get-or-create operations
// are idempotent: the first occurrence defines the record, later occurrences
// reuse it and never mutate its defining fields.
type builder struct {
	profile Profile
	merge   bool

	departments map[string]*models.Department
	deptOrder   []string
	semesters   map[string]*models.Semester
	semOrder    []string
	courses     map[string]*models.Course
	courseOrder []string
	faculty     map[string]*models.Faculty
	facOrder    []string
	rooms       map[string]*models.Room
	roomOrder   []string

	allotments   []*models.CourseAllotment
	allotmentIdx map[string]*models.CourseAllotment

	summary models.IngestSummary
	newID   func() string
}

func newBuilder(profile Profile, merge bool) *builder {
	return &builder{
		profile:      profile,
		merge:        merge,
		departments:  make(map[string]*models.Department),
		semesters:    make(map[string]*models.Semester),
		courses:      make(map[string]*models.Course),
		faculty:      make(map[string]*models.Faculty),
		rooms:        make(map[string]*models.Room),
		allotmentIdx: make(map[string]*models.CourseAllotment),
		newID:        uuid.NewString,
	}
}

// seed preloads caller-supplied registries so a run can merge into existing
// state instead of starting empty. Allotments are indexed by their key so
// later rows coalesce into them under the merge policy.
func (b *builder) seed(dataset models.NormalizedDataset) {
	for i := range dataset.Departments {
		d := dataset.Departments[i]
		b.departments[d.Name] = &d
		b.deptOrder = append(b.deptOrder, d.Name)
	}
	for i := range dataset.Semesters {
		s := dataset.Semesters[i]
		b.semesters[s.Name] = &s
		b.semOrder = append(b.semOrder, s.Name)
	}
	for i := range dataset.Courses {
		c := dataset.Courses[i]
		// Index under both lookup keys: rows with an explicit code column
		// resolve by code, rows without resolve by subject and department.
		key := courseKey(c.Name, c.Department)
		b.courses[key] = &c
		b.courseOrder = append(b.courseOrder, key)
		if c.Code != "" && c.Code != key {
			b.courses[c.Code] = &c
		}
	}
	for i := range dataset.Faculty {
		f := dataset.Faculty[i]
		b.faculty[f.Name] = &f
		b.facOrder = append(b.facOrder, f.Name)
	}
	for i := range dataset.Rooms {
		r := dataset.Rooms[i]
		b.rooms[r.Name] = &r
		b.roomOrder = append(b.roomOrder, r.Name)
	}
	for i := range dataset.Allotments {
		a := dataset.Allotments[i]
		copied := a
		// Detach from the caller's backing array so later class-id appends
		// never write into the seed dataset.
		copied.ClassIDs = append([]string(nil), a.ClassIDs...)
		b.allotments = append(b.allotments, &copied)
		b.allotmentIdx[allotmentKey(a.CourseID, a.FacultyID)] = &copied
	}
}

func courseKey(subject, department string) string {
	return fmt.Sprintf("%s-%s", subject, department)
}

func allotmentKey(courseID, facultyID string) string {
	return courseID + "|" + facultyID
}

// processRow runs the single-pass extraction for one data row: registries
// first, then the allotment with its optional room preference and manual
// schedule. Rows without a department or subject are skipped entirely.
func (b *builder) processRow(row []string, cols columns) {
	b.summary.TotalRows++

	deptName := cols.value(row, roleDepartment)
	subject := cols.value(row, roleSubject)
	if deptName == "" || subject == "" {
		b.summary.SkippedRows++
		return
	}

	semLevel := cols.value(row, roleSemester)
	if semLevel == "" {
		semLevel = "1"
	}

	dept := b.getOrCreateDepartment(deptName)
	b.getOrCreateSemester(semLevel)

	facultyID := b.resolveFaculty(cols.value(row, roleTeacher), dept.ID)

	roomName := cols.value(row, roleRoom)
	var room *models.Room
	if roomName != "" {
		room = b.getOrCreateRoom(roomName, subject)
	}

	course := b.getOrCreateCourse(
		cols.value(row, roleCourseCode),
		subject,
		deptName,
		semLevel,
		cols.value(row, roleCreditHours),
	)

	if facultyID == "" {
		return
	}

	classID := cols.value(row, roleSection)
	if classID == "" {
		classID = "A"
	}
	if b.profile.QualifyClassIDs {
		classID = fmt.Sprintf("%s-%s-%s", deptName, semLevel, classID)
	}

	schedule := extractSchedule(cols.value(row, roleDay), cols.value(row, roleHour))
	b.recordAllotment(course.ID, facultyID, classID, room, schedule)
}

func (b *builder) getOrCreateDepartment(name string) *models.Department {
	if dept, ok := b.departments[name]; ok {
		return dept
	}
	dept := &models.Department{ID: b.newID(), Name: name, Code: name}
	b.departments[name] = dept
	b.deptOrder = append(b.deptOrder, name)
	return dept
}

func (b *builder) getOrCreateSemester(level string) *models.Semester {
	var name string
	if b.profile.FixedSemester {
		name = fmt.Sprintf("Fall %d", b.profile.SemesterYear)
	} else {
		name = "Semester " + level
	}
	if sem, ok := b.semesters[name]; ok {
		return sem
	}

	semType := models.SemesterTypeFall
	if !b.profile.FixedSemester {
		if lvl, err := strconv.Atoi(level); err != nil || lvl%2 == 0 {
			semType = models.SemesterTypeSpring
		}
	}
	sem := &models.Semester{
		ID:     b.newID(),
		Name:   name,
		Type:   semType,
		Year:   b.profile.SemesterYear,
		Active: true,
	}
	b.semesters[name] = sem
	b.semOrder = append(b.semOrder, name)
	return sem
}

// resolveFaculty returns the faculty id for a raw teacher field, or "" when
// the row carries no usable instructor: blank values, vacant/new-faculty
// placeholders, and names that clean down to nothing all yield no record.
func (b *builder) resolveFaculty(raw, deptID string) string {
	if raw == "" || IsPlaceholderTeacher(raw) {
		return ""
	}
	cleaned := CleanTeacherName(raw)
	if cleaned == "" {
		return ""
	}

	if fac, ok := b.faculty[cleaned]; ok {
		return fac.ID
	}
	fac := &models.Faculty{
		ID:             b.newID(),
		Name:           cleaned,
		Initials:       Initials(cleaned),
		MaxWeeklyHours: b.profile.WeeklyHours,
		Department:     deptID,
	}
	b.faculty[cleaned] = fac
	b.facOrder = append(b.facOrder, cleaned)
	return fac.ID
}

func (b *builder) getOrCreateRoom(name, subject string) *models.Room {
	if room, ok := b.rooms[name]; ok {
		return room
	}
	room := &models.Room{
		ID:       b.newID(),
		Name:     name,
		Capacity: b.profile.RoomCapacity,
		Type:     DetectRoomType(name, subject),
	}
	b.rooms[name] = room
	b.roomOrder = append(b.roomOrder, name)
	return room
}

func (b *builder) getOrCreateCourse(code, subject, deptName, semLevel, creditsRaw string) *models.Course {
	key := code
	if key == "" {
		key = courseKey(subject, deptName)
	}
	if course, ok := b.courses[key]; ok {
		return course
	}

	resolved := code
	if resolved == "" {
		resolved = GenerateCourseCode(subject)
	}
	resolved = EnsureLabSuffix(resolved, subject)

	isLab := isLabSubject(subject)
	credits, err := strconv.Atoi(creditsRaw)
	if err != nil || credits <= 0 {
		if isLab {
			credits = b.profile.LabCredits
		} else {
			credits = b.profile.DefaultCredits
		}
	}

	course := &models.Course{
		ID:                b.newID(),
		Code:              resolved,
		Name:              subject,
		Credits:           credits,
		Type:              models.CourseTypeCore,
		Semester:          b.courseSemester(semLevel),
		Department:        deptName,
		RequiresLab:       isLab,
		EstimatedStudents: b.profile.EstimatedStudents,
	}
	b.courses[key] = course
	b.courseOrder = append(b.courseOrder, key)
	return course
}

func (b *builder) courseSemester(level string) string {
	if b.profile.Variant == VariantPlanOfStudy {
		return "Semester " + level
	}
	return level
}

// recordAllotment applies the merge policy: coalesce rows sharing the same
// (course, faculty) key into one allotment with order-preserving set
// semantics on classIds, or keep one allotment per row when merging is
// disabled. Room preference and manual schedule are first-writer-wins.
func (b *builder) recordAllotment(courseID, facultyID, classID string, room *models.Room, schedule *models.ManualSchedule) {
	if !b.merge {
		allotment := &models.CourseAllotment{
			CourseID:  courseID,
			FacultyID: facultyID,
			ClassIDs:  []string{classID},
		}
		if room != nil {
			allotment.PreferredRoomID = room.ID
		}
		if schedule != nil {
			allotment.ManualSchedule = schedule
			b.summary.SchedulesExtracted++
		}
		b.allotments = append(b.allotments, allotment)
		return
	}

	key := allotmentKey(courseID, facultyID)
	existing, ok := b.allotmentIdx[key]
	if !ok {
		allotment := &models.CourseAllotment{
			CourseID:  courseID,
			FacultyID: facultyID,
			ClassIDs:  []string{classID},
		}
		if room != nil {
			allotment.PreferredRoomID = room.ID
		}
		if schedule != nil {
			allotment.ManualSchedule = schedule
			b.summary.SchedulesExtracted++
		}
		b.allotments = append(b.allotments, allotment)
		b.allotmentIdx[key] = allotment
		return
	}

	if !existing.HasClass(classID) {
		existing.ClassIDs = append(existing.ClassIDs, classID)
	}
	if existing.PreferredRoomID == "" && room != nil {
		existing.PreferredRoomID = room.ID
	}
	if existing.ManualSchedule == nil && schedule != nil {
		existing.ManualSchedule = schedule
		b.summary.SchedulesExtracted++
	}
}

// result freezes the builder state into the immutable run output.
func (b *builder) result() *Result {
	res := &Result{
		Departments: make(map[string]models.Department, len(b.departments)),
		Semesters:   make(map[string]models.Semester, len(b.semesters)),
		Courses:     make(map[string]models.Course, len(b.courses)),
		Faculty:     make(map[string]models.Faculty, len(b.faculty)),
		Rooms:       make(map[string]models.Room, len(b.rooms)),
		Profile:     b.profile,
	}

	for _, name := range b.deptOrder {
		dept := *b.departments[name]
		res.Dataset.Departments = append(res.Dataset.Departments, dept)
		res.Departments[name] = dept
	}
	for _, name := range b.semOrder {
		sem := *b.semesters[name]
		res.Dataset.Semesters = append(res.Dataset.Semesters, sem)
		res.Semesters[name] = sem
	}
	for _, key := range b.courseOrder {
		course := *b.courses[key]
		res.Dataset.Courses = append(res.Dataset.Courses, course)
		res.Courses[key] = course
	}
	for _, name := range b.facOrder {
		fac := *b.faculty[name]
		res.Dataset.Faculty = append(res.Dataset.Faculty, fac)
		res.Faculty[name] = fac
	}
	for _, name := range b.roomOrder {
		room := *b.rooms[name]
		res.Dataset.Rooms = append(res.Dataset.Rooms, room)
		res.Rooms[name] = room
	}
	for _, allotment := range b.allotments {
		res.Dataset.Allotments = append(res.Dataset.Allotments, *allotment)
	}

	b.summary.UniqueDepartments = len(b.departments)
	b.summary.UniqueSemesters = len(b.semesters)
	// courseOrder holds one entry per distinct course; the courses map may
	// carry an extra code alias for seeded records.
	b.summary.UniqueCourses = len(b.courseOrder)
	b.summary.UniqueFaculty = len(b.faculty)
	b.summary.UniqueRooms = len(b.rooms)
	b.summary.Allotments = len(b.allotments)
	res.Summary = b.summary
	return res
}

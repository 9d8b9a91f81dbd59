package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/models"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
	"github.com/noah-isme/uta-ingest-api/pkg/export"
)

// ExportResult carries one rendered file.
type ExportResult struct {
	Filename string
	Payload  []byte
}

// ExportService renders normalized registries back out as CSV files for
// spreadsheet review or hand-off to the scheduling engine.
type ExportService struct {
	csv       csvRenderer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(csv csvRenderer, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &ExportService{csv: csv, validator: validate, logger: logger}
}

// Generate renders the selected entity collection.
func (s *ExportService) Generate(req dto.ExportRequest) (*ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload")
	}

	var dataset export.Dataset
	switch req.Entity {
	case "courses":
		dataset = coursesDataset(req.Dataset.Courses)
	case "faculty":
		dataset = facultyDataset(req.Dataset.Faculty)
	case "rooms":
		dataset = roomsDataset(req.Dataset.Rooms)
	case "allotments":
		dataset = allotmentsDataset(req.Dataset.Allotments)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported entity %q", req.Entity))
	}

	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportResult{Filename: req.Entity + ".csv", Payload: payload}, nil
}

func coursesDataset(courses []models.Course) export.Dataset {
	rows := make([]map[string]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, map[string]string{
			"ID":         c.ID,
			"Code":       c.Code,
			"Name":       c.Name,
			"Credits":    strconv.Itoa(c.Credits),
			"Type":       string(c.Type),
			"Semester":   c.Semester,
			"Department": c.Department,
			"Lab":        strconv.FormatBool(c.RequiresLab),
			"Students":   strconv.Itoa(c.EstimatedStudents),
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Code", "Name", "Credits", "Type", "Semester", "Department", "Lab", "Students"},
		Rows:    rows,
	}
}

func facultyDataset(faculty []models.Faculty) export.Dataset {
	rows := make([]map[string]string, 0, len(faculty))
	for _, f := range faculty {
		rows = append(rows, map[string]string{
			"ID":           f.ID,
			"Name":         f.Name,
			"Initials":     f.Initials,
			"Weekly Hours": strconv.Itoa(f.MaxWeeklyHours),
			"Department":   f.Department,
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Name", "Initials", "Weekly Hours", "Department"},
		Rows:    rows,
	}
}

func roomsDataset(rooms []models.Room) export.Dataset {
	rows := make([]map[string]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, map[string]string{
			"ID":       r.ID,
			"Name":     r.Name,
			"Capacity": strconv.Itoa(r.Capacity),
			"Type":     string(r.Type),
			"Building": r.Building,
		})
	}
	return export.Dataset{
		Headers: []string{"ID", "Name", "Capacity", "Type", "Building"},
		Rows:    rows,
	}
}

func allotmentsDataset(allotments []models.CourseAllotment) export.Dataset {
	rows := make([]map[string]string, 0, len(allotments))
	for _, a := range allotments {
		row := map[string]string{
			"Course":   a.CourseID,
			"Faculty":  a.FacultyID,
			"Sections": strings.Join(a.ClassIDs, ";"),
			"Room":     a.PreferredRoomID,
		}
		if a.ManualSchedule != nil {
			row["Day"] = a.ManualSchedule.Day
			row["Hour"] = a.ManualSchedule.Raw
		}
		rows = append(rows, row)
	}
	return export.Dataset{
		Headers: []string{"Course", "Faculty", "Sections", "Room", "Day", "Hour"},
		Rows:    rows,
	}
}

package service

import (
	"go.uber.org/zap"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
	"github.com/noah-isme/uta-ingest-api/pkg/export"
)

// TemplateFilename is the suggested download name for the sample document.
const TemplateFilename = "sample_complete_timetable.csv"

var templateHeaders = []string{"Department", "Day", "Hour", "Semester", "Section", "Subject", "Course Code", "Credit Hours", "Teachers", "Room"}

var templateRows = []map[string]string{
	{"Department": "BS-AI", "Day": "Monday", "Hour": "08:30 - 10:00 AM", "Semester": "1", "Section": "HM", "Subject": "Computer Programming", "Course Code": "CS1410", "Credit Hours": "3", "Teachers": "Dr. John Smith", "Room": "R6"},
	{"Department": "BS-AI", "Day": "Monday", "Hour": "10:00 - 11:30 AM", "Semester": "1", "Section": "HM", "Subject": "Computer Programming Lab", "Course Code": "CS1411", "Credit Hours": "1", "Teachers": "Dr. John Smith", "Room": "CS-C1"},
	{"Department": "BS-AI", "Day": "Tuesday", "Hour": "1:00 - 2:30 PM", "Semester": "1", "Section": "HM", "Subject": "Calculus and Analytical Geometry", "Course Code": "MT1140", "Credit Hours": "3", "Teachers": "Dr. Jane Doe", "Room": "R12"},
	{"Department": "BS-CS", "Day": "Wednesday", "Hour": "08:30 - 10:00 AM", "Semester": "2", "Section": "EM", "Subject": "Data Structures", "Course Code": "CS2210", "Credit Hours": "3", "Teachers": "Prof. Alice Johnson", "Room": "R8"},
}

// TemplateService renders the fixed sample document demonstrating the
// complete-timetable header set.
type TemplateService struct {
	csv    csvRenderer
	logger *zap.Logger
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// NewTemplateService constructs a TemplateService.
func NewTemplateService(csv csvRenderer, logger *zap.Logger) *TemplateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &TemplateService{csv: csv, logger: logger}
}

// Generate renders the sample document.
func (s *TemplateService) Generate() (*dto.TemplateResponse, error) {
	payload, err := s.csv.Render(export.Dataset{Headers: templateHeaders, Rows: templateRows})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render template")
	}
	return &dto.TemplateResponse{Filename: TemplateFilename, Content: string(payload)}, nil
}

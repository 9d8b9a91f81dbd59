package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/ingest"
	"github.com/noah-isme/uta-ingest-api/internal/models"
	"github.com/noah-isme/uta-ingest-api/pkg/config"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
)

type ingestObserver interface {
	ObserveIngest(variant string, summary models.IngestSummary, duration time.Duration)
}

// ImportService exposes the normalization pipeline as a use case: payload
// validation, size limits, variant overrides and metrics around one run.
type ImportService struct {
	ingestor  *ingest.Ingestor
	settings  ingest.Settings
	cfg       config.IngestConfig
	validator *validator.Validate
	metrics   ingestObserver
	logger    *zap.Logger
}

// NewImportService constructs an ImportService.
func NewImportService(cfg config.IngestConfig, validate *validator.Validate, metrics ingestObserver, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	settings := ingest.Settings{
		DefaultCredits:             cfg.DefaultCredits,
		LabCredits:                 cfg.DefaultLabCredits,
		RoomCapacity:               cfg.DefaultRoomCapacity,
		PlanWeeklyHours:            cfg.PlanWeeklyHours,
		TimetableWeeklyHours:       cfg.TimetableWeeklyHours,
		PlanEstimatedStudents:      cfg.PlanEstimatedStudents,
		TimetableEstimatedStudents: cfg.DefaultEstimatedStudents,
		SemesterYear:               cfg.SemesterYear,
	}
	return &ImportService{
		ingestor:  ingest.New(settings, logger),
		settings:  settings,
		cfg:       cfg,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// Import runs one document through the pipeline and returns the normalized
// registries together with the processing summary.
func (s *ImportService) Import(req dto.ImportRequest) (*dto.ImportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}
	if s.cfg.MaxDocumentBytes > 0 && int64(len(req.Content)) > s.cfg.MaxDocumentBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, "document exceeds the configured size limit")
	}

	opts := ingest.Options{DisableMerge: req.DisableMerge}
	switch ingest.Variant(req.Variant) {
	case ingest.VariantPlanOfStudy:
		profile := ingest.PlanOfStudyProfile(s.settings)
		opts.Profile = &profile
	case ingest.VariantTimetable:
		profile := ingest.TimetableProfile(s.settings)
		opts.Profile = &profile
	}

	started := time.Now()
	result, err := s.ingestor.Ingest(req.Content, opts)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveIngest(string(result.Profile.Variant), result.Summary, time.Since(started))
	}

	s.logger.Info("document imported",
		zap.String("variant", string(result.Profile.Variant)),
		zap.Int("rows", result.Summary.TotalRows),
		zap.Int("skipped", result.Summary.SkippedRows),
	)

	return &dto.ImportResponse{
		Variant:     string(result.Profile.Variant),
		Summary:     result.Summary,
		Departments: result.Dataset.Departments,
		Semesters:   result.Dataset.Semesters,
		Courses:     result.Dataset.Courses,
		Faculty:     result.Dataset.Faculty,
		Rooms:       result.Dataset.Rooms,
		Allotments:  result.Dataset.Allotments,
	}, nil
}

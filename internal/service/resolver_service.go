package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/models"
	"github.com/noah-isme/uta-ingest-api/internal/resolve"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
)

type resolverCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type cacheRecorder interface {
	RecordCacheOperation(hit bool)
}

// ResolverServiceConfig tunes result caching.
type ResolverServiceConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// ResolverService answers class metadata queries over caller-supplied
// registries, with an optional Redis-backed result cache keyed by a digest
// of the full request.
type ResolverService struct {
	cache     resolverCache
	metrics   cacheRecorder
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ResolverServiceConfig
}

// NewResolverService constructs a ResolverService. A nil cache disables
// caching regardless of configuration.
func NewResolverService(cache resolverCache, metrics cacheRecorder, validate *validator.Validate, logger *zap.Logger, cfg ResolverServiceConfig) *ResolverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &ResolverService{
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// Resolve infers metadata for every queried classId. Resolution itself never
// fails; only an invalid payload is an error.
func (s *ResolverService) Resolve(ctx context.Context, req dto.ResolveRequest) (*dto.ResolveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resolve payload")
	}

	key, keyErr := s.cacheKey(req)
	if s.cacheUsable() && keyErr == nil {
		var cached []models.ClassMetadata
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheOperation(true)
			}
			return &dto.ResolveResponse{Results: cached, Cached: true}, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("resolver cache lookup failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(false)
		}
	}

	// Schemas are ordered by id so score ties break the same way on every
	// call, independent of the order the caller sent them in.
	schemas := make([]models.SemesterSchema, len(req.Schemas))
	copy(schemas, req.Schemas)
	sort.SliceStable(schemas, func(i, j int) bool { return schemas[i].ID < schemas[j].ID })

	resolver := resolve.New(resolve.Dataset{
		Allotments:  req.Allotments,
		Courses:     req.Courses,
		Departments: req.Departments,
		Semesters:   req.Semesters,
		Schemas:     schemas,
	}, s.logger)

	results := make([]models.ClassMetadata, 0, len(req.ClassIDs))
	for _, classID := range req.ClassIDs {
		results = append(results, resolver.Resolve(classID))
	}

	if s.cacheUsable() && keyErr == nil {
		if err := s.cache.Set(ctx, key, results, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("resolver cache write failed", zap.Error(err))
		}
	}

	return &dto.ResolveResponse{Results: results}, nil
}

func (s *ResolverService) cacheUsable() bool {
	return s.cfg.CacheEnabled && s.cache != nil
}

// cacheKey digests the whole request so any change to the registries or the
// queried ids produces a distinct key.
func (s *ResolverService) cacheKey(req dto.ResolveRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(payload)
	return "resolve:" + hex.EncodeToString(digest[:]), nil
}

// Package assessment turns questionnaire answers into a career prediction
// and records each one.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Backend-Career-Advisor/src/logger"
	"Backend-Career-Advisor/src/metrics"
	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/encoder"
	"Backend-Career-Advisor/src/services/questionnaire"
	"Backend-Career-Advisor/src/services/roles"
	"Backend-Career-Advisor/src/services/submission"
	"Backend-Career-Advisor/src/services/training"

	"github.com/google/uuid"
)

var (
	ErrUnanswered     = errors.New("all questions must be answered")
	ErrTooManyAnswers = errors.New("too many answers")
)

// UnansweredError lists the question indexes left blank.
type UnansweredError struct {
	Missing []int
}

func (e *UnansweredError) Error() string {
	return fmt.Sprintf("%s: missing %v", ErrUnanswered, e.Missing)
}

func (e *UnansweredError) Is(target error) bool {
	return target == ErrUnanswered
}

// PredictionCache is implemented by utils.PredictionCache.
type PredictionCache interface {
	Get(ctx context.Context, version string, v models.FeatureVector) (int, bool, error)
	Set(ctx context.Context, version string, v models.FeatureVector, classID int) error
}

type Service struct {
	encoder  *encoder.Encoder
	registry *training.Registry
	store    submission.Store
	cache    PredictionCache
	logger   logger.Logger
	now      func() time.Time
}

// NewService wires the pipeline. cache may be nil.
func NewService(enc *encoder.Encoder, registry *training.Registry, store submission.Store, cache PredictionCache, log logger.Logger) *Service {
	return &Service{
		encoder:  enc,
		registry: registry,
		store:    store,
		cache:    cache,
		logger:   log.WithFields(map[string]interface{}{"component": "assessment"}),
		now:      time.Now,
	}
}

// Questionnaire returns the prompts and answer options shown to the user.
func (s *Service) Questionnaire() models.Questionnaire {
	return models.Questionnaire{
		Questions: questionnaire.Questions(),
		Options:   s.encoder.Options(),
	}
}

// Assess encodes one set of answers, predicts the role and stores the result.
func (s *Service) Assess(ctx context.Context, answers []string) (*models.Prediction, error) {
	if len(answers) > questionnaire.Size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrTooManyAnswers, len(answers), questionnaire.Size)
	}
	normalized := make([]string, questionnaire.Size)
	var missing []int
	for i := 0; i < questionnaire.Size; i++ {
		if i < len(answers) {
			normalized[i] = strings.TrimSpace(answers[i])
		}
		if normalized[i] == "" {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, &UnansweredError{Missing: missing}
	}

	for i, a := range normalized {
		if !s.encoder.Known(a) {
			s.logger.Warn("unknown answer label encoded as 0", map[string]interface{}{
				"question": i,
				"answer":   a,
			})
		}
	}

	model, err := s.registry.Current()
	if err != nil {
		return nil, err
	}

	vector := s.encoder.EncodeAll(normalized)
	classID, cached, err := s.predict(ctx, model, vector)
	if err != nil {
		return nil, err
	}
	role := roles.Lookup(classID)
	metrics.PredictionsTotal.WithLabelValues(role).Inc()

	now := s.now()
	sub := &models.Submission{
		ID:           uuid.NewString(),
		Responses:    make([]models.Response, len(normalized)),
		Vector:       vector,
		ClassID:      classID,
		Role:         role,
		ModelVersion: model.Version(),
		CreatedAt:    now,
	}
	features := make([]models.FeatureValue, len(normalized))
	for i, a := range normalized {
		sub.Responses[i] = models.Response{QuestionIndex: i, Answer: a, Value: vector[i]}
		features[i] = models.FeatureValue{Question: questionnaire.Prompt(i), Answer: a, Value: vector[i]}
	}

	if err := s.store.Save(ctx, sub); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	s.logger.Info("assessment completed", map[string]interface{}{
		"id":     sub.ID,
		"role":   role,
		"vector": vector,
		"cached": cached,
	})

	return &models.Prediction{
		ID:           sub.ID,
		ClassID:      classID,
		Role:         role,
		Vector:       vector,
		Features:     features,
		ModelVersion: model.Version(),
		Cached:       cached,
		CreatedAt:    now,
	}, nil
}

// predict consults the cache first. Cache failures only cost a recompute.
func (s *Service) predict(ctx context.Context, model *training.Model, v models.FeatureVector) (int, bool, error) {
	if s.cache != nil {
		classID, ok, err := s.cache.Get(ctx, model.Version(), v)
		if err != nil {
			s.logger.WithError(err).Warn("prediction cache read failed", nil)
		} else if ok {
			metrics.PredictionCacheHits.Inc()
			return classID, true, nil
		}
	}

	classID, err := model.Predict(v)
	if err != nil {
		return 0, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, model.Version(), v, classID); err != nil {
			s.logger.WithError(err).Warn("prediction cache write failed", nil)
		}
	}
	return classID, false, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Submission, error) {
	return s.store.Get(ctx, id)
}

// List returns one page of stored submissions.
func (s *Service) List(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()
	subs, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(subs, total, params), nil
}

func (s *Service) Stats(ctx context.Context) (*models.SubmissionStats, error) {
	counts, err := s.store.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	stats := &models.SubmissionStats{Roles: counts}
	for _, c := range counts {
		stats.Total += c.Count
	}
	return stats, nil
}

// ModelInfo describes the model currently serving predictions.
func (s *Service) ModelInfo() (models.ModelInfo, error) {
	m, err := s.registry.Current()
	if err != nil {
		return models.ModelInfo{}, err
	}
	return m.Info(), nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"leadlens/internal/assessment"
	"leadlens/internal/cache"
	"leadlens/internal/classifier"
	"leadlens/internal/dataset"
	"leadlens/internal/model"
	"leadlens/internal/repository"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrNotOwner           = errors.New("assessment belongs to another user")
)

// AnswerType discriminates submitted answers.
type AnswerType string

const (
	AnswerLevelOne        AnswerType = "level_one"
	AnswerLevelTwo        AnswerType = "level_two"
	AnswerDeclineDeepDive AnswerType = "decline_deep_dive"
)

// AnswerRequest is one submitted answer in the flow.
type AnswerRequest struct {
	Type             AnswerType `json:"type"`
	Rating           int        `json:"rating,omitempty"`
	ConfidenceRating int        `json:"confidenceRating,omitempty"`
	Response         string     `json:"response,omitempty"`
}

// StepResponse is returned after every flow interaction.
type StepResponse struct {
	AssessmentID        string                     `json:"assessmentId"`
	ResponsibilityLevel *model.ResponsibilityLevel `json:"responsibilityLevel,omitempty"`
	Step                *assessment.StepResult     `json:"step,omitempty"`
	Next                *assessment.Prompt         `json:"next"`
	Progress            *assessment.Progress       `json:"progress"`
	ElapsedSec          int                        `json:"elapsedSec"`
}

// AssessmentService orchestrates classification, the question flow, and
// persistence of completed runs.
type AssessmentService struct {
	store          *dataset.Store
	stateCache     cache.StateCache
	assessmentRepo repository.AssessmentRepo
	notifier       Notifier
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(store *dataset.Store, stateCache cache.StateCache, assessmentRepo repository.AssessmentRepo) *AssessmentService {
	return &AssessmentService{
		store:          store,
		stateCache:     stateCache,
		assessmentRepo: assessmentRepo,
	}
}

// SetNotifier injects the WebSocket hub
func (s *AssessmentService) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *AssessmentService) notify(assessmentID, msgType string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(assessmentID, msgType, payload)
	}
}

// Classify validates and coerces demographic input, then computes the
// responsibility level. No state is created.
func (s *AssessmentService) Classify(ctx context.Context, input *model.DemographicInput) (*model.ResponsibilityLevel, *model.DemographicProfile, error) {
	profile, err := input.Profile()
	if err != nil {
		return nil, nil, err
	}
	tiers, err := s.store.Tiers(ctx)
	if err != nil {
		return nil, nil, err
	}
	level, err := classifier.Classify(profile, tiers)
	if err != nil {
		return nil, nil, err
	}
	return level, profile, nil
}

// Start classifies the respondent and opens a new assessment run.
func (s *AssessmentService) Start(ctx context.Context, userID string, input *model.DemographicInput) (*StepResponse, error) {
	level, profile, err := s.Classify(ctx, input)
	if err != nil {
		return nil, err
	}

	flow := assessment.Start(level, profile, userID, s.store)
	next, err := flow.Current(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := flow.Progress(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.stateCache.Set(ctx, flow.State()); err != nil {
		return nil, fmt.Errorf("failed to cache assessment state: %w", err)
	}

	return &StepResponse{
		AssessmentID:        flow.State().ID,
		ResponsibilityLevel: level,
		Next:                next,
		Progress:            progress,
	}, nil
}

// Answer applies one submitted answer to an in-progress run and returns what
// to ask next.
func (s *AssessmentService) Answer(ctx context.Context, userID, assessmentID string, req *AnswerRequest) (*StepResponse, error) {
	state, err := s.stateCache.Get(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, cache.ErrStateNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to load assessment state: %w", err)
	}
	if state.UserID != userID {
		return nil, ErrNotOwner
	}

	flow := assessment.Resume(state, s.store)

	var step *assessment.StepResult
	switch req.Type {
	case AnswerLevelOne:
		step, err = flow.SubmitLevelOne(ctx, req.Rating, req.ConfidenceRating, req.Response)
	case AnswerLevelTwo:
		step, err = flow.SubmitLevelTwo(ctx, req.Rating, req.Response)
	case AnswerDeclineDeepDive:
		step, err = flow.DeclineDeepDive(ctx)
	default:
		return nil, &model.ValidationError{Field: "type", Message: "unknown answer type"}
	}
	if err != nil {
		return nil, err
	}

	next, err := flow.Current(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := flow.Progress(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.stateCache.Set(ctx, flow.State()); err != nil {
		return nil, fmt.Errorf("failed to cache assessment state: %w", err)
	}

	if step.Complete {
		record, err := flow.Record()
		if err != nil {
			return nil, err
		}
		if err := s.assessmentRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to persist assessment: %w", err)
		}
		s.notify(assessmentID, wsAssessmentCompleted, record)
	} else if step.DeepDiveOffered {
		s.notify(assessmentID, wsDeepDiveStarted, next)
	} else {
		s.notify(assessmentID, wsQuestionAdvanced, next)
	}

	return &StepResponse{
		AssessmentID: assessmentID,
		Step:         step,
		Next:         next,
		Progress:     progress,
		ElapsedSec:   int(flow.Elapsed().Seconds()),
	}, nil
}

// Get returns the current prompt and progress for an in-progress run, or the
// persisted record once the run is complete.
func (s *AssessmentService) Get(ctx context.Context, userID, assessmentID string) (*StepResponse, error) {
	state, err := s.stateCache.Get(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, cache.ErrStateNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to load assessment state: %w", err)
	}
	if state.UserID != userID {
		return nil, ErrNotOwner
	}

	flow := assessment.Resume(state, s.store)
	next, err := flow.Current(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := flow.Progress(ctx)
	if err != nil {
		return nil, err
	}

	return &StepResponse{
		AssessmentID:        assessmentID,
		ResponsibilityLevel: &state.ResponsibilityLevel,
		Next:                next,
		Progress:            progress,
		ElapsedSec:          int(flow.Elapsed().Seconds()),
	}, nil
}

// ListForUser returns the user's persisted assessments, newest first.
func (s *AssessmentService) ListForUser(ctx context.Context, userID string) ([]*model.Assessment, error) {
	return s.assessmentRepo.GetByUserID(ctx, userID)
}

// LevelOneByLevel returns the grouped Level-One question set for a level.
func (s *AssessmentService) LevelOneByLevel(ctx context.Context, level string) ([]model.CapabilityQuestions, error) {
	return s.store.LevelOneByLevel(ctx, level)
}

// LevelTwoThemes returns the deep-dive themes for a capability and level.
// Missing content is an empty result, not an error.
func (s *AssessmentService) LevelTwoThemes(ctx context.Context, capability, level string) ([]model.LevelTwoTheme, error) {
	n, err := strconv.Atoi(level)
	if err != nil {
		return nil, &model.ValidationError{Field: "level", Message: "must be a whole number"}
	}
	return s.store.LevelTwo(ctx, capability, n)
}

// Event types pushed over the assessment WebSocket channel.
const (
	wsQuestionAdvanced    = "question_advanced"
	wsDeepDiveStarted     = "deep_dive_started"
	wsAssessmentCompleted = "assessment_completed"
	wsPlanReady           = "plan_ready"
	wsPlanFailed          = "plan_failed"
)

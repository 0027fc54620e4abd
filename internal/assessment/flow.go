// Package assessment implements the branching assessment flow: Level-One
// skill/confidence questions per capability, with a conditional Level-Two
// deep dive when ratings fall below threshold.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadlens/internal/model"
)

var (
	// ErrComplete is returned when an answer arrives after the flow reached
	// its terminal state.
	ErrComplete = errors.New("assessment is already complete")

	// ErrWrongPhase is returned when an answer does not match the phase the
	// flow is currently in.
	ErrWrongPhase = errors.New("answer does not match current assessment phase")
)

// Deep-dive trigger thresholds. A Level-One answer at or above both is
// "sufficient"; anything less flags the capability for a deep dive.
const (
	skillThreshold      = 4
	confidenceThreshold = 3
)

// QuestionSource supplies questions to the flow. *dataset.Store satisfies it.
type QuestionSource interface {
	LevelOneForCapability(ctx context.Context, capability string, level int) ([]model.LevelOneQuestion, error)
	LevelTwo(ctx context.Context, capability string, level int) ([]model.LevelTwoTheme, error)
}

// Flow drives one assessment run. It is reconstructed from cached state on
// every request; all mutation goes through its transition methods.
type Flow struct {
	source QuestionSource
	state  *model.AssessmentState
}

// Prompt describes what the respondent should answer next.
type Prompt struct {
	Complete   bool                    `json:"complete"`
	Capability string                  `json:"capability,omitempty"`
	Type       model.Phase             `json:"type,omitempty"`
	LevelOne   *model.LevelOneQuestion `json:"levelOne,omitempty"`
	LevelTwo   *model.LevelTwoTheme    `json:"levelTwo,omitempty"`
}

// StepResult reports what a submitted answer caused.
type StepResult struct {
	DeepDiveOffered bool `json:"deepDiveOffered"`
	DeepDiveSkipped bool `json:"deepDiveSkipped"`
	Complete        bool `json:"complete"`
}

// Progress is a derived, recomputed-on-demand completion measure. The
// denominator grows when a deep dive activates; it is never stored.
type Progress struct {
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
	Fraction float64 `json:"fraction"`
}

// Start creates a new flow seeded with a classification result.
func Start(level *model.ResponsibilityLevel, demographics *model.DemographicProfile, userID string, source QuestionSource) *Flow {
	capabilities := make([]string, len(model.Capabilities))
	copy(capabilities, model.Capabilities)

	return &Flow{
		source: source,
		state: &model.AssessmentState{
			ID:                  uuid.New().String(),
			UserID:              userID,
			Level:               level.Level,
			ResponsibilityLevel: *level,
			Capabilities:        capabilities,
			Phase:               model.PhaseLevelOne,
			DeepDived:           make(map[string]bool),
			Responses:           make(map[string]*model.CapabilityAnswers),
			Demographics:        demographics,
			StartedAt:           time.Now().UTC(),
		},
	}
}

// Resume rebuilds a flow around previously cached state.
func Resume(state *model.AssessmentState, source QuestionSource) *Flow {
	if state.DeepDived == nil {
		state.DeepDived = make(map[string]bool)
	}
	if state.Responses == nil {
		state.Responses = make(map[string]*model.CapabilityAnswers)
	}
	return &Flow{source: source, state: state}
}

// State exposes the working state for caching and persistence.
func (f *Flow) State() *model.AssessmentState { return f.state }

// Current returns the prompt the respondent should answer next. Capabilities
// with no Level-One content for the assigned level are skipped, not fatal.
func (f *Flow) Current(ctx context.Context) (*Prompt, error) {
	if f.state.Phase == model.PhaseComplete {
		return &Prompt{Complete: true}, nil
	}

	if f.state.Phase == model.PhaseLevelTwo {
		capability := f.state.Capabilities[f.state.CurrentCapability]
		themes, err := f.source.LevelTwo(ctx, capability, f.state.Level)
		if err != nil {
			return nil, err
		}
		if f.state.CurrentTheme < len(themes) {
			theme := themes[f.state.CurrentTheme]
			return &Prompt{Capability: capability, Type: model.PhaseLevelTwo, LevelTwo: &theme}, nil
		}
		// Theme list shrank underneath us; fall through to Level One.
		f.finishDeepDive(capability)
	}

	capability, question, err := f.currentQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if question == nil {
		f.state.Phase = model.PhaseComplete
		return &Prompt{Complete: true}, nil
	}
	return &Prompt{Capability: capability, Type: model.PhaseLevelOne, LevelOne: question}, nil
}

// currentQuestion resolves the Level-One cursor, advancing past capabilities
// that have no content for this level. Returns a nil question when every
// capability is exhausted.
func (f *Flow) currentQuestion(ctx context.Context) (string, *model.LevelOneQuestion, error) {
	for f.state.CurrentCapability < len(f.state.Capabilities) {
		capability := f.state.Capabilities[f.state.CurrentCapability]
		questions, err := f.source.LevelOneForCapability(ctx, capability, f.state.Level)
		if err != nil {
			return "", nil, err
		}
		if f.state.CurrentQuestion < len(questions) {
			q := questions[f.state.CurrentQuestion]
			return capability, &q, nil
		}
		f.state.CurrentCapability++
		f.state.CurrentQuestion = 0
	}
	return "", nil, nil
}

// SubmitLevelOne records a skill/confidence answer and decides whether the
// capability needs a deep dive.
func (f *Flow) SubmitLevelOne(ctx context.Context, rating, confidence int, freeText string) (*StepResult, error) {
	if f.state.Phase == model.PhaseComplete {
		return nil, ErrComplete
	}
	if f.state.Phase != model.PhaseLevelOne {
		return nil, ErrWrongPhase
	}
	if rating < 1 || rating > 5 {
		return nil, &model.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	if confidence < 1 || confidence > 5 {
		return nil, &model.ValidationError{Field: "confidenceRating", Message: "must be between 1 and 5"}
	}

	capability, question, err := f.currentQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if question == nil {
		f.state.Phase = model.PhaseComplete
		return nil, ErrComplete
	}

	f.bundle(capability).LevelOne = append(f.bundle(capability).LevelOne, model.AssessmentResponse{
		Question:         question.SkillPrompt,
		Rating:           rating,
		ConfidenceRating: confidence,
		Response:         freeText,
		Area:             capability,
	})

	if rating >= skillThreshold && confidence >= confidenceThreshold {
		return f.advanceLevelOne(ctx)
	}

	if f.state.DeepDived[capability] {
		// A capability is only deep-dived once per run.
		result, err := f.advanceLevelOne(ctx)
		if err != nil {
			return nil, err
		}
		result.DeepDiveSkipped = true
		return result, nil
	}

	themes, err := f.source.LevelTwo(ctx, capability, f.state.Level)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		// No deep-dive content for this pair; never block the flow on it.
		f.state.DeepDived[capability] = true
		return f.advanceLevelOne(ctx)
	}

	f.state.Phase = model.PhaseLevelTwo
	f.state.CurrentTheme = 0
	return &StepResult{DeepDiveOffered: true}, nil
}

// SubmitLevelTwo records a free-text (optionally rated) answer to the current
// deep-dive theme.
func (f *Flow) SubmitLevelTwo(ctx context.Context, rating int, freeText string) (*StepResult, error) {
	if f.state.Phase == model.PhaseComplete {
		return nil, ErrComplete
	}
	if f.state.Phase != model.PhaseLevelTwo {
		return nil, ErrWrongPhase
	}
	if rating != 0 && (rating < 1 || rating > 5) {
		return nil, &model.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	capability := f.state.Capabilities[f.state.CurrentCapability]
	themes, err := f.source.LevelTwo(ctx, capability, f.state.Level)
	if err != nil {
		return nil, err
	}
	if f.state.CurrentTheme >= len(themes) {
		f.finishDeepDive(capability)
		return f.advanceLevelOne(ctx)
	}

	theme := themes[f.state.CurrentTheme]
	f.bundle(capability).LevelTwo = append(f.bundle(capability).LevelTwo, model.AssessmentResponse{
		Question: theme.Prompt,
		Rating:   rating,
		Response: freeText,
		Area:     capability,
	})
	f.state.CurrentTheme++

	if f.state.CurrentTheme >= len(themes) {
		f.finishDeepDive(capability)
		return f.advanceLevelOne(ctx)
	}
	return &StepResult{}, nil
}

// DeclineDeepDive skips the offered deep dive. Declining behaves exactly like
// completing Level Two with zero additional responses.
func (f *Flow) DeclineDeepDive(ctx context.Context) (*StepResult, error) {
	if f.state.Phase == model.PhaseComplete {
		return nil, ErrComplete
	}
	if f.state.Phase != model.PhaseLevelTwo {
		return nil, ErrWrongPhase
	}
	capability := f.state.Capabilities[f.state.CurrentCapability]
	f.finishDeepDive(capability)
	return f.advanceLevelOne(ctx)
}

func (f *Flow) finishDeepDive(capability string) {
	f.state.DeepDived[capability] = true
	f.state.Phase = model.PhaseLevelOne
	f.state.CurrentTheme = 0
}

// advanceLevelOne moves the Level-One cursor one slot forward and marks the
// flow complete when no capability has content left.
func (f *Flow) advanceLevelOne(ctx context.Context) (*StepResult, error) {
	f.state.CurrentQuestion++
	_, question, err := f.currentQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if question == nil {
		f.state.Phase = model.PhaseComplete
		return &StepResult{Complete: true}, nil
	}
	return &StepResult{}, nil
}

// Responses aggregates every recorded answer into a single ordered sequence:
// capabilities in processing order, Level-One before Level-Two within each.
func (f *Flow) Responses() []model.AssessmentResponse {
	var out []model.AssessmentResponse
	for _, capability := range f.state.Capabilities {
		bundle := f.state.Responses[capability]
		if bundle == nil {
			continue
		}
		out = append(out, bundle.LevelOne...)
		out = append(out, bundle.LevelTwo...)
	}
	return out
}

// Progress computes completion as answered / total question slots. The total
// counts every Level-One slot for the assigned level, plus the Level-Two
// theme count only once a deep dive is active for the current capability.
func (f *Flow) Progress(ctx context.Context) (*Progress, error) {
	total := 0
	for _, capability := range f.state.Capabilities {
		questions, err := f.source.LevelOneForCapability(ctx, capability, f.state.Level)
		if err != nil {
			return nil, err
		}
		total += len(questions)
	}
	answered := 0
	for _, bundle := range f.state.Responses {
		answered += len(bundle.LevelOne) + len(bundle.LevelTwo)
	}
	if f.state.Phase == model.PhaseLevelTwo && f.state.CurrentCapability < len(f.state.Capabilities) {
		capability := f.state.Capabilities[f.state.CurrentCapability]
		themes, err := f.source.LevelTwo(ctx, capability, f.state.Level)
		if err != nil {
			return nil, err
		}
		total += len(themes)
	}

	p := &Progress{Answered: answered, Total: total}
	if total > 0 {
		p.Fraction = float64(answered) / float64(total)
		if p.Fraction > 1 {
			p.Fraction = 1
		}
	}
	return p, nil
}

// Elapsed reports time spent so far. Display only; nothing gates submission
// on it.
func (f *Flow) Elapsed() time.Duration {
	return time.Since(f.state.StartedAt)
}

// Complete returns whether the flow reached its terminal state.
func (f *Flow) Complete() bool {
	return f.state.Phase == model.PhaseComplete
}

func (f *Flow) bundle(capability string) *model.CapabilityAnswers {
	b, ok := f.state.Responses[capability]
	if !ok {
		b = &model.CapabilityAnswers{}
		f.state.Responses[capability] = b
	}
	return b
}

// Record converts a finished flow into its persistable assessment document.
func (f *Flow) Record() (*model.Assessment, error) {
	if !f.Complete() {
		return nil, fmt.Errorf("assessment %s is not complete", f.state.ID)
	}
	now := time.Now().UTC()
	return &model.Assessment{
		ID:                  f.state.ID,
		UserID:              f.state.UserID,
		Demographics:        f.state.Demographics,
		ResponsibilityLevel: f.state.ResponsibilityLevel,
		Responses:           f.Responses(),
		Status:              model.AssessmentCompleted,
		StartedAt:           f.state.StartedAt,
		CompletedAt:         &now,
		TimeSpentSec:        int(now.Sub(f.state.StartedAt).Seconds()),
	}, nil
}

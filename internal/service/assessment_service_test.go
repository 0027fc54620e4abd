package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadlens/internal/cache"
	"leadlens/internal/dataset"
	"leadlens/internal/model"
)

// fakeRawSource serves an in-memory dataset shaped like the JSON exports.
type fakeRawSource struct{}

func (fakeRawSource) Load(ctx context.Context) (*dataset.Raw, error) {
	tiers := make([]map[string]any, len(model.TierNames))
	for i, name := range model.TierNames {
		tiers[i] = map[string]any{"Role Name": name, "Description": "desc"}
	}
	return &dataset.Raw{
		Tiers: tiers,
		LevelOne: []map[string]any{
			{
				"Lvl":                            float64(4),
				"Building a Team (Skill)":        "team skill",
				"Building a Team (Confidence)":   "team confidence",
				"Developing Others (Skill)":      "develop skill",
				"Developing Others (Confidence)": "develop confidence",
			},
		},
		LevelTwo: []map[string]any{
			{
				"Lvl":              float64(4),
				" Building a Team": "Themes or Focus Areas:\nHiring: closing candidates",
			},
		},
	}, nil
}

type fakeStateCache struct {
	states map[string]*model.AssessmentState
}

func newFakeStateCache() *fakeStateCache {
	return &fakeStateCache{states: make(map[string]*model.AssessmentState)}
}

func (c *fakeStateCache) Set(ctx context.Context, state *model.AssessmentState) error {
	// Round-trip through JSON the way the redis cache does, so tests catch
	// anything that does not survive serialization.
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	var copied model.AssessmentState
	if err := json.Unmarshal(data, &copied); err != nil {
		return err
	}
	c.states[state.ID] = &copied
	return nil
}

func (c *fakeStateCache) Get(ctx context.Context, id string) (*model.AssessmentState, error) {
	state, ok := c.states[id]
	if !ok {
		return nil, cache.ErrStateNotFound
	}
	return state, nil
}

func (c *fakeStateCache) Delete(ctx context.Context, id string) error {
	delete(c.states, id)
	return nil
}

type fakeAssessmentRepo struct {
	byID map[string]*model.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byID: make(map[string]*model.Assessment)}
}

func (r *fakeAssessmentRepo) Create(ctx context.Context, a *model.Assessment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	return r.byID[id], nil
}

func (r *fakeAssessmentRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) Update(ctx context.Context, a *model.Assessment) error {
	r.byID[a.ID] = a
	return nil
}

type notification struct {
	assessmentID string
	msgType      string
}

type fakeNotifier struct {
	events []notification
}

func (n *fakeNotifier) Notify(assessmentID string, msgType string, payload interface{}) {
	n.events = append(n.events, notification{assessmentID: assessmentID, msgType: msgType})
}

// strategicInput scores 0.40, landing on tier index 4 where the fake dataset
// has Level-One content.
func strategicInput(t *testing.T) *model.DemographicInput {
	t.Helper()
	raw := `{
		"name":           "Dana",
		"industry":       "Technology",
		"companySize":    "1000",
		"department":     "Engineering",
		"jobTitle":       "Director of Engineering",
		"directReports":  "0",
		"reportingRoles": "None",
		"decisionLevel":  "strategic",
		"typicalProject": "Platform strategy",
		"levelsToCEO":    "5",
		"managesBudget":  "false"
	}`
	var in model.DemographicInput
	require.NoError(t, json.Unmarshal([]byte(raw), &in))
	return &in
}

func newTestAssessmentService() (*AssessmentService, *fakeStateCache, *fakeAssessmentRepo, *fakeNotifier) {
	store := dataset.NewStore(fakeRawSource{})
	stateCache := newFakeStateCache()
	repo := newFakeAssessmentRepo()
	notifier := &fakeNotifier{}
	svc := NewAssessmentService(store, stateCache, repo)
	svc.SetNotifier(notifier)
	return svc, stateCache, repo, notifier
}

func TestClassifyEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAssessmentService()

	level, profile, err := svc.Classify(ctx, strategicInput(t))
	require.NoError(t, err)
	assert.Equal(t, 4, level.Level)
	assert.Equal(t, model.TierNames[4], level.Role)
	assert.Equal(t, 1000, profile.CompanySize)
}

func TestStartCachesStateAndReturnsFirstPrompt(t *testing.T) {
	ctx := context.Background()
	svc, stateCache, _, _ := newTestAssessmentService()

	resp, err := svc.Start(ctx, "user-1", strategicInput(t))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AssessmentID)
	require.NotNil(t, resp.Next)
	assert.Equal(t, "Building a Team", resp.Next.Capability)
	require.NotNil(t, resp.Progress)
	assert.Equal(t, 2, resp.Progress.Total)

	cached, err := stateCache.Get(ctx, resp.AssessmentID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", cached.UserID)
	assert.Equal(t, 4, cached.Level)
}

func TestAnswerFullRunPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, _, repo, notifier := newTestAssessmentService()

	started, err := svc.Start(ctx, "user-1", strategicInput(t))
	require.NoError(t, err)
	id := started.AssessmentID

	// Low answer triggers the deep dive.
	resp, err := svc.Answer(ctx, "user-1", id, &AnswerRequest{Type: AnswerLevelOne, Rating: 2, ConfidenceRating: 2})
	require.NoError(t, err)
	assert.True(t, resp.Step.DeepDiveOffered)
	require.NotNil(t, resp.Next.LevelTwo)

	// Single theme; answering it returns to Level One.
	resp, err = svc.Answer(ctx, "user-1", id, &AnswerRequest{Type: AnswerLevelTwo, Response: "hiring is hard"})
	require.NoError(t, err)
	assert.Equal(t, "Developing Others", resp.Next.Capability)

	// Clean answer on the last capability completes the run.
	resp, err = svc.Answer(ctx, "user-1", id, &AnswerRequest{Type: AnswerLevelOne, Rating: 5, ConfidenceRating: 5})
	require.NoError(t, err)
	assert.True(t, resp.Step.Complete)
	assert.True(t, resp.Next.Complete)

	record, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, model.AssessmentCompleted, record.Status)
	assert.Len(t, record.Responses, 3)

	require.NotEmpty(t, notifier.events)
	last := notifier.events[len(notifier.events)-1]
	assert.Equal(t, "assessment_completed", last.msgType)
	assert.Equal(t, id, last.assessmentID)
}

func TestAnswerOwnershipAndExistence(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAssessmentService()

	started, err := svc.Start(ctx, "user-1", strategicInput(t))
	require.NoError(t, err)

	_, err = svc.Answer(ctx, "intruder", started.AssessmentID, &AnswerRequest{Type: AnswerLevelOne, Rating: 5, ConfidenceRating: 5})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Answer(ctx, "user-1", "missing-id", &AnswerRequest{Type: AnswerLevelOne, Rating: 5, ConfidenceRating: 5})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	_, err = svc.Answer(ctx, "user-1", started.AssessmentID, &AnswerRequest{Type: "mystery"})
	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestDeclineDeepDiveThroughService(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAssessmentService()

	started, err := svc.Start(ctx, "user-1", strategicInput(t))
	require.NoError(t, err)
	id := started.AssessmentID

	resp, err := svc.Answer(ctx, "user-1", id, &AnswerRequest{Type: AnswerLevelOne, Rating: 1, ConfidenceRating: 1})
	require.NoError(t, err)
	require.True(t, resp.Step.DeepDiveOffered)

	resp, err = svc.Answer(ctx, "user-1", id, &AnswerRequest{Type: AnswerDeclineDeepDive})
	require.NoError(t, err)
	assert.Equal(t, "Developing Others", resp.Next.Capability)
	assert.Equal(t, 1, resp.Progress.Answered)
}

func TestLevelTwoThemesValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAssessmentService()

	themes, err := svc.LevelTwoThemes(ctx, "Building a Team", "4")
	require.NoError(t, err)
	require.Len(t, themes, 1)

	_, err = svc.LevelTwoThemes(ctx, "Building a Team", "four")
	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

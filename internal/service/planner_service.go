package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadlens/internal/cache"
	"leadlens/internal/config"
	"leadlens/internal/model"
	"leadlens/internal/plan"
	"leadlens/internal/repository"
)

var ErrAssessmentIncomplete = errors.New("assessment has no recorded responses")

// PlannerService orchestrates development-plan generation via the chat API,
// with a deterministic mock when no API key is configured.
type PlannerService struct {
	config         *config.AIConfig
	client         *http.Client
	planRepo       repository.PlanRepo
	planCache      cache.PlanCache
	assessmentRepo repository.AssessmentRepo
	notifier       Notifier
}

// NewPlannerService creates a new planner service
func NewPlannerService(planRepo repository.PlanRepo, planCache cache.PlanCache, assessmentRepo repository.AssessmentRepo) *PlannerService {
	cfg := config.DefaultAIConfig()
	return &PlannerService{
		config:         cfg,
		client:         &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		planRepo:       planRepo,
		planCache:      planCache,
		assessmentRepo: assessmentRepo,
	}
}

// SetNotifier injects the WebSocket hub
func (s *PlannerService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Generate builds and persists a development plan for a completed assessment.
// A malformed model response yields a plan with status "failed" and the raw
// content preserved; the assessment's responses are never touched, so plan
// generation alone can be retried.
func (s *PlannerService) Generate(ctx context.Context, userID, assessmentID string) (*model.DevelopmentPlan, error) {
	record, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	if record == nil {
		return nil, ErrAssessmentNotFound
	}
	if record.UserID != userID {
		return nil, ErrNotOwner
	}
	if len(record.Responses) == 0 {
		return nil, ErrAssessmentIncomplete
	}

	// Reuse an existing successful plan rather than paying for regeneration.
	if cached, err := s.planCache.GetByAssessmentID(ctx, assessmentID); err == nil && cached != nil && cached.Status == model.PlanReady {
		return cached, nil
	}
	if existing, err := s.planRepo.GetByAssessmentID(ctx, assessmentID); err == nil && existing != nil && existing.Status == model.PlanReady {
		return existing, nil
	}

	request := plan.Assemble(record.Responses, record.Demographics, record.ResponsibilityLevel)

	var raw string
	if s.config.IsEnabled() {
		raw, err = s.callChat(ctx, s.config.Models.PlanGen, buildPlanPrompt(request))
		if err != nil {
			return nil, fmt.Errorf("failed to generate plan: %w", err)
		}
	} else {
		raw = s.mockPlan(request)
	}

	record2 := &model.DevelopmentPlan{
		ID:           uuid.New().String(),
		UserID:       userID,
		AssessmentID: assessmentID,
		Content:      raw,
	}

	doc, parseErr := plan.Parse(raw)
	if parseErr != nil {
		log.Printf("Plan parse failed for assessment %s: %v", assessmentID, parseErr)
		record2.Status = model.PlanFailed
	} else {
		record2.Document = doc
		record2.Status = model.PlanReady
	}

	if err := s.planRepo.Create(ctx, record2); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}
	if err := s.planCache.Set(ctx, record2); err != nil {
		log.Printf("Failed to cache plan for assessment %s: %v", assessmentID, err)
	}

	if record2.Status == model.PlanReady {
		s.notify(assessmentID, wsPlanReady, record2)
	} else {
		s.notify(assessmentID, wsPlanFailed, map[string]string{"planId": record2.ID, "error": "plan generation incomplete"})
	}
	return record2, nil
}

func (s *PlannerService) notify(assessmentID, msgType string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(assessmentID, msgType, payload)
	}
}

// ListForUser returns the user's plans, newest first.
func (s *PlannerService) ListForUser(ctx context.Context, userID string) ([]*model.DevelopmentPlan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

// Get returns one plan, enforcing ownership.
func (s *PlannerService) Get(ctx context.Context, userID, planID string) (*model.DevelopmentPlan, error) {
	p, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// callChat makes a request to the chat completions API
func (s *PlannerService) callChat(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": modelName,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an executive leadership coach. Respond with valid JSON only."},
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]string{"type": "json_object"},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API returned status %d", resp.StatusCode)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) > 0 {
		return chatResp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("empty response from chat API")
}

// buildPlanPrompt formats the assembled request into the generation prompt
func buildPlanPrompt(request *model.PlanRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Generate a personalized leadership development plan. Return ONLY valid JSON matching this schema:
{
  "development_plan": {
    "title": "Personalized Development Plan",
    "participant_name": "...",
    "assessment_date": "...",
    "executive_summary": "...",
    "key_strengths": ["..."],
    "priority_areas": ["..."],
    "capability_analysis": [
      {
        "capability": "...",
        "overview": "...",
        "skill_score": 1-5,
        "confidence_score": 1-5,
        "strengths": ["..."],
        "development_areas": ["..."],
        "recommendations": ["..."],
        "resources": ["..."]
      }
    ],
    "short_term_actions": ["..."],
    "long_term_actions": ["..."],
    "success_metrics": ["..."],
    "conclusion": "..."
  }
}

Participant profile:
- Name: %s
- Job title: %s
- Industry: %s
- Department: %s
- Company size: %d
- Direct reports: %d
- Decision level: %s
- Responsibility level: %s (tier %d)
- Level description: %s

`,
		request.UserInfo.Name,
		request.UserInfo.JobTitle,
		request.UserInfo.Industry,
		request.UserInfo.Department,
		request.UserInfo.CompanySize,
		request.UserInfo.DirectReports,
		request.UserInfo.DecisionLevel,
		request.ResponsibilityLevel.Role,
		request.ResponsibilityLevel.Level,
		request.ResponsibilityLevel.Description,
	)

	b.WriteString("Assessment responses, in order:\n")
	for _, r := range request.AssessmentAnswers {
		fmt.Fprintf(&b, "- [%s] %s", r.Area, r.Question)
		if r.Rating > 0 {
			fmt.Fprintf(&b, " | skill %d/5", r.Rating)
		}
		if r.ConfidenceRating > 0 {
			fmt.Fprintf(&b, " | confidence %d/5", r.ConfidenceRating)
		}
		if r.Response != "" {
			fmt.Fprintf(&b, " | answer: %s", r.Response)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nAnalyze every capability covered by the responses. Keep recommendations specific to the participant's tier and context.")
	return b.String()
}

// mockPlan returns a deterministic plan for local development without an API key
func (s *PlannerService) mockPlan(request *model.PlanRequest) string {
	byArea := make(map[string][]model.AssessmentResponse)
	var areas []string
	for _, r := range request.AssessmentAnswers {
		if _, seen := byArea[r.Area]; !seen {
			areas = append(areas, r.Area)
		}
		byArea[r.Area] = append(byArea[r.Area], r)
	}

	doc := model.PlanDocument{
		DevelopmentPlan: model.PlanBody{
			Title:            "Personalized Development Plan",
			ParticipantName:  request.UserInfo.Name,
			AssessmentDate:   time.Now().UTC().Format("2006-01-02"),
			ExecutiveSummary: fmt.Sprintf("Mock plan for a %s. Configure OPENAI_API_KEY for real generation.", request.ResponsibilityLevel.Role),
			Conclusion:       "Revisit this plan quarterly and track progress against each action.",
		},
	}
	for _, area := range areas {
		responses := byArea[area]
		analysis := model.CapabilityAnalysis{
			Capability:      area,
			Overview:        fmt.Sprintf("Based on %d response(s).", len(responses)),
			Recommendations: []string{"Seek feedback from peers on " + area + "."},
		}
		if len(responses) > 0 {
			analysis.SkillScore = responses[0].Rating
			analysis.ConfidenceScore = responses[0].ConfidenceRating
		}
		doc.DevelopmentPlan.CapabilityAnalysis = append(doc.DevelopmentPlan.CapabilityAnalysis, analysis)
	}

	data, _ := json.Marshal(doc)
	return string(data)
}

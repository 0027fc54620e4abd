package model

import "time"

// PlanRequest is the payload handed to the plan-generation collaborator.
type PlanRequest struct {
	UserInfo            *DemographicProfile  `json:"userInfo"`
	ResponsibilityLevel ResponsibilityLevel  `json:"responsibilityLevel"`
	AssessmentAnswers   []AssessmentResponse `json:"assessmentAnswers,omitempty"`
	AssessmentCompleted bool                 `json:"assessmentCompleted"`
}

// CapabilityAnalysis is the per-capability section of a generated plan.
type CapabilityAnalysis struct {
	Capability       string   `json:"capability"`
	Overview         string   `json:"overview,omitempty"`
	SkillScore       int      `json:"skill_score,omitempty"`
	ConfidenceScore  int      `json:"confidence_score,omitempty"`
	Strengths        []string `json:"strengths,omitempty"`
	DevelopmentAreas []string `json:"development_areas,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
	Resources        []string `json:"resources,omitempty"`
}

// PlanBody is the structured content of a development plan.
type PlanBody struct {
	Title              string               `json:"title,omitempty"`
	ParticipantName    string               `json:"participant_name,omitempty"`
	AssessmentDate     string               `json:"assessment_date,omitempty"`
	ExecutiveSummary   string               `json:"executive_summary,omitempty"`
	KeyStrengths       []string             `json:"key_strengths,omitempty"`
	PriorityAreas      []string             `json:"priority_areas,omitempty"`
	CapabilityAnalysis []CapabilityAnalysis `json:"capability_analysis,omitempty"`
	ShortTermActions   []string             `json:"short_term_actions,omitempty"`
	LongTermActions    []string             `json:"long_term_actions,omitempty"`
	SuccessMetrics     []string             `json:"success_metrics,omitempty"`
	Conclusion         string               `json:"conclusion,omitempty"`
}

// PlanDocument is the parsed form of the AI collaborator's output.
type PlanDocument struct {
	DevelopmentPlan PlanBody `json:"development_plan"`
}

type PlanStatus string

const (
	PlanReady  PlanStatus = "ready"
	PlanFailed PlanStatus = "failed"
)

// DevelopmentPlan is the persisted plan record. Content keeps the raw model
// output so a failed parse can be retried without regenerating.
type DevelopmentPlan struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	UserID       string        `json:"userId" bson:"userId"`
	AssessmentID string        `json:"assessmentId" bson:"assessmentId"`
	Content      string        `json:"content" bson:"content"`
	Document     *PlanDocument `json:"document,omitempty" bson:"document,omitempty"`
	Status       PlanStatus    `json:"status" bson:"status"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
}

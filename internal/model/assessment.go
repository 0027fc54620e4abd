package model

import "time"

// Phase is the controller's position within the current capability.
type Phase string

const (
	PhaseLevelOne Phase = "level_one"
	PhaseLevelTwo Phase = "level_two"
	PhaseComplete Phase = "complete"
)

type AssessmentStatus string

const (
	AssessmentPending   AssessmentStatus = "pending"
	AssessmentCompleted AssessmentStatus = "completed"
)

// CapabilityAnswers is the partial answer bundle for one capability.
type CapabilityAnswers struct {
	LevelOne []AssessmentResponse `json:"levelOne,omitempty" bson:"levelOne,omitempty"`
	LevelTwo []AssessmentResponse `json:"levelTwo,omitempty" bson:"levelTwo,omitempty"`
}

// AssessmentState is the flow controller's working memory for one in-progress
// run. It is serialized into the state cache between requests and mutated
// only by the controller's transition methods.
type AssessmentState struct {
	ID                  string                        `json:"id"`
	UserID              string                        `json:"userId"`
	Level               int                           `json:"level"`
	ResponsibilityLevel ResponsibilityLevel           `json:"responsibilityLevel"`
	Capabilities        []string                      `json:"capabilities"`
	CurrentCapability   int                           `json:"currentCapability"`
	CurrentQuestion     int                           `json:"currentQuestion"`
	Phase               Phase                         `json:"phase"`
	CurrentTheme        int                           `json:"currentTheme"`
	DeepDived           map[string]bool               `json:"deepDived"`
	Responses           map[string]*CapabilityAnswers `json:"responses"`
	Demographics        *DemographicProfile           `json:"demographics"`
	StartedAt           time.Time                     `json:"startedAt"`
}

// Assessment is the persisted record of a completed (or abandoned) run.
type Assessment struct {
	ID                  string               `json:"id" bson:"_id,omitempty"`
	UserID              string               `json:"userId" bson:"userId"`
	Demographics        *DemographicProfile  `json:"demographics" bson:"demographics"`
	ResponsibilityLevel ResponsibilityLevel  `json:"responsibilityLevel" bson:"responsibilityLevel"`
	Responses           []AssessmentResponse `json:"responses" bson:"responses"`
	Status              AssessmentStatus     `json:"status" bson:"status"`
	StartedAt           time.Time            `json:"startedAt" bson:"startedAt"`
	CompletedAt         *time.Time           `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	TimeSpentSec        int                  `json:"timeSpentSec" bson:"timeSpentSec"`
}

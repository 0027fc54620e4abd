// Package plan formats assessment output for the external plan-generation
// service and defensively parses whatever comes back.
package plan

import "leadlens/internal/model"

// Assemble builds the payload for the plan-generation call. Pure data
// transformation; no side effects.
func Assemble(responses []model.AssessmentResponse, demographics *model.DemographicProfile, level model.ResponsibilityLevel) *model.PlanRequest {
	return &model.PlanRequest{
		UserInfo:            demographics,
		ResponsibilityLevel: level,
		AssessmentAnswers:   responses,
		AssessmentCompleted: len(responses) > 0,
	}
}

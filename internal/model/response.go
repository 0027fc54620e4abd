package model

// AssessmentResponse is one answered question instance. The ordered sequence
// of responses for an assessment is append-only during the flow and immutable
// once the flow completes.
type AssessmentResponse struct {
	Question         string `json:"question" bson:"question"`
	Rating           int    `json:"rating,omitempty" bson:"rating,omitempty"`
	ConfidenceRating int    `json:"confidenceRating,omitempty" bson:"confidenceRating,omitempty"`
	Response         string `json:"response,omitempty" bson:"response,omitempty"`
	Area             string `json:"area" bson:"area"`
}

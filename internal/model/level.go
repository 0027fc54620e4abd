package model

// TierNames is the fixed ordinal list of responsibility levels. Index order
// determines which question set a respondent receives.
var TierNames = []string{
	"Individual Contributor",
	"Team Lead",
	"Supervisor",
	"Manager",
	"Senior Manager / Associate Director",
	"Director",
	"Senior Director / Vice President",
	"Senior Vice President",
	"Executive Vice President",
	"Chief Officer",
}

// Tier is one row of the responsibility-level reference table after schema
// mapping at load time.
type Tier struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	V1          string `json:"v1" bson:"v1"`
	V2          string `json:"v2" bson:"v2"`
}

// ResponsibilityLevel is the classification result embedded into an
// assessment. Computed once at assessment start; immutable afterward.
type ResponsibilityLevel struct {
	Role        string            `json:"role" bson:"role"`
	Level       int               `json:"level" bson:"level"`
	Description string            `json:"description" bson:"description"`
	VersionInfo map[string]string `json:"versionInfo" bson:"versionInfo"`
}

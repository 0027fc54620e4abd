package model

// Capabilities is the canonical ordered list of the 8 leadership domains.
// Datasets label the business-acumen columns inconsistently ("Managing the
// Business" vs "Managing the Business (Business Acumen)"); the dataset loader
// matches either spelling against this list.
var Capabilities = []string{
	"Building a Team",
	"Developing Others",
	"Leading a Team to Get Results",
	"Managing Performance",
	"Managing the Business (Business Acumen)",
	"Personal Development",
	"Communicating as a Leader",
	"Creating the Environment",
}

// LevelOneQuestion is the baseline skill + confidence prompt pair for one
// (capability, level) combination.
type LevelOneQuestion struct {
	Capability       string `json:"capability"`
	Level            int    `json:"level"`
	SkillPrompt      string `json:"question"`
	ConfidencePrompt string `json:"reflection"`
}

// CapabilityQuestions groups Level-One questions by capability area for a
// single responsibility level.
type CapabilityQuestions struct {
	Area      string             `json:"area"`
	Questions []LevelOneQuestion `json:"questions"`
}

// LevelTwoTheme is one deep-dive focus area under a (capability, level) pair.
// Themes are derived on demand from the raw Level-Two table.
type LevelTwoTheme struct {
	ID         string `json:"id"`
	Capability string `json:"capability"`
	Level      int    `json:"level"`
	Theme      string `json:"theme"`
	Prompt     string `json:"question"`
}

// QuestionOption is one selectable choice on a demographic form question.
type QuestionOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// DemographicQuestion describes one field of the demographic intake form.
type DemographicQuestion struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Question    string           `json:"question"`
	Placeholder string           `json:"placeholder,omitempty"`
	HelperText  string           `json:"helperText,omitempty"`
	Options     []QuestionOption `json:"options,omitempty"`
}

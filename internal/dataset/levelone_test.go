package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadlens/internal/model"
)

func TestParseLevelOneExplodesColumns(t *testing.T) {
	rows := []map[string]any{
		{
			"Lvl":                            float64(4),
			"Building a Team (Skill)":        "skill prompt",
			"Building a Team (Confidence)":   "confidence prompt",
			"Developing Others (Skill)":      "grow people",
			"Developing Others (Confidence)": "grow confidence",
		},
	}

	questions := parseLevelOne(rows)
	require.Len(t, questions, 2)

	assert.Equal(t, model.LevelOneQuestion{
		Capability:       "Building a Team",
		Level:            4,
		SkillPrompt:      "skill prompt",
		ConfidencePrompt: "confidence prompt",
	}, questions[0])
	assert.Equal(t, "Developing Others", questions[1].Capability)
}

func TestParseLevelOneMatchesColumnsBySubstring(t *testing.T) {
	// Real exports decorate headers with extra qualifiers; matching is by
	// capability name and marker substring, not exact equality.
	rows := []map[string]any{
		{
			"Lvl":                                                  float64(2),
			"  Managing the Business (Business Acumen) (Skill) ":   "business skill",
			"Managing the Business (Confidence) - updated wording": "business confidence",
		},
	}

	questions := parseLevelOne(rows)
	require.Len(t, questions, 1)
	assert.Equal(t, "Managing the Business (Business Acumen)", questions[0].Capability)
	assert.Equal(t, "business skill", questions[0].SkillPrompt)
	assert.Equal(t, "business confidence", questions[0].ConfidencePrompt)
}

func TestParseLevelOneSkipsIncompletePairs(t *testing.T) {
	rows := []map[string]any{
		{
			"Lvl":                     float64(3),
			"Building a Team (Skill)": "skill without confidence",
		},
		{
			"Building a Team (Skill)":      "row without level",
			"Building a Team (Confidence)": "row without level",
		},
	}

	assert.Empty(t, parseLevelOne(rows))
}

func TestParseLevelOneStringLevel(t *testing.T) {
	rows := []map[string]any{
		{
			"Lvl":                          " 5 ",
			"Building a Team (Skill)":      "s",
			"Building a Team (Confidence)": "c",
		},
	}

	questions := parseLevelOne(rows)
	require.Len(t, questions, 1)
	assert.Equal(t, 5, questions[0].Level)
}

func TestGroupByArea(t *testing.T) {
	questions := []model.LevelOneQuestion{
		{Capability: "Developing Others", Level: 4, SkillPrompt: "d"},
		{Capability: "Building a Team", Level: 4, SkillPrompt: "b"},
		{Capability: "Building a Team", Level: 2, SkillPrompt: "other level"},
	}

	groups := groupByArea(questions, "4")
	require.Len(t, groups, 2)

	// Canonical capability order, not insertion order.
	assert.Equal(t, "Building a Team", groups[0].Area)
	assert.Equal(t, "Developing Others", groups[1].Area)
	require.Len(t, groups[0].Questions, 1)
	assert.Equal(t, "b", groups[0].Questions[0].SkillPrompt)
}

func TestGroupByAreaBadLevel(t *testing.T) {
	questions := []model.LevelOneQuestion{{Capability: "Building a Team", Level: 4}}
	assert.Empty(t, groupByArea(questions, "four"))
	assert.Empty(t, groupByArea(questions, ""))
}

func TestBaseCapabilityName(t *testing.T) {
	assert.Equal(t, "Managing the Business", baseCapabilityName("Managing the Business (Business Acumen)"))
	assert.Equal(t, "Building a Team", baseCapabilityName("Building a Team"))
	assert.Equal(t, "Building a Team", baseCapabilityName("  Building a Team  "))
}

func TestCanonicalCapability(t *testing.T) {
	assert.Equal(t, "Managing the Business (Business Acumen)", canonicalCapability(" Managing the Business"))
	assert.Equal(t, "Building a Team", canonicalCapability("Building a Team"))
	assert.Equal(t, "Unknown Area", canonicalCapability(" Unknown Area "))
}

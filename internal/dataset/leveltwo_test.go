package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLevelTwoNormalizesKeys(t *testing.T) {
	// Exported Level-Two tables prefix capability columns with a space and
	// shorten "Managing the Business (Business Acumen)".
	rows := []map[string]any{
		{
			"Lvl":                    float64(4),
			" Building a Team":       "cell a",
			" Managing the Business": "cell b",
		},
	}

	cells, err := mapLevelTwo(rows)
	require.NoError(t, err)
	require.Contains(t, cells, 4)
	assert.Equal(t, "cell a", cells[4]["Building a Team"])
	assert.Equal(t, "cell b", cells[4]["Managing the Business (Business Acumen)"])
}

func TestMapLevelTwoMissingLevel(t *testing.T) {
	rows := []map[string]any{
		{" Building a Team": "cell without level"},
	}

	_, err := mapLevelTwo(rows)
	assert.Error(t, err)
}

func TestParseThemes(t *testing.T) {
	content := "Themes or Focus Areas:\n" +
		"Hiring: finding and closing the right candidates\n" +
		"\n" +
		"Onboarding: ramping new hires\n" +
		"a line without any separator\n" +
		": description with empty header\n" +
		"Header with empty description:   \n"

	themes := parseThemes("Building a Team", 4, content)
	require.Len(t, themes, 2)

	assert.Equal(t, "Building a Team-l2-0", themes[0].ID)
	assert.Equal(t, "Hiring: finding and closing the right candidates", themes[0].Theme)
	assert.Equal(t, `Regarding "Hiring: finding and closing the right candidates", please describe your specific challenges and experiences:`, themes[0].Prompt)

	assert.Equal(t, "Building a Team-l2-1", themes[1].ID)
	assert.Equal(t, "Onboarding: ramping new hires", themes[1].Theme)
	assert.Equal(t, 4, themes[1].Level)
	assert.Equal(t, "Building a Team", themes[1].Capability)
}

func TestParseThemesEmptyCell(t *testing.T) {
	assert.Empty(t, parseThemes("Building a Team", 4, ""))
	assert.Empty(t, parseThemes("Building a Team", 4, "Themes or Focus Areas:\n\n"))
}

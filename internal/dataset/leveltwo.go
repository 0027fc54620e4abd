package dataset

import (
	"fmt"
	"strings"

	"leadlens/internal/model"
)

const themesHeader = "Themes or Focus Areas:"

// mapLevelTwo normalizes the raw Level-Two table into level-keyed cells. The
// source data prefixes capability column names with a leading space; keys are
// trimmed and canonicalized here so lookups never re-handle the quirk.
func mapLevelTwo(rows []map[string]any) (map[int]map[string]string, error) {
	out := make(map[int]map[string]string, len(rows))
	for _, row := range rows {
		level, ok := rowLevel(row)
		if !ok {
			return nil, fmt.Errorf("level two row missing numeric Lvl field")
		}
		cells := make(map[string]string)
		for key, val := range row {
			if strings.TrimSpace(key) == "Lvl" {
				continue
			}
			if s, ok := val.(string); ok {
				cells[canonicalCapability(key)] = s
			}
		}
		out[level] = cells
	}
	return out, nil
}

// parseThemes splits a capability cell into deep-dive themes. The literal
// header line is discarded; every remaining non-blank line splits on its
// first colon into "Header: description". Lines without a colon or with an
// empty header or description are dropped.
func parseThemes(capability string, level int, content string) []model.LevelTwoTheme {
	var themes []model.LevelTwoTheme
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, themesHeader) {
			continue
		}
		header, description, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		header = strings.TrimSpace(header)
		description = strings.TrimSpace(description)
		if header == "" || description == "" {
			continue
		}
		theme := header + ": " + description
		themes = append(themes, model.LevelTwoTheme{
			ID:         fmt.Sprintf("%s-l2-%d", capability, len(themes)),
			Capability: capability,
			Level:      level,
			Theme:      theme,
			Prompt:     fmt.Sprintf("Regarding %q, please describe your specific challenges and experiences:", theme),
		})
	}
	return themes
}

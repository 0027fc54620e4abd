package dataset

import (
	"strconv"
	"strings"

	"leadlens/internal/model"
)

const (
	skillMarker      = "(Skill)"
	confidenceMarker = "(Confidence)"
)

// baseCapabilityName strips a trailing parenthetical qualifier so that
// "Managing the Business (Business Acumen)" matches columns labelled with
// either spelling.
func baseCapabilityName(capability string) string {
	name := strings.TrimSpace(capability)
	if i := strings.LastIndex(name, " ("); i > 0 && strings.HasSuffix(name, ")") {
		return name[:i]
	}
	return name
}

// canonicalCapability maps a dataset label back to the canonical capability
// name, tolerating leading/trailing whitespace and the parenthetical variant.
func canonicalCapability(label string) string {
	trimmed := strings.TrimSpace(label)
	for _, c := range model.Capabilities {
		if trimmed == c || trimmed == baseCapabilityName(c) {
			return c
		}
	}
	return trimmed
}

// parseLevelOne explodes the raw rows into per-capability question records.
// Each row carries one skill column and one confidence column per capability,
// identified by substring matching on the column header. Rows missing a
// capability's columns contribute nothing for that capability.
func parseLevelOne(rows []map[string]any) []model.LevelOneQuestion {
	var out []model.LevelOneQuestion
	for _, row := range rows {
		level, ok := rowLevel(row)
		if !ok {
			continue
		}
		for _, capability := range model.Capabilities {
			base := baseCapabilityName(capability)
			skill := findColumn(row, base, skillMarker)
			confidence := findColumn(row, base, confidenceMarker)
			if skill == "" || confidence == "" {
				continue
			}
			out = append(out, model.LevelOneQuestion{
				Capability:       capability,
				Level:            level,
				SkillPrompt:      skill,
				ConfidencePrompt: confidence,
			})
		}
	}
	return out
}

func findColumn(row map[string]any, capability, marker string) string {
	for key, val := range row {
		if strings.Contains(key, capability) && strings.Contains(key, marker) {
			if s, ok := val.(string); ok {
				return s
			}
		}
	}
	return ""
}

// rowLevel extracts the "Lvl" field, which arrives as a JSON number or a
// numeric string depending on how the dataset was exported.
func rowLevel(row map[string]any) (int, bool) {
	switch v := row["Lvl"].(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// groupByArea filters questions to one level and groups them by capability in
// canonical order. A non-integer level yields an empty result.
func groupByArea(questions []model.LevelOneQuestion, level string) []model.CapabilityQuestions {
	n, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil {
		return nil
	}

	byArea := make(map[string][]model.LevelOneQuestion)
	for _, q := range questions {
		if q.Level == n {
			byArea[q.Capability] = append(byArea[q.Capability], q)
		}
	}

	var out []model.CapabilityQuestions
	for _, capability := range model.Capabilities {
		if qs := byArea[capability]; len(qs) > 0 {
			out = append(out, model.CapabilityQuestions{Area: capability, Questions: qs})
		}
	}
	return out
}

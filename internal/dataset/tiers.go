package dataset

import (
	"fmt"
	"strings"

	"leadlens/internal/model"
)

// mapTiers converts raw reference rows into typed tiers. Rows may key the
// tier name on either "Role Name" or "Responsibility Level". An empty table
// or a nameless row is a load failure.
func mapTiers(rows []map[string]any) ([]model.Tier, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("responsibility levels data is empty")
	}
	tiers := make([]model.Tier, 0, len(rows))
	for i, row := range rows {
		name := stringField(row, "Role Name")
		if name == "" {
			name = stringField(row, "Responsibility Level")
		}
		if name == "" {
			return nil, fmt.Errorf("responsibility level row %d has no role name", i)
		}
		tiers = append(tiers, model.Tier{
			Name:        name,
			Description: stringField(row, "Description"),
			V1:          stringField(row, "v1.0"),
			V2:          stringField(row, "v2.0"),
		})
	}
	return tiers, nil
}

// stringField tolerates the leading-space key quirk present throughout the
// exported datasets.
func stringField(row map[string]any, key string) string {
	if s, ok := row[key].(string); ok {
		return s
	}
	for k, v := range row {
		if strings.TrimSpace(k) == key {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

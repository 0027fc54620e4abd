// Package classifier maps demographic inputs to an organizational
// responsibility tier with a deterministic weighted score.
package classifier

import (
	"errors"
	"math"
	"strings"

	"leadlens/internal/model"
)

var (
	// ErrTiersUnavailable means the reference tier table is empty or not loaded.
	ErrTiersUnavailable = errors.New("responsibility levels data not loaded or empty")

	// ErrTierLookup means the computed tier name has no matching reference row,
	// indicating a data/tier-list mismatch.
	ErrTierLookup = errors.New("unable to find matching responsibility level")
)

// Factor weights. The five terms are each clamped to [0,1] before weighting,
// so the total score stays within [0,1].
const (
	weightDirectReports = 0.30
	weightDecisionLevel = 0.30
	weightLevelsToCEO   = 0.20
	weightManagesBudget = 0.10
	weightCompanySize   = 0.10
)

// Classify computes the responsibility level for a demographic profile
// against an already-loaded reference table. It is pure and deterministic:
// identical inputs always produce identical output.
func Classify(profile *model.DemographicProfile, tiers []model.Tier) (*model.ResponsibilityLevel, error) {
	if len(tiers) == 0 {
		return nil, ErrTiersUnavailable
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	decisionLevel := strings.ToLower(profile.DecisionLevel)

	score := math.Min(float64(profile.DirectReports)/10, 1) * weightDirectReports
	switch decisionLevel {
	case "strategic":
		score += 1.0 * weightDecisionLevel
	case "tactical":
		score += 0.5 * weightDecisionLevel
	}
	score += (1 - math.Min(float64(profile.LevelsToCEO)/5, 1)) * weightLevelsToCEO
	if profile.ManagesBudget {
		score += weightManagesBudget
	}
	score += math.Min(float64(profile.CompanySize)/1000, 1) * weightCompanySize

	levelIndex := int(math.Floor(score * float64(len(model.TierNames))))
	if levelIndex > len(model.TierNames)-1 {
		levelIndex = len(model.TierNames) - 1
	}
	tierName := model.TierNames[levelIndex]

	var matched *model.Tier
	for i := range tiers {
		if tiers[i].Name == tierName {
			matched = &tiers[i]
			break
		}
	}
	if matched == nil {
		return nil, ErrTierLookup
	}

	return &model.ResponsibilityLevel{
		Role:        tierName,
		Level:       levelIndex,
		Description: matched.Description,
		VersionInfo: map[string]string{
			"v1.0": matched.V1,
			"v2.0": matched.V2,
		},
	}, nil
}

package gap

import (
	"strings"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/scoring"
	"github.com/jonathan/skillsync/internal/types"
)

// Every required skill is compared against a fixed intermediate bar.
const (
	requiredLevel      = types.LevelIntermediate
	requiredLevelValue = 2
)

// Analyzer performs gap analysis over the reference catalog and a scorer.
// It holds no per-request state; calls are independent and reentrant.
type Analyzer struct {
	catalog *catalog.Catalog
	scorer  *scoring.Scorer
}

// NewAnalyzer creates an Analyzer over the given catalog and scorer.
func NewAnalyzer(cat *catalog.Catalog, scorer *scoring.Scorer) *Analyzer {
	return &Analyzer{catalog: cat, scorer: scorer}
}

// Analyze classifies each of the role's required skills as proficient,
// to-improve, or missing, and attaches the readiness score and skill
// recommendations. Returns *RoleNotFoundError for an unknown role.
//
// The match percentage and the three buckets are computed independently: the
// score comes from the scorer (model or fallback) and is not derived from the
// bucket counts, so the two views can legitimately disagree.
func (a *Analyzer) Analyze(userSkills map[string]string, roleID string) (*types.GapReport, error) {
	role, ok := a.catalog.FindRole(roleID)
	if !ok {
		return nil, &RoleNotFoundError{RoleID: roleID}
	}

	report := &types.GapReport{
		TargetRole: types.RoleSummary{
			RoleID: role.RoleID,
			Name:   role.Name,
			Icon:   role.Icon,
		},
		Proficient: []types.SkillWithLevel{},
		ToImprove:  []types.SkillWithGap{},
		Missing:    []types.MissingSkill{},
	}

	// Required skills are processed in role order; duplicate entries are
	// classified once per occurrence. Unresolvable ids are skipped and do
	// not count toward any total.
	for _, skillID := range role.RequiredSkillIDs {
		skill, found := a.catalog.FindSkill(skillID)
		if !found {
			continue
		}

		rawLevel, present := userSkills[skillID]
		if !present {
			report.Missing = append(report.Missing, types.MissingSkill{
				SkillID:       skill.SkillID,
				Name:          skill.Name,
				Category:      skill.Category,
				RequiredLevel: requiredLevel,
			})
			continue
		}

		userLevel := strings.ToLower(strings.TrimSpace(rawLevel))
		userValue := scoring.LevelValue(userLevel)
		if userValue >= requiredLevelValue {
			report.Proficient = append(report.Proficient, types.SkillWithLevel{
				SkillID:       skill.SkillID,
				Name:          skill.Name,
				Category:      skill.Category,
				CurrentLevel:  userLevel,
				RequiredLevel: requiredLevel,
			})
		} else {
			report.ToImprove = append(report.ToImprove, types.SkillWithGap{
				SkillID:       skill.SkillID,
				Name:          skill.Name,
				Category:      skill.Category,
				CurrentLevel:  userLevel,
				RequiredLevel: requiredLevel,
				Gap:           requiredLevelValue - userValue,
			})
		}
	}

	report.MatchPercentage = a.scorer.Score(userSkills, roleID)
	report.Recommendations = Recommend(userSkills, roleID)
	report.Summary = types.GapSummary{
		TotalRequired:  len(role.RequiredSkillIDs),
		Proficient:     len(report.Proficient),
		ToImprove:      len(report.ToImprove),
		Missing:        len(report.Missing),
		ReadinessScore: report.MatchPercentage,
	}

	return report, nil
}

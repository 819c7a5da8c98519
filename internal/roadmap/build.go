package roadmap

import (
	"sort"
	"strings"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/types"
)

// Display limits per step type. Hour totals are not display-limited: a "new"
// step sums hours over the skill's full resource set while showing at most
// three resources.
const (
	maxNewResources     = 3
	maxUpgradeResources = 2
	hoursPerWeek        = 10
)

// Builder produces learning plans over the reference catalog. Stateless per
// call.
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder creates a Builder over the given catalog.
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{catalog: cat}
}

// Build assembles an ordered learning plan: missing skills first, sorted by
// category priority (stable on ties), then skills to improve in input order.
// Skill ids that do not resolve in the catalog emit no step. Step numbers
// increase strictly from 1.
func (b *Builder) Build(missing []string, toImprove []types.ImproveInput) *types.RoadmapPlan {
	plan := &types.RoadmapPlan{Steps: []types.RoadmapStep{}}
	step := 1

	for _, skill := range b.sortMissing(missing) {
		plan.Steps = append(plan.Steps, b.newSkillStep(step, skill))
		step++
	}

	for _, input := range toImprove {
		skill, ok := b.catalog.FindSkill(input.SkillID)
		if !ok {
			continue
		}
		plan.Steps = append(plan.Steps, b.upgradeStep(step, skill, input.CurrentLevel))
		step++
	}

	for _, s := range plan.Steps {
		plan.TotalEstimatedHours += s.EstimatedHours
	}
	plan.TotalSteps = len(plan.Steps)
	plan.EstimatedWeeks = estimatedWeeks(plan.TotalEstimatedHours)

	return plan
}

// sortMissing resolves the missing skill ids and orders them by category
// priority. The sort is stable: ids within the same category keep their
// input order. Unresolvable ids are dropped here.
func (b *Builder) sortMissing(missing []string) []types.Skill {
	resolved := make([]types.Skill, 0, len(missing))
	for _, skillID := range missing {
		if skill, ok := b.catalog.FindSkill(skillID); ok {
			resolved = append(resolved, skill)
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return priorityFor(resolved[i].Category) < priorityFor(resolved[j].Category)
	})
	return resolved
}

// newSkillStep builds a "new" step: learn the skill from scratch up to
// intermediate. Resources are taken in catalog order with no difficulty
// filter; hours sum over the full set.
func (b *Builder) newSkillStep(step int, skill types.Skill) types.RoadmapStep {
	all := b.catalog.ResourcesFor(skill.SkillID)

	totalHours := 0
	for _, r := range all {
		totalHours += r.EstimatedHours
	}

	return types.RoadmapStep{
		Step:           step,
		SkillID:        skill.SkillID,
		Name:           skill.Name,
		Category:       skill.Category,
		Status:         types.StepStatusNew,
		TargetLevel:    types.LevelIntermediate,
		EstimatedHours: totalHours,
		Resources:      displayResources(all, maxNewResources),
	}
}

// upgradeStep builds an "upgrade" step: push an existing skill to the next
// level. Resources matching the target difficulty are preferred; when none
// match, the skill's full resource set is used instead. Hours sum over
// whichever set was considered.
func (b *Builder) upgradeStep(step int, skill types.Skill, currentLevel string) types.RoadmapStep {
	current := strings.ToLower(strings.TrimSpace(currentLevel))
	target := types.LevelAdvanced
	if current == types.LevelBeginner {
		target = types.LevelIntermediate
	}

	considered := b.catalog.ResourcesFor(skill.SkillID)
	matched := make([]types.LearningResource, 0, len(considered))
	for _, r := range considered {
		if r.Difficulty == target {
			matched = append(matched, r)
		}
	}
	if len(matched) > 0 {
		considered = matched
	}

	totalHours := 0
	for _, r := range considered {
		totalHours += r.EstimatedHours
	}

	return types.RoadmapStep{
		Step:           step,
		SkillID:        skill.SkillID,
		Name:           skill.Name,
		Category:       skill.Category,
		Status:         types.StepStatusUpgrade,
		CurrentLevel:   current,
		TargetLevel:    target,
		EstimatedHours: totalHours,
		Resources:      displayResources(considered, maxUpgradeResources),
	}
}

// displayResources converts up to limit resources for step display.
func displayResources(resources []types.LearningResource, limit int) []types.RoadmapResource {
	if len(resources) > limit {
		resources = resources[:limit]
	}
	display := make([]types.RoadmapResource, 0, len(resources))
	for _, r := range resources {
		display = append(display, types.RoadmapResource{
			Name:       r.Name,
			Type:       r.Type,
			URL:        r.URL,
			Difficulty: r.Difficulty,
			Hours:      r.EstimatedHours,
		})
	}
	return display
}

// estimatedWeeks assumes ten hours of study per week, never under one week.
func estimatedWeeks(totalHours int) int {
	weeks := totalHours / hoursPerWeek
	if weeks < 1 {
		return 1
	}
	return weeks
}

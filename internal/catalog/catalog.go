// Package catalog provides the immutable reference data for skill gap
// analysis: skills, job roles, and learning resources. The catalog is loaded
// once at startup and is read-only afterwards, so lookups need no locking.
package catalog

import (
	"github.com/jonathan/skillsync/internal/types"
)

// Catalog holds the in-memory lookup tables. A missing backing file yields an
// empty table; lookups on an empty catalog return "not found" rather than
// failing, and callers treat that as a normal outcome.
type Catalog struct {
	skills    []types.Skill
	roles     []types.JobRole
	resources []types.LearningResource

	skillByID    map[string]types.Skill
	roleByID     map[string]types.JobRole
	resBySkillID map[string][]types.LearningResource
}

// New builds a catalog from already-validated records. Load is the usual
// entry point; New exists for tests and embedded deployments.
func New(skills []types.Skill, roles []types.JobRole, resources []types.LearningResource) *Catalog {
	c := &Catalog{
		skills:       skills,
		roles:        roles,
		resources:    resources,
		skillByID:    make(map[string]types.Skill, len(skills)),
		roleByID:     make(map[string]types.JobRole, len(roles)),
		resBySkillID: make(map[string][]types.LearningResource),
	}
	for _, s := range skills {
		c.skillByID[s.SkillID] = s
	}
	for _, r := range roles {
		c.roleByID[r.RoleID] = r
	}
	for _, res := range resources {
		c.resBySkillID[res.SkillID] = append(c.resBySkillID[res.SkillID], res)
	}
	return c
}

// FindSkill looks up a skill by its exact, case-sensitive id.
func (c *Catalog) FindSkill(skillID string) (types.Skill, bool) {
	s, ok := c.skillByID[skillID]
	return s, ok
}

// FindRole looks up a job role by its exact, case-sensitive id.
func (c *Catalog) FindRole(roleID string) (types.JobRole, bool) {
	r, ok := c.roleByID[roleID]
	return r, ok
}

// ResourcesFor returns the learning resources for a skill in catalog file
// order. The result is possibly empty and must not be mutated by callers.
func (c *Catalog) ResourcesFor(skillID string) []types.LearningResource {
	return c.resBySkillID[skillID]
}

// Skills returns all skills in catalog file order.
func (c *Catalog) Skills() []types.Skill {
	return c.skills
}

// SkillsByCategory groups all skills by their category.
func (c *Catalog) SkillsByCategory() map[string][]types.Skill {
	grouped := make(map[string][]types.Skill)
	for _, s := range c.skills {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}

// Roles returns all job roles in catalog file order.
func (c *Catalog) Roles() []types.JobRole {
	return c.roles
}

package catalog

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillsync/internal/types"
)

// Backing file names expected under the data directory.
const (
	skillsFile    = "skills.csv"
	rolesFile     = "job_roles.csv"
	resourcesFile = "resources.csv"
)

// skillRecord mirrors one row of skills.csv. All fields are read as strings
// so that a single malformed row can be excluded without failing the file.
type skillRecord struct {
	SkillID     string `csv:"skill_id"`
	Name        string `csv:"skill_name"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
}

// roleRecord mirrors one row of job_roles.csv. RequiredSkills is the raw
// comma-separated skill id list.
type roleRecord struct {
	RoleID         string `csv:"role_id"`
	Name           string `csv:"role_name"`
	Description    string `csv:"description"`
	Icon           string `csv:"icon"`
	RequiredSkills string `csv:"required_skills"`
}

// resourceRecord mirrors one row of resources.csv.
type resourceRecord struct {
	SkillID        string `csv:"skill_id"`
	Name           string `csv:"resource_name"`
	Type           string `csv:"resource_type"`
	URL            string `csv:"url"`
	Difficulty     string `csv:"difficulty"`
	EstimatedHours string `csv:"estimated_hours"`
}

// Load reads the three catalog CSV files from dir and builds the in-memory
// tables. The three files are read concurrently. A missing or unreadable file
// results in an empty table, not an error; a row missing a mandatory field is
// excluded so the catalog never holds partial records.
func Load(dir string) *Catalog {
	var (
		skills    []types.Skill
		roles     []types.JobRole
		resources []types.LearningResource
	)

	// Each goroutine writes a distinct variable; Wait establishes the
	// happens-before edge. Loaders never return errors.
	var g errgroup.Group
	g.Go(func() error {
		skills = loadSkills(filepath.Join(dir, skillsFile))
		return nil
	})
	g.Go(func() error {
		roles = loadRoles(filepath.Join(dir, rolesFile))
		return nil
	})
	g.Go(func() error {
		resources = loadResources(filepath.Join(dir, resourcesFile))
		return nil
	})
	_ = g.Wait()

	return New(skills, roles, resources)
}

func loadSkills(path string) []types.Skill {
	records, ok := readCSV[skillRecord](path)
	if !ok {
		return nil
	}

	skills := make([]types.Skill, 0, len(records))
	for _, rec := range records {
		if rec.SkillID == "" || rec.Name == "" || rec.Category == "" {
			continue
		}
		skills = append(skills, types.Skill{
			SkillID:     rec.SkillID,
			Name:        rec.Name,
			Category:    rec.Category,
			Description: rec.Description,
		})
	}
	return skills
}

func loadRoles(path string) []types.JobRole {
	records, ok := readCSV[roleRecord](path)
	if !ok {
		return nil
	}

	roles := make([]types.JobRole, 0, len(records))
	for _, rec := range records {
		if rec.RoleID == "" || rec.Name == "" || rec.RequiredSkills == "" {
			continue
		}
		roles = append(roles, types.JobRole{
			RoleID:           rec.RoleID,
			Name:             rec.Name,
			Description:      rec.Description,
			Icon:             rec.Icon,
			RequiredSkillIDs: splitSkillIDs(rec.RequiredSkills),
		})
	}
	return roles
}

func loadResources(path string) []types.LearningResource {
	records, ok := readCSV[resourceRecord](path)
	if !ok {
		return nil
	}

	resources := make([]types.LearningResource, 0, len(records))
	for _, rec := range records {
		if rec.SkillID == "" || rec.Name == "" || rec.URL == "" {
			continue
		}
		hours, err := strconv.Atoi(strings.TrimSpace(rec.EstimatedHours))
		if err != nil || hours < 0 {
			continue
		}
		resources = append(resources, types.LearningResource{
			SkillID:        rec.SkillID,
			Name:           rec.Name,
			Type:           rec.Type,
			URL:            rec.URL,
			Difficulty:     strings.ToLower(strings.TrimSpace(rec.Difficulty)),
			EstimatedHours: hours,
		})
	}
	return resources
}

// readCSV unmarshals a whole CSV file into records of type T. Returns ok=false
// when the file is absent or cannot be parsed; both degrade to an empty table.
func readCSV[T any](path string) ([]*T, bool) {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("catalog: cannot open %s: %v", path, err)
		}
		return nil, false
	}
	defer f.Close()

	var records []*T
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		log.Printf("catalog: cannot parse %s: %v", path, err)
		return nil, false
	}
	return records, true
}

// splitSkillIDs parses the comma-separated required_skills column, trimming
// whitespace and dropping empty entries. Duplicates are kept: the analyzer
// processes each occurrence independently.
func splitSkillIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

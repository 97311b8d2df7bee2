package rota

import (
	"sort"
	"strings"

	model "github.com/salmanakber/mayaopps-sub001/internal/models"
)

// MissingSkills returns required property skills the worker lacks. Only
// IsRequired entries count and proficiency is ignored.
func MissingSkills(required []model.PropertySkill, workerSkills []model.Skill) []model.Skill {
	has := make(map[string]struct{}, len(workerSkills))
	for _, s := range workerSkills {
		has[s.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	var missing []model.Skill
	for _, r := range required {
		if !r.IsRequired {
			continue
		}
		if _, ok := has[r.SkillID]; ok {
			continue
		}
		if _, ok := seen[r.SkillID]; ok {
			continue
		}
		seen[r.SkillID] = struct{}{}

		skill := r.Skill
		if skill.ID == "" {
			skill.ID = r.SkillID
		}
		missing = append(missing, skill)
	}

	sort.Slice(missing, func(i, j int) bool {
		a, b := skillLabel(missing[i]), skillLabel(missing[j])
		if a != b {
			return a < b
		}
		return missing[i].ID < missing[j].ID
	})
	return missing
}

// SkillWarning names every gap in one message.
func SkillWarning(missing []model.Skill) string {
	if len(missing) == 0 {
		return ""
	}
	names := make([]string, len(missing))
	for i, s := range missing {
		names[i] = skillLabel(s)
	}
	return "Worker is missing required skills: " + strings.Join(names, ", ")
}

func skillLabel(s model.Skill) string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

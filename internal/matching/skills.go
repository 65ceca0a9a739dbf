package matching

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/samber/lo"
	"math"
)

// RequirementMatch is present on a SkillMatch when the job lists a
// requirement with the same name as the candidate's skill.
type RequirementMatch struct {
	Required      bool `json:"required"`
	MeetsYears    bool `json:"meetsYears"`
	YearsRequired int  `json:"yearsRequired"`
}

type SkillMatch struct {
	entities.SkillExperience
	Match *RequirementMatch `json:"match"`
}

type SkillMatchResult struct {
	PerSkill        []SkillMatch `json:"perSkill"`
	Matched         int          `json:"matched"`
	Exceeds         int          `json:"exceeds"`
	Missing         int          `json:"missing"`
	Total           int          `json:"total"`
	ScorePercent    int          `json:"scorePercent"`
	HasRequirements bool         `json:"hasRequirements"`
}

// ComputeSkillMatch compares candidate skills against job requirements by
// exact name. Requirement names are expected to be unique within a job; when
// they are not, the last requirement with a given name is the one matched
// against, while Total and Missing still count every requirement entry.
func ComputeSkillMatch(skills []entities.SkillExperience, requirements []entities.SkillRequirement) SkillMatchResult {

	byName := lo.KeyBy(requirements, func(r entities.SkillRequirement) string { return r.Name })

	result := SkillMatchResult{
		PerSkill:        make([]SkillMatch, 0, len(skills)),
		Total:           len(requirements),
		HasRequirements: len(requirements) > 0,
	}

	for _, skill := range skills {
		entry := SkillMatch{SkillExperience: skill}
		if requirement, ok := byName[skill.Name]; ok {
			entry.Match = &RequirementMatch{
				Required:      requirement.IsRequired,
				MeetsYears:    skill.Years >= requirement.YearsRequired,
				YearsRequired: requirement.YearsRequired,
			}
			result.Matched++
			if skill.Years > requirement.YearsRequired {
				result.Exceeds++
			}
		}
		result.PerSkill = append(result.PerSkill, entry)
	}

	result.Missing = lo.CountBy(requirements, func(r entities.SkillRequirement) bool {
		return !lo.ContainsBy(skills, func(s entities.SkillExperience) bool { return s.Name == r.Name })
	})

	result.ScorePercent = percent(result.Matched, result.Total)
	return result
}

// percent rounds half up. A zero total yields 0 rather than dividing by zero.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(total)*100 + 0.5))
}

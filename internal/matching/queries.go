package matching

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"slices"
	"strings"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, string(Asc)) {
		return Asc
	}
	return Desc
}

func (d SortDirection) factor() int {
	if d == Asc {
		return 1
	}
	return -1
}

const (
	SortByName             = "name"
	SortByExperience       = "experience"
	SortByDaysSinceLastJob = "daysSinceLastJob"

	SortByTitle      = "title"
	SortByCompany    = "company"
	SortByPostedDate = "postedDate"
	SortBySalary     = "salary"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func compareText(a, b string) int {
	return collate.New(language.English, collate.IgnoreCase).CompareString(a, b)
}

// SearchCandidates filters by name or skill name and sorts by the given field.
// An unknown field keeps the stored order.
func SearchCandidates(candidates []entities.Candidate, query, sortBy string, dir SortDirection) []entities.Candidate {
	found := lo.Filter(candidates, func(c entities.Candidate, _ int) bool {
		return containsFold(c.Name, query) || lo.SomeBy(c.Skills, func(s entities.SkillExperience) bool {
			return containsFold(s.Name, query)
		})
	})

	var cmp func(a, b entities.Candidate) int
	switch sortBy {
	case SortByName:
		cmp = func(a, b entities.Candidate) int { return compareText(a.Name, b.Name) }
	case SortByExperience:
		cmp = func(a, b entities.Candidate) int { return a.Experience - b.Experience }
	case SortByDaysSinceLastJob:
		cmp = func(a, b entities.Candidate) int { return a.DaysSinceLastJob - b.DaysSinceLastJob }
	default:
		return found
	}

	slices.SortStableFunc(found, func(a, b entities.Candidate) int { return dir.factor() * cmp(a, b) })
	return found
}

// SearchJobs filters by title, company, location or requirement name and
// sorts by the given field. Salary sorts on the upper bound.
func SearchJobs(jobs []entities.JobRole, query, sortBy string, dir SortDirection) []entities.JobRole {
	found := lo.Filter(jobs, func(j entities.JobRole, _ int) bool {
		return containsFold(j.Title, query) ||
			containsFold(j.Company, query) ||
			containsFold(j.Location, query) ||
			lo.SomeBy(j.Requirements, func(r entities.SkillRequirement) bool { return containsFold(r.Name, query) })
	})

	var cmp func(a, b entities.JobRole) int
	switch sortBy {
	case SortByTitle:
		cmp = func(a, b entities.JobRole) int { return compareText(a.Title, b.Title) }
	case SortByCompany:
		cmp = func(a, b entities.JobRole) int { return compareText(a.Company, b.Company) }
	case SortByPostedDate:
		cmp = func(a, b entities.JobRole) int { return a.PostedDate.Compare(b.PostedDate) }
	case SortBySalary:
		cmp = func(a, b entities.JobRole) int { return a.Salary.Max - b.Salary.Max }
	default:
		return found
	}

	slices.SortStableFunc(found, func(a, b entities.JobRole) int { return dir.factor() * cmp(a, b) })
	return found
}

// FilterPresentations matches the query against candidate name, job title and
// company. An empty status matches every status. Result is most recently
// updated first.
func FilterPresentations(views []PresentationView, query string, status entities.PresentationStatus) []PresentationView {
	found := lo.Filter(views, func(v PresentationView, _ int) bool {
		if status != "" && v.Presentation.Status != status {
			return false
		}
		return containsFold(v.Candidate.Name, query) ||
			containsFold(v.JobRole.Title, query) ||
			containsFold(v.JobRole.Company, query)
	})
	sortByLastUpdatedDesc(found)
	return found
}

func SearchEmployers(employers []entities.Employer, query string) []entities.Employer {
	return lo.Filter(employers, func(e entities.Employer, _ int) bool {
		return containsFold(e.Name, query) || containsFold(e.Industry, query)
	})
}

func SearchMessages(messages []entities.Message, query string) []entities.Message {
	return lo.Filter(messages, func(m entities.Message, _ int) bool {
		return containsFold(m.Title, query) || containsFold(m.Content, query)
	})
}

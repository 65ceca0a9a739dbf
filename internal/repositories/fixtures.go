package repositories

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"time"
)

type Fixtures struct {
	Candidates    []entities.Candidate
	JobRoles      []entities.JobRole
	Presentations []entities.Presentation
	Employers     []entities.Employer
	Messages      []entities.Message
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func skill(name string, years int, end time.Time) entities.SkillExperience {
	return entities.SkillExperience{Name: name, Years: years, StartDate: end.AddDate(-years, 0, 0), EndDate: end}
}

func ptr[T any](v T) *T {
	return &v
}

// SampleData returns the records the store is seeded with. Message timestamps
// are relative to now.
func SampleData(now time.Time) Fixtures {
	alexEnd, samanthaEnd, marcusEnd := day(2023, 2, 15), day(2023, 11, 30), day(2023, 8, 15)
	priyaEnd, davidEnd := day(2024, 2, 28), day(2023, 5, 10)

	return Fixtures{
		Candidates: []entities.Candidate{
			{
				ID:    "1",
				Name:  "Alex Johnson",
				Email: "alex.johnson@example.com",
				Phone: "(555) 123-4567",
				Skills: []entities.SkillExperience{
					skill("JavaScript", 5, alexEnd), skill("React", 5, alexEnd),
					skill("Node.js", 3, alexEnd), skill("TypeScript", 3, alexEnd),
				},
				Experience:       5,
				LastEmployed:     alexEnd,
				DaysSinceLastJob: 410,
				Status:           entities.CandidateActive,
				Notes:            "Looking for remote opportunities in tech",
				Avatar:           ptr("https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=300"),
			},
			{
				ID:    "2",
				Name:  "Samantha Chen",
				Email: "samantha.chen@example.com",
				Phone: "(555) 987-6543",
				Skills: []entities.SkillExperience{
					skill("Product Management", 7, samanthaEnd), skill("Agile", 5, samanthaEnd),
					skill("Data Analysis", 4, samanthaEnd), skill("UX Research", 3, samanthaEnd),
				},
				Experience:       7,
				LastEmployed:     samanthaEnd,
				DaysSinceLastJob: 130,
				Status:           entities.CandidateActive,
				Notes:            "Prefers roles in fintech or healthtech",
				Avatar:           ptr("https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=300"),
			},
			{
				ID:    "3",
				Name:  "Marcus Williams",
				Email: "marcus.williams@example.com",
				Phone: "(555) 234-5678",
				Skills: []entities.SkillExperience{
					skill("Java", 8, marcusEnd), skill("Spring Boot", 6, marcusEnd),
					skill("Microservices", 5, marcusEnd), skill("AWS", 4, marcusEnd),
				},
				Experience:       8,
				LastEmployed:     marcusEnd,
				DaysSinceLastJob: 237,
				Status:           entities.CandidateActive,
				Notes:            "Interested in senior engineering roles",
				Avatar:           ptr("https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=300"),
			},
			{
				ID:    "4",
				Name:  "Priya Patel",
				Email: "priya.patel@example.com",
				Phone: "(555) 876-5432",
				Skills: []entities.SkillExperience{
					skill("Data Science", 4, priyaEnd), skill("Python", 5, priyaEnd),
					skill("Machine Learning", 4, priyaEnd), skill("SQL", 4, priyaEnd),
				},
				Experience:       4,
				LastEmployed:     priyaEnd,
				DaysSinceLastJob: 40,
				Status:           entities.CandidateActive,
				Notes:            "PhD in Computer Science, seeking data science roles",
				Avatar:           ptr("https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=300"),
			},
			{
				ID:    "5",
				Name:  "David Kim",
				Email: "david.kim@example.com",
				Phone: "(555) 345-6789",
				Skills: []entities.SkillExperience{
					skill("UI/UX Design", 6, davidEnd), skill("Figma", 4, davidEnd),
					skill("Adobe XD", 5, davidEnd), skill("Prototyping", 5, davidEnd),
				},
				Experience:       6,
				LastEmployed:     davidEnd,
				DaysSinceLastJob: 334,
				Status:           entities.CandidateActive,
				Notes:            "Portfolio showcases strong mobile design work",
				Avatar:           ptr("https://images.pexels.com/photos/3785079/pexels-photo-3785079.jpeg?auto=compress&cs=tinysrgb&w=300"),
			},
		},
		JobRoles: []entities.JobRole{
			{
				ID:          "1",
				Title:       "Senior Frontend Developer",
				Company:     "TechCorp Solutions",
				Location:    "San Francisco, CA (Remote)",
				Description: "Seeking an experienced frontend developer to join our product team.",
				Requirements: []entities.SkillRequirement{
					{Name: "React", YearsRequired: 5, IsRequired: true},
					{Name: "TypeScript", YearsRequired: 3, IsRequired: true},
					{Name: "JavaScript", YearsRequired: 5, IsRequired: true},
					{Name: "Performance Optimization", YearsRequired: 2, IsRequired: false},
				},
				Salary:       entities.Salary{Min: 120000, Max: 160000, Currency: "USD"},
				PostedDate:   day(2024, 3, 20),
				DeadlineDate: day(2024, 4, 20),
				Status:       entities.JobOpen,
				IsNew:        true,
			},
			{
				ID:          "2",
				Title:       "Product Manager",
				Company:     "FinanceApp Inc",
				Location:    "New York, NY (Hybrid)",
				Description: "Lead product development for our consumer finance application.",
				Requirements: []entities.SkillRequirement{
					{Name: "Product Management", YearsRequired: 3, IsRequired: true},
					{Name: "Finance Industry Knowledge", YearsRequired: 2, IsRequired: true},
					{Name: "Data Analysis", YearsRequired: 2, IsRequired: false},
				},
				Salary:       entities.Salary{Min: 110000, Max: 140000, Currency: "USD"},
				PostedDate:   day(2024, 3, 15),
				DeadlineDate: day(2024, 4, 15),
				Status:       entities.JobOpen,
				IsNew:        true,
			},
			{
				ID:          "3",
				Title:       "Backend Engineer",
				Company:     "DataFlow Systems",
				Location:    "Austin, TX (On-site)",
				Description: "Develop and maintain APIs and microservices for our enterprise platform.",
				Requirements: []entities.SkillRequirement{
					{Name: "Java", YearsRequired: 5, IsRequired: true},
					{Name: "Spring Boot", YearsRequired: 3, IsRequired: true},
					{Name: "Microservices", YearsRequired: 3, IsRequired: true},
					{Name: "AWS", YearsRequired: 2, IsRequired: true},
					{Name: "Performance Optimization", YearsRequired: 2, IsRequired: false},
				},
				Salary:       entities.Salary{Min: 130000, Max: 170000, Currency: "USD"},
				PostedDate:   day(2024, 3, 5),
				DeadlineDate: day(2024, 4, 5),
				Status:       entities.JobOpen,
				IsNew:        false,
			},
			{
				ID:          "4",
				Title:       "Data Scientist",
				Company:     "HealthTech Innovations",
				Location:    "Boston, MA (Remote)",
				Description: "Apply machine learning to healthcare data to improve patient outcomes.",
				Requirements: []entities.SkillRequirement{
					{Name: "Machine Learning", YearsRequired: 3, IsRequired: true},
					{Name: "Python", YearsRequired: 3, IsRequired: true},
					{Name: "Healthcare", YearsRequired: 1, IsRequired: false},
				},
				Salary:       entities.Salary{Min: 125000, Max: 155000, Currency: "USD"},
				PostedDate:   day(2024, 3, 18),
				DeadlineDate: day(2024, 4, 18),
				Status:       entities.JobOpen,
				IsNew:        true,
			},
			{
				ID:          "5",
				Title:       "UX Designer",
				Company:     "Creative Digital Agency",
				Location:    "Los Angeles, CA (Hybrid)",
				Description: "Design intuitive user experiences for various client projects.",
				Requirements: []entities.SkillRequirement{
					{Name: "UI/UX Design", YearsRequired: 3, IsRequired: true},
					{Name: "User Research", YearsRequired: 2, IsRequired: true},
					{Name: "Figma", YearsRequired: 3, IsRequired: true},
				},
				Salary:       entities.Salary{Min: 95000, Max: 130000, Currency: "USD"},
				PostedDate:   day(2024, 3, 10),
				DeadlineDate: day(2024, 4, 10),
				Status:       entities.JobOpen,
				IsNew:        false,
			},
		},
		Presentations: []entities.Presentation{
			{
				ID:            "1",
				CandidateID:   "1",
				JobRoleID:     "1",
				Status:        entities.StatusInterview,
				SubmittedDate: day(2024, 3, 21),
				LastUpdated:   day(2024, 3, 25),
				Notes:         "Technical interview scheduled for next week",
				NextStep:      &entities.NextStep{Type: "Technical Interview", Date: day(2024, 4, 5)},
			},
			{
				ID:            "2",
				CandidateID:   "2",
				JobRoleID:     "2",
				Status:        entities.StatusScreening,
				SubmittedDate: day(2024, 3, 16),
				LastUpdated:   day(2024, 3, 22),
				Notes:         "Passed initial recruiter screening, waiting for hiring manager review",
				NextStep:      &entities.NextStep{Type: "Manager Screen", Date: day(2024, 4, 1)},
			},
			{
				ID:            "3",
				CandidateID:   "3",
				JobRoleID:     "3",
				Status:        entities.StatusTechnical,
				SubmittedDate: day(2024, 3, 10),
				LastUpdated:   day(2024, 3, 20),
				Notes:         "Completed technical assessment, awaiting feedback",
				NextStep:      &entities.NextStep{Type: "Final Interview", Date: day(2024, 3, 30)},
			},
			{
				ID:            "4",
				CandidateID:   "4",
				JobRoleID:     "4",
				Status:        entities.StatusSubmitted,
				SubmittedDate: day(2024, 3, 19),
				LastUpdated:   day(2024, 3, 19),
				Notes:         "Resume submitted, waiting for initial feedback",
				NextStep:      &entities.NextStep{Type: "Initial Screening", Date: day(2024, 3, 28)},
			},
			{
				ID:            "5",
				CandidateID:   "5",
				JobRoleID:     "5",
				Status:        entities.StatusOffer,
				SubmittedDate: day(2024, 3, 12),
				LastUpdated:   day(2024, 3, 26),
				Notes:         "Verbal offer extended, waiting for formal offer letter",
				NextStep:      &entities.NextStep{Type: "Offer Acceptance", Date: day(2024, 4, 2)},
			},
			{
				ID:            "6",
				CandidateID:   "1",
				JobRoleID:     "3",
				Status:        entities.StatusRejected,
				SubmittedDate: day(2024, 3, 5),
				LastUpdated:   day(2024, 3, 15),
				Notes:         "Client felt candidate lacked sufficient Java experience",
			},
		},
		Employers: []entities.Employer{
			{
				ID:       "1",
				Name:     "TechCorp Solutions",
				Logo:     ptr("https://images.pexels.com/photos/2977565/pexels-photo-2977565.jpeg?auto=compress&cs=tinysrgb&w=300"),
				Industry: "Technology",
				Location: "San Francisco, CA",
				Metrics: entities.EmployerMetrics{TotalJobs: 15, ActiveJobs: 8, TotalPlacements: 12,
					ActiveCandidates: 6, SuccessRate: 80, AverageTimeToHire: 25},
				ContactInfo: entities.ContactInfo{Name: "Sarah Chen", Email: "sarah.chen@techcorp.com",
					Phone: "(555) 123-4567", Role: "Head of Talent Acquisition"},
			},
			{
				ID:       "2",
				Name:     "FinanceApp Inc",
				Logo:     ptr("https://images.pexels.com/photos/730547/pexels-photo-730547.jpeg?auto=compress&cs=tinysrgb&w=300"),
				Industry: "FinTech",
				Location: "New York, NY",
				Metrics: entities.EmployerMetrics{TotalJobs: 10, ActiveJobs: 4, TotalPlacements: 8,
					ActiveCandidates: 5, SuccessRate: 75, AverageTimeToHire: 30},
				ContactInfo: entities.ContactInfo{Name: "Michael Rodriguez", Email: "m.rodriguez@financeapp.com",
					Phone: "(555) 987-6543", Role: "Recruiting Manager"},
			},
			{
				ID:       "3",
				Name:     "HealthTech Innovations",
				Logo:     ptr("https://images.pexels.com/photos/1170979/pexels-photo-1170979.jpeg?auto=compress&cs=tinysrgb&w=300"),
				Industry: "Healthcare Technology",
				Location: "Boston, MA",
				Metrics: entities.EmployerMetrics{TotalJobs: 8, ActiveJobs: 3, TotalPlacements: 6,
					ActiveCandidates: 4, SuccessRate: 85, AverageTimeToHire: 28},
				ContactInfo: entities.ContactInfo{Name: "Emily Thompson", Email: "e.thompson@healthtech.com",
					Phone: "(555) 234-5678", Role: "Senior Technical Recruiter"},
			},
		},
		Messages: []entities.Message{
			{
				ID:        "1",
				Title:     "New Job Role",
				Content:   "Senior Frontend Developer position at TechCorp has been posted",
				Type:      entities.MessageInfo,
				Timestamp: now.Add(-10 * time.Minute),
				Link:      &entities.MessageLink{Text: "View Job", Url: "/jobs"},
			},
			{
				ID:        "2",
				Title:     "Interview Scheduled",
				Content:   "Alex Johnson interview scheduled for tomorrow",
				Type:      entities.MessageSuccess,
				Timestamp: now.Add(-2 * time.Hour),
				Link:      &entities.MessageLink{Text: "View Schedule", Url: "/calendar"},
			},
			{
				ID:        "3",
				Title:     "Profile Update",
				Content:   "Candidate Priya Patel updated their profile",
				Type:      entities.MessageInfo,
				Timestamp: now.Add(-5 * time.Hour),
				Link:      &entities.MessageLink{Text: "View Profile", Url: "/candidates"},
			},
		},
	}
}

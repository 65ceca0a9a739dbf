package entities

// EmployerMetrics are stored figures. They are not recomputed from job roles
// or presentations and may disagree with them.
type EmployerMetrics struct {
	TotalJobs         int `json:"totalJobs"`
	ActiveJobs        int `json:"activeJobs"`
	TotalPlacements   int `json:"totalPlacements"`
	ActiveCandidates  int `json:"activeCandidates"`
	SuccessRate       int `json:"successRate"`
	AverageTimeToHire int `json:"averageTimeToHire"`
}

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type Employer struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Name        string          `json:"name" validate:"required"`
	Logo        *string         `json:"logo,omitempty"`
	Industry    string          `json:"industry"`
	Location    string          `json:"location"`
	Metrics     EmployerMetrics `gorm:"embedded;embeddedPrefix:metrics_" json:"metrics"`
	ContactInfo ContactInfo     `gorm:"embedded;embeddedPrefix:contact_" json:"contactInfo"`
}

type EmployerPatch struct {
	Name        *string          `json:"name"`
	Logo        *string          `json:"logo"`
	Industry    *string          `json:"industry"`
	Location    *string          `json:"location"`
	Metrics     *EmployerMetrics `json:"metrics"`
	ContactInfo *ContactInfo     `json:"contactInfo"`
}

func (p EmployerPatch) Apply(e *Employer) {
	setIfPresent(&e.Name, p.Name)
	setIfPresent(&e.Industry, p.Industry)
	setIfPresent(&e.Location, p.Location)
	setIfPresent(&e.Metrics, p.Metrics)
	setIfPresent(&e.ContactInfo, p.ContactInfo)
	if p.Logo != nil {
		logo := *p.Logo
		e.Logo = &logo
	}
}

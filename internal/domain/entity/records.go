package entity

import "time"

// Facet dimension names shared across entity types.
const (
	DimEntityType      = "entityTypes"
	DimLocation        = "location"
	DimCategory        = "category"
	DimSkills          = "skills"
	DimCompany         = "company"
	DimIndustry        = "industry"
	DimSalaryRange     = "salaryRange"
	DimFundSize        = "fundSize"
	DimTechnologies    = "technologies"
	DimInvestmentFocus = "investmentFocus"
)

// User is a member profile.
type User struct {
	UserID              string    `json:"id"`
	FullName            string    `json:"fullName"`
	Headline            string    `json:"headline,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	Location            string    `json:"location,omitempty"`
	Industry            string    `json:"industry,omitempty"`
	Skills              []string  `json:"skills,omitempty"`
	ProfileCompleteness int       `json:"profileCompleteness"`
	ConnectionCount     int       `json:"connectionCount"`
	Views               int       `json:"viewCount"`
	Registered          time.Time `json:"createdAt"`
	Active              bool      `json:"active"`
}

func (u User) ID() string { return u.UserID }
func (u User) Type() Type { return TypeUser }
func (u User) DisplayName() string { return u.FullName }
func (u User) CreatedAt() time.Time { return u.Registered }
func (u User) ViewCount() int { return u.Views }

func (u User) FacetValues(dimension string) []string {
	switch dimension {
	case DimLocation:
		return single(u.Location)
	case DimIndustry:
		return single(u.Industry)
	case DimSkills:
		return u.Skills
	}
	return nil
}

// Job is an open position.
type Job struct {
	JobID          string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Description    string    `json:"description,omitempty"`
	RequiredSkills []string  `json:"requiredSkills,omitempty"`
	Location       string    `json:"location,omitempty"`
	SalaryRange    string    `json:"salaryRange,omitempty"`
	Views          int       `json:"viewCount"`
	PostedAt       time.Time `json:"createdAt"`
	Active         bool      `json:"active"`
}

func (j Job) ID() string { return j.JobID }
func (j Job) Type() Type { return TypeJob }
func (j Job) DisplayName() string { return j.Title }
func (j Job) CreatedAt() time.Time { return j.PostedAt }
func (j Job) ViewCount() int { return j.Views }

func (j Job) FacetValues(dimension string) []string {
	switch dimension {
	case DimLocation:
		return single(j.Location)
	case DimCompany:
		return single(j.Company)
	case DimSkills:
		return j.RequiredSkills
	case DimSalaryRange:
		return single(j.SalaryRange)
	}
	return nil
}

// Event is a scheduled community event.
type Event struct {
	EventID     string    `json:"id"`
	Title       string    `json:"title"`
	Organizer   string    `json:"organizer,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	Views       int       `json:"viewCount"`
	Created     time.Time `json:"createdAt"`
	Active      bool      `json:"active"`
}

func (e Event) ID() string { return e.EventID }
func (e Event) Type() Type { return TypeEvent }
func (e Event) DisplayName() string { return e.Title }
func (e Event) CreatedAt() time.Time { return e.Created }
func (e Event) ViewCount() int { return e.Views }

func (e Event) FacetValues(dimension string) []string {
	switch dimension {
	case DimLocation:
		return single(e.Location)
	case DimCategory:
		return single(e.Category)
	}
	return nil
}

// Service is a professional service offering.
type Service struct {
	ServiceID   string    `json:"id"`
	Name        string    `json:"name"`
	Provider    string    `json:"provider,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	Rating      float64   `json:"rating"`
	Views       int       `json:"viewCount"`
	Created     time.Time `json:"createdAt"`
	Active      bool      `json:"active"`
}

func (s Service) ID() string { return s.ServiceID }
func (s Service) Type() Type { return TypeService }
func (s Service) DisplayName() string { return s.Name }
func (s Service) CreatedAt() time.Time { return s.Created }
func (s Service) ViewCount() int { return s.Views }

func (s Service) FacetValues(dimension string) []string {
	switch dimension {
	case DimLocation:
		return single(s.Location)
	case DimCategory:
		return single(s.Category)
	case DimCompany:
		return single(s.Provider)
	}
	return nil
}

// Investor is an investor or fund profile.
type Investor struct {
	InvestorID      string    `json:"id"`
	Name            string    `json:"name"`
	FirmName        string    `json:"firmName,omitempty"`
	Thesis          string    `json:"thesis,omitempty"`
	InvestmentFocus []string  `json:"investmentFocus,omitempty"`
	Location        string    `json:"location,omitempty"`
	FundSizeUSD     int64     `json:"fundSizeUsd"`
	Views           int       `json:"viewCount"`
	Created         time.Time `json:"createdAt"`
	Active          bool      `json:"active"`
}

func (i Investor) ID() string { return i.InvestorID }
func (i Investor) Type() Type { return TypeInvestor }
func (i Investor) DisplayName() string { return i.Name }
func (i Investor) CreatedAt() time.Time { return i.Created }
func (i Investor) ViewCount() int { return i.Views }

func (i Investor) FacetValues(dimension string) []string {
	switch dimension {
	case DimLocation:
		return single(i.Location)
	case DimInvestmentFocus:
		return i.InvestmentFocus
	case DimCompany:
		return single(i.FirmName)
	case DimFundSize:
		return single(i.FundSizeBand())
	}
	return nil
}

// FundSizeBand buckets the fund size into a coarse label for faceting.
func (i Investor) FundSizeBand() string {
	switch {
	case i.FundSizeUSD <= 0:
		return ""
	case i.FundSizeUSD < 10_000_000:
		return "<10M"
	case i.FundSizeUSD < 100_000_000:
		return "10M-100M"
	case i.FundSizeUSD < 1_000_000_000:
		return "100M-1B"
	default:
		return ">1B"
	}
}

// Project is a member-owned project or venture.
type Project struct {
	ProjectID    string    `json:"id"`
	Title        string    `json:"title"`
	Owner        string    `json:"owner,omitempty"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Views        int       `json:"viewCount"`
	Created      time.Time `json:"createdAt"`
	Active       bool      `json:"active"`
}

func (p Project) ID() string { return p.ProjectID }
func (p Project) Type() Type { return TypeProject }
func (p Project) DisplayName() string { return p.Title }
func (p Project) CreatedAt() time.Time { return p.Created }
func (p Project) ViewCount() int { return p.Views }

func (p Project) FacetValues(dimension string) []string {
	switch dimension {
	case DimCategory:
		return single(p.Category)
	case DimTechnologies:
		return p.Technologies
	}
	return nil
}

// single wraps a non-empty value in a slice; empty values contribute to no bucket.
func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

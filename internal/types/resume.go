// Package types provides type definitions for the resume document aggregate
// and related structured data used throughout resume-studio.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the contact block of a resume. Fields carry no identity.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// ExperienceItem represents one work experience entry. ID is assigned by the
// document store at insertion and is stable for the item's lifetime; it is the
// sole lookup key for edits and AI targeting.
type ExperienceItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// EducationItem represents one education entry, same identity rule as
// ExperienceItem.
type EducationItem struct {
	ID         int64  `json:"id"`
	Degree     string `json:"degree"`
	University string `json:"university"`
	Location   string `json:"location"`
	GradDate   string `json:"gradDate"`
}

// CertificateItem represents one certificate entry; the collection may be
// absent entirely in older persisted documents.
type CertificateItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ResumeDocument is the root aggregate. Exactly one live instance exists,
// owned by the document store. Skills is insertion-ordered and contains no
// two entries equal under case-insensitive comparison.
type ResumeDocument struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceItem  `json:"experience"`
	Education    []EducationItem   `json:"education"`
	Certificates []CertificateItem `json:"certificates,omitempty"`
	Skills       []string          `json:"skills"`
}

// Clone returns a deep copy of the document. Mutating the copy never affects
// the original.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = append([]ExperienceItem(nil), d.Experience...)
	out.Education = append([]EducationItem(nil), d.Education...)
	out.Certificates = append([]CertificateItem(nil), d.Certificates...)
	out.Skills = append([]string(nil), d.Skills...)
	return out
}

// MaxID returns the highest item id present in any collection, or 0 for a
// document with no items.
func (d ResumeDocument) MaxID() int64 {
	var max int64
	for _, e := range d.Experience {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, e := range d.Education {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, c := range d.Certificates {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// DefaultDocument returns the placeholder content shown on first run, before
// anything has been persisted.
func DefaultDocument() ResumeDocument {
	return ResumeDocument{
		PersonalInfo: PersonalInfo{
			Name:     "Your Name",
			Email:    "your.email@example.com",
			Phone:    "123-456-7890",
			LinkedIn: "linkedin.com/in/yourprofile",
			Website:  "yourportfolio.com",
		},
		Summary: "A brief professional summary. Use the AI assistant to generate one based on your experience.",
		Experience: []ExperienceItem{
			{
				ID:          1,
				Title:       "Software Engineer",
				Company:     "Tech Solutions Inc.",
				Location:    "San Francisco, CA",
				StartDate:   "Jan 2022",
				EndDate:     "Present",
				Description: "• Developed and maintained web applications using React and Node.js.\n• Collaborated with cross-functional teams to deliver high-quality software.",
			},
		},
		Education: []EducationItem{
			{
				ID:         1,
				Degree:     "B.S. in Computer Science",
				University: "State University",
				Location:   "Anytown, USA",
				GradDate:   "May 2021",
			},
		},
		Skills: []string{"React", "TypeScript", "Node.js", "Tailwind CSS", "Problem Solving"},
	}
}

// ParsedResume is the shape a resume-parse AI response is decoded into.
// Absent fields stay zero-valued; the gateway's merge policy treats zero
// values as "keep the existing content".
type ParsedResume struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceItem  `json:"experience"`
	Education    []EducationItem   `json:"education"`
	Certificates []CertificateItem `json:"certificates"`
	Skills       []string          `json:"skills"`
}

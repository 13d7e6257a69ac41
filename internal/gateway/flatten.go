package gateway

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// ResumeText serializes the document into the flattened plain-text
// representation sent with textual generation requests.
func ResumeText(doc types.ResumeDocument, includeSkills bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name: %s\n", doc.PersonalInfo.Name)
	fmt.Fprintf(&sb, "Email: %s\n", doc.PersonalInfo.Email)
	fmt.Fprintf(&sb, "Phone: %s\n\n", doc.PersonalInfo.Phone)
	fmt.Fprintf(&sb, "Summary: %s\n\n", doc.Summary)

	sb.WriteString("Experience:\n")
	for _, exp := range doc.Experience {
		fmt.Fprintf(&sb, "%s at %s (%s - %s)\n%s\n\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Description)
	}

	sb.WriteString("Education:\n")
	for _, edu := range doc.Education {
		fmt.Fprintf(&sb, "%s, %s (%s)\n", edu.Degree, edu.University, edu.GradDate)
	}

	if includeSkills {
		fmt.Fprintf(&sb, "\nSkills: %s", strings.Join(doc.Skills, ", "))
	}

	return sb.String()
}

// ExperienceText serializes only the work-experience entries, used by the
// skill-suggestion analysis.
func ExperienceText(doc types.ResumeDocument) string {
	parts := make([]string, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		parts = append(parts, exp.Title+"\n"+exp.Description)
	}
	return strings.Join(parts, "\n\n")
}

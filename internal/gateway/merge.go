package gateway

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// MergeParsed combines a parsed-resume AI response into the current document.
// Scalar fields replace existing values only when the AI provided a non-empty
// value. The item collections replace wholesale only when the AI returned a
// non-empty collection; otherwise the prior collection is kept in full —
// never partially merged per item. Imported items carry a zero id; the store
// assigns fresh ids on Replace.
func MergeParsed(current types.ResumeDocument, parsed types.ParsedResume) types.ResumeDocument {
	merged := current.Clone()

	merged.PersonalInfo = mergePersonalInfo(current.PersonalInfo, parsed.PersonalInfo)
	if parsed.Summary != "" {
		merged.Summary = parsed.Summary
	}
	if len(parsed.Experience) > 0 {
		merged.Experience = clearExperienceIDs(parsed.Experience)
	}
	if len(parsed.Education) > 0 {
		merged.Education = clearEducationIDs(parsed.Education)
	}
	if len(parsed.Certificates) > 0 {
		merged.Certificates = clearCertificateIDs(parsed.Certificates)
	}
	if len(parsed.Skills) > 0 {
		merged.Skills = dedupeSkills(parsed.Skills)
	}

	return merged
}

func mergePersonalInfo(current, parsed types.PersonalInfo) types.PersonalInfo {
	out := current
	if parsed.Name != "" {
		out.Name = parsed.Name
	}
	if parsed.Email != "" {
		out.Email = parsed.Email
	}
	if parsed.Phone != "" {
		out.Phone = parsed.Phone
	}
	if parsed.LinkedIn != "" {
		out.LinkedIn = parsed.LinkedIn
	}
	if parsed.Website != "" {
		out.Website = parsed.Website
	}
	return out
}

// clearExperienceIDs zeroes ids so the store allocates fresh ones; ids in an
// AI response are untrusted and could collide with live items.
func clearExperienceIDs(items []types.ExperienceItem) []types.ExperienceItem {
	out := append([]types.ExperienceItem(nil), items...)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

func clearEducationIDs(items []types.EducationItem) []types.EducationItem {
	out := append([]types.EducationItem(nil), items...)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

func clearCertificateIDs(items []types.CertificateItem) []types.CertificateItem {
	out := append([]types.CertificateItem(nil), items...)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

// dedupeSkills drops case-insensitive duplicates, keeping first occurrence
// order, so an imported skill list cannot violate the document invariant.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}

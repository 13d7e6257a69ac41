// Package store owns the canonical resume document and the target-job
// context. All mutation flows through it; each successful mutation swaps in a
// new snapshot and notifies subscribers, which is where persistence hangs off.
package store

import (
	"strings"
	"sync"

	"github.com/jonathan/resume-studio/internal/types"
)

// Collection names an id-keyed item collection on the document.
type Collection string

// Collections on the resume document.
const (
	CollectionExperience   Collection = "experience"
	CollectionEducation    Collection = "education"
	CollectionCertificates Collection = "certificates"
)

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	switch c {
	case CollectionExperience, CollectionEducation, CollectionCertificates:
		return true
	}
	return false
}

// DocumentFunc receives a snapshot after every document mutation.
type DocumentFunc func(types.ResumeDocument)

// JobContextFunc receives the job context after every job context change.
type JobContextFunc func(string)

// Store is the single source of truth for the resume document and job
// context. Every mutation is individually atomic; there is no cross-operation
// transaction, so read-modify-write sequences spanning multiple calls are not
// isolated from each other.
type Store struct {
	mu      sync.Mutex
	doc     types.ResumeDocument
	jobCtx  string
	nextID  int64
	docSubs []DocumentFunc
	jobSubs []JobContextFunc
}

// New creates a store seeded with doc and jobContext. The id counter starts
// past the highest id already present so later inserts can never collide.
func New(doc types.ResumeDocument, jobContext string) *Store {
	return &Store{
		doc:    doc.Clone(),
		jobCtx: jobContext,
		nextID: doc.MaxID() + 1,
	}
}

// OnDocumentChange registers fn to run after every document mutation with a
// snapshot of the new state. Subscribers run outside the store lock.
func (s *Store) OnDocumentChange(fn DocumentFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docSubs = append(s.docSubs, fn)
}

// OnJobContextChange registers fn to run after every job context change.
func (s *Store) OnJobContextChange(fn JobContextFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobSubs = append(s.jobSubs, fn)
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// JobContext returns the current target-job text.
func (s *Store) JobContext() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobCtx
}

// SetJobContext replaces the target-job text and notifies its subscribers.
func (s *Store) SetJobContext(text string) {
	s.mu.Lock()
	s.jobCtx = text
	subs := append([]JobContextFunc(nil), s.jobSubs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(text)
	}
}

// Replace substitutes the whole document, used after bulk import. Items with
// a zero id are assigned fresh ids; the counter then advances past the
// highest id present.
func (s *Store) Replace(doc types.ResumeDocument) {
	s.mutate(func(d *types.ResumeDocument) bool {
		next := doc.Clone()
		for i := range next.Experience {
			if next.Experience[i].ID == 0 {
				next.Experience[i].ID = s.allocID()
			}
		}
		for i := range next.Education {
			if next.Education[i].ID == 0 {
				next.Education[i].ID = s.allocID()
			}
		}
		for i := range next.Certificates {
			if next.Certificates[i].ID == 0 {
				next.Certificates[i].ID = s.allocID()
			}
		}
		if max := next.MaxID(); max >= s.nextID {
			s.nextID = max + 1
		}
		*d = next
		return true
	})
}

// MutateField updates a scalar field addressed by path ("summary" or
// "personalInfo.<field>"). Unknown paths return *UnknownFieldError.
func (s *Store) MutateField(path, value string) error {
	var unknown error
	s.mutate(func(d *types.ResumeDocument) bool {
		switch path {
		case "summary":
			d.Summary = value
		case "personalInfo.name":
			d.PersonalInfo.Name = value
		case "personalInfo.email":
			d.PersonalInfo.Email = value
		case "personalInfo.phone":
			d.PersonalInfo.Phone = value
		case "personalInfo.linkedin":
			d.PersonalInfo.LinkedIn = value
		case "personalInfo.website":
			d.PersonalInfo.Website = value
		default:
			unknown = &UnknownFieldError{Path: path}
			return false
		}
		return true
	})
	return unknown
}

// MutateCollectionItem updates one field of the item with the given id. A
// missing id is a deliberate no-op, not an error: the item may have been
// removed while an edit was in flight. Unknown collection or field names
// return an error.
func (s *Store) MutateCollectionItem(col Collection, id int64, field, value string) error {
	var opErr error
	s.mutate(func(d *types.ResumeDocument) bool {
		switch col {
		case CollectionExperience:
			for i := range d.Experience {
				if d.Experience[i].ID == id {
					opErr = setExperienceField(&d.Experience[i], field, value)
					return opErr == nil
				}
			}
		case CollectionEducation:
			for i := range d.Education {
				if d.Education[i].ID == id {
					opErr = setEducationField(&d.Education[i], field, value)
					return opErr == nil
				}
			}
		case CollectionCertificates:
			for i := range d.Certificates {
				if d.Certificates[i].ID == id {
					opErr = setCertificateField(&d.Certificates[i], field, value)
					return opErr == nil
				}
			}
		default:
			opErr = &UnknownCollectionError{Collection: string(col)}
		}
		return false
	})
	return opErr
}

// InsertExperience assigns a fresh id and appends the item, returning the id.
func (s *Store) InsertExperience(item types.ExperienceItem) int64 {
	var id int64
	s.mutate(func(d *types.ResumeDocument) bool {
		item.ID = s.allocID()
		id = item.ID
		d.Experience = append(d.Experience, item)
		return true
	})
	return id
}

// InsertEducation assigns a fresh id and appends the item, returning the id.
func (s *Store) InsertEducation(item types.EducationItem) int64 {
	var id int64
	s.mutate(func(d *types.ResumeDocument) bool {
		item.ID = s.allocID()
		id = item.ID
		d.Education = append(d.Education, item)
		return true
	})
	return id
}

// InsertCertificate assigns a fresh id and appends the item, returning the id.
func (s *Store) InsertCertificate(item types.CertificateItem) int64 {
	var id int64
	s.mutate(func(d *types.ResumeDocument) bool {
		item.ID = s.allocID()
		id = item.ID
		d.Certificates = append(d.Certificates, item)
		return true
	})
	return id
}

// RemoveItem removes the item with the given id from the collection; no-op if
// absent.
func (s *Store) RemoveItem(col Collection, id int64) {
	s.mutate(func(d *types.ResumeDocument) bool {
		switch col {
		case CollectionExperience:
			for i := range d.Experience {
				if d.Experience[i].ID == id {
					d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
					return true
				}
			}
		case CollectionEducation:
			for i := range d.Education {
				if d.Education[i].ID == id {
					d.Education = append(d.Education[:i], d.Education[i+1:]...)
					return true
				}
			}
		case CollectionCertificates:
			for i := range d.Certificates {
				if d.Certificates[i].ID == id {
					d.Certificates = append(d.Certificates[:i], d.Certificates[i+1:]...)
					return true
				}
			}
		}
		return false
	})
}

// AddSkill appends skill unless an entry equal under case-insensitive
// comparison already exists. A duplicate add is a no-op, not an error.
// Returns whether the skill was added.
func (s *Store) AddSkill(skill string) bool {
	added := false
	s.mutate(func(d *types.ResumeDocument) bool {
		for _, existing := range d.Skills {
			if strings.EqualFold(existing, skill) {
				return false
			}
		}
		d.Skills = append(d.Skills, skill)
		added = true
		return true
	})
	return added
}

// RemoveSkill removes the first entry matching skill case-insensitively;
// no-op if absent.
func (s *Store) RemoveSkill(skill string) {
	s.mutate(func(d *types.ResumeDocument) bool {
		for i, existing := range d.Skills {
			if strings.EqualFold(existing, skill) {
				d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AppendExperienceBullet appends text as a new bullet line to the experience
// item's description. This is the additive merge used when the user accepts a
// content suggestion; every other merge replaces wholesale. No-op if the item
// is gone.
func (s *Store) AppendExperienceBullet(id int64, text string) {
	s.mutate(func(d *types.ResumeDocument) bool {
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				bullet := "• " + text
				if strings.TrimSpace(d.Experience[i].Description) == "" {
					d.Experience[i].Description = bullet
				} else {
					d.Experience[i].Description += "\n" + bullet
				}
				return true
			}
		}
		return false
	})
}

// allocID hands out the next monotonic item id. Callers must hold s.mu.
func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// mutate runs fn against the live document under the lock. When fn reports a
// change, subscribers are notified with a snapshot after the lock is
// released.
func (s *Store) mutate(fn func(*types.ResumeDocument) bool) {
	s.mu.Lock()
	changed := fn(&s.doc)
	var snap types.ResumeDocument
	var subs []DocumentFunc
	if changed {
		snap = s.doc.Clone()
		subs = append([]DocumentFunc(nil), s.docSubs...)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func setExperienceField(item *types.ExperienceItem, field, value string) error {
	switch field {
	case "title":
		item.Title = value
	case "company":
		item.Company = value
	case "location":
		item.Location = value
	case "startDate":
		item.StartDate = value
	case "endDate":
		item.EndDate = value
	case "description":
		item.Description = value
	default:
		return &UnknownFieldError{Path: "experience." + field}
	}
	return nil
}

func setEducationField(item *types.EducationItem, field, value string) error {
	switch field {
	case "degree":
		item.Degree = value
	case "university":
		item.University = value
	case "location":
		item.Location = value
	case "gradDate":
		item.GradDate = value
	default:
		return &UnknownFieldError{Path: "education." + field}
	}
	return nil
}

func setCertificateField(item *types.CertificateItem, field, value string) error {
	switch field {
	case "name":
		item.Name = value
	case "issuer":
		item.Issuer = value
	case "date":
		item.Date = value
	default:
		return &UnknownFieldError{Path: "certificates." + field}
	}
	return nil
}

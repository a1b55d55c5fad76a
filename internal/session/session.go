// Package session owns the single in-memory resume of one application
// session: the data itself, the editor open/collapse state, the per-section
// visibility flags and the per-scope busy flags for in-flight AI calls.
// Nothing here is persisted; the session dies with the process.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"resume-studio/internal/model"
	"resume-studio/internal/render"
)

// ErrBusy is returned when an operation is already in flight for the
// requested scope.
var ErrBusy = errors.New("operation already in flight")

type Session struct {
	mu         sync.RWMutex
	data       *model.ResumeData
	open       map[string]bool
	visible    map[string]bool
	generating bool
	improving  map[string]bool
}

// New starts a session from the default sample resume with the standard
// editor state: personal, summary, experience and skills expanded, every
// standard section visible.
func New() *Session {
	s := &Session{
		data: model.DefaultResume(),
		open: map[string]bool{
			model.SectionPersonal:       true,
			model.SectionSummary:        true,
			model.SectionExperience:     true,
			model.SectionEducation:      false,
			model.SectionSkills:         true,
			model.SectionProjects:       false,
			model.SectionCertifications: false,
			model.SectionLanguages:      false,
		},
		visible:   map[string]bool{},
		improving: map[string]bool{},
	}
	for _, key := range model.StandardSections {
		s.visible[key] = true
	}
	for _, cs := range s.data.CustomSections {
		s.open[cs.ID] = true
		s.visible[cs.ID] = true
	}
	return s
}

// Resume returns a deep copy of the current data. Readers never observe a
// mutation in progress.
func (s *Session) Resume() *model.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Replace swaps in a whole new resume in one step, e.g. after a successful
// AI generation. Visibility entries are seeded for any newly arrived custom
// sections; entries of removed ones are dropped.
func (s *Session) Replace(r *model.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.data
	s.data = r.Clone()
	for _, cs := range old.CustomSections {
		if s.data.CustomSectionByID(cs.ID) == nil {
			delete(s.open, cs.ID)
			delete(s.visible, cs.ID)
		}
	}
	for _, cs := range s.data.CustomSections {
		if _, ok := s.visible[cs.ID]; !ok {
			s.open[cs.ID] = true
			s.visible[cs.ID] = true
		}
	}
}

// Update applies one edit as an atomic replacement: the mutation runs on a
// clone and the clone is swapped in only if it succeeds.
func (s *Session) Update(fn func(*model.ResumeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// AddCustomSection appends a new user-defined section with a generated id
// and seeds its editor state (open, visible).
func (s *Session) AddCustomSection(title string) model.CustomSection {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := model.CustomSection{
		ID:    uuid.NewString(),
		Title: title,
		Items: []model.CustomSectionItem{},
	}
	next := s.data.Clone()
	next.CustomSections = append(next.CustomSections, cs)
	s.data = next
	s.open[cs.ID] = true
	s.visible[cs.ID] = true
	return cs
}

// RemoveCustomSection deletes a custom section and its editor state. It
// reports whether the id existed.
func (s *Session) RemoveCustomSection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.Clone()
	idx := -1
	for i, cs := range next.CustomSections {
		if cs.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	next.CustomSections = append(next.CustomSections[:idx], next.CustomSections[idx+1:]...)
	s.data = next
	delete(s.open, id)
	delete(s.visible, id)
	return true
}

// ToggleOpen flips the editor expand/collapse flag for a section key.
func (s *Session) ToggleOpen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[key] = !s.open[key]
	return s.open[key]
}

// ToggleVisible flips whether a section renders in the output.
func (s *Session) ToggleVisible(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on, ok := s.visible[key]; ok {
		s.visible[key] = !on
	} else {
		// missing keys count as visible, so the first toggle hides
		s.visible[key] = false
	}
	return s.visible[key]
}

// Open reports the expand/collapse state; unknown keys are closed.
func (s *Session) Open(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open[key]
}

// Visibility returns a copy of the visibility map for the renderer.
func (s *Session) Visibility() render.Visibility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := make(render.Visibility, len(s.visible))
	for k, on := range s.visible {
		v[k] = on
	}
	return v
}

// OpenSections returns a copy of the editor expand/collapse map.
func (s *Session) OpenSections() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := make(map[string]bool, len(s.open))
	for k, on := range s.open {
		m[k] = on
	}
	return m
}

// BeginGenerate claims the single bulk-generation slot.
func (s *Session) BeginGenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrBusy
	}
	s.generating = true
	return nil
}

func (s *Session) EndGenerate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

// BeginImprove claims the improve slot for one field. Improves for other
// fields may run concurrently; a second improve on the same field is
// rejected.
func (s *Session) BeginImprove(field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.improving[field] {
		return ErrBusy
	}
	s.improving[field] = true
	return nil
}

func (s *Session) EndImprove(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.improving, field)
}

// Busy summarizes the in-flight state for status displays.
func (s *Session) Busy() (generating bool, improving []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for field, on := range s.improving {
		if on {
			improving = append(improving, field)
		}
	}
	return s.generating, improving
}

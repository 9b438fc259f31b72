package progress

import (
	"slices"

	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

const (
	msgRecorded = "Progress recorded"
	msgRemoved  = "Entry removed"
)

func indexOf(entries []models.ProgressEntry, id string) int {
	return slices.IndexFunc(entries, func(e models.ProgressEntry) bool { return e.ID == id })
}

// Add appends entry and notifies success. Published slices are never
// written to, so every mutation builds a new backing array.
func (s *Store) Add(entry models.ProgressEntry) {
	s.mu.Lock()
	s.st.entries = append(slices.Clip(s.st.entries), entry)
	s.commitLocked(ChangeEntries)
	s.mu.Unlock()

	s.notifier.NotifySuccess(msgRecorded)
}

// Update replaces the entry with the same id. Unknown ids are ignored.
func (s *Store) Update(entry models.ProgressEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.st.entries, entry.ID)
	if i < 0 {
		return
	}
	next := slices.Clone(s.st.entries)
	next[i] = entry
	s.st.entries = next
	s.commitLocked(ChangeEntries)
}

// Remove deletes the entry with id and notifies success. Unknown ids are
// ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	i := indexOf(s.st.entries, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]models.ProgressEntry, 0, len(s.st.entries)-1)
	next = append(next, s.st.entries[:i]...)
	next = append(next, s.st.entries[i+1:]...)
	s.st.entries = next
	s.commitLocked(ChangeEntries)
	s.mu.Unlock()

	s.notifier.NotifySuccess(msgRemoved)
}

// SetSearchTerm filters entries by term and returns to the first page.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.searchTerm = term
	s.st.currentPage = 1
	s.commitLocked(ChangeSearch | ChangePage)
}

func (s *Store) ClearSearch() {
	s.SetSearchTerm("")
}

// NextPage advances one page unless already on the last one.
func (s *Store) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.currentPage < s.view.TotalPages {
		s.st.currentPage++
		s.commitLocked(ChangePage)
	}
}

// PreviousPage goes back one page unless already on the first one.
func (s *Store) PreviousPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.currentPage > 1 {
		s.st.currentPage--
		s.commitLocked(ChangePage)
	}
}

// GoToPage jumps to page when it lies within [1, TotalPages].
func (s *Store) GoToPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page >= 1 && page <= s.view.TotalPages {
		s.st.currentPage = page
		s.commitLocked(ChangePage)
	}
}

// SelectExercise sets or, with nil, clears the selected exercise.
func (s *Store) SelectExercise(name *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.selectedExercise = cloneString(name)
	s.commitLocked(ChangeSelection)
}

// AddExercise appends name unless it is already present.
func (s *Store) AddExercise(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.st.exercises, name) {
		return
	}
	s.st.exercises = append(slices.Clip(s.st.exercises), name)
	s.commitLocked(ChangeExercises)
}

// Clear resets every cell to its initial value. The current date and view
// mode are kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = initialState(s.st.currentDate, s.st.mode, s.st.infinite.generation+1)
	s.commitLocked(ChangeEntries | ChangeNutrients | ChangeStrength | ChangeExercises |
		ChangeStatus | ChangeSearch | ChangePage | ChangeSelection | ChangeWindow)
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.err = ""
	s.commitLocked(ChangeStatus)
}

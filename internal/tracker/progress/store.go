package progress

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// Change tells subscribers which group of cells a commit touched.
type Change uint16

const (
	ChangeEntries Change = 1 << iota
	ChangeNutrients
	ChangeStrength
	ChangeExercises
	ChangeStatus
	ChangeSearch
	ChangePage
	ChangeDate
	ChangeSelection
	ChangeMode
	ChangeWindow
)

const subscriberBuffer = 16

// Store is the progress store. The zero value is not usable; use New.
type Store struct {
	source   Source
	pager    Pager
	notifier Notifier
	log      logging.Logger
	now      func() time.Time

	pageSize         int
	infinitePageSize int

	mu   sync.RWMutex
	st   state
	view View
	subs map[int]chan Change
	next int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPager replaces the in-memory pager used by infinite browsing.
func WithPager(p Pager) Option {
	return func(s *Store) {
		if p != nil {
			s.pager = p
		}
	}
}

// WithInfinitePageSize sets how many entries each LoadMore requests.
func WithInfinitePageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.infinitePageSize = n
		}
	}
}

// WithClock sets the clock used to derive the initial current date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store reading from source and reporting outcomes to notifier.
// A nil notifier discards notifications.
func New(source Source, notifier Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	s := &Store{
		source:           source,
		notifier:         notifier,
		log:              logging.Discard(),
		now:              time.Now,
		pageSize:         DefaultPageSize,
		infinitePageSize: DefaultInfinitePageSize,
		subs:             make(map[int]chan Change),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pager == nil {
		s.pager = memoryPager{s: s}
	}

	s.st = initialState(timex.Today(s.now()), ModePagination, 0)
	s.view = computeView(&s.st, s.pageSize)
	return s
}

func initialState(day timex.Day, mode ViewMode, generation uint64) state {
	return state{
		entries:     []models.ProgressEntry{},
		exercises:   []string{},
		currentPage: 1,
		currentDate: day,
		mode:        mode,
		infinite:    newInfiniteCursor(generation),
	}
}

// commitLocked recomputes the view and fans the change out. s.mu must be
// held for writing.
func (s *Store) commitLocked(c Change) {
	s.view = computeView(&s.st, s.pageSize)
	if s.view.TotalPages > 0 && s.st.currentPage > s.view.TotalPages {
		s.st.currentPage = s.view.TotalPages
		s.view.PaginatedEntries = Paginate(s.view.FilteredEntries, s.st.currentPage, s.pageSize)
		c |= ChangePage
	}
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

// Subscribe returns a channel receiving a Change after every commit and a
// function that unsubscribes and closes it.
func (s *Store) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, subscriberBuffer)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Snapshot returns a copy of every cell and derived value.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		UserID:           s.st.userID,
		Entries:          slices.Clone(s.st.entries),
		Nutrients:        cloneNutrients(s.st.nutrients),
		Strength:         cloneStrength(s.st.strength),
		Exercises:        slices.Clone(s.st.exercises),
		Loading:          s.st.loading,
		Error:            s.st.err,
		SearchTerm:       s.st.searchTerm,
		CurrentPage:      s.st.currentPage,
		PageSize:         s.pageSize,
		CurrentDate:      s.st.currentDate,
		SelectedExercise: cloneString(s.st.selectedExercise),
		Mode:             s.st.mode,
		HasMore:          s.st.infinite.hasMore,
		IsLoadingMore:    s.st.infinite.loadingMore,
		View:             cloneView(s.view),
	}
}

func (s *Store) Entries() []models.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.entries)
}

// NutrientData is nil until a load has committed.
func (s *Store) NutrientData() *models.NutrientSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNutrients(s.st.nutrients)
}

func (s *Store) StrengthProgress() *models.StrengthSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrength(s.st.strength)
}

func (s *Store) Exercises() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.exercises)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.loading
}

// ErrorMessage returns the current error message, "" when there is none.
func (s *Store) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.err
}

func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.searchTerm
}

func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.currentPage
}

func (s *Store) PageSize() int { return s.pageSize }

func (s *Store) CurrentDate() timex.Day {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.currentDate
}

func (s *Store) SelectedExercise() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneString(s.st.selectedExercise)
}

func (s *Store) ViewMode() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.mode
}

func (s *Store) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.infinite.hasMore
}

func (s *Store) IsLoadingMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.infinite.loadingMore
}

// View returns a copy of the derived values.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneView(s.view)
}

// memoryPager pages over the store's own unfiltered entries.
type memoryPager struct {
	s *Store
}

func (p memoryPager) FetchEntriesPage(_ context.Context, _ string, page, size int) ([]models.ProgressEntry, bool, error) {
	p.s.mu.RLock()
	all := p.s.st.entries
	p.s.mu.RUnlock()

	items, more := PageOf(all, page, size)
	return items, more, nil
}

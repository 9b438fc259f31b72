package progress

import (
	"slices"

	"github.com/dmitrijs2005/gophfit/internal/timex"
	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// ViewMode selects how entries are browsed.
type ViewMode string

const (
	ModePagination ViewMode = "pagination"
	ModeInfinite   ViewMode = "infinite"
)

// Valid reports whether m is a known mode.
func (m ViewMode) Valid() bool {
	return m == ModePagination || m == ModeInfinite
}

const (
	// DefaultPageSize is the fixed pagination page size.
	DefaultPageSize = 10
	// DefaultInfinitePageSize is the window growth step in infinite mode.
	DefaultInfinitePageSize = 10
)

type infiniteCursor struct {
	nextPage    int
	hasMore     bool
	loadingMore bool
	window      []models.ProgressEntry
	// generation changes on every reset; in-flight fetches carrying an
	// older generation are discarded.
	generation uint64
}

func newInfiniteCursor(generation uint64) infiniteCursor {
	return infiniteCursor{
		nextPage:   1,
		hasMore:    true,
		window:     []models.ProgressEntry{},
		generation: generation,
	}
}

type state struct {
	userID           string
	entries          []models.ProgressEntry
	nutrients        *models.NutrientSnapshot
	strength         *models.StrengthSeries
	exercises        []string
	loading          bool
	err              string
	searchTerm       string
	currentPage      int
	currentDate      timex.Day
	selectedExercise *string
	mode             ViewMode
	infinite         infiniteCursor
}

// View holds every derived value, recomputed after each commit.
type View struct {
	TotalEntries        int
	TotalExercises      int
	MaxWeight           float64
	TotalVolume         float64
	CaloriesConsumed    float64
	CalorieGoal         float64
	CaloriePercentage   int
	FilteredEntries     []models.ProgressEntry
	TotalPages          int
	PaginatedEntries    []models.ProgressEntry
	InfiniteScrollItems []models.ProgressEntry
	HasResults          bool
	IsEmpty             bool
	HasProgress         bool
}

func computeView(s *state, pageSize int) View {
	term := normalizeTerm(s.searchTerm)
	filtered := Filter(s.entries, term)

	v := View{
		TotalEntries:      len(s.entries),
		TotalExercises:    len(s.exercises),
		MaxWeight:         MaxWeight(s.entries),
		TotalVolume:       TotalVolume(s.entries),
		CalorieGoal:       models.DefaultCalorieGoal,
		FilteredEntries:   filtered,
		TotalPages:        TotalPages(len(filtered), pageSize),
		PaginatedEntries:  Paginate(filtered, s.currentPage, pageSize),
		HasResults:        len(filtered) > 0,
		IsEmpty:           len(s.entries) == 0 && !s.loading && s.err == "",
		HasProgress:       len(s.entries) > 0,
	}
	if s.nutrients != nil {
		v.CaloriesConsumed = s.nutrients.Calories
		v.CalorieGoal = s.nutrients.CalorieGoal
	}
	v.CaloriePercentage = CaloriePercentage(v.CaloriesConsumed, v.CalorieGoal)
	v.InfiniteScrollItems = Filter(s.infinite.window, term)
	return v
}

// Snapshot is a consistent copy of every cell and derived value taken under
// a single read lock.
type Snapshot struct {
	UserID           string
	Entries          []models.ProgressEntry
	Nutrients        *models.NutrientSnapshot
	Strength         *models.StrengthSeries
	Exercises        []string
	Loading          bool
	Error            string
	SearchTerm       string
	CurrentPage      int
	PageSize         int
	CurrentDate      timex.Day
	SelectedExercise *string
	Mode             ViewMode
	HasMore          bool
	IsLoadingMore    bool
	View             View
}

func cloneNutrients(n *models.NutrientSnapshot) *models.NutrientSnapshot {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func cloneStrength(s *models.StrengthSeries) *models.StrengthSeries {
	if s == nil {
		return nil
	}
	c := *s
	c.Points = slices.Clone(s.Points)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneView(v View) View {
	v.FilteredEntries = slices.Clone(v.FilteredEntries)
	v.PaginatedEntries = slices.Clone(v.PaginatedEntries)
	v.InfiniteScrollItems = slices.Clone(v.InfiniteScrollItems)
	return v
}

package progress

import (
	"math"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

// MaxWeight is the heaviest weight across entries, 0 when there are none.
func MaxWeight(entries []models.ProgressEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	heaviest := entries[0].Weight
	for _, e := range entries[1:] {
		if e.Weight > heaviest {
			heaviest = e.Weight
		}
	}
	return heaviest
}

// TotalVolume sums weight × reps × sets.
func TotalVolume(entries []models.ProgressEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Volume()
	}
	return sum
}

// CaloriePercentage is round(consumed / goal × 100), 0 when goal is 0.
func CaloriePercentage(consumed, goal float64) int {
	if goal == 0 {
		return 0
	}
	return int(math.Round(consumed / goal * 100))
}

// normalizeTerm lower-cases and trims a search term.
func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether e's exercise name or note contains the normalized
// term. An absent note never matches.
func Matches(e models.ProgressEntry, term string) bool {
	if strings.Contains(strings.ToLower(e.ExerciseName), term) {
		return true
	}
	return e.Notes != nil && strings.Contains(strings.ToLower(*e.Notes), term)
}

// Filter returns the entries matching term. An empty (or blank) term
// returns entries itself.
func Filter(entries []models.ProgressEntry, term string) []models.ProgressEntry {
	term = normalizeTerm(term)
	if term == "" {
		return entries
	}
	out := make([]models.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, term) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages is ceil(n / size), 0 for an empty collection.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-based page of entries. Out-of-range pages are empty.
func Paginate(entries []models.ProgressEntry, page, size int) []models.ProgressEntry {
	if page < 1 || size <= 0 {
		return []models.ProgressEntry{}
	}
	start := (page - 1) * size
	if start >= len(entries) {
		return []models.ProgressEntry{}
	}
	end := min(start+size, len(entries))
	return entries[start:end:end]
}

// PageOf copies page out of all and reports whether entries remain after it.
func PageOf(all []models.ProgressEntry, page, size int) ([]models.ProgressEntry, bool) {
	items := Paginate(all, page, size)
	if len(items) == 0 {
		return items, false
	}
	end := (page-1)*size + len(items)
	return slices.Clone(items), end < len(all)
}

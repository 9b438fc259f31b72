package progress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

func TestMaxWeight(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.ProgressEntry
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []models.ProgressEntry{entry("a", "Squat", 60, 5, 5)}, 60},
		{"two", []models.ProgressEntry{entry("a", "Squat", 80, 5, 5), entry("b", "Bench", 100, 5, 5)}, 100},
		{"zero weights", []models.ProgressEntry{entry("a", "Plank", 0, 1, 1)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxWeight(tt.entries))
		})
	}
}

func TestTotalVolume(t *testing.T) {
	entries := []models.ProgressEntry{
		entry("a", "Squat", 100, 5, 3),
		entry("b", "Bench", 80, 10, 3),
	}
	assert.Equal(t, 3900.0, TotalVolume(entries))
	assert.Equal(t, 0.0, TotalVolume(nil))
}

func TestCaloriePercentage(t *testing.T) {
	tests := []struct {
		consumed, goal float64
		want           int
	}{
		{2100, 2200, 95},
		{500, 0, 0},
		{0, 2000, 0},
		{1000, 2000, 50},
		{2500, 2000, 125},
		{1, 8, 13}, // 12.5 rounds away from zero
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CaloriePercentage(tt.consumed, tt.goal), "%v/%v", tt.consumed, tt.goal)
	}
}

func TestFilter(t *testing.T) {
	squat := entry("a", "Back Squat", 100, 5, 5)
	bench := entry("b", "Bench Press", 80, 5, 5)
	bench.Notes = models.Note("felt heavy today")
	row := entry("c", "Row", 60, 8, 3)
	all := []models.ProgressEntry{squat, bench, row}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term", "", []string{"a", "b", "c"}},
		{"blank term", "   ", []string{"a", "b", "c"}},
		{"by name case insensitive", "SQUAT", []string{"a"}},
		{"trimmed", "  press ", []string{"b"}},
		{"by note", "heavy", []string{"b"}},
		{"nil note never matches", "today", []string{"b"}},
		{"no match", "deadlift", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(all, tt.term)))
		})
	}
}

func TestPaginate(t *testing.T) {
	all := manyEntries(25)

	assert.Equal(t, 3, TotalPages(len(all), 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))

	assert.Len(t, Paginate(all, 1, 10), 10)
	assert.Len(t, Paginate(all, 2, 10), 10)
	assert.Len(t, Paginate(all, 3, 10), 5)
	assert.Empty(t, Paginate(all, 4, 10))
	assert.Empty(t, Paginate(all, 0, 10))
	assert.Equal(t, "e11", Paginate(all, 2, 10)[0].ID)
}

func TestPaginate_PageCountAndLengths(t *testing.T) {
	for _, size := range []int{1, 3, 7, 10} {
		for _, n := range []int{0, 1, size - 1, size, size + 1, 25} {
			t.Run(fmt.Sprintf("size=%d/n=%d", size, n), func(t *testing.T) {
				all := manyEntries(n)
				pages := TotalPages(n, size)
				assert.Equal(t, (n+size-1)/size, pages)

				seen := 0
				for p := 1; p <= pages; p++ {
					got := Paginate(all, p, size)
					assert.Len(t, got, min(size, n-(p-1)*size), "page %d", p)
					if len(got) > 0 {
						assert.Equal(t, all[(p-1)*size].ID, got[0].ID, "page %d", p)
					}
					seen += len(got)
				}
				assert.Equal(t, n, seen)
				assert.Empty(t, Paginate(all, pages+1, size))
			})
		}
	}
}

func TestPageOf(t *testing.T) {
	all := manyEntries(25)

	items, more := PageOf(all, 1, 10)
	assert.Len(t, items, 10)
	assert.True(t, more)

	items, more = PageOf(all, 3, 10)
	assert.Len(t, items, 5)
	assert.False(t, more)

	items, more = PageOf(all, 4, 10)
	assert.Empty(t, items)
	assert.False(t, more)

	items, more = PageOf(all[:10], 1, 10)
	assert.Len(t, items, 10)
	assert.False(t, more)

	// the returned page must not alias the source
	items, _ = PageOf(all, 1, 10)
	items[0].ID = "changed"
	assert.Equal(t, "e01", all[0].ID)
}

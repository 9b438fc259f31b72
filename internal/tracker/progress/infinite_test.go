package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophfit/internal/tracker/models"
)

func TestInfinite_MemoryPager25(t *testing.T) {
	s := loadedStore(t, 25, nil)
	ctx := context.Background()

	s.SetViewMode(ctx, ModeInfinite)
	assert.Len(t, s.View().InfiniteScrollItems, 10)
	assert.True(t, s.HasMore())
	assert.False(t, s.IsLoadingMore())

	s.LoadMore(ctx)
	assert.Len(t, s.View().InfiniteScrollItems, 20)
	assert.True(t, s.HasMore())

	s.LoadMore(ctx)
	items := s.View().InfiniteScrollItems
	assert.Len(t, items, 25)
	assert.False(t, s.HasMore())
	assert.Equal(t, ids(s.Entries()), ids(items))

	// no more pages: further calls do nothing
	s.LoadMore(ctx)
	assert.Len(t, s.View().InfiniteScrollItems, 25)
}

func TestInfinite_ShortCollection(t *testing.T) {
	s := loadedStore(t, 5, nil)

	s.SetViewMode(context.Background(), ModeInfinite)

	assert.Len(t, s.View().InfiniteScrollItems, 5)
	assert.False(t, s.HasMore())
}

func TestInfinite_ExactPageBoundary(t *testing.T) {
	s := loadedStore(t, 10, nil)

	s.SetViewMode(context.Background(), ModeInfinite)

	assert.Len(t, s.View().InfiniteScrollItems, 10)
	assert.False(t, s.HasMore())
}

func TestInfinite_PageSizeOption(t *testing.T) {
	s := loadedStore(t, 7, nil, WithInfinitePageSize(3))
	ctx := context.Background()

	s.SetViewMode(ctx, ModeInfinite)
	assert.Len(t, s.View().InfiniteScrollItems, 3)
	s.LoadMore(ctx)
	s.LoadMore(ctx)
	assert.Len(t, s.View().InfiniteScrollItems, 7)
	assert.False(t, s.HasMore())
}

func TestLoadMore_IgnoredInPaginationMode(t *testing.T) {
	p := &fakePager{}
	s := loadedStore(t, 25, nil, WithPager(p))

	s.LoadMore(context.Background())

	assert.Empty(t, p.calls)
	assert.Empty(t, s.View().InfiniteScrollItems)
}

func TestInfinite_FilterAppliesToWindow(t *testing.T) {
	entries := manyEntries(12)
	entries[1].ExerciseName = "Bench"
	entries[11].ExerciseName = "Bench"
	s := newTestStore(&fakeSource{Entries: entries}, nil)
	ctx := context.Background()
	s.Load(ctx, "u1", nil)
	s.SetViewMode(ctx, ModeInfinite)

	s.SetSearchTerm("bench")
	assert.Equal(t, []string{"e02"}, ids(s.View().InfiniteScrollItems))

	s.LoadMore(ctx)
	assert.Equal(t, []string{"e02", "e12"}, ids(s.View().InfiniteScrollItems))

	s.ClearSearch()
	assert.Len(t, s.View().InfiniteScrollItems, 12)
}

func TestInfinite_PagerHasMoreIsAuthoritative(t *testing.T) {
	p := &fakePager{
		pages: map[int][]models.ProgressEntry{
			1: manyEntries(2),
			2: {entry("z", "Row", 40, 8, 3)},
		},
		more: map[int]bool{1: true, 2: false},
	}
	s := newTestStore(&fakeSource{}, nil, WithPager(p))
	ctx := context.Background()
	s.Load(ctx, "u1", nil)

	s.SetViewMode(ctx, ModeInfinite)
	assert.Len(t, s.View().InfiniteScrollItems, 2)
	assert.True(t, s.HasMore())

	s.LoadMore(ctx)
	assert.Equal(t, []string{"e01", "e02", "z"}, ids(s.View().InfiniteScrollItems))
	assert.False(t, s.HasMore())
	assert.Equal(t, []int{1, 2}, p.calls)
}

func TestInfinite_FetchFailureKeepsWindow(t *testing.T) {
	p := &fakePager{
		pages: map[int][]models.ProgressEntry{1: manyEntries(3)},
		more:  map[int]bool{1: true},
	}
	n := &recordingNotifier{}
	s := newTestStore(&fakeSource{}, n, WithPager(p))
	ctx := context.Background()
	s.Load(ctx, "u1", nil)
	s.SetViewMode(ctx, ModeInfinite)
	require.Len(t, s.View().InfiniteScrollItems, 3)

	p.mu.Lock()
	p.err = errors.New("network down")
	p.mu.Unlock()
	s.LoadMore(ctx)

	assert.Len(t, s.View().InfiniteScrollItems, 3)
	assert.True(t, s.HasMore())
	assert.False(t, s.IsLoadingMore())
	assert.Equal(t, []string{"Could not load more entries"}, n.Errors())

	// a later retry can still succeed and resumes at the same page
	p.mu.Lock()
	p.err = nil
	p.pages[2] = []models.ProgressEntry{entry("z", "Row", 40, 8, 3)}
	p.mu.Unlock()
	s.LoadMore(ctx)
	assert.Len(t, s.View().InfiniteScrollItems, 4)
	assert.Equal(t, []int{1, 2, 2}, p.calls)
}

func TestLoadMore_IgnoredWhileInFlight(t *testing.T) {
	gate := make(chan struct{})
	p := &fakePager{
		pages: map[int][]models.ProgressEntry{1: manyEntries(2), 2: manyEntries(2)},
		more:  map[int]bool{1: true, 2: true},
	}
	s := newTestStore(&fakeSource{}, nil, WithPager(p))
	ctx := context.Background()
	s.Load(ctx, "u1", nil)
	s.SetViewMode(ctx, ModeInfinite)

	p.mu.Lock()
	p.gate = gate
	p.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.LoadMore(ctx)
	}()
	require.Eventually(t, s.IsLoadingMore, time.Second, time.Millisecond)

	s.LoadMore(ctx) // returns immediately, fetch already in flight

	close(gate)
	wg.Wait()
	assert.Equal(t, []int{1, 2}, p.calls)
	assert.Len(t, s.View().InfiniteScrollItems, 4)
}

func TestInfinite_StaleFetchDroppedAfterReset(t *testing.T) {
	gate := make(chan struct{})
	p := &fakePager{
		pages: map[int][]models.ProgressEntry{1: manyEntries(2), 2: {entry("z", "Row", 40, 8, 3)}},
		more:  map[int]bool{1: true, 2: true},
	}
	s := newTestStore(&fakeSource{}, nil, WithPager(p))
	ctx := context.Background()
	s.Load(ctx, "u1", nil)
	s.SetViewMode(ctx, ModeInfinite)

	p.mu.Lock()
	p.gate = gate
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.LoadMore(ctx) // page 2, resolves after the reset below
		close(done)
	}()
	require.Eventually(t, s.IsLoadingMore, time.Second, time.Millisecond)

	s.Clear()
	close(gate)
	<-done

	assert.Empty(t, s.View().InfiniteScrollItems)
	assert.True(t, s.HasMore())
	assert.False(t, s.IsLoadingMore())
}

func TestSetViewMode_BackToPagination(t *testing.T) {
	s := loadedStore(t, 25, nil)
	ctx := context.Background()
	s.SetViewMode(ctx, ModeInfinite)
	s.LoadMore(ctx)

	s.SetViewMode(ctx, ModePagination)
	assert.Equal(t, ModePagination, s.ViewMode())
	assert.Len(t, s.View().PaginatedEntries, 10)

	// re-entering infinite mode starts from the first page again
	s.SetViewMode(ctx, ModeInfinite)
	assert.Len(t, s.View().InfiniteScrollItems, 10)
	assert.True(t, s.HasMore())
}

func TestSetViewMode_UnknownIgnored(t *testing.T) {
	s := loadedStore(t, 3, nil)
	s.SetViewMode(context.Background(), ViewMode("grid"))
	assert.Equal(t, ModePagination, s.ViewMode())
}

func TestInfinite_WindowSurvivesEntryMutations(t *testing.T) {
	s := loadedStore(t, 3, nil)
	ctx := context.Background()
	s.SetViewMode(ctx, ModeInfinite)

	s.Add(entry("x", "Squat", 120, 5, 3))

	assert.Len(t, s.Entries(), 4)
	assert.Len(t, s.View().InfiniteScrollItems, 3)
}

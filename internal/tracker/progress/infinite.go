package progress

import (
	"context"
	"slices"
)

const msgLoadMoreFailed = "Could not load more entries"

// SetViewMode switches the browsing mode. Entering ModeInfinite resets the
// window and fetches its first page.
func (s *Store) SetViewMode(ctx context.Context, mode ViewMode) {
	if !mode.Valid() {
		s.log.Warn(ctx, "unknown view mode ignored", "mode", string(mode))
		return
	}

	s.mu.Lock()
	s.st.mode = mode
	if mode != ModeInfinite {
		s.commitLocked(ChangeMode)
		s.mu.Unlock()
		return
	}
	s.st.infinite = newInfiniteCursor(s.st.infinite.generation + 1)
	s.st.infinite.loadingMore = true
	gen, page, userID := s.st.infinite.generation, s.st.infinite.nextPage, s.st.userID
	s.commitLocked(ChangeMode | ChangeWindow)
	s.mu.Unlock()

	s.fetchWindow(ctx, gen, page, userID)
}

// LoadMore appends the next page to the infinite window. It does nothing
// outside ModeInfinite, when no more pages exist, or while a fetch is
// already in flight.
func (s *Store) LoadMore(ctx context.Context) {
	s.mu.Lock()
	c := &s.st.infinite
	if s.st.mode != ModeInfinite || !c.hasMore || c.loadingMore {
		s.mu.Unlock()
		return
	}
	c.loadingMore = true
	gen, page, userID := c.generation, c.nextPage, s.st.userID
	s.commitLocked(ChangeWindow)
	s.mu.Unlock()

	s.fetchWindow(ctx, gen, page, userID)
}

func (s *Store) fetchWindow(ctx context.Context, gen uint64, page int, userID string) {
	items, more, err := s.pager.FetchEntriesPage(ctx, userID, page, s.infinitePageSize)

	s.mu.Lock()
	c := &s.st.infinite
	if c.generation != gen {
		s.mu.Unlock()
		s.log.Debug(ctx, "stale window page dropped", "page", page)
		return
	}
	c.loadingMore = false
	if err != nil {
		s.commitLocked(ChangeWindow)
		s.mu.Unlock()

		s.log.Warn(ctx, "window page fetch failed", "page", page, "err", err)
		s.notifier.NotifyError(msgLoadMoreFailed)
		return
	}
	if len(items) > 0 {
		c.window = append(slices.Clip(c.window), items...)
		c.nextPage++
	}
	c.hasMore = more
	s.commitLocked(ChangeWindow)
	s.mu.Unlock()

	s.log.Debug(ctx, "window page loaded", "page", page, "items", len(items), "has_more", more)
}

// Package progress implements the in-memory progress store that backs the
// tracker's browsing views.
//
// # Overview
//
// A Store holds a user's exercise-progress entries together with the day's
// nutrient snapshot, the selected exercise's strength series and the user's
// exercise names. It serves the entries through two mutually exclusive
// browsing modes:
//
//   - ModePagination: fixed-size pages over the filtered collection.
//   - ModeInfinite: an append-only window fetched page by page through a
//     Pager and re-filtered on every read.
//
// Every mutation recomputes the derived View (totals, maxima, filtered and
// paginated subsets) before the lock is released, so readers always observe
// state and aggregates that agree with each other.
//
// # Loading
//
// Load fans out three reads against the Source (entries, nutrient snapshot,
// exercise names), converts a failure of any one of them into that source's
// default value, and commits all three in one step. The store lock is never
// held across I/O, so the store stays readable while a load is in flight.
// Overlapping loads are not cancelled: the last one to resolve wins.
//
// # Errors
//
// No exported operation returns an error. Source failures are logged and
// recovered; a missing identity is reported through the Error cell; mutation
// outcomes are reported through the Notifier.
//
// # Change notification
//
// Subscribe returns a channel that receives a Change after every commit.
// Sends never block; slow subscribers miss intermediate changes and should
// re-read a Snapshot.
package progress

// Package services persists user actions and then mirrors them into the
// progress store.
//
// Every write goes to the database first. Only after it succeeds is the
// store updated, so a failed write leaves the store untouched and is
// reported through the notifier (and returned to the caller).
package services

// Package testkit holds helpers for tests that replace package-level seams
package testkit

import (
	"sync"
	"testing"
)

// seams serializes every test that replaces a package-level variable
var seams sync.Mutex

// Serial holds the seam lock until the test ends
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

// Swap points *target at v until the test ends
// callers that run in parallel should take Serial first
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}

// Seam is Serial followed by Swap
func Seam[T any](t testing.TB, target *T, v T) {
	t.Helper()
	Serial(t)
	Swap(t, target, v)
}

// Package timeutil abstracts the wall clock so audit timestamps and derived
// traveler ages can be pinned in tests.
package timeutil

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock pinned to t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the pinned time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set pins the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock by d, which may be negative.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)

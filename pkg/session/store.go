// Package session keeps the bounded in-memory log of recorded
// sessions and computes aggregate lap statistics over it.
package session

import (
	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

// MaxSessions is the fixed capacity of a Store. The backing array is
// allocated once, the store never grows beyond it.
const MaxSessions = 5

// Store collects sessions in insertion order up to MaxSessions
// entries. Sessions are stored by value, later changes to the
// caller's copy do not affect stored entries.
type Store struct {
	sessions [MaxSessions]model.Session
	count    int
}

func NewStore() *Store {
	return &Store{}
}

// AddSession appends a copy of sess and reports whether it was
// stored. A full store is left untouched and reports false. Hitting
// the capacity is an expected outcome callers have to check, not an
// error.
func (s *Store) AddSession(sess model.Session) bool {
	if s.count >= MaxSessions {
		return false
	}
	s.sessions[s.count] = sess
	s.count++
	return true
}

// SessionCount returns the number of stored sessions.
func (s *Store) SessionCount() int {
	return s.count
}

// Sessions returns the stored sessions in insertion order. The
// returned slice is a copy.
func (s *Store) Sessions() []model.Session {
	ret := make([]model.Session, s.count)
	copy(ret, s.sessions[:s.count])
	return ret
}

// OverallAverage returns the mean over every lap of every stored
// session. Each lap contributes equally. An empty store yields 0.0
// instead of NaN.
func (s *Store) OverallAverage() float64 {
	if s.count == 0 {
		return 0.0
	}
	var total float64
	lapCount := 0
	for i := 0; i < s.count; i++ {
		for _, lapTime := range s.sessions[i].LapTimes {
			total += lapTime
			lapCount++
		}
	}
	return total / float64(lapCount)
}

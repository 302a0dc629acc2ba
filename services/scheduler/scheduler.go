// Package scheduler keeps a day's accepted events: whole-hour intervals that
// never overlap, ordered by start hour.
package scheduler

import (
	"sort"

	"dayplanner/models"
)

const (
	// MinHour is the earliest hour an event may start at.
	MinHour = 0
	// MaxHour is the latest hour an event may end at.
	MaxHour = 23
)

// Scheduler owns one schedule. It is not safe for concurrent use.
type Scheduler struct {
	events []models.Interval
}

func New() *Scheduler {
	return &Scheduler{events: []models.Interval{}}
}

// Restore rebuilds a scheduler by adding each interval in turn. It returns
// the number of intervals that were rejected.
func Restore(intervals []models.Interval) (*Scheduler, int) {
	s := New()
	rejected := 0
	for _, iv := range intervals {
		if !s.AddEvent(iv) {
			rejected++
		}
	}
	return s, rejected
}

// Valid reports whether candidate is a non-empty range inside [MinHour, MaxHour].
func Valid(candidate models.Interval) bool {
	return candidate.Start < candidate.End &&
		candidate.Start >= MinHour &&
		candidate.End <= MaxHour
}

// AddEvent stores candidate if it is valid and overlaps no stored event.
// On rejection the schedule is left untouched.
func (s *Scheduler) AddEvent(candidate models.Interval) bool {
	if !Valid(candidate) {
		return false
	}
	for _, e := range s.events {
		if candidate.Overlaps(e) {
			return false
		}
	}

	s.events = append(s.events, models.Interval{Start: candidate.Start, End: candidate.End})
	sort.Slice(s.events, func(i, j int) bool {
		return s.events[i].Start < s.events[j].Start
	})
	return true
}

// GetEvents returns a copy of the schedule, ordered by start hour.
func (s *Scheduler) GetEvents() []models.Interval {
	return append([]models.Interval{}, s.events...)
}

// Len returns the number of scheduled events.
func (s *Scheduler) Len() int {
	return len(s.events)
}

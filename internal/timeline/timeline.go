// Package timeline provides the demo content domain: an unbounded calendar.
// Days drive the continuous scroller, months drive the paged navigator. The
// key types are small comparable structs rather than time.Time values so key
// equality is exact.
package timeline

import (
	"fmt"
	"hash/fnv"
	"time"

	"boundless/internal/oracle"
)

// Day identifies one calendar day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf converts a time to its Day key.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

func (d Day) String() string {
	return d.Time().Format("Mon, 02 Jan 2006")
}

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf converts a time to its Month key.
func MonthOf(t time.Time) Month {
	y, m, _ := t.Date()
	return Month{Year: y, Month: m}
}

// AddMonths returns the month shifted by n.
func (m Month) AddMonths(n int) Month {
	return MonthOf(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0))
}

// FirstDay returns the first day of the month.
func (m Month) FirstDay() Day {
	return Day{Year: m.Year, Month: m.Month, Day: 1}
}

// Contains reports whether the day falls inside the month.
func (m Month) Contains(d Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	return m.Year < other.Year || (m.Year == other.Year && m.Month < other.Month)
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// SameMonth is the equivalence predicate for month pages.
func SameMonth(a, b Month) bool { return a == b }

// Source generates timeline keys, optionally bounded to a date range.
type Source struct {
	Bounded  bool
	Earliest Day
	Latest   Day
}

// Days returns the day-stepping oracle.
func (s Source) Days() oracle.Oracle[Day] {
	return oracle.Funcs[Day]{
		NextFunc: func(d Day) (Day, bool) {
			if s.Bounded && !d.Before(s.Latest) {
				return Day{}, false
			}
			return d.AddDays(1), true
		},
		PrevFunc: func(d Day) (Day, bool) {
			if s.Bounded && !s.Earliest.Before(d) {
				return Day{}, false
			}
			return d.AddDays(-1), true
		},
	}
}

// Months returns the month-stepping oracle. Bounds are the months of the
// earliest and latest day.
func (s Source) Months() oracle.Oracle[Month] {
	return oracle.Funcs[Month]{
		NextFunc: func(m Month) (Month, bool) {
			if s.Bounded && !m.Before(MonthOf(s.Latest.Time())) {
				return Month{}, false
			}
			return m.AddMonths(1), true
		},
		PrevFunc: func(m Month) (Month, bool) {
			if s.Bounded && !MonthOf(s.Earliest.Time()).Before(m) {
				return Month{}, false
			}
			return m.AddMonths(-1), true
		},
	}
}

// DecideMonth chooses animation and direction for programmatic month jumps:
// chronological direction, animated only for nearby months.
func DecideMonth(oldKey, newKey Month) (bool, oracle.Direction) {
	dir := oracle.Forward
	if newKey.Before(oldKey) {
		dir = oracle.Backward
	}
	months := (newKey.Year-oldKey.Year)*12 + int(newKey.Month) - int(oldKey.Month)
	if months < 0 {
		months = -months
	}
	return months <= 3, dir
}

var activities = []string{
	"standup notes",
	"code review",
	"pairing session",
	"design sketching",
	"inbox triage",
	"reading list",
	"bug hunt",
	"release prep",
	"retro follow-ups",
	"docs pass",
}

// Entries returns the deterministic pseudo-journal lines for a day. The same
// day always yields the same lines, so view factories stay pure.
func Entries(d Day) []string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d-%d-%d", d.Year, d.Month, d.Day)
	seed := h.Sum32()

	count := int(seed%3) + 1
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		activity := activities[int(seed>>uint(4*i))%len(activities)]
		hour := 9 + int(seed>>uint(3*i))%9
		lines = append(lines, fmt.Sprintf("%02d:00  %s", hour, activity))
	}
	return lines
}

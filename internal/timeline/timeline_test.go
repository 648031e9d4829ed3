package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boundless/internal/oracle"
)

func TestDayArithmetic(t *testing.T) {
	d := Day{Year: 2024, Month: time.January, Day: 31}

	assert.Equal(t, Day{Year: 2024, Month: time.February, Day: 1}, d.AddDays(1))
	assert.Equal(t, Day{Year: 2024, Month: time.January, Day: 1}, d.AddDays(-30))

	// 2024 is a leap year.
	feb28 := Day{Year: 2024, Month: time.February, Day: 28}
	assert.Equal(t, Day{Year: 2024, Month: time.February, Day: 29}, feb28.AddDays(1))

	assert.True(t, feb28.Before(d.AddDays(30)))
	assert.False(t, feb28.Before(feb28))
}

func TestMonthArithmetic(t *testing.T) {
	m := Month{Year: 2024, Month: time.December}

	assert.Equal(t, Month{Year: 2025, Month: time.January}, m.AddMonths(1))
	assert.Equal(t, Month{Year: 2024, Month: time.January}, m.AddMonths(-11))
	assert.Equal(t, Day{Year: 2024, Month: time.December, Day: 1}, m.FirstDay())

	assert.True(t, m.Contains(Day{Year: 2024, Month: time.December, Day: 25}))
	assert.False(t, m.Contains(Day{Year: 2025, Month: time.December, Day: 25}))

	assert.True(t, m.Before(Month{Year: 2025, Month: time.January}))
	assert.False(t, m.Before(m))
	assert.True(t, SameMonth(m, Month{Year: 2024, Month: time.December}))
	assert.False(t, SameMonth(m, Month{Year: 2024, Month: time.November}))
}

func TestUnboundedOracles(t *testing.T) {
	s := Source{}
	days := s.Days()

	d, ok := days.Next(Day{Year: 9999, Month: time.December, Day: 31})
	require.True(t, ok)
	assert.Equal(t, Day{Year: 10000, Month: time.January, Day: 1}, d)

	_, ok = days.Prev(Day{Year: 1, Month: time.January, Day: 1})
	assert.True(t, ok)

	months := s.Months()
	m, ok := months.Prev(Month{Year: 2024, Month: time.January})
	require.True(t, ok)
	assert.Equal(t, Month{Year: 2023, Month: time.December}, m)
}

func TestBoundedDayOracle(t *testing.T) {
	s := Source{
		Bounded:  true,
		Earliest: Day{Year: 2024, Month: time.March, Day: 10},
		Latest:   Day{Year: 2024, Month: time.March, Day: 20},
	}
	days := s.Days()

	d, ok := days.Next(Day{Year: 2024, Month: time.March, Day: 19})
	require.True(t, ok)
	assert.Equal(t, 20, d.Day)

	_, ok = days.Next(s.Latest)
	assert.False(t, ok)
	_, ok = days.Prev(s.Earliest)
	assert.False(t, ok)

	d, ok = days.Prev(Day{Year: 2024, Month: time.March, Day: 11})
	require.True(t, ok)
	assert.Equal(t, s.Earliest, d)
}

func TestBoundedMonthOracle(t *testing.T) {
	s := Source{
		Bounded:  true,
		Earliest: Day{Year: 2024, Month: time.March, Day: 10},
		Latest:   Day{Year: 2024, Month: time.June, Day: 20},
	}
	months := s.Months()

	m, ok := months.Next(Month{Year: 2024, Month: time.May})
	require.True(t, ok)
	assert.Equal(t, time.June, m.Month)

	_, ok = months.Next(Month{Year: 2024, Month: time.June})
	assert.False(t, ok)
	_, ok = months.Prev(Month{Year: 2024, Month: time.March})
	assert.False(t, ok)
}

func TestDecideMonth(t *testing.T) {
	base := Month{Year: 2024, Month: time.June}

	animate, dir := DecideMonth(base, base.AddMonths(1))
	assert.True(t, animate)
	assert.Equal(t, oracle.Forward, dir)

	animate, dir = DecideMonth(base, base.AddMonths(-3))
	assert.True(t, animate)
	assert.Equal(t, oracle.Backward, dir)

	// Far jumps snap instead of animating.
	animate, dir = DecideMonth(base, base.AddMonths(14))
	assert.False(t, animate)
	assert.Equal(t, oracle.Forward, dir)

	animate, dir = DecideMonth(base, Month{Year: 2020, Month: time.June})
	assert.False(t, animate)
	assert.Equal(t, oracle.Backward, dir)
}

func TestEntriesDeterministic(t *testing.T) {
	d := Day{Year: 2024, Month: time.June, Day: 15}

	first := Entries(d)
	second := Entries(d)
	assert.Equal(t, first, second)

	require.NotEmpty(t, first)
	assert.LessOrEqual(t, len(first), 3)
	for _, line := range first {
		assert.Regexp(t, `^\d{2}:00  `, line)
	}
}

func TestDayString(t *testing.T) {
	d := Day{Year: 2024, Month: time.June, Day: 15}
	assert.Equal(t, "Sat, 15 Jun 2024", d.String())
	assert.Equal(t, "June 2024", Month{Year: 2024, Month: time.June}.String())
}

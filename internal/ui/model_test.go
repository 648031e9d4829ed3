package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boundless/internal/config"
	"boundless/internal/eventbus"
	"boundless/internal/timeline"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(eventbus.New(), config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWindowSizeSeedsScrollWindow(t *testing.T) {
	m := newTestModel(t)

	require.NotEmpty(t, m.engine.Keys())
	day, ok := m.focusedDay()
	require.True(t, ok)
	assert.Equal(t, timeline.DayOf(time.Now()), day, "initial focus is today")

	view := m.View()
	assert.Contains(t, view, "scroll")
	assert.Contains(t, view, day.String())
}

func TestToggleMode(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, ModeScroll, m.mode)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModePaged, m.mode)
	assert.Contains(t, m.View(), "paged")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeScroll, m.mode)
}

func TestScrollKeysMoveWindow(t *testing.T) {
	m := newTestModel(t)
	orig, ok := m.engine.FirstKey()
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		m.Update(runeKey("f"))
	}

	first, ok := m.engine.FirstKey()
	require.True(t, ok)
	assert.True(t, orig.Before(first), "paging down should evict earlier days")

	for i := 0; i < 10; i++ {
		m.Update(runeKey("b"))
	}
	first, ok = m.engine.FirstKey()
	require.True(t, ok)
	assert.True(t, first.Before(orig), "paging back up should grow earlier days")
}

func TestRefreshLifecycle(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runeKey("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.engine.Refreshing())

	// A second gesture while refreshing is ignored.
	_, cmd = m.Update(runeKey("r"))
	assert.Nil(t, cmd)

	m.Update(refreshCompleteMsg{})
	assert.False(t, m.engine.Refreshing())
	assert.Equal(t, "refreshed", m.status)
}

func TestPagedNavigation(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	home := timeline.MonthOf(time.Now())
	cur, ok := m.months.Current()
	require.True(t, ok)
	require.Equal(t, home, cur.Key)

	m.Update(runeKey("l"))
	cur, _ = m.months.Current()
	assert.Equal(t, home.AddMonths(1), cur.Key)

	m.Update(runeKey("h"))
	m.Update(runeKey("h"))
	cur, _ = m.months.Current()
	assert.Equal(t, home.AddMonths(-1), cur.Key)
}

func TestTodayJump(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	home := timeline.MonthOf(time.Now())

	// Already on today's month: nothing to do.
	_, cmd := m.Update(runeKey("g"))
	assert.Nil(t, cmd)

	// One month over, the jump animates and completes via a message.
	m.Update(runeKey("l"))
	_, cmd = m.Update(runeKey("g"))
	require.NotNil(t, cmd)
	require.NotEmpty(t, m.pending)

	m.Update(transitionDoneMsg{token: m.pending})
	assert.Empty(t, m.pending)
	cur, _ := m.months.Current()
	assert.Equal(t, home, cur.Key)
}

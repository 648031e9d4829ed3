package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"boundless/internal/config"
	"boundless/internal/eventbus"
	"boundless/internal/pager"
	"boundless/internal/scroll"
	"boundless/internal/timeline"
	"boundless/internal/ui/views"
)

// Mode selects which windowing engine drives the main area.
type Mode int

const (
	ModeScroll Mode = iota
	ModePaged
)

func (m Mode) String() string {
	if m == ModePaged {
		return "paged"
	}
	return "scroll"
}

// chromeRows is the vertical space reserved for the title, status and help
// lines around the content area.
const chromeRows = 3

// refreshDuration is how long the demo's simulated refresh work takes.
const refreshDuration = 900 * time.Millisecond

// transitionDuration stands in for an animated page transition.
const transitionDuration = 150 * time.Millisecond

// Model represents the UI state
type Model struct {
	bus eventbus.EventBus
	cfg *config.Config

	host    *termHost
	factory *dayFactory
	engine  *scroll.Engine[timeline.Day]
	months  *pager.Navigator[timeline.Month]

	keys keyMap
	help help.Model
	spin spinner.Model

	mode   Mode
	width  int
	height int
	status string

	// refreshDone is the engine's completion callback for the in-flight
	// refresh gesture, held until the simulated work finishes.
	refreshDone func()
	// pending is the page token of a not-yet-completed animated transition.
	pending pager.Token

	detail  *DetailOps
	program *tea.Program
}

// NewModel creates a new UI model wired to both windowing engines.
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	today := timeline.DayOf(time.Now())
	initialDay := today.AddDays(cfg.Timeline.StartOffsetDays)

	source := timeline.Source{Bounded: cfg.Timeline.Bounded}
	if source.Bounded {
		source.Earliest = today.AddDays(-cfg.Timeline.PastDays)
		source.Latest = today.AddDays(cfg.Timeline.FutureDays)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	m := &Model{
		bus:     bus,
		cfg:     cfg,
		host:    newTermHost(),
		factory: &dayFactory{width: 80},
		keys:    defaultKeyMap(),
		help:    help.New(),
		spin:    sp,
		mode:    ModeScroll,
	}

	engineCfg := scroll.Config[timeline.Day]{
		Axis:       cfg.ScrollAxis(),
		Spacing:    cfg.Spacing,
		Multiplier: cfg.Multiplier,
		InitialKey: initialDay,
	}
	if cfg.Refresh.Enabled {
		// The demo's refresh work is asynchronous from the engine's point of
		// view: hold the completion callback until refreshCompleteMsg.
		engineCfg.OnRefresh = func(done func()) {
			m.refreshDone = done
		}
	}
	m.engine = scroll.New[timeline.Day](m.host, m.factory, source.Days(), engineCfg, bus)

	m.months = pager.New[timeline.Month](
		source.Months(),
		monthFactory(&m.factory.width, today),
		pager.Config[timeline.Month]{
			Equivalent: timeline.SameMonth,
			Decide:     timeline.DecideMonth,
		},
		bus,
	)
	m.months.Initialize(timeline.MonthOf(initialDay.Time()))

	return m
}

// SetProgram stores the program reference needed for pager terminal handoff.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.detail = NewDetailOps(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.factory.width = msg.Width
		m.host.SetViewport(msg.Width, msg.Height-chromeRows)
		m.engine.Layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.engine.Refreshing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshCompleteMsg:
		if m.refreshDone != nil {
			done := m.refreshDone
			m.refreshDone = nil
			done()
			m.status = "refreshed"
		}
		return m, nil

	case transitionDoneMsg:
		if msg.token != m.pending {
			// Superseded by a newer transition; ignore.
			return m, nil
		}
		m.pending = ""
		if err := m.months.CompleteTransition(msg.token); err != nil {
			log.WithError(err).Warn("ui: transition completion rejected")
		}
		return m, nil

	case detailPagerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("pager error: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		if m.mode == ModeScroll {
			m.mode = ModePaged
		} else {
			m.mode = ModeScroll
		}
		return m, nil
	}

	if m.mode == ModeScroll {
		return m.handleScrollKey(msg)
	}
	return m.handlePagedKey(msg)
}

func (m *Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	axis := m.cfg.ScrollAxis()
	page := m.host.ViewportSize().Extent(axis)

	switch {
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(page)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-page)

	case key.Matches(msg, m.keys.Refresh):
		if m.engine.TriggerRefresh() {
			m.status = "refreshing"
			return m, tea.Batch(
				m.spin.Tick,
				tea.Tick(refreshDuration, func(time.Time) tea.Msg {
					return refreshCompleteMsg{}
				}),
			)
		}
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		day, ok := m.focusedDay()
		if !ok {
			return m, nil
		}
		return m, m.openDetail(day)
	}
	return m, nil
}

func (m *Model) handlePagedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextPage):
		m.flipToNeighbor(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.flipToNeighbor(-1)

	case key.Matches(msg, m.keys.Today):
		target := timeline.MonthOf(time.Now())
		trans, ok := m.months.RequestKey(target)
		if !ok {
			return m, nil
		}
		if trans.Animate {
			// Stand in for the animated transition; completion arrives as a
			// message, after which the true neighbors are fetched.
			m.pending = trans.To.Token
			tok := trans.To.Token
			return m, tea.Tick(transitionDuration, func(time.Time) tea.Msg {
				return transitionDoneMsg{token: tok}
			})
		}
		if err := m.months.CompleteTransition(trans.To.Token); err != nil {
			log.WithError(err).Warn("ui: jump completion rejected")
		}
	}
	return m, nil
}

// flipToNeighbor performs a user-driven transition to the window neighbor at
// the given offset from current, confirming it immediately (a terminal has
// no swipe animation to wait for).
func (m *Model) flipToNeighbor(step int) {
	cur, ok := m.months.Current()
	if !ok {
		return
	}
	pages := m.months.Pages()
	for i, p := range pages {
		if p.Token != cur.Token {
			continue
		}
		j := i + step
		if j < 0 || j >= len(pages) {
			m.status = "no more months"
			return
		}
		if err := m.months.CompleteTransition(pages[j].Token); err != nil {
			log.WithError(err).Warn("ui: flip completion rejected")
		}
		return
	}
}

func (m *Model) scrollBy(delta float64) {
	m.host.ScrollBy(m.cfg.ScrollAxis(), delta)
	m.engine.Layout()
}

// focusedDay returns the first window entry visible at the current offset.
func (m *Model) focusedDay() (timeline.Day, bool) {
	axis := m.cfg.ScrollAxis()
	off := m.host.Offset()
	for _, en := range m.engine.Window() {
		if en.Frame.Max(axis) > off {
			return en.Key, true
		}
	}
	return timeline.Day{}, false
}

func (m *Model) openDetail(day timeline.Day) tea.Cmd {
	return func() tea.Msg {
		err := m.detail.ShowInPager(views.DayDetail(day))
		return detailPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var current string
	if m.mode == ModeScroll {
		if day, ok := m.focusedDay(); ok {
			current = day.String()
		}
	} else if cur, ok := m.months.Current(); ok {
		current = cur.Key.String()
	}

	title := views.TitleBar(current, m.mode.String(), m.width)
	content := m.renderContent()
	status := m.renderStatus()
	helpLine := m.help.View(m.keys)

	return title + "\n" + content + "\n" + status + "\n" + helpLine
}

func (m *Model) renderContent() string {
	if m.mode == ModeScroll {
		return m.host.Render(m.cfg.ScrollAxis())
	}

	cur, ok := m.months.Current()
	if !ok {
		return ""
	}
	v, err := m.months.ViewFor(cur.Token)
	if err != nil {
		log.WithError(err).Error("ui: current page has no view")
		return ""
	}
	page := v.(*monthView).rendered
	return lipgloss.Place(m.width, m.height-chromeRows, lipgloss.Center, lipgloss.Center, page)
}

func (m *Model) renderStatus() string {
	text := m.status
	if m.engine.Refreshing() {
		text = m.spin.View() + " refreshing"
	}
	if text == "" {
		first, ok1 := m.engine.FirstKey()
		last, ok2 := m.engine.LastKey()
		if ok1 && ok2 {
			text = fmt.Sprintf("window %s to %s (%d days)", first, last, len(m.engine.Keys()))
		}
	}
	return views.StatusBar(text, m.width)
}

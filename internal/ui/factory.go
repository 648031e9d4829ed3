package ui

import (
	"boundless/internal/geometry"
	"boundless/internal/pager"
	"boundless/internal/scroll"
	"boundless/internal/timeline"
	"boundless/internal/ui/views"
)

// dayView is a materialized day card.
type dayView struct {
	key   timeline.Day
	lines []string
}

func (v *dayView) Lines() []string { return v.lines }

// dayFactory builds day cards for the continuous scroller. FrameFor measures
// without rendering; CreateView renders the rows once per materialization.
type dayFactory struct {
	width int
}

func (f *dayFactory) CreateView(d timeline.Day) scroll.View {
	return &dayView{key: d, lines: views.DayCard(d, f.width)}
}

func (f *dayFactory) FrameFor(d timeline.Day) geometry.Rect {
	return geometry.Rect{
		Width:  float64(f.width),
		Height: float64(views.DayCardHeight(d)),
	}
}

// monthView is a materialized month page.
type monthView struct {
	key      timeline.Month
	rendered string
}

// monthFactory builds month pages for the paged navigator.
func monthFactory(width *int, today timeline.Day) func(timeline.Month) pager.View {
	return func(m timeline.Month) pager.View {
		return &monthView{key: m, rendered: views.MonthPage(m, today, *width)}
	}
}

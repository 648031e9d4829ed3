package ui

import "boundless/internal/pager"

// refreshCompleteMsg signals that the simulated refresh work has finished
// and the engine's completion callback may fire.
type refreshCompleteMsg struct{}

// transitionDoneMsg signals that an animated page transition has finished.
type transitionDoneMsg struct {
	token pager.Token
}

// detailPagerMsg contains the result of running the day detail pager
type detailPagerMsg struct {
	err error
}

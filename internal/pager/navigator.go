// Package pager implements a paged window over a conceptually unbounded
// key sequence: at most three pages (previous, current, next) are ever
// materialized, and the window is swapped as the user transitions between
// neighbors. Each page slot is identified by a stable token so the host can
// report back which displayed page a transition landed on without the engine
// relying on view identity.
package pager

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"boundless/internal/eventbus"
	"boundless/internal/oracle"
)

// ErrUnknownToken is returned when the host reports a transition to a token
// that is not (or no longer) part of the 3-key window. Tokens are invalidated
// as soon as their key leaves the window and are never reused.
var ErrUnknownToken = errors.New("pager: unknown or stale page token")

// View is an opaque handle to a materialized page.
type View any

// Token identifies one page slot. Allocated lazily per key, dropped when the
// key leaves the window.
type Token string

func newToken() Token { return Token(uuid.NewString()) }

// Page pairs a slot token with its key.
type Page[K any] struct {
	Token Token
	Key   K
}

// Transition is the plan returned by RequestKey for the host to execute.
// Once the host finishes the (possibly animated) move it must report back
// via CompleteTransition with the target token.
type Transition[K any] struct {
	To        Page[K]
	Animate   bool
	Direction oracle.Direction
}

// Config holds the application-supplied behavior for a navigator.
type Config[K any] struct {
	// Equivalent decides whether two keys denote the same page. Structural
	// equality is often not what the application wants (two dates in the
	// same month, for example), so this predicate is required.
	Equivalent func(a, b K) bool
	// Decide chooses whether a programmatic key change animates and in
	// which direction it moves.
	Decide oracle.DecideFunc[K]
}

// Navigator is the paged windowing engine. Like the continuous scroller it
// is single-threaded: every call must come from the UI thread, inside a
// host-delivered callback.
type Navigator[K any] struct {
	nav     oracle.Oracle[K]
	factory func(K) View
	cfg     Config[K]
	bus     eventbus.EventBus // optional

	pages   []Page[K] // ordered prev -> current -> next, length 1..3
	current int       // index of the selected page
	views   map[Token]View
}

// New creates a navigator. The window is empty until Initialize is called.
// The bus may be nil.
func New[K any](nav oracle.Oracle[K], factory func(K) View, cfg Config[K], bus eventbus.EventBus) *Navigator[K] {
	return &Navigator[K]{
		nav:     nav,
		factory: factory,
		cfg:     cfg,
		bus:     bus,
		views:   make(map[Token]View),
	}
}

// Initialize builds the window around the initial key. A missing neighbor on
// either side is a normal steady state: the window may have length 1 or 2.
func (n *Navigator[K]) Initialize(initial K) {
	n.dropAll()
	n.rebuildAround(Page[K]{Token: newToken(), Key: initial}, nil)
}

// Pages returns a copy of the window in navigation order.
func (n *Navigator[K]) Pages() []Page[K] {
	out := make([]Page[K], len(n.pages))
	copy(out, n.pages)
	return out
}

// Current returns the selected page. The boolean is false before Initialize.
func (n *Navigator[K]) Current() (Page[K], bool) {
	if len(n.pages) == 0 {
		var zero Page[K]
		return zero, false
	}
	return n.pages[n.current], true
}

// ViewFor materializes (or returns the cached) view for a page token.
func (n *Navigator[K]) ViewFor(tok Token) (View, error) {
	idx := n.indexOf(tok)
	if idx < 0 {
		return nil, ErrUnknownToken
	}
	v, ok := n.views[tok]
	if !ok {
		v = n.factory(n.pages[idx].Key)
		n.views[tok] = v
	}
	return v, nil
}

// CompleteTransition must be called by the host once a transition to the
// given page has finished. The window is rebuilt as exactly
// [prev(current)?, current, next(current)?]; keys that survive keep their
// token and cached view, departing keys are discarded. Rebuilding from the
// oracle is also what replaces a synthesized edge placeholder (from a
// programmatic jump) with the true neighbor, so stale neighbor content is
// never left on screen.
func (n *Navigator[K]) CompleteTransition(tok Token) error {
	idx := n.indexOf(tok)
	if idx < 0 {
		n.publishError("transition to stale token", ErrUnknownToken)
		return fmt.Errorf("complete transition: %w", ErrUnknownToken)
	}
	from, _ := n.Current()
	target := n.pages[idx]
	old := n.pages
	n.rebuildAround(target, old)
	if n.bus != nil && !n.cfg.Equivalent(from.Key, target.Key) {
		n.bus.Publish(eventbus.PageChangedEvent{FromKey: from.Key, ToKey: target.Key})
	}
	return nil
}

// RequestKey handles a programmatic key change. It returns false when the
// key is equivalent to the current page (nothing to do). When the key is
// already a window neighbor the transition targets that page directly;
// otherwise a fresh 2-page window is synthesized with the new key at the
// edge chosen by the application's decide function. Either way the host must
// execute the returned plan and then call CompleteTransition.
func (n *Navigator[K]) RequestKey(newKey K) (Transition[K], bool) {
	cur, ok := n.Current()
	if !ok {
		n.Initialize(newKey)
		c, _ := n.Current()
		return Transition[K]{To: c, Animate: false, Direction: oracle.Forward}, true
	}
	if n.cfg.Equivalent(newKey, cur.Key) {
		return Transition[K]{}, false
	}

	animate, dir := n.decide(cur.Key, newKey)

	// Already adjacent in the window: transition to it directly.
	for i, p := range n.pages {
		if i == n.current {
			continue
		}
		if n.cfg.Equivalent(p.Key, newKey) {
			return Transition[K]{To: p, Animate: animate, Direction: dir}, true
		}
	}

	// Synthesize a window with the new key at the decided edge. The true
	// neighbors are fetched only after the transition completes.
	target := Page[K]{Token: newToken(), Key: newKey}
	old := n.pages
	if dir == oracle.Forward {
		n.pages = []Page[K]{cur, target}
		n.current = 0
	} else {
		n.pages = []Page[K]{target, cur}
		n.current = 1
	}
	n.dropStale(old)
	return Transition[K]{To: target, Animate: animate, Direction: dir}, true
}

func (n *Navigator[K]) decide(oldKey, newKey K) (bool, oracle.Direction) {
	if n.cfg.Decide == nil {
		return false, oracle.Forward
	}
	return n.cfg.Decide(oldKey, newKey)
}

// rebuildAround swaps the window for [prev(center)?, center, next(center)?],
// adopting tokens and cached views from old for keys that survive.
func (n *Navigator[K]) rebuildAround(center Page[K], old []Page[K]) {
	var pages []Page[K]
	if prev, ok := n.nav.Prev(center.Key); ok {
		pages = append(pages, n.adopt(old, prev))
	}
	currentIdx := len(pages)
	pages = append(pages, center)
	if next, ok := n.nav.Next(center.Key); ok {
		pages = append(pages, n.adopt(old, next))
	}
	n.pages = pages
	n.current = currentIdx
	n.dropStale(old)
}

// adopt reuses the token (and any cached view) of an equivalent old page,
// allocating a fresh token otherwise.
func (n *Navigator[K]) adopt(old []Page[K], key K) Page[K] {
	for _, p := range old {
		if n.cfg.Equivalent(p.Key, key) {
			return p
		}
	}
	return Page[K]{Token: newToken(), Key: key}
}

// dropStale discards tokens and cached views for old pages that are no
// longer part of the window.
func (n *Navigator[K]) dropStale(old []Page[K]) {
	for _, p := range old {
		if n.indexOf(p.Token) < 0 {
			delete(n.views, p.Token)
		}
	}
}

func (n *Navigator[K]) dropAll() {
	n.pages = nil
	n.current = 0
	n.views = make(map[Token]View)
}

func (n *Navigator[K]) indexOf(tok Token) int {
	for i, p := range n.pages {
		if p.Token == tok {
			return i
		}
	}
	return -1
}

func (n *Navigator[K]) publishError(msg string, err error) {
	if n.bus != nil {
		n.bus.Publish(eventbus.ErrorEvent{Message: msg, Err: err})
	}
}

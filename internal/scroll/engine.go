// Package scroll implements a continuously scrolling window over a
// conceptually unbounded sequence of keyed content. The engine keeps the
// host's scrollable content region artificially larger than the viewport and
// silently recenters the coordinate space as the user approaches either end,
// so scrolling never hits the underlying range limits. Only the entries that
// intersect the viewport (plus the ones being grown into view) are ever
// materialized.
package scroll

import (
	"math"

	"boundless/internal/eventbus"
	"boundless/internal/geometry"
	"boundless/internal/oracle"
)

// minScrollSlack keeps a fully collapsed content region scrollable by a
// minimal fixed amount. Implementation-defined, not load-bearing.
const minScrollSlack = 1.0

// View is an opaque handle to a materialized piece of content. The engine
// owns views exclusively while they are in the window: it inserts them into
// the host on creation and removes them on eviction.
type View any

// Factory materializes content for keys. FrameFor is independent from
// CreateView so the engine can measure geometry without constructing views.
type Factory[K comparable] interface {
	CreateView(key K) View
	FrameFor(key K) geometry.Rect
}

// Host is the scroll container the engine drives. All methods are invoked
// synchronously from Layout; a host whose SetOffset re-enters Layout is
// tolerated (the nested call is a no-op).
type Host interface {
	ViewportSize() geometry.Size
	ContentSize() geometry.Size
	SetContentSize(geometry.Size)
	Offset() float64
	SetOffset(float64)
	Insert(v View, frame geometry.Rect)
	SetFrame(v View, frame geometry.Rect)
	Remove(v View)
}

// Entry pairs a materialized view with its key and on-screen frame.
type Entry[K comparable] struct {
	Key   K
	View  View
	Frame geometry.Rect
}

// Config holds the engine options recognized from the application.
type Config[K comparable] struct {
	Axis       geometry.Axis
	Spacing    float64 // gap between adjacent entries, default 0
	Multiplier float64 // content oversize factor, default 6
	InitialKey K
	// OnRefresh, when set, enables pull-to-refresh. It receives a completion
	// function the application must invoke exactly once to end the refresh;
	// further refresh gestures are ignored until then.
	OnRefresh func(done func())
}

// Engine is the continuous scroller. It is purely reactive: the host calls
// Layout whenever its layout is invalidated or the scroll offset changes,
// and the engine has no timers or goroutines of its own. Not safe for
// concurrent use; all calls must come from the UI thread.
type Engine[K comparable] struct {
	host    Host
	factory Factory[K]
	nav     oracle.Oracle[K]
	cfg     Config[K]
	bus     eventbus.EventBus // optional

	window   []Entry[K]
	viewport geometry.Size

	depth     int  // re-entrancy guard
	collapsed bool // content region shrunk because of boundaries

	leadingBound  bool
	trailingBound bool

	refreshing bool
	refreshGen int
}

// New creates an engine. The bus may be nil.
func New[K comparable](host Host, factory Factory[K], nav oracle.Oracle[K], cfg Config[K], bus eventbus.EventBus) *Engine[K] {
	if cfg.Multiplier < 2 {
		cfg.Multiplier = 6
	}
	if cfg.Spacing < 0 {
		cfg.Spacing = 0
	}
	return &Engine[K]{
		host:    host,
		factory: factory,
		nav:     nav,
		cfg:     cfg,
		bus:     bus,
	}
}

// Window returns a copy of the visible window, ordered by ascending position
// along the scroll axis.
func (e *Engine[K]) Window() []Entry[K] {
	out := make([]Entry[K], len(e.window))
	copy(out, e.window)
	return out
}

// Keys returns the window's keys in screen order.
func (e *Engine[K]) Keys() []K {
	out := make([]K, len(e.window))
	for i, en := range e.window {
		out[i] = en.Key
	}
	return out
}

// FirstKey returns the leading edge key, if the window is non-empty.
func (e *Engine[K]) FirstKey() (K, bool) {
	if len(e.window) == 0 {
		var zero K
		return zero, false
	}
	return e.window[0].Key, true
}

// LastKey returns the trailing edge key, if the window is non-empty.
func (e *Engine[K]) LastKey() (K, bool) {
	if len(e.window) == 0 {
		var zero K
		return zero, false
	}
	return e.window[len(e.window)-1].Key, true
}

// Refreshing reports whether a refresh gesture is in flight.
func (e *Engine[K]) Refreshing() bool {
	return e.refreshing
}

// Layout runs one windowing pass: region adjustment (recenter or go-to-edge),
// growth on both edges, eviction, and small-content collapse. The host must
// call it on every layout-invalidated or offset-changed event. Nested calls
// triggered by the engine's own host mutations return immediately.
func (e *Engine[K]) Layout() {
	if e.depth > 0 {
		return
	}
	e.depth++
	defer func() { e.depth-- }()

	vp := e.host.ViewportSize()
	if vp.Extent(e.cfg.Axis) <= 0 {
		return
	}
	if vp != e.viewport {
		e.viewport = vp
		e.collapsed = false
		e.resetRegion()
	}

	before := e.Keys()

	e.adjustRegion()
	e.growTrailing()
	e.growLeading()
	e.evict()
	e.collapseIfContentFits()

	if after := e.Keys(); !keysEqual(before, after) {
		e.publishWindowChanged(after)
	}
}

// TriggerRefresh handles a refresh gesture. It returns false when refresh is
// disabled or one is already in flight. The completion function handed to the
// application is inert once superseded, so a stale completion can never end
// a newer refresh.
func (e *Engine[K]) TriggerRefresh() bool {
	if e.cfg.OnRefresh == nil || e.refreshing {
		return false
	}
	e.refreshing = true
	e.refreshGen++
	gen := e.refreshGen
	e.publish(eventbus.RefreshStartedEvent{})
	e.cfg.OnRefresh(func() {
		if !e.refreshing || gen != e.refreshGen {
			return
		}
		e.refreshing = false
		e.publish(eventbus.RefreshEndedEvent{})
		// The key set may have changed under us; re-poll the boundaries.
		e.Layout()
	})
	return true
}

// resetRegion sizes the content region to the oversized extent and, for an
// empty window, parks the offset at the region center so there is headroom
// to scroll in both directions.
func (e *Engine[K]) resetRegion() {
	ext := e.viewport.Extent(e.cfg.Axis) * e.cfg.Multiplier
	e.host.SetContentSize(e.viewport.WithExtent(e.cfg.Axis, ext))
	if len(e.window) == 0 {
		e.host.SetOffset((ext - e.viewport.Extent(e.cfg.Axis)) / 2)
		return
	}
	e.clampOffset()
}

// adjustRegion performs the recenter check. With no boundary in sight the
// offset is shifted back to the region center once it drifts more than a
// quarter of the region extent away. With a boundary on either edge the
// window is instead pulled flush against that edge, eliminating the
// unreachable scroll range beyond it. Every shift translates the offset and
// all entry frames by the same delta, so nothing moves on screen.
func (e *Engine[K]) adjustRegion() {
	if len(e.window) == 0 {
		return
	}
	_, beforeOK := e.nav.Prev(e.window[0].Key)
	_, afterOK := e.nav.Next(e.window[len(e.window)-1].Key)

	if !beforeOK || !afterOK {
		e.goToEdge(beforeOK, afterOK)
		return
	}

	if e.collapsed {
		// Content reappeared on both sides; restore the oversized region.
		e.collapsed = false
		e.resetRegion()
	}

	vpExt := e.viewport.Extent(e.cfg.Axis)
	contentExt := e.host.ContentSize().Extent(e.cfg.Axis)
	center := (contentExt - vpExt) / 2
	if math.Abs(e.host.Offset()-center) > contentExt/4 {
		e.shift(center - e.host.Offset())
	}
}

func (e *Engine[K]) goToEdge(beforeOK, afterOK bool) {
	axis := e.cfg.Axis
	first := e.window[0].Frame
	last := e.window[len(e.window)-1].Frame

	if !beforeOK && !afterOK {
		union := last.Max(axis) - first.Min(axis)
		vpExt := e.viewport.Extent(axis)
		if union < vpExt {
			// Handled by collapseIfContentFits after growth.
			return
		}
		e.shift(-first.Min(axis))
		if e.host.ContentSize().Extent(axis) != union {
			e.host.SetContentSize(e.viewport.WithExtent(axis, union))
			e.collapsed = true
			e.publish(eventbus.RegionCollapsedEvent{Extent: union})
		}
		e.clampOffset()
		return
	}
	if e.collapsed {
		// Content reappeared past one edge; restore the oversized region
		// before pinning against the remaining boundary.
		e.collapsed = false
		e.host.SetContentSize(e.viewport.WithExtent(axis, e.viewport.Extent(axis)*e.cfg.Multiplier))
	}
	if !beforeOK {
		e.shift(-first.Min(axis))
	} else {
		e.shift(e.host.ContentSize().Extent(axis) - last.Max(axis))
	}
	// An over-scrolled offset can land outside the valid range after the
	// pin; snap it back now rather than on the next host gesture.
	e.clampOffset()
}

// growTrailing appends entries until the window's trailing edge leaves the
// visible bounds or the oracle reports a boundary. An empty window is seeded
// with the initial key at the visible leading edge.
func (e *Engine[K]) growTrailing() {
	axis := e.cfg.Axis
	vis := e.visibleBounds()
	if len(e.window) == 0 {
		frame := e.factory.FrameFor(e.cfg.InitialKey).WithMin(axis, vis.Min(axis))
		e.materialize(len(e.window), e.cfg.InitialKey, frame)
	}
	for e.window[len(e.window)-1].Frame.Max(axis) < vis.Max(axis) {
		lastEntry := e.window[len(e.window)-1]
		key, ok := e.nav.Next(lastEntry.Key)
		if !ok {
			e.markBoundary(lastEntry.Key, true)
			return
		}
		e.trailingBound = false
		frame := e.factory.FrameFor(key).WithMin(axis, lastEntry.Frame.Max(axis)+e.cfg.Spacing)
		e.materialize(len(e.window), key, frame)
	}
}

// growLeading prepends entries until the window's leading edge covers the
// visible bounds or the oracle reports a boundary.
func (e *Engine[K]) growLeading() {
	axis := e.cfg.Axis
	vis := e.visibleBounds()
	for len(e.window) > 0 && e.window[0].Frame.Min(axis) > vis.Min(axis) {
		firstEntry := e.window[0]
		key, ok := e.nav.Prev(firstEntry.Key)
		if !ok {
			e.markBoundary(firstEntry.Key, false)
			return
		}
		e.leadingBound = false
		frame := e.factory.FrameFor(key)
		frame = frame.WithMin(axis, firstEntry.Frame.Min(axis)-e.cfg.Spacing-frame.Extent(axis))
		e.materialize(0, key, frame)
	}
}

// evict removes entries whose extent no longer intersects the visible bounds,
// strictly from the outermost edges inward so the window stays contiguous.
// The innermost entry is never evicted: it anchors the window's position in
// the key sequence when the offset jumps far away.
func (e *Engine[K]) evict() {
	axis := e.cfg.Axis
	vis := e.visibleBounds()
	for len(e.window) > 1 && e.window[0].Frame.Max(axis) <= vis.Min(axis) {
		e.remove(0)
	}
	for len(e.window) > 1 && e.window[len(e.window)-1].Frame.Min(axis) >= vis.Max(axis) {
		e.remove(len(e.window) - 1)
	}
}

// collapseIfContentFits shrinks the content region once both edges are at a
// boundary and everything fits inside the viewport: the window is pinned
// flush to the leading edge and the region kept scrollable by a minimal
// fixed slack, so no recentering work is ever needed again.
func (e *Engine[K]) collapseIfContentFits() {
	if len(e.window) == 0 {
		return
	}
	if _, ok := e.nav.Prev(e.window[0].Key); ok {
		return
	}
	if _, ok := e.nav.Next(e.window[len(e.window)-1].Key); ok {
		return
	}
	axis := e.cfg.Axis
	vpExt := e.viewport.Extent(axis)
	union := e.window[len(e.window)-1].Frame.Max(axis) - e.window[0].Frame.Min(axis)
	if union >= vpExt {
		return
	}

	if min := e.window[0].Frame.Min(axis); min != 0 {
		e.shiftFrames(-min)
	}
	e.host.SetOffset(0)
	ext := vpExt + minScrollSlack
	if e.host.ContentSize().Extent(axis) != ext {
		e.host.SetContentSize(e.viewport.WithExtent(axis, ext))
		e.publish(eventbus.RegionCollapsedEvent{Extent: ext})
	}
	e.collapsed = true
}

// visibleBounds returns the viewport rectangle in content coordinates.
func (e *Engine[K]) visibleBounds() geometry.Rect {
	r := geometry.Rect{Width: e.viewport.Width, Height: e.viewport.Height}
	return r.WithMin(e.cfg.Axis, e.host.Offset())
}

func (e *Engine[K]) materialize(at int, key K, frame geometry.Rect) {
	v := e.factory.CreateView(key)
	e.host.Insert(v, frame)
	entry := Entry[K]{Key: key, View: v, Frame: frame}
	e.window = append(e.window, Entry[K]{})
	copy(e.window[at+1:], e.window[at:])
	e.window[at] = entry
}

func (e *Engine[K]) remove(at int) {
	e.host.Remove(e.window[at].View)
	e.window = append(e.window[:at], e.window[at+1:]...)
}

// shift translates the offset and every entry frame by delta. The shift is
// visually imperceptible: each entry's position relative to the offset is
// unchanged.
func (e *Engine[K]) shift(delta float64) {
	if delta == 0 {
		return
	}
	e.shiftFrames(delta)
	e.host.SetOffset(e.host.Offset() + delta)
	e.publish(eventbus.RecenteredEvent{Delta: delta})
}

func (e *Engine[K]) shiftFrames(delta float64) {
	for i := range e.window {
		e.window[i].Frame = e.window[i].Frame.Translate(e.cfg.Axis, delta)
		e.host.SetFrame(e.window[i].View, e.window[i].Frame)
	}
}

func (e *Engine[K]) clampOffset() {
	max := e.host.ContentSize().Extent(e.cfg.Axis) - e.viewport.Extent(e.cfg.Axis)
	if max < 0 {
		max = 0
	}
	if off := e.host.Offset(); off > max {
		e.host.SetOffset(max)
	} else if off < 0 {
		e.host.SetOffset(0)
	}
}

func (e *Engine[K]) markBoundary(edgeKey K, trailing bool) {
	if trailing {
		if e.trailingBound {
			return
		}
		e.trailingBound = true
	} else {
		if e.leadingBound {
			return
		}
		e.leadingBound = true
	}
	e.publish(eventbus.BoundaryReachedEvent{EdgeKey: edgeKey, Trailing: trailing})
}

func (e *Engine[K]) publishWindowChanged(keys []K) {
	if e.bus == nil {
		return
	}
	anyKeys := make([]any, len(keys))
	for i, k := range keys {
		anyKeys[i] = k
	}
	e.bus.Publish(eventbus.WindowChangedEvent{Keys: anyKeys})
}

func (e *Engine[K]) publish(ev eventbus.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

func keysEqual[K comparable](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package ui

import (
	"math"
	"strings"

	"boundless/internal/geometry"
	"boundless/internal/scroll"
)

// Block is the view shape the terminal host knows how to draw: a fixed
// stack of pre-rendered rows.
type Block interface {
	Lines() []string
}

type termItem struct {
	view  scroll.View
	frame geometry.Rect
}

// termHost implements scroll.Host over a terminal region. One coordinate
// unit is one terminal row (vertical axis) or column (horizontal axis).
type termHost struct {
	viewport geometry.Size
	content  geometry.Size
	offset   float64
	items    []termItem
}

func newTermHost() *termHost {
	return &termHost{}
}

// SetViewport resizes the visible region. The caller is responsible for
// running an engine layout pass afterwards.
func (h *termHost) SetViewport(width, height int) {
	h.viewport = geometry.Size{Width: float64(width), Height: float64(height)}
}

// ScrollBy applies a user scroll gesture, clamped to the valid offset range.
func (h *termHost) ScrollBy(axis geometry.Axis, delta float64) {
	max := h.content.Extent(axis) - h.viewport.Extent(axis)
	if max < 0 {
		max = 0
	}
	h.offset += delta
	if h.offset < 0 {
		h.offset = 0
	}
	if h.offset > max {
		h.offset = max
	}
}

func (h *termHost) ViewportSize() geometry.Size    { return h.viewport }
func (h *termHost) ContentSize() geometry.Size     { return h.content }
func (h *termHost) SetContentSize(s geometry.Size) { h.content = s }
func (h *termHost) Offset() float64                { return h.offset }
func (h *termHost) SetOffset(o float64)            { h.offset = o }

func (h *termHost) Insert(v scroll.View, frame geometry.Rect) {
	h.items = append(h.items, termItem{view: v, frame: frame})
}

func (h *termHost) SetFrame(v scroll.View, frame geometry.Rect) {
	for i := range h.items {
		if h.items[i].view == v {
			h.items[i].frame = frame
			return
		}
	}
}

func (h *termHost) Remove(v scroll.View) {
	for i := range h.items {
		if h.items[i].view == v {
			h.items = append(h.items[:i], h.items[i+1:]...)
			return
		}
	}
}

// Render draws every inserted view at its frame position relative to the
// current offset, clipped to the viewport. Vertically the frame coordinate
// selects the starting row; horizontally it selects the starting column and
// each block's rows are composited side by side.
func (h *termHost) Render(axis geometry.Axis) string {
	rows := int(h.viewport.Height)
	if rows <= 0 {
		return ""
	}
	if axis == geometry.Horizontal {
		return h.renderAcross(rows, int(h.viewport.Width))
	}
	out := make([]string, rows)
	for _, it := range h.items {
		block, ok := it.view.(Block)
		if !ok {
			continue
		}
		start := int(math.Round(it.frame.Min(axis) - h.offset))
		for i, line := range block.Lines() {
			row := start + i
			if row >= 0 && row < rows {
				out[row] = line
			}
		}
	}
	return strings.Join(out, "\n")
}

// renderAcross paints blocks into column ranges of a row grid for the
// horizontal axis.
func (h *termHost) renderAcross(rows, cols int) string {
	if cols <= 0 {
		return ""
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	for _, it := range h.items {
		block, ok := it.view.(Block)
		if !ok {
			continue
		}
		start := int(math.Round(it.frame.Min(geometry.Horizontal) - h.offset))
		for row, line := range block.Lines() {
			if row >= rows {
				break
			}
			for j, r := range []rune(line) {
				col := start + j
				if col >= 0 && col < cols {
					grid[row][col] = r
				}
			}
		}
	}
	out := make([]string, rows)
	for i := range grid {
		out[i] = strings.TrimRight(string(grid[i]), " ")
	}
	return strings.Join(out, "\n")
}

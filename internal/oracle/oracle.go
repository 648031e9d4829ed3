package oracle

// Oracle advances keys through a conceptually unbounded bidirectional
// sequence. Next and Prev return false when there is no further content in
// that direction; that is a steady state, not an error. Implementations must
// be pure functions of their argument: the engines may ask about the same
// key any number of times and require consistent answers.
type Oracle[K any] interface {
	Next(key K) (K, bool)
	Prev(key K) (K, bool)
}

// Funcs adapts a pair of closures to the Oracle interface.
type Funcs[K any] struct {
	NextFunc func(K) (K, bool)
	PrevFunc func(K) (K, bool)
}

func (f Funcs[K]) Next(key K) (K, bool) { return f.NextFunc(key) }
func (f Funcs[K]) Prev(key K) (K, bool) { return f.PrevFunc(key) }

// Direction indicates which way a page transition moves.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DecideFunc is supplied by the application to choose whether a programmatic
// key change animates and in which direction it moves.
type DecideFunc[K any] func(oldKey, newKey K) (animate bool, dir Direction)

// Ints returns an oracle over the closed integer range [lo, hi].
func Ints(lo, hi int) Oracle[int] {
	return Funcs[int]{
		NextFunc: func(k int) (int, bool) {
			if k >= hi {
				return 0, false
			}
			return k + 1, true
		},
		PrevFunc: func(k int) (int, bool) {
			if k <= lo {
				return 0, false
			}
			return k - 1, true
		},
	}
}

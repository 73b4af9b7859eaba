// Package chord provides the key and chord algebra for the six-key GKOS
// keyboard.
//
// A Key is one of the six physical keys, represented as a single bit. A
// Chord is a non-empty set of keys, represented as the union of their bits
// (values 1..63). The package centralizes all bit-set operations so that
// renderers never do ad hoc integer arithmetic: decomposition, canonical
// labeling, hand membership, and row adjacency all live here.
package chord

import "math/bits"

// Key identifies one of the six physical keys as a single-bit value.
type Key uint8

// The six keys. A, B, C form the left-hand column (top to bottom);
// D, E, F form the right-hand column.
const (
	A Key = 1 << iota
	B
	C
	D
	E
	F
)

// Keys lists all six keys in canonical order. Chord decomposition and
// labeling follow this order, never subset-insertion order.
var Keys = [6]Key{A, B, C, D, E, F}

var keyNames = map[Key]string{
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F",
}

// Hand identifies one of the two three-key groups.
type Hand int

// The two hands.
const (
	Left Hand = iota
	Right
)

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	if h == Left {
		return Right
	}
	return Left
}

// Keys returns the three keys belonging to the hand, in canonical order.
func (h Hand) Keys() []Key {
	if h == Left {
		return []Key{A, B, C}
	}
	return []Key{D, E, F}
}

// Name returns the key's single-letter name.
func (k Key) Name() string { return keyNames[k] }

// Hand returns which hand the key belongs to.
func (k Key) Hand() Hand {
	if k == A || k == B || k == C {
		return Left
	}
	return Right
}

// Col returns the key's column in the physical grid: 0 for the left hand,
// 1 for the right.
func (k Key) Col() int {
	if k.Hand() == Left {
		return 0
	}
	return 1
}

// Row returns the key's row in the physical grid (0 = top, 2 = bottom).
func (k Key) Row() int {
	switch k {
	case A, D:
		return 0
	case B, E:
		return 1
	default:
		return 2
	}
}

// Chord is a non-empty subset of the six keys, stored as a bit union.
// Valid values are 1..63.
type Chord uint8

// Full is the chord with all six keys pressed.
const Full = Chord(63)

// Of builds a chord from the union of the given keys.
func Of(keys ...Key) Chord {
	var c Chord
	for _, k := range keys {
		c |= Chord(k)
	}
	return c
}

// Valid reports whether c is a non-empty subset of the six keys.
func (c Chord) Valid() bool { return c >= 1 && c <= 63 }

// Has reports whether the chord contains the key.
func (c Chord) Has(k Key) bool { return c&Chord(k) != 0 }

// With returns the chord extended by the key.
func (c Chord) With(k Key) Chord { return c | Chord(k) }

// Count returns the number of pressed keys.
func (c Chord) Count() int { return bits.OnesCount8(uint8(c)) }

// Keys decomposes the chord into its member keys in canonical order.
func (c Chord) Keys() []Key {
	keys := make([]Key, 0, c.Count())
	for _, k := range Keys {
		if c.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Label returns the canonical human-readable name of the chord, the
// member key names concatenated in canonical order ("AB", "DEF", ...).
// Labels are unique across all 63 chords.
func (c Chord) Label() string {
	var s string
	for _, k := range Keys {
		if c.Has(k) {
			s += k.Name()
		}
	}
	return s
}

// OnHand reports whether every key of the chord belongs to the hand.
func (c Chord) OnHand(h Hand) bool {
	for _, k := range c.Keys() {
		if k.Hand() != h {
			return false
		}
	}
	return true
}

// RowSpan returns the lowest and highest row occupied by the chord's keys.
func (c Chord) RowSpan() (min, max int) {
	min, max = 2, 0
	for _, k := range c.Keys() {
		if r := k.Row(); r < min {
			min = r
		}
		if r := k.Row(); r > max {
			max = r
		}
	}
	return min, max
}

// NonAdjacent reports whether the chord's keys span non-consecutive rows
// (e.g. the AC and DF pairs, which skip the middle row). Same-hand pairs
// that are vertically adjacent return false.
func (c Chord) NonAdjacent() bool {
	min, max := c.RowSpan()
	return max-min > 1
}

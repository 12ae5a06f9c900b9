// Package wator implements the Wa-Tor predator-prey automaton on a toroidal grid.
// This package is UI-agnostic and deterministic for a given *rand.Rand.
package wator

import "fmt"

// Kind identifies what occupies a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFish
	KindShark
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFish:
		return "fish"
	case KindShark:
		return "shark"
	default:
		return "unknown"
	}
}

// Cell is a single grid cell.
// Counter is the age of a fish or the energy of a shark; it is zero when empty.
type Cell struct {
	Kind    Kind
	Counter int
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Fish returns a fish with the given age counter.
func Fish(age int) Cell {
	return Cell{Kind: KindFish, Counter: age}
}

// Shark returns a shark with the given energy.
func Shark(energy int) Cell {
	return Cell{Kind: KindShark, Counter: energy}
}

// IsEmpty reports whether the cell holds no creature.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsFish reports whether the cell holds a fish.
func (c Cell) IsFish() bool {
	return c.Kind == KindFish
}

// IsShark reports whether the cell holds a shark.
func (c Cell) IsShark() bool {
	return c.Kind == KindShark
}

// Age returns the age counter of a fish.
func (c Cell) Age() int {
	return c.Counter
}

// Energy returns the energy of a shark.
func (c Cell) Energy() int {
	return c.Counter
}

// String returns a short representation like "Fish(3)".
func (c Cell) String() string {
	switch c.Kind {
	case KindFish:
		return fmt.Sprintf("Fish(%d)", c.Counter)
	case KindShark:
		return fmt.Sprintf("Shark(%d)", c.Counter)
	default:
		return "Empty"
	}
}

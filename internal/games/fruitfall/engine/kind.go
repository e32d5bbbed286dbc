// Package engine implements the fruitfall grid simulation: the falling
// column, match detection, gravity, special effects, delayed hazards and the
// score/level feedback loop.
// This package is UI-agnostic and deterministic for a given seed.
package engine

import "fmt"

// Kind is the content of a single grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota

	// Fruits, in palette order.
	KindStrawberry
	KindBanana
	KindGrape
	KindPineapple
	KindApple
	KindCherry
	KindPeach

	// Specials.
	KindBomb
	KindGun
	KindArrow
	KindSkull
	KindPoop
	KindClown
	KindFire
	KindFreeze

	// Transient markers.
	KindExploding
	KindBigExploding
	KindSoiled
	KindFrozen

	kindCount
)

var kindNames = [kindCount]string{
	KindEmpty:        "empty",
	KindStrawberry:   "strawberry",
	KindBanana:       "banana",
	KindGrape:        "grape",
	KindPineapple:    "pineapple",
	KindApple:        "apple",
	KindCherry:       "cherry",
	KindPeach:        "peach",
	KindBomb:         "bomb",
	KindGun:          "gun",
	KindArrow:        "arrow",
	KindSkull:        "skull",
	KindPoop:         "poop",
	KindClown:        "clown",
	KindFire:         "fire",
	KindFreeze:       "freeze",
	KindExploding:    "exploding",
	KindBigExploding: "big_exploding",
	KindSoiled:       "soiled",
	KindFrozen:       "frozen",
}

// String returns the lowercase name used in configuration files.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a configuration name back into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindEmpty, fmt.Errorf("engine: unknown token kind %q", name)
}

// IsFruit reports whether k is a plain, matchable fruit.
func (k Kind) IsFruit() bool {
	return k >= KindStrawberry && k <= KindPeach
}

// IsSpecial reports whether k is a special token.
func (k Kind) IsSpecial() bool {
	return k >= KindBomb && k <= KindFreeze
}

// IsMarker reports whether k is a transient marker.
func (k Kind) IsMarker() bool {
	return k >= KindExploding && k <= KindFrozen
}

// IsHazard reports whether k belongs to a delayed hazard, either as the
// anchor token or as the overlay it spreads.
func (k Kind) IsHazard() bool {
	switch k {
	case KindSkull, KindPoop, KindFreeze, KindSoiled, KindFrozen:
		return true
	}
	return false
}

// IsInert reports whether effects that only touch "plain" neighbors must
// leave k alone.
func (k Kind) IsInert() bool {
	return k.IsSpecial() || k.IsMarker()
}

// Fruits returns every fruit kind in palette order.
func Fruits() []Kind {
	fruits := make([]Kind, 0, KindPeach-KindStrawberry+1)
	for k := KindStrawberry; k <= KindPeach; k++ {
		fruits = append(fruits, k)
	}
	return fruits
}

// Specials returns every special kind.
func Specials() []Kind {
	specials := make([]Kind, 0, KindFreeze-KindBomb+1)
	for k := KindBomb; k <= KindFreeze; k++ {
		specials = append(specials, k)
	}
	return specials
}

// Package holding resolves which hand(s) grip an item and the strength a
// character brings to bear with that grip.
package holding

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
)

// TwoHandedBonus is the strength gained by gripping a one-hand-capable item with both hands.
const TwoHandedBonus = 2

// OffhandPenalty is the strength lost in the off hand.
const OffhandPenalty = 2

// ErrNoHandLeftForShield is returned when a second item needs a hand while
// the first item already occupies both.
var ErrNoHandLeftForShield = errors.New("no hand left for a second item")

// Holding identifies which hand(s) grip an item.
// The zero value is intentionally invalid.
type Holding int

const (
	Unknown Holding = iota
	MainHand
	OffHand
	TwoHands
)

// String returns the canonical name of the holding.
func (h Holding) String() string {
	switch h {
	case MainHand:
		return "main_hand"
	case OffHand:
		return "off_hand"
	case TwoHands:
		return "two_hands"
	default:
		return "unknown"
	}
}

// IsTwoHanded reports whether h occupies both hands.
func (h Holding) IsTwoHanded() bool { return h == TwoHands }

// Parse converts a canonical name to a Holding.
//
// Postcondition: returns a valid Holding or a non-nil error.
func Parse(s string) (Holding, error) {
	switch s {
	case "main_hand":
		return MainHand, nil
	case "off_hand":
		return OffHand, nil
	case "two_hands":
		return TwoHands, nil
	default:
		return Unknown, fmt.Errorf("holding: unknown holding %q (want main_hand, off_hand or two_hands)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so holdings read directly from YAML.
func (h *Holding) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h Holding) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Strengths supplies main-hand and off-hand strength.
type Strengths interface {
	Strength() int
	OffhandStrength() int
}

// StrengthFor returns the strength the bearer brings to item held with h.
//
// Two hands add TwoHandedBonus unless the item is two-handed only.
//
// Precondition: h is MainHand, OffHand or TwoHands; s is non-nil.
// A different holding is a programming fault and panics.
func StrengthFor(item equipment.Item, h Holding, s Strengths) int {
	switch h {
	case TwoHands:
		if item.IsTwoHandedOnly() {
			return s.Strength()
		}
		return s.Strength() + TwoHandedBonus
	case MainHand:
		return s.Strength()
	case OffHand:
		return s.OffhandStrength()
	default:
		panic(fmt.Sprintf("holding.StrengthFor: precondition violated: unknown holding %d", int(h)))
	}
}

// Complement returns the holding of a second item (usually a shield) given
// the holding of the first.
//
// Postcondition: MainHand -> OffHand, OffHand -> MainHand,
// TwoHands -> ErrNoHandLeftForShield.
// Precondition: h is a valid Holding; anything else panics.
func Complement(h Holding) (Holding, error) {
	switch h {
	case MainHand:
		return OffHand, nil
	case OffHand:
		return MainHand, nil
	case TwoHands:
		return Unknown, ErrNoHandLeftForShield
	default:
		panic(fmt.Sprintf("holding.Complement: precondition violated: unknown holding %d", int(h)))
	}
}

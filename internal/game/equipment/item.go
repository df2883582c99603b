// Package equipment defines weapons, shields and protective gear as
// comparable values carrying static capability bits, together with the
// YAML definitions they are loaded from.
package equipment

// Code identifies an equipment definition.
type Code string

// Capability is a bit set of static properties of an equipment item.
type Capability uint16

const (
	// CapMelee marks items used in hand-to-hand combat.
	CapMelee Capability = 1 << iota
	// CapThrowing marks items that are thrown at a target.
	CapThrowing
	// CapShooting marks items that shoot projectiles (bows, crossbows).
	CapShooting
	// CapWeapon marks true weapons.
	CapWeapon
	// CapShield marks shields.
	CapShield
	// CapArmor marks body armor.
	CapArmor
	// CapHelm marks helms.
	CapHelm
	// CapOneHand marks items that can be held by one hand.
	CapOneHand
	// CapTwoHands marks items that can be held by two hands.
	CapTwoHands
	// CapIndirectFire marks ranged weapons usable for indirect fire.
	CapIndirectFire
)

// DamageType classifies the wounds a weapon deals.
type DamageType string

const (
	DamageCut    DamageType = "cut"
	DamagePierce DamageType = "pierce"
	DamageCrush  DamageType = "crush"
)

// Item is an immutable equipment value. The zero Item is the empty hand:
// no weapon, no shield, no protective.
type Item struct {
	Code   Code
	Caps   Capability
	Damage DamageType
}

// None is the empty hand / missing item.
var None = Item{}

// Has reports whether every bit of c is set on the item.
func (i Item) Has(c Capability) bool { return i.Caps&c == c }

// IsEmpty reports whether the item is the empty hand.
func (i Item) IsEmpty() bool { return i == None }

// IsMelee reports whether the item is used in hand-to-hand combat.
// The empty hand fights in melee.
func (i Item) IsMelee() bool { return i.IsEmpty() || i.Has(CapMelee) }

// IsThrowing reports whether the item is a thrown weapon.
func (i Item) IsThrowing() bool { return i.Has(CapThrowing) }

// IsShooting reports whether the item shoots projectiles.
func (i Item) IsShooting() bool { return i.Has(CapShooting) }

// IsRanged reports whether the item is thrown or shot.
func (i Item) IsRanged() bool { return i.IsThrowing() || i.IsShooting() }

// IsWeapon reports whether the item is a true weapon.
func (i Item) IsWeapon() bool { return i.Has(CapWeapon) }

// IsShield reports whether the item is a shield.
func (i Item) IsShield() bool { return i.Has(CapShield) }

// IsProtective reports whether the item is worn armor or a helm.
func (i Item) IsProtective() bool { return i.Has(CapArmor) || i.Has(CapHelm) }

// CanHoldByOneHand reports whether the item can be held by one hand.
// The empty hand always can.
func (i Item) CanHoldByOneHand() bool { return i.IsEmpty() || i.Has(CapOneHand) }

// CanHoldByTwoHands reports whether the item can be held by two hands.
func (i Item) CanHoldByTwoHands() bool { return i.Has(CapTwoHands) }

// IsTwoHandedOnly reports whether the item must be held by two hands.
func (i Item) IsTwoHandedOnly() bool { return i.Has(CapTwoHands) && !i.Has(CapOneHand) }

// String returns the item code, or "bare hand" for the empty hand.
func (i Item) String() string {
	if i.IsEmpty() {
		return "bare hand"
	}
	return string(i.Code)
}

// Package wargame holds the weapon and unit types used in combat resolution
package wargame

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// DamageKind is either a fixed value or a dice roll. It is used both for
// weapon damage and for the number of shots a weapon category grants.
//
// The set is closed: Absolute and DieDamage are the only implementations.
// Values compare structurally with ==.
type DamageKind interface {
	// Resolve returns the value for one use of the weapon
	Resolve(roller dice.Roller) (uint32, error)
	Min() uint32
	Max() uint32
	Average() float64
	String() string

	isDamageKind()
}

// Absolute is a fixed damage or shot count
type Absolute struct {
	Value uint16
}

// Resolve returns the fixed value without rolling
func (a Absolute) Resolve(_ dice.Roller) (uint32, error) {
	return uint32(a.Value), nil
}

// Min returns the fixed value
func (a Absolute) Min() uint32 { return uint32(a.Value) }

// Max returns the fixed value
func (a Absolute) Max() uint32 { return uint32(a.Value) }

// Average returns the fixed value
func (a Absolute) Average() float64 { return float64(a.Value) }

func (a Absolute) String() string {
	return strconv.FormatUint(uint64(a.Value), 10)
}

func (Absolute) isDamageKind() {}

// DieDamage is damage rolled from dice notation. Build it with NewDieDamage.
type DieDamage struct {
	roll dice.Dice
}

// NewDieDamage parses notation into rolled damage. Invalid notation fails
// here; no default die is substituted.
func NewDieDamage(notation string) (DieDamage, error) {
	d, err := dice.Parse(notation)
	if err != nil {
		return DieDamage{}, errors.Wrapf(err, "invalid damage dice %q", notation)
	}
	return DieDamage{roll: *d}, nil
}

// MustDieDamage is NewDieDamage for package level profiles. It panics on error.
func MustDieDamage(notation string) DieDamage {
	dd, err := NewDieDamage(notation)
	if err != nil {
		panic(err)
	}
	return dd
}

// Dice returns the dice rolled for this damage
func (d DieDamage) Dice() dice.Dice {
	return d.roll
}

// Resolve rolls every die and returns the sum. A single die gives its face
// value; "2d6" damage is the total of both dice.
func (d DieDamage) Resolve(roller dice.Roller) (uint32, error) {
	return d.roll.Sum(roller)
}

// Min returns the lowest possible total
func (d DieDamage) Min() uint32 { return d.roll.Min() }

// Max returns the highest possible total
func (d DieDamage) Max() uint32 { return d.roll.Max() }

// Average returns the expected total
func (d DieDamage) Average() float64 { return d.roll.Average() }

func (d DieDamage) String() string {
	return d.roll.Notation()
}

func (DieDamage) isDamageKind() {}

// ParseDamageKind reads a profile value: plain digits give Absolute, anything
// else must be dice notation.
func ParseDamageKind(text string) (DamageKind, error) {
	text = strings.TrimSpace(text)
	if text != "" && strings.Trim(text, "0123456789") == "" {
		v, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return nil, errors.OutOfRangef("fixed value %q must be at most %d", text, math.MaxUint16)
		}
		return Absolute{Value: uint16(v)}, nil
	}

	dd, err := NewDieDamage(text)
	if err != nil {
		return nil, err
	}
	return dd, nil
}

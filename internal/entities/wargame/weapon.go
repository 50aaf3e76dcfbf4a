package wargame

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// Weapon is a weapon stat line. A weapon owns its category and damage
// values; nothing is shared between weapons.
type Weapon struct {
	Name     string
	Category WeaponCategory
	Strength uint8
	// ArmourPenetration is stored as a magnitude: AP -2 is 2
	ArmourPenetration uint8
	Damage            DamageKind
}

// Validate checks that the weapon can be resolved
func (w Weapon) Validate() error {
	vb := errors.NewValidationBuilder()

	if !w.Category.Kind.Valid() {
		vb.InvalidField("category", fmt.Sprintf("unknown kind %q", w.Category.Kind))
	}
	if w.Category.Attacks == nil {
		vb.RequiredField("shots")
	}
	if w.Damage == nil {
		vb.RequiredField("damage")
	}

	return vb.Build()
}

// String returns a one line profile, e.g. "Lasgun (Rapid Fire 1, S3, AP0, D1)"
func (w Weapon) String() string {
	return fmt.Sprintf("%s (%s, S%d, AP%d, D%s)",
		w.Name, w.Category, w.Strength, w.ArmourPenetration, w.Damage)
}

// WeaponSummary describes the spread of shots and damage of a weapon
type WeaponSummary struct {
	MinShots       uint32  `json:"min_shots"`
	MaxShots       uint32  `json:"max_shots"`
	AverageShots   float64 `json:"average_shots"`
	MinDamage      uint32  `json:"min_damage"`
	MaxDamage      uint32  `json:"max_damage"`
	AverageDamage  float64 `json:"average_damage"`
	MaxTotalDamage uint64  `json:"max_total_damage"`
}

// Summary computes shot and damage bounds without rolling. The weapon must
// pass Validate.
func (w Weapon) Summary() WeaponSummary {
	shots := w.Category.Attacks
	return WeaponSummary{
		MinShots:       shots.Min(),
		MaxShots:       shots.Max(),
		AverageShots:   round2(shots.Average()),
		MinDamage:      w.Damage.Min(),
		MaxDamage:      w.Damage.Max(),
		AverageDamage:  round2(w.Damage.Average()),
		MaxTotalDamage: uint64(shots.Max()) * uint64(w.Damage.Max()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

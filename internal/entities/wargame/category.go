package wargame

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// CategoryKind is the broad class of a weapon
type CategoryKind string

// Weapon categories
const (
	CategoryAssault   CategoryKind = "CATEGORY_ASSAULT"
	CategoryHeavy     CategoryKind = "CATEGORY_HEAVY"
	CategoryRapidFire CategoryKind = "CATEGORY_RAPID_FIRE"
	CategoryGrenade   CategoryKind = "CATEGORY_GRENADE"
	CategoryPistol    CategoryKind = "CATEGORY_PISTOL"
	CategoryBlast     CategoryKind = "CATEGORY_BLAST"
)

var categoryNames = map[CategoryKind]string{
	CategoryAssault:   "Assault",
	CategoryHeavy:     "Heavy",
	CategoryRapidFire: "Rapid Fire",
	CategoryGrenade:   "Grenade",
	CategoryPistol:    "Pistol",
	CategoryBlast:     "Blast",
}

// CategoryKinds lists every category in codex order
func CategoryKinds() []CategoryKind {
	return []CategoryKind{
		CategoryAssault,
		CategoryHeavy,
		CategoryRapidFire,
		CategoryGrenade,
		CategoryPistol,
		CategoryBlast,
	}
}

// Valid reports whether k is one of the known categories
func (k CategoryKind) Valid() bool {
	_, ok := categoryNames[k]
	return ok
}

// DisplayName returns the codex spelling, e.g. "Rapid Fire"
func (k CategoryKind) DisplayName() string {
	if name, ok := categoryNames[k]; ok {
		return name
	}
	return string(k)
}

// ParseCategoryKind accepts the constant ("CATEGORY_RAPID_FIRE") or the codex
// name in any case with spaces, dashes or underscores ("rapid fire",
// "Rapid-Fire").
func ParseCategoryKind(s string) (CategoryKind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	normalized = strings.TrimPrefix(normalized, "CATEGORY_")

	kind := CategoryKind("CATEGORY_" + normalized)
	if !kind.Valid() {
		return "", errors.InvalidArgumentf("unknown weapon category: %q", s)
	}
	return kind, nil
}

// WeaponCategory pairs a category with the number of to-hit rolls it grants,
// e.g. Rapid Fire 1 or Grenade 1d6.
type WeaponCategory struct {
	Kind    CategoryKind
	Attacks DamageKind
}

// Assault builds an Assault category
func Assault(attacks DamageKind) WeaponCategory {
	return WeaponCategory{Kind: CategoryAssault, Attacks: attacks}
}

// Heavy builds a Heavy category
func Heavy(attacks DamageKind) WeaponCategory {
	return WeaponCategory{Kind: CategoryHeavy, Attacks: attacks}
}

// RapidFire builds a Rapid Fire category
func RapidFire(attacks DamageKind) WeaponCategory {
	return WeaponCategory{Kind: CategoryRapidFire, Attacks: attacks}
}

// Grenade builds a Grenade category
func Grenade(attacks DamageKind) WeaponCategory {
	return WeaponCategory{Kind: CategoryGrenade, Attacks: attacks}
}

// Pistol builds a Pistol category
func Pistol(attacks DamageKind) WeaponCategory {
	return WeaponCategory{Kind: CategoryPistol, Attacks: attacks}
}

// Blast builds a Blast category
func Blast(attacks DamageKind) WeaponCategory {
	return WeaponCategory{Kind: CategoryBlast, Attacks: attacks}
}

// Shots resolves how many to-hit rolls the weapon makes
func (c WeaponCategory) Shots(roller dice.Roller) (uint32, error) {
	if c.Attacks == nil {
		return 0, errors.FailedPrecondition("weapon category has no attacks value")
	}

	shots, err := c.Attacks.Resolve(roller)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve %s shots", c.Kind.DisplayName())
	}
	return shots, nil
}

// String returns the codex form, e.g. "Rapid Fire 1"
func (c WeaponCategory) String() string {
	if c.Attacks == nil {
		return c.Kind.DisplayName()
	}
	return fmt.Sprintf("%s %s", c.Kind.DisplayName(), c.Attacks)
}

package wargame

import (
	"math"
	"sort"
	"strings"

	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// WeaponProfile is a weapon as written on a datasheet, e.g.
// {Name: "Frag grenade", Category: "Grenade", Shots: "1d6", Strength: 3, Damage: "1"}
type WeaponProfile struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Shots             string `json:"shots"`
	Strength          int    `json:"strength"`
	ArmourPenetration int    `json:"armour_penetration"`
	Damage            string `json:"damage"`
}

// ParseWeaponProfile converts a datasheet profile into a Weapon. Every field
// problem is reported at once as an InvalidArgument error.
func ParseWeaponProfile(p WeaponProfile) (Weapon, error) {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", p.Name, vb)
	errors.ValidateRange("strength", p.Strength, 1, math.MaxUint8, vb)
	errors.ValidateRange("armour_penetration", p.ArmourPenetration, 0, math.MaxUint8, vb)

	kind, err := ParseCategoryKind(p.Category)
	if err != nil {
		vb.InvalidField("category", errors.GetMessage(err))
	}

	shots, err := ParseDamageKind(p.Shots)
	if err != nil {
		vb.InvalidField("shots", errors.GetMessage(err))
	}

	damage, err := ParseDamageKind(p.Damage)
	if err != nil {
		vb.InvalidField("damage", errors.GetMessage(err))
	}

	if err := vb.Build(); err != nil {
		return Weapon{}, err
	}

	return Weapon{
		Name:              strings.TrimSpace(p.Name),
		Category:          WeaponCategory{Kind: kind, Attacks: shots},
		Strength:          uint8(p.Strength),
		ArmourPenetration: uint8(p.ArmourPenetration),
		Damage:            damage,
	}, nil
}

// Profile converts a Weapon back into its datasheet form
func (w Weapon) Profile() WeaponProfile {
	p := WeaponProfile{
		Name:              w.Name,
		Category:          w.Category.Kind.DisplayName(),
		Strength:          int(w.Strength),
		ArmourPenetration: int(w.ArmourPenetration),
	}
	if w.Category.Attacks != nil {
		p.Shots = w.Category.Attacks.String()
	}
	if w.Damage != nil {
		p.Damage = w.Damage.String()
	}
	return p
}

// Armoury is a small set of well known profiles keyed by lower case name
var Armoury = map[string]WeaponProfile{
	"lasgun":        {Name: "Lasgun", Category: "Rapid Fire", Shots: "1", Strength: 3, Damage: "1"},
	"boltgun":       {Name: "Boltgun", Category: "Rapid Fire", Shots: "1", Strength: 4, Damage: "1"},
	"bolt pistol":   {Name: "Bolt pistol", Category: "Pistol", Shots: "1", Strength: 4, Damage: "1"},
	"frag grenade":  {Name: "Frag grenade", Category: "Grenade", Shots: "1d6", Strength: 3, Damage: "1"},
	"heavy bolter":  {Name: "Heavy bolter", Category: "Heavy", Shots: "3", Strength: 5, ArmourPenetration: 1, Damage: "2"},
	"lascannon":     {Name: "Lascannon", Category: "Heavy", Shots: "1", Strength: 9, ArmourPenetration: 3, Damage: "1d6"},
	"storm bolter":  {Name: "Storm bolter", Category: "Rapid Fire", Shots: "2", Strength: 4, Damage: "1"},
	"flamer":        {Name: "Flamer", Category: "Assault", Shots: "1d6", Strength: 4, Damage: "1"},
	"battle cannon": {Name: "Battle cannon", Category: "Blast", Shots: "2d6", Strength: 8, ArmourPenetration: 2, Damage: "1d3"},
	"plasma pistol": {Name: "Plasma pistol", Category: "Pistol", Shots: "1", Strength: 7, ArmourPenetration: 3, Damage: "1"},
}

// LookupProfile finds a profile in the Armoury, ignoring case
func LookupProfile(name string) (WeaponProfile, error) {
	p, ok := Armoury[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return WeaponProfile{}, errors.NotFoundf("weapon %q is not in the armoury", name)
	}
	return p, nil
}

// ArmouryNames returns the Armoury keys in sorted order
func ArmouryNames() []string {
	names := make([]string, 0, len(Armoury))
	for name := range Armoury {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package combat

import (
	"github.com/KirkDiggler/wargame-api/internal/entities/wargame"
	dicesession "github.com/KirkDiggler/wargame-api/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// ResolveWeaponInput defines the request for resolving one weapon's attacks.
// Exactly one of WeaponName (an Armoury entry) or Profile must be set.
type ResolveWeaponInput struct {
	EntityID   string
	WeaponName string
	Profile    *wargame.WeaponProfile
}

// ResolveWeaponOutput defines the response for resolving a weapon
type ResolveWeaponOutput struct {
	Weapon  wargame.Weapon
	Summary wargame.WeaponSummary

	Shots uint32

	// Damage of each shot in firing order
	Damage      []uint32
	TotalDamage uint64

	// Rolls recorded for this resolution: the shots roll first, then one
	// damage roll per shot
	Rolls   []dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

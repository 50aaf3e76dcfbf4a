// Package combat resolves dice rolls and weapon attacks and keeps their history
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/wargame-api/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/entities/wargame"
	"github.com/KirkDiggler/wargame-api/internal/errors"
	"github.com/KirkDiggler/wargame-api/internal/pkg/clock"
	"github.com/KirkDiggler/wargame-api/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/wargame-api/internal/repositories/dice_session"
)

const (
	// Context that weapon resolution rolls are recorded under
	ContextWeaponResolution = "weapon_resolution"

	// Default TTL for dice sessions
	DefaultSessionTTL = 15 * time.Minute

	// MaxResolvedShots bounds the damage rolls a single resolution records
	MaxResolvedShots = 1000

	// MaxResolvedDice bounds the individual dice a single resolution rolls,
	// shots and damage together
	MaxResolvedDice = 10000

	PurposeShots  = "shots"
	PurposeDamage = "damage"
)

// Service defines the interface for combat operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	ResolveWeapon(ctx context.Context, input *ResolveWeaponInput) (*ResolveWeaponOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator

	// Roller is the random source; nil uses the toolkit default roller
	Roller dice.Roller

	// Clock stamps recorded rolls; nil uses the system clock
	Clock clock.Clock

	// SessionTTL applies to new sessions; zero means DefaultSessionTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	clock           clock.Clock
	sessionTTL      time.Duration
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          cfg.Roller,
		clock:           clk,
		sessionTTL:      ttl,
	}, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	d, err := dice.Parse(input.Notation)
	if err != nil {
		return nil, err
	}

	results, err := d.Roll(o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    d.Notation(),
		Results:     results,
		Total:       dice.Total(results),
		Description: input.Description,
		RolledAt:    o.clock.Now(),
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    []dicesession.DiceRoll{roll},
		TTL:      o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record dice roll")
	}

	slog.Info("Dice rolled successfully",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    &roll,
		Session: appendOutput.Session,
	}, nil
}

// ResolveWeapon rolls a weapon's shots and then the damage of every shot.
// All rolls are recorded together in the weapon_resolution context.
func (o *orchestrator) ResolveWeapon(ctx context.Context, input *ResolveWeaponInput) (*ResolveWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	weapon, err := o.loadWeapon(input)
	if err != nil {
		return nil, err
	}

	shotsDice := diceCount(weapon.Category.Attacks)
	if shotsDice > MaxResolvedDice {
		return nil, errors.OutOfRangef("%s rolls %d dice for shots, at most %d can be resolved",
			weapon.Name, shotsDice, MaxResolvedDice).WithMeta("weapon", weapon.Name)
	}

	shotsRoll, shots, err := o.rollKind(weapon.Category.Attacks, PurposeShots,
		fmt.Sprintf("%s shots (%s)", weapon.Name, weapon.Category))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve shots for %s", weapon.Name)
	}
	if shots > MaxResolvedShots {
		return nil, errors.OutOfRangef("%s fired %d shots, at most %d can be resolved",
			weapon.Name, shots, MaxResolvedShots).WithMeta("weapon", weapon.Name)
	}
	if totalDice := shotsDice + uint64(shots)*diceCount(weapon.Damage); totalDice > MaxResolvedDice {
		return nil, errors.OutOfRangef("%s needs %d dice for %d shots, at most %d can be resolved",
			weapon.Name, totalDice, shots, MaxResolvedDice).WithMeta("weapon", weapon.Name)
	}

	rolls := make([]dicesession.DiceRoll, 0, shots+1)
	rolls = append(rolls, shotsRoll)

	damage := make([]uint32, 0, shots)
	var totalDamage uint64
	for i := uint32(1); i <= shots; i++ {
		damageRoll, dealt, err := o.rollKind(weapon.Damage, PurposeDamage,
			fmt.Sprintf("%s shot %d damage", weapon.Name, i))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve damage for %s shot %d", weapon.Name, i)
		}
		rolls = append(rolls, damageRoll)
		damage = append(damage, dealt)
		totalDamage += uint64(dealt)
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  ContextWeaponResolution,
		Rolls:    rolls,
		TTL:      o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record weapon resolution")
	}

	slog.Info("Weapon resolved",
		"entity_id", input.EntityID,
		"weapon", weapon.Name,
		"shots", shots,
		"total_damage", totalDamage,
	)

	return &ResolveWeaponOutput{
		Weapon:      weapon,
		Summary:     weapon.Summary(),
		Shots:       shots,
		Damage:      damage,
		TotalDamage: totalDamage,
		Rolls:       rolls,
		Session:     appendOutput.Session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

func (o *orchestrator) loadWeapon(input *ResolveWeaponInput) (wargame.Weapon, error) {
	var profile wargame.WeaponProfile
	switch {
	case input.WeaponName != "" && input.Profile != nil:
		return wargame.Weapon{}, errors.InvalidArgument("provide either a weapon name or a profile, not both")
	case input.WeaponName != "":
		p, err := wargame.LookupProfile(input.WeaponName)
		if err != nil {
			return wargame.Weapon{}, err
		}
		profile = p
	case input.Profile != nil:
		profile = *input.Profile
	default:
		return wargame.Weapon{}, errors.InvalidArgument("weapon name or profile is required")
	}

	return wargame.ParseWeaponProfile(profile)
}

// diceCount is the number of dice one resolution of kind rolls
func diceCount(kind wargame.DamageKind) uint64 {
	if dd, ok := kind.(wargame.DieDamage); ok {
		d := dd.Dice()
		return uint64(d.Count())
	}
	return 0
}

// rollKind resolves a shots or damage value and builds the roll record for it.
// Fixed values are recorded with their number as notation and no results.
func (o *orchestrator) rollKind(kind wargame.DamageKind, purpose, description string) (dicesession.DiceRoll, uint32, error) {
	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Purpose:     purpose,
		Description: description,
		RolledAt:    o.clock.Now(),
	}

	switch k := kind.(type) {
	case wargame.Absolute:
		roll.Notation = k.String()
		roll.Results = []uint16{}
		roll.Total = uint32(k.Value)
	case wargame.DieDamage:
		d := k.Dice()
		results, err := d.Roll(o.roller)
		if err != nil {
			return dicesession.DiceRoll{}, 0, err
		}
		roll.Notation = d.Notation()
		roll.Results = results
		roll.Total = dice.Total(results)
	default:
		return dicesession.DiceRoll{}, 0, errors.Internalf("unsupported damage kind %T", kind)
	}

	return roll, roll.Total, nil
}

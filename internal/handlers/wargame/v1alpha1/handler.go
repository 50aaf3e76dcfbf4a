// Package v1alpha1 handles the wargame combat grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/wargame-api/internal/entities/wargame"
	"github.com/KirkDiggler/wargame-api/internal/errors"
	"github.com/KirkDiggler/wargame-api/internal/orchestrators/combat"
	dicesession "github.com/KirkDiggler/wargame-api/internal/repositories/dice_session"
)

// HandlerConfig holds dependencies for the combat handler
type HandlerConfig struct {
	CombatService combat.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// Handler implements the combat gRPC service
type Handler struct {
	combatService combat.Service
}

// Ensure Handler implements CombatServiceServer
var _ CombatServiceServer = (*Handler)(nil)

// NewHandler creates a new combat handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		combatService: cfg.CombatService,
	}, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (h *Handler) RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}
	if req.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	output, err := h.combatService.RollDice(ctx, &combat.RollDiceInput{
		EntityID:    req.EntityId,
		Context:     req.Context,
		Notation:    req.Notation,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollDiceResponse{
		Roll:      convertRoll(*output.Roll),
		Rolls:     convertRolls(output.Session.Rolls),
		ExpiresAt: output.Session.ExpiresAt.Unix(),
	}, nil
}

// ResolveWeapon fires a weapon once and reports shots and damage
func (h *Handler) ResolveWeapon(ctx context.Context, req *ResolveWeaponRequest) (*ResolveWeaponResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.WeaponName == "" && req.Profile == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon_name or profile is required"))
	}

	input := &combat.ResolveWeaponInput{
		EntityID:   req.EntityId,
		WeaponName: req.WeaponName,
	}
	if req.Profile != nil {
		input.Profile = &wargame.WeaponProfile{
			Name:              req.Profile.Name,
			Category:          req.Profile.Category,
			Shots:             req.Profile.Shots,
			Strength:          int(req.Profile.Strength),
			ArmourPenetration: int(req.Profile.ArmourPenetration),
			Damage:            req.Profile.Damage,
		}
	}

	output, err := h.combatService.ResolveWeapon(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	profile := output.Weapon.Profile()
	// nolint:gosec // strength and AP are stored as uint8
	strength, ap := int32(profile.Strength), int32(profile.ArmourPenetration)
	resp := &ResolveWeaponResponse{
		Weapon: output.Weapon.String(),
		Profile: &WeaponProfile{
			Name:              profile.Name,
			Category:          profile.Category,
			Shots:             profile.Shots,
			Strength:          strength,
			ArmourPenetration: ap,
			Damage:            profile.Damage,
		},
		Summary: &WeaponSummary{
			MinShots:       output.Summary.MinShots,
			MaxShots:       output.Summary.MaxShots,
			AverageShots:   output.Summary.AverageShots,
			MinDamage:      output.Summary.MinDamage,
			MaxDamage:      output.Summary.MaxDamage,
			AverageDamage:  output.Summary.AverageDamage,
			MaxTotalDamage: output.Summary.MaxTotalDamage,
		},
		Shots:       output.Shots,
		Damage:      output.Damage,
		TotalDamage: output.TotalDamage,
		Rolls:       convertRolls(output.Rolls),
	}
	if output.Session != nil {
		resp.ExpiresAt = output.Session.ExpiresAt.Unix()
	}

	return resp, nil
}

// GetRollSession retrieves an existing dice roll session
func (h *Handler) GetRollSession(ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	output, err := h.combatService.GetRollSession(ctx, &combat.GetRollSessionInput{
		EntityID: req.EntityId,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRollSessionResponse{
		Rolls:     convertRolls(output.Session.Rolls),
		CreatedAt: output.Session.CreatedAt.Unix(),
		ExpiresAt: output.Session.ExpiresAt.Unix(),
	}, nil
}

// ClearRollSession removes a dice roll session
func (h *Handler) ClearRollSession(ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error) {
	if req.EntityId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	output, err := h.combatService.ClearRollSession(ctx, &combat.ClearRollSessionInput{
		EntityID: req.EntityId,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearRollSessionResponse{
		Message:      "Roll session cleared successfully",
		RollsCleared: output.RollsDeleted,
	}, nil
}

func convertRolls(rolls []dicesession.DiceRoll) []*DiceRoll {
	out := make([]*DiceRoll, 0, len(rolls))
	for _, roll := range rolls {
		out = append(out, convertRoll(roll))
	}
	return out
}

func convertRoll(roll dicesession.DiceRoll) *DiceRoll {
	results := make([]uint32, len(roll.Results))
	for i, r := range roll.Results {
		results[i] = uint32(r)
	}

	return &DiceRoll{
		RollId:      roll.RollID,
		Notation:    roll.Notation,
		Dice:        results,
		Total:       roll.Total,
		Purpose:     roll.Purpose,
		Description: roll.Description,
		RolledAt:    roll.RolledAt.Unix(),
	}
}

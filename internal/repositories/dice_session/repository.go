// Package dicesession stores the history of dice rolls grouped by entity and context
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/wargame-api/internal/repositories/dice_session Repository

// DiceSession is every roll made for one entity in one context
type DiceSession struct {
	// Entity that owns these rolls (e.g. "model_123", "squad_7")
	EntityID string

	// Context for grouping related rolls (e.g. "shooting_turn_2", "weapon_resolution")
	Context string

	// Rolls in the order they were made
	Rolls []DiceRoll

	CreatedAt time.Time
	ExpiresAt time.Time
}

// DiceRoll is a single recorded roll
type DiceRoll struct {
	RollID string `json:"roll_id"`

	// Notation rolled, e.g. "2d6"; fixed values are recorded as their number
	Notation string `json:"notation"`

	// Individual die results in roll order; empty for fixed values
	Results []uint16 `json:"results"`

	Total uint32 `json:"total"`

	// What the roll decided, e.g. "shots" or "damage"
	Purpose string `json:"purpose,omitempty"`

	Description string    `json:"description,omitempty"`
	RolledAt    time.Time `json:"rolled_at"`
}

// AppendInput contains parameters for recording rolls
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll

	// TTL applies only when the append starts a new session
	TTL time.Duration
}

// AppendOutput contains the session after the append
type AppendOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Append records rolls, starting a new session when none is live
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves a live dice session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

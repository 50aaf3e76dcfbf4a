package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wargame-api/internal/errors"
	"github.com/KirkDiggler/wargame-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/wargame-api/internal/redis"
)

const (
	// Keys: dice_session:{entity_id}:{context}:meta (hash) and :rolls (list)
	sessionKeyPrefix = "dice_session:"
	metaKeySuffix    = ":meta"
	rollsKeySuffix   = ":rolls"
	defaultTTL       = 15 * time.Minute

	// Optimistic transaction attempts before an append gives up
	maxAppendAttempts = 50

	fieldCreatedAt = "created_at"
	fieldExpiresAt = "expires_at"

	// Error messages
	errEntityIDEmpty = "entity ID cannot be empty"
	errContextEmpty  = "context cannot be empty"
	errNoRolls       = "at least one roll is required"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes rolls onto the session list. A missing or expired session is
// replaced by a fresh one; a live session keeps its original expiry.
//
// The header check and the write run under WATCH, so concurrent appends to
// one session never reset each other's rolls. A lost race is retried.
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument(errNoRolls)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	values := make([]interface{}, len(input.Rolls))
	for i, roll := range input.Rolls {
		rollJSON, err := json.Marshal(roll)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal roll")
		}
		values[i] = rollJSON
	}

	metaKey, rollsKey := buildKeys(input.EntityID, input.Context)

	for attempt := 1; attempt <= maxAppendAttempts; attempt++ {
		var (
			createdAt, expiresAt time.Time
			stored               *redis.StringSliceCmd
		)

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			now := r.clock.Now()

			var err error
			createdAt, expiresAt, err = loadHeader(ctx, tx, metaKey)
			fresh := false
			switch {
			case errors.IsNotFound(err):
				fresh = true
			case err != nil:
				return err
			case !now.Before(expiresAt):
				fresh = true
			}

			if fresh {
				createdAt = now
				expiresAt = now.Add(ttl)
			}
			remainingTTL := expiresAt.Sub(now)

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if fresh {
					pipe.Del(ctx, metaKey, rollsKey)
					pipe.HSet(ctx, metaKey,
						fieldCreatedAt, createdAt.Format(time.RFC3339Nano),
						fieldExpiresAt, expiresAt.Format(time.RFC3339Nano),
					)
				}
				pipe.RPush(ctx, rollsKey, values...)
				stored = pipe.LRange(ctx, rollsKey, 0, -1)
				pipe.Expire(ctx, metaKey, remainingTTL)
				pipe.Expire(ctx, rollsKey, remainingTTL)
				return nil
			})
			return err
		}, metaKey, rollsKey)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to append rolls in Redis")
		}

		rolls, err := decodeRolls(stored.Val())
		if err != nil {
			return nil, err
		}

		return &AppendOutput{
			Session: &DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				Rolls:     rolls,
				CreatedAt: createdAt,
				ExpiresAt: expiresAt,
			},
		}, nil
	}

	return nil, errors.Unavailable("dice session is busy, retry the roll").
		WithMeta("entity_id", input.EntityID).
		WithMeta("context", input.Context)
}

// Get retrieves a dice session by entity ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	metaKey, rollsKey := buildKeys(input.EntityID, input.Context)

	createdAt, expiresAt, err := loadHeader(ctx, r.client, metaKey)
	if err != nil {
		return nil, err
	}

	if !r.clock.Now().Before(expiresAt) {
		if err := r.client.Del(ctx, metaKey, rollsKey).Err(); err != nil {
			slog.Warn("Failed to delete expired dice session",
				"entity_id", input.EntityID,
				"context", input.Context,
				"error", err,
			)
		}
		return nil, errors.NotFound("dice session has expired")
	}

	raw, err := r.client.LRange(ctx, rollsKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session rolls from Redis")
	}
	rolls, err := decodeRolls(raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		Session: &DiceSession{
			EntityID:  input.EntityID,
			Context:   input.Context,
			Rolls:     rolls,
			CreatedAt: createdAt,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// Delete removes a dice session. Deleting a missing session is not an error.
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	metaKey, rollsKey := buildKeys(input.EntityID, input.Context)

	count, err := r.client.LLen(ctx, rollsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count session rolls in Redis")
	}

	if err := r.client.Del(ctx, metaKey, rollsKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{
		// nolint:gosec // roll count is always small
		RollsDeleted: int32(count),
	}, nil
}

func loadHeader(ctx context.Context, client redis.HashCmdable, metaKey string) (time.Time, time.Time, error) {
	header, err := client.HGetAll(ctx, metaKey).Result()
	if err != nil && err != redis.Nil {
		return time.Time{}, time.Time{}, errors.Wrapf(err, "failed to get session from Redis")
	}
	if len(header) == 0 {
		return time.Time{}, time.Time{}, errors.NotFound("dice session not found")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, header[fieldCreatedAt])
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrapf(err, "failed to parse session created_at")
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, header[fieldExpiresAt])
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrapf(err, "failed to parse session expires_at")
	}

	return createdAt, expiresAt, nil
}

func decodeRolls(raw []string) ([]DiceRoll, error) {
	rolls := make([]DiceRoll, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal([]byte(item), &rolls[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll")
		}
	}
	return rolls, nil
}

func validateKey(entityID, sessionContext string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if sessionContext == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

// buildKeys creates the Redis keys for a dice session
func buildKeys(entityID, sessionContext string) (string, string) {
	base := fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, sessionContext)
	return base + metaKeySuffix, base + rollsKeySuffix
}

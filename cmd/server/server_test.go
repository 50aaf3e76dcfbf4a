package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/errors"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := loadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadServerConfig_Environment(t *testing.T) {
	t.Setenv("WARGAME_GRPC_PORT", "6000")
	t.Setenv("WARGAME_REDIS_ADDR", "redis:6380")
	t.Setenv("WARGAME_SESSION_TTL", "1h")
	t.Setenv("WARGAME_LOG_LEVEL", "debug")

	cfg, err := loadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadServerConfig_BadEnvironment(t *testing.T) {
	t.Setenv("WARGAME_SESSION_TTL", "soon")

	_, err := loadServerConfig()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := &serverConfig{
		GRPCPort:        70000,
		SessionTTL:      0,
		ShutdownTimeout: time.Second,
		LogLevel:        "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	for _, field := range []string{"grpc_port", "redis_addr", "session_ttl", "log_level"} {
		assert.Contains(t, err.Error(), field)
	}
}

func runRollCommand(t *testing.T, seed int64, notation string) string {
	t.Helper()

	rollSeed = seed
	t.Cleanup(func() { rollSeed = 0 })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runRoll(cmd, []string{notation}))
	return out.String()
}

func TestRollCommand_SeededIsRepeatable(t *testing.T) {
	first := runRollCommand(t, 42, "3d6")
	second := runRollCommand(t, 42, "3d6")

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Rolling 3d6 (min 3, max 18, average 10.5)")
	assert.Contains(t, first, "Total:")
}

func TestRollCommand_InvalidNotation(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runRoll(cmd, []string{"d20"})
	assert.True(t, dice.IsInvalidNotation(err))

	err = runRoll(cmd, []string{"2d0"})
	assert.True(t, dice.IsInvalidRange(err))
}

func TestWeaponsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runWeapons(cmd, nil))
	assert.Contains(t, out.String(), "Lasgun (Rapid Fire 1, S3, AP0, D1)")
	assert.Contains(t, out.String(), "Battle cannon (Blast 2d6, S8, AP2, D1d3)")
}

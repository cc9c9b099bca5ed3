package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "MONGODB_DB", "LEADERBOARD_TTL_SECONDS", "READ_XP_REWARD", "MODERATION_BLOCKLIST"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "storyshelf", cfg.DBName)
	assert.Equal(t, 30*time.Second, cfg.LeaderboardTTL)
	assert.Equal(t, 5, cfg.ReadXPReward)
	assert.Equal(t, DefaultBlocklist, cfg.Blocklist)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("LEADERBOARD_TTL_SECONDS", "60")
	t.Setenv("READ_XP_REWARD", "10")
	t.Setenv("MODERATION_BLOCKLIST", "foo, bar ,,baz")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Minute, cfg.LeaderboardTTL)
	assert.Equal(t, 10, cfg.ReadXPReward)
	assert.Equal(t, []string{"foo", "bar", "baz"}, cfg.Blocklist)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("LEADERBOARD_TTL_SECONDS", "not-a-number")
	t.Setenv("READ_XP_REWARD", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.LeaderboardTTL)
	assert.Equal(t, 5, cfg.ReadXPReward)
}

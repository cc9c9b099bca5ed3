package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	MongoURI       string
	DBName         string
	RedisAddr      string
	LeaderboardTTL time.Duration
	Blocklist      []string
	ReadXPReward   int
}

// DefaultBlocklist is the fallback moderation list when MODERATION_BLOCKLIST
// is unset. Matching is case-insensitive substring (see moderation package).
var DefaultBlocklist = []string{"inappropriate", "badword", "offensive"}

func Load() (*Config, error) {
	ttl := 30
	if v := getEnv("LEADERBOARD_TTL_SECONDS", "30"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	reward := 5
	if v := getEnv("READ_XP_REWARD", "5"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			reward = n
		}
	}
	blocklist := DefaultBlocklist
	if v := getEnv("MODERATION_BLOCKLIST", ""); v != "" {
		blocklist = nil
		for _, w := range strings.Split(v, ",") {
			if w = strings.TrimSpace(w); w != "" {
				blocklist = append(blocklist, w)
			}
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("MONGODB_DB", "storyshelf"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		LeaderboardTTL: time.Duration(ttl) * time.Second,
		Blocklist:      blocklist,
		ReadXPReward:   reward,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

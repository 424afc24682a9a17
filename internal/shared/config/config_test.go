package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PortsPerService(t *testing.T) {
	cases := []struct {
		service     string
		httpPort    string
		metricsPort string
	}{
		{"match-service", "8080", "9095"},
		{"bet-service", "8081", "9096"},
		{"bet-resolution-worker", "", "9097"},
		{"api-gateway", "8000", "9094"},
		{"", "8080", "9095"},
	}

	for _, tc := range cases {
		t.Run(tc.service, func(t *testing.T) {
			t.Setenv("SERVICE_NAME", tc.service)

			cfg := Load()

			assert.Equal(t, tc.httpPort, cfg.HTTPPort)
			assert.Equal(t, tc.metricsPort, cfg.MetricsPort)
		})
	}
}

// unsetEnv remove a variável durante o teste; t.Setenv restaura o valor original
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "bet-service")
	t.Setenv("ENV", "local")
	unsetEnv(t, "REDIS_ADDR")
	unsetEnv(t, "KAFKA_BROKERS")

	cfg := Load()

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 2*time.Second, cfg.MatchClientTimeout)
	assert.Equal(t, 10*time.Minute, cfg.MatchCacheTTL)
	assert.Equal(t, "match_completed", cfg.TopicMatchCompleted)
	assert.Equal(t, "http://localhost:8080", cfg.MatchServiceURL)
	// sem Redis/Kafka configurados o serviço sobe com cache e eventos desligados
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("STORAGE_DRIVER", StorageMemory)
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("MATCH_CLIENT_TIMEOUT", "750ms")
	t.Setenv("MATCH_CACHE_TTL", "not-a-duration")
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 750*time.Millisecond, cfg.MatchClientTimeout)
	assert.Equal(t, 10*time.Minute, cfg.MatchCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
}

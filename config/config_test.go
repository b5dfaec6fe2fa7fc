package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsUnmarshal(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "memory", cfg.DraftBackend)
	assert.Equal(t, "skillbridge", cfg.DatabaseName)
	assert.True(t, cfg.SeedMentors)
	assert.False(t, cfg.QueueEnabled)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL())
	assert.Equal(t, time.Hour, cfg.ReminderLead())
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("DRAFT_TTL_MINUTES", "5")

	v := viper.New()
	v.AutomaticEnv()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, "mongo", cfg.StoreBackend)
	assert.Equal(t, 5*time.Minute, cfg.DraftTTL())
}

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Config{TimeZone: "Not/AZone"}.Location())
	assert.Equal(t, time.UTC, Config{}.Location())
}

func TestDraftTTLGuardsNonPositive(t *testing.T) {
	assert.Equal(t, 30*time.Minute, Config{DraftTTLMinutes: 0}.DraftTTL())
}

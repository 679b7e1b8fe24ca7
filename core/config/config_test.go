package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spellbook/core/config"
)

type routerTestConfig struct {
	Name    string        `env:"SPELLBOOK_TEST_NAME" envDefault:"World"`
	Port    int           `env:"SPELLBOOK_TEST_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"SPELLBOOK_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredTestConfig struct {
	Secret string `env:"SPELLBOOK_TEST_SECRET_THAT_IS_NEVER_SET,required"`
}

type cachedTestConfig struct {
	Greeting string `env:"SPELLBOOK_TEST_GREETING"`
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("SPELLBOOK_TEST_NAME", "Walt Longmire")
	t.Setenv("SPELLBOOK_TEST_TIMEOUT", "250ms")

	var cfg routerTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "Walt Longmire", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredTestConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPELLBOOK_TEST_SECRET_THAT_IS_NEVER_SET")

	assert.Panics(t, func() {
		var again requiredTestConfig
		config.MustLoad(&again)
	})
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("SPELLBOOK_TEST_GREETING", "first")

	var cfg1 cachedTestConfig
	require.NoError(t, config.Load(&cfg1))
	assert.Equal(t, "first", cfg1.Greeting)

	t.Setenv("SPELLBOOK_TEST_GREETING", "second")

	var cfg2 cachedTestConfig
	require.NoError(t, config.Load(&cfg2))
	assert.Equal(t, "first", cfg2.Greeting, "second load must come from cache")
}

func TestLoadNil(t *testing.T) {
	var cfg *routerTestConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}

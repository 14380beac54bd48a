package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 100000, cfg.MaxInputLength)
	assert.Equal(t, 2.0, cfg.RateLimit)
	assert.Equal(t, 5.0, cfg.RateBurst)
	assert.Equal(t, AnalysisConfig{
		KeywordCount:         7,
		MinKeywordFrequency:  2,
		ComplexSentenceWords: 25,
		SyllableCacheSize:    2000,
	}, cfg.Analysis)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("PORT", "9000")
	t.Setenv("KEYWORD_COUNT", "10")
	t.Setenv("COMPLEX_SENTENCE_WORDS", "30")
	t.Setenv("RATE_LIMIT", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 0.5, cfg.RateLimit)
	assert.Equal(t, 10, cfg.AnalyzerConfig().KeywordCount)
	assert.Equal(t, 30, cfg.Detector().ComplexSentenceWords)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)

	for _, key := range []string{"MAX_INPUT_LENGTH", "SYLLABLE_CACHE_SIZE", "RATE_BURST"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "lots")
			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}

	t.Setenv("KEYWORD_COUNT", "-1")
	_, err := Load()
	assert.ErrorContains(t, err, "must be positive")
}

// inDir runs the test from dir and unsets the given variables for its duration
func inDir(t *testing.T, dir string, unset ...string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, key := range unset {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadReportsEnvFile(t *testing.T) {
	t.Run("development file wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.development"), []byte("PORT=9100\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9200\n"), 0644))
		inDir(t, dir, "APP_ENV", "PORT")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ".env.development", cfg.EnvFile)
		assert.Equal(t, "9100", cfg.Port)
	})

	t.Run("falls back to .env", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9200\n"), 0644))
		inDir(t, dir, "APP_ENV", "PORT")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ".env", cfg.EnvFile)
		assert.Equal(t, "9200", cfg.Port)
	})

	t.Run("no file", func(t *testing.T) {
		inDir(t, t.TempDir(), "APP_ENV", "PORT")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsDevelopment())
		assert.Empty(t, cfg.EnvFile)
		assert.Equal(t, "8082", cfg.Port)
	})

	t.Run("production skips env files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9200\n"), 0644))
		inDir(t, dir, "PORT")
		t.Setenv("APP_ENV", EnvProduction)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.EnvFile)
		assert.Equal(t, "8082", cfg.Port)
	})
}

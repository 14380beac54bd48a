package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/seo-optimizer/textprocessor/analyzer"
	"github.com/seo-optimizer/textprocessor/highlight"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// EnvFile is the dotenv file that was loaded, empty when none was found
	EnvFile    string
	Env        string
	Port       string
	GinMode    string
	DataDir    string
	CORSOrigin string
	RateLimit  float64 // requests per second per client
	RateBurst  float64
	// MaxInputLength caps submitted text, in characters
	MaxInputLength int
	Analysis       AnalysisConfig
}

type AnalysisConfig struct {
	KeywordCount         int
	MinKeywordFrequency  int
	ComplexSentenceWords int
	SyllableCacheSize    int
}

// Load loads configuration from environment variables.
// In development it first tries .env.development, then .env.
func Load() (Config, error) {
	var envFile string
	if getEnv("APP_ENV", EnvDevelopment) == EnvDevelopment {
		envFile = loadEnvFile(".env.development", ".env")
	}

	cfg := Config{
		EnvFile:    envFile,
		Env:        getEnv("APP_ENV", EnvDevelopment),
		Port:       getEnv("PORT", "8082"),
		GinMode:    getEnv("GIN_MODE", "release"),
		DataDir:    getEnv("DATA_DIR", "data"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}

	var err error
	if cfg.RateLimit, err = getEnvFloat("RATE_LIMIT", 2); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = getEnvFloat("RATE_BURST", 5); err != nil {
		return Config{}, err
	}
	if cfg.MaxInputLength, err = getEnvInt("MAX_INPUT_LENGTH", 100000); err != nil {
		return Config{}, err
	}

	def := analyzer.DefaultConfig()
	if cfg.Analysis.KeywordCount, err = getEnvInt("KEYWORD_COUNT", def.KeywordCount); err != nil {
		return Config{}, err
	}
	if cfg.Analysis.MinKeywordFrequency, err = getEnvInt("MIN_KEYWORD_FREQUENCY", def.MinKeywordFrequency); err != nil {
		return Config{}, err
	}
	if cfg.Analysis.ComplexSentenceWords, err = getEnvInt("COMPLEX_SENTENCE_WORDS", highlight.DefaultComplexSentenceWords); err != nil {
		return Config{}, err
	}
	if cfg.Analysis.SyllableCacheSize, err = getEnvInt("SYLLABLE_CACHE_SIZE", def.SyllableCacheSize); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadEnvFile loads the first file that exists and returns its name
func loadEnvFile(names ...string) string {
	for _, name := range names {
		if err := godotenv.Load(name); err == nil {
			return name
		}
	}
	return ""
}

func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// AnalyzerConfig returns the settings for analyzer.New
func (c Config) AnalyzerConfig() analyzer.Config {
	return analyzer.Config{
		KeywordCount:        c.Analysis.KeywordCount,
		MinKeywordFrequency: c.Analysis.MinKeywordFrequency,
		SyllableCacheSize:   c.Analysis.SyllableCacheSize,
	}
}

// Detector returns a highlight detector using the configured thresholds
func (c Config) Detector() *highlight.Detector {
	return &highlight.Detector{ComplexSentenceWords: c.Analysis.ComplexSentenceWords}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return f, nil
}

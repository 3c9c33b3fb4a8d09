package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/heromap/pkg/constants"
	"github.com/agentstation/heromap/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "HEROMAP"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Consolidation settings
	Input       string
	Output      string
	Provenance  string
	Concurrency int
	Deduplicate bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (HEROMAP_INPUT, HEROMAP_CONCURRENCY, ...)
// 3. .env files
// 4. Config file (configFile, or ~/.heromap.yaml and ./.heromap.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".heromap")

		// A missing default config file is not an error
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Input:       v.GetString("input"),
		Output:      v.GetString("output"),
		Provenance:  v.GetString("provenance"),
		Concurrency: v.GetInt("concurrency"),
		Deduplicate: v.GetBool("deduplicate"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that cannot be corrected silently.
func (c *Config) Validate() error {
	if c.Concurrency < 1 || c.Concurrency > constants.MaxConcurrency {
		return errors.NewConfigError("concurrency", "must be between 1 and the maximum concurrency",
			errors.NewValidationError("concurrency", c.Concurrency, "out of range"))
	}
	return nil
}

// Flags carries the global flag values parsed by cobra.
type Flags struct {
	Config   string
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(f Flags) {
	c.Verbose = c.Verbose || f.Verbose
	c.Quiet = c.Quiet || f.Quiet
	c.NoColor = c.NoColor || f.NoColor
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", constants.DefaultInputDir)
	v.SetDefault("output", constants.DefaultOutputFile)
	v.SetDefault("provenance", "")
	v.SetDefault("concurrency", constants.DefaultConcurrency)
	v.SetDefault("deduplicate", true)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

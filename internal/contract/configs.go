package contract

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/worthyretail/xray/schema"
)

// Default values for configuration.
const (
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
	DefaultCacheSize  = 128
	MaxCacheSize      = 100000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ThresholdsRawInput holds classification threshold overrides from the YAML config file.
// Pointers distinguish an unset key from an explicit zero.
type ThresholdsRawInput struct {
	SolidMin             *int `mapstructure:"solid_min"`
	BureaucratBedrockMin *int `mapstructure:"bureaucrat_bedrock_min"`
	BureaucratFuelMax    *int `mapstructure:"bureaucrat_fuel_max"`
	BurnoutFuelMin       *int `mapstructure:"burnout_fuel_min"`
	BurnoutBedrockMax    *int `mapstructure:"burnout_bedrock_max"`
	VisionaryPurposeMin  *int `mapstructure:"visionary_purpose_min"`
	VisionaryBedrockMax  *int `mapstructure:"visionary_bedrock_max"`
}

// Config holds the runtime configuration for every command.
// This struct is the "final, validated" config.
type Config struct {
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	UserName    string
	TeamCode    string
	Answers     string // inline answers, see ParseAnswers
	AnswersFile string // path to a JSON answers file
	CatalogFile string // optional YAML catalog replacing the built-in one

	// Thresholds holds only the overridden keys; the engine merges them over the defaults.
	Thresholds schema.Thresholds

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	Listen    string
	CacheSize int
	LogLevel  zapcore.Level

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`
	Catalog        string `mapstructure:"catalog"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	LogLevel       string `mapstructure:"log-level"`
	ThresholdsStr  string `mapstructure:"thresholds-override"`

	// --- Fields from scoreCmd and quizCmd ---
	User        string `mapstructure:"user"`
	Team        string `mapstructure:"team"`
	Answers     string `mapstructure:"answers"`
	AnswersFile string `mapstructure:"answers-file"`

	// --- Fields from serveCmd.Flags() ---
	Listen    string `mapstructure:"listen"`
	CacheSize int    `mapstructure:"cache-size"`

	// --- Thresholds from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Thresholds != nil {
		clone.Thresholds = maps.Clone(c.Thresholds)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the result store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(strings.TrimSpace(input.StoreBackend))
	if backend == "" {
		backend = string(schema.SQLiteBackend)
	}
	cfg.StoreBackend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// validateSimpleInputs processes and validates all non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.UserName = strings.TrimSpace(input.User)
	cfg.TeamCode = schema.NormalizeTeamCode(input.Team)
	cfg.Answers = strings.TrimSpace(input.Answers)
	cfg.AnswersFile = input.AnswersFile
	cfg.CatalogFile = input.Catalog

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 2. Answers Source Validation ---
	if cfg.Answers != "" && cfg.AnswersFile != "" {
		return fmt.Errorf("--answers and --answers-file are mutually exclusive")
	}

	// --- 3. Log Level Validation ---
	levelStr := input.LogLevel
	if levelStr == "" {
		levelStr = DefaultLogLevel
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", input.LogLevel, err)
	}
	cfg.LogLevel = level

	// --- 4. Server Validation ---
	cfg.Listen = strings.TrimSpace(input.Listen)
	if cfg.Listen == "" {
		cfg.Listen = DefaultListenAddr
	}
	cfg.CacheSize = input.CacheSize
	if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheSize < 0 || cfg.CacheSize > MaxCacheSize {
		return fmt.Errorf("cache size must be greater than 0 and cannot exceed %d (received %d)", MaxCacheSize, input.CacheSize)
	}

	return nil
}

// processThresholds collects threshold overrides from the config file and the
// --thresholds-override flag. The flag takes precedence over the file.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	thresholds := make(schema.Thresholds)

	fileValues := map[schema.ThresholdKey]*int{
		schema.SolidMin:             input.Thresholds.SolidMin,
		schema.BureaucratBedrockMin: input.Thresholds.BureaucratBedrockMin,
		schema.BureaucratFuelMax:    input.Thresholds.BureaucratFuelMax,
		schema.BurnoutFuelMin:       input.Thresholds.BurnoutFuelMin,
		schema.BurnoutBedrockMax:    input.Thresholds.BurnoutBedrockMax,
		schema.VisionaryPurposeMin:  input.Thresholds.VisionaryPurposeMin,
		schema.VisionaryBedrockMax:  input.Thresholds.VisionaryBedrockMax,
	}
	for key, v := range fileValues {
		if v != nil {
			thresholds[key] = *v
		}
	}

	if input.ThresholdsStr != "" {
		parsed, err := ParseThresholdsOverride(input.ThresholdsStr)
		if err != nil {
			return fmt.Errorf("invalid --thresholds-override format: %w", err)
		}
		maps.Copy(thresholds, parsed)
	}

	for key, v := range thresholds {
		if v < 0 || v > 100 {
			return fmt.Errorf("threshold %s must be between 0 and 100 (received %d)", key, v)
		}
	}

	cfg.Thresholds = thresholds
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ParseThresholdsOverride parses a string like "solid_min:85,burnout_fuel_min:90"
// into a thresholds map.
func ParseThresholdsOverride(s string) (schema.Thresholds, error) {
	thresholds := make(schema.Thresholds)

	if s == "" {
		return thresholds, nil
	}

	valid := make(map[schema.ThresholdKey]struct{}, len(schema.AllThresholdKeys))
	for _, k := range schema.AllThresholdKeys {
		valid[k] = struct{}{}
	}

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid threshold format '%s', expected 'key:value'", part)
		}

		key := schema.ThresholdKey(strings.ToLower(strings.TrimSpace(keyValue[0])))
		if _, ok := valid[key]; !ok {
			return nil, fmt.Errorf("unknown threshold key '%s'", keyValue[0])
		}

		valueStr := strings.TrimSpace(keyValue[1])
		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold value '%s' for %s: %w", valueStr, key, err)
		}

		thresholds[key] = value
	}

	return thresholds, nil
}

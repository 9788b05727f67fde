package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	EnvProduction = "production"

	defaultJWTExpiry     = 7 * 24 * time.Hour
	defaultBcryptCost    = 10
	defaultOTPTTL        = 10 * time.Minute
	defaultCategoryTTL   = 5 * time.Minute
	defaultAdminPhone    = "+237600000000"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Super Admin"
	defaultAdminEmail    = "admin@favelamarket.com"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Redis backs the public category cache. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications. Optional.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig holds settings applied on top of the postgres connection.
type DatabaseConfig struct {
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	JWTSecret  string        `json:"jwtSecret" yaml:"jwtSecret"`
	JWTExpiry  time.Duration `json:"jwtExpiry" yaml:"jwtExpiry"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	OTPTTL     time.Duration `json:"otpTTL" yaml:"otpTTL"`
}

// RedisConfig defines the Redis connection used for caching
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	CategoryTTL time.Duration `json:"categoryTTL" yaml:"categoryTTL"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SeedConfig holds the bootstrap administrator account.
type SeedConfig struct {
	AdminPhone    string `json:"adminPhone" yaml:"adminPhone"`
	AdminPassword string `json:"adminPassword" yaml:"adminPassword"`
	AdminName     string `json:"adminName" yaml:"adminName"`
	AdminEmail    string `json:"adminEmail" yaml:"adminEmail"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := loadDotEnv(searchPaths); err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: AUTH_JWTSECRET -> auth.jwtSecret (not auth.jwtsecret)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// loadDotEnv exports the first .env file found into the process environment.
// Variables already set in the environment win over the file.
func loadDotEnv(searchPaths []string) error {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, ".env")
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return errors.Wrapf(err, "stat %s", candidate)
		}

		return errors.Wrapf(godotenv.Load(candidate), "load %s", candidate)
	}

	return nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if cfg.IsProduction() && cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret must be set in production")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.JWTExpiry <= 0 {
		cfg.Auth.JWTExpiry = defaultJWTExpiry
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.OTPTTL <= 0 {
		cfg.Auth.OTPTTL = defaultOTPTTL
	}

	if cfg.Redis != nil && cfg.Redis.CategoryTTL <= 0 {
		cfg.Redis.CategoryTTL = defaultCategoryTTL
	}

	if cfg.Seed == nil {
		cfg.Seed = &SeedConfig{}
	}
	if cfg.Seed.AdminPhone == "" {
		cfg.Seed.AdminPhone = defaultAdminPhone
	}
	if cfg.Seed.AdminPassword == "" {
		cfg.Seed.AdminPassword = defaultAdminPassword
	}
	if cfg.Seed.AdminName == "" {
		cfg.Seed.AdminName = defaultAdminName
	}
	if cfg.Seed.AdminEmail == "" {
		cfg.Seed.AdminEmail = defaultAdminEmail
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

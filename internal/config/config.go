package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"
	"gopkg.in/yaml.v3"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/utils"
)

type Config struct {
	AppName       string
	BackendURL    string
	SessionDBPath string
	HTTPTimeout   time.Duration
	MaxRetries    int
	AssetBucket   string
	AssetRegion   string

	AssetAccessKeyID     string
	AssetSecretAccessKey string

	// Feature-flag snapshots
	LDFlag_NotificationDurationMs int
	LDFlag_LoginRedirectDelayMs   int
	LDFlag_DownloadAssetsViaS3    bool
}

// build-time override, set with -ldflags
var AppName string

// fileConfig is the optional YAML file named by PORTAL_CONFIG_FILE.
type fileConfig struct {
	BackendURL     string `yaml:"backend_url"`
	SessionDBPath  string `yaml:"session_db_path"`
	HTTPTimeout    string `yaml:"http_timeout"`
	HTTPMaxRetries *int   `yaml:"http_max_retries"`
	AssetBucket    string `yaml:"asset_bucket"`
	AssetRegion    string `yaml:"asset_region"`
	Flags          struct {
		NotificationDurationMs *int  `yaml:"notification_duration_ms"`
		LoginRedirectDelayMs   *int  `yaml:"login_redirect_delay_ms"`
		DownloadAssetsViaS3    *bool `yaml:"download_assets_via_s3"`
	} `yaml:"flags"`
}

// LoadConfig builds the config from .env, the optional YAML file, the
// environment and LaunchDarkly, in increasing precedence. Malformed values are
// fatal. A missing backend URL is not: views report it inline.
func LoadConfig() *Config {
	if AppName == "" {
		AppName = constants.AppName
	}
	utils.Logger.Info("Loading config for app: ", AppName)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Logger.WithError(err).Warn("Failed to read .env file")
	}

	cfg, err := Load(os.Getenv("PORTAL_CONFIG_FILE"))
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load config")
	}

	if sdkKey := os.Getenv("LD_SDK_KEY"); sdkKey != "" {
		cfg.applyLaunchDarkly(sdkKey)
	} else {
		utils.Logger.Debug("LD_SDK_KEY not set, using default feature flags")
	}

	if cfg.BackendURL == "" {
		utils.Logger.Warn("BACKEND_URL is not set; backend calls will fail")
	}
	utils.Logger.Infof("Loaded config for %s", cfg.AppName)
	return cfg
}

// Load reads the YAML file at path (if any) and the environment.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		if err := cfg.applyFile(fc); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	return cfg, nil
}

// Defaults is the config with no file, environment or flags applied.
func Defaults() *Config {
	name := AppName
	if name == "" {
		name = constants.AppName
	}
	return &Config{
		AppName:                       name,
		SessionDBPath:                 constants.DefaultSessionDBPath,
		HTTPTimeout:                   constants.DefaultHTTPTimeout,
		MaxRetries:                    constants.DefaultMaxRetries,
		AssetBucket:                   constants.DefaultAssetBucket,
		AssetRegion:                   constants.DefaultAssetRegion,
		LDFlag_NotificationDurationMs: int(constants.FormNotificationDuration / time.Millisecond),
		LDFlag_LoginRedirectDelayMs:   int(constants.LoginRedirectDelay / time.Millisecond),
		LDFlag_DownloadAssetsViaS3:    true,
	}
}

func (c *Config) applyFile(fc fileConfig) error {
	setString(&c.BackendURL, fc.BackendURL)
	setString(&c.SessionDBPath, fc.SessionDBPath)
	setString(&c.AssetBucket, fc.AssetBucket)
	setString(&c.AssetRegion, fc.AssetRegion)
	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("http_timeout: %w", err)
		}
		c.HTTPTimeout = d
	}
	if fc.HTTPMaxRetries != nil {
		c.MaxRetries = *fc.HTTPMaxRetries
	}
	if fc.Flags.NotificationDurationMs != nil {
		c.LDFlag_NotificationDurationMs = *fc.Flags.NotificationDurationMs
	}
	if fc.Flags.LoginRedirectDelayMs != nil {
		c.LDFlag_LoginRedirectDelayMs = *fc.Flags.LoginRedirectDelayMs
	}
	if fc.Flags.DownloadAssetsViaS3 != nil {
		c.LDFlag_DownloadAssetsViaS3 = *fc.Flags.DownloadAssetsViaS3
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.BackendURL, os.Getenv("BACKEND_URL"))
	setString(&c.SessionDBPath, os.Getenv("SESSION_DB_PATH"))
	setString(&c.AssetBucket, os.Getenv("ASSET_BUCKET"))
	setString(&c.AssetRegion, os.Getenv("ASSET_REGION"))
	setString(&c.AssetAccessKeyID, os.Getenv("ASSET_ACCESS_KEY_ID"))
	setString(&c.AssetSecretAccessKey, os.Getenv("ASSET_SECRET_ACCESS_KEY"))

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv("HTTP_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HTTP_MAX_RETRIES: %w", err)
		}
		c.MaxRetries = n
	}
	return nil
}

func (c *Config) applyLaunchDarkly(sdkKey string) {
	ldClient, err := ld.MakeClient(sdkKey, constants.LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Warn("Failed to create LaunchDarkly client, using default flags")
		return
	}
	defer ldClient.Close()
	if !ldClient.Initialized() {
		utils.Logger.Warn("LaunchDarkly client failed to initialize, using default flags")
		return
	}

	ctx := ldcontext.NewWithKind(ldcontext.Kind(constants.LDServerContextKind), constants.LDServerContextKey)

	if v, err := ldClient.IntVariation("notification_duration_ms", ctx, c.LDFlag_NotificationDurationMs); err == nil {
		c.LDFlag_NotificationDurationMs = v
	}
	if v, err := ldClient.IntVariation("login_redirect_delay_ms", ctx, c.LDFlag_LoginRedirectDelayMs); err == nil {
		c.LDFlag_LoginRedirectDelayMs = v
	}
	if v, err := ldClient.BoolVariation("download_assets_via_s3", ctx, c.LDFlag_DownloadAssetsViaS3); err == nil {
		c.LDFlag_DownloadAssetsViaS3 = v
	}
	utils.Logger.Debugf("notification_duration_ms flag: %d", c.LDFlag_NotificationDurationMs)
	utils.Logger.Debugf("login_redirect_delay_ms flag: %d", c.LDFlag_LoginRedirectDelayMs)
	utils.Logger.Debugf("download_assets_via_s3 flag: %t", c.LDFlag_DownloadAssetsViaS3)
}

// Validate reports configuration problems that make backend calls impossible.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return utils.ErrBackendNotConfigured
	}
	return nil
}

func (c *Config) NotificationDuration() time.Duration {
	if c.LDFlag_NotificationDurationMs <= 0 {
		return constants.FormNotificationDuration
	}
	return time.Duration(c.LDFlag_NotificationDurationMs) * time.Millisecond
}

func (c *Config) LoginRedirectDelay() time.Duration {
	if c.LDFlag_LoginRedirectDelayMs < 0 {
		return constants.LoginRedirectDelay
	}
	return time.Duration(c.LDFlag_LoginRedirectDelayMs) * time.Millisecond
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

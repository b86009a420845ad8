package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// InsecureDefaultSecret is the documented development fallback for the
// session-signing secret. Never run production with it.
const InsecureDefaultSecret = "dev-secret-key"

// Config holds all runtime configuration.
type Config struct {
	App struct {
		Env       string // development | production
		Addr      string
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"app"`

	Paths struct {
		Data         string
		Translations string
		Static       string
	} `mapstructure:"paths"`

	Seed struct {
		RootPassword string `mapstructure:"root_password"`
	} `mapstructure:"seed"`

	Telegram struct {
		Token  string
		ChatID int64 `mapstructure:"chat_id"`
	} `mapstructure:"telegram"`

	Resend struct {
		Key  string
		From string
		To   string
	} `mapstructure:"resend"`
}

// Load resolves configuration from defaults, an optional config file, and
// the environment (JUNGLEPARK_* overrides; the bare SECRET_KEY env var is
// honoured as an alias for compatibility with existing deployments).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("app.env", "development")
	v.SetDefault("app.addr", ":8080")
	v.SetDefault("app.secret_key", InsecureDefaultSecret)
	v.SetDefault("paths.data", "data")
	v.SetDefault("paths.translations", "translations")
	v.SetDefault("paths.static", "static")
	v.SetDefault("seed.root_password", "root123")
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("resend.key", "")
	v.SetDefault("resend.from", "Jungle Park <noreply@junglepark.kz>")
	v.SetDefault("resend.to", "")

	v.SetEnvPrefix("JUNGLEPARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}

	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		c.App.SecretKey = secret
	}
	if c.App.SecretKey == InsecureDefaultSecret {
		slog.Warn("using insecure default secret key, set SECRET_KEY for production")
	}
	return c, nil
}

// IsProduction reports whether the app runs in the production environment.
func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

// NewLogger builds the process-wide structured logger for the environment.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "production" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

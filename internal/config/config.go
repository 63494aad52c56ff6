// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey       string        `mapstructure:"secret_key"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AudioConfig は音声合成プロバイダと保存先の設定です。
type AudioConfig struct {
	Provider       string        `mapstructure:"provider"` // google | polly | none
	Store          string        `mapstructure:"store"`    // local | gcs
	LocalDir       string        `mapstructure:"local_dir"`
	BaseURL        string        `mapstructure:"base_url"`
	GCSBucket      string        `mapstructure:"gcs_bucket"`
	AWSRegion      string        `mapstructure:"aws_region"`
	AWSAuthType    string        `mapstructure:"aws_auth_type"` // static_credentials | iam_role
	AWSAccessKeyID string        `mapstructure:"aws_access_key_id"`
	AWSSecretKey   string        `mapstructure:"aws_secret_access_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Audio    AudioConfig    `mapstructure:"audio"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば先に環境変数へ展開する (無くてもエラーにしない)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if !v.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	applyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Audio Provider: %s (store: %s)", Cfg.Audio.Provider, Cfg.Audio.Store)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れます。
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.App.Name == "" {
		cfg.App.Name = AppName
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.JWT.RefreshTokenTTL <= 0 {
		cfg.JWT.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set. Tokens will be signed with an empty key.")
	}
	if cfg.Audio.Provider == "" {
		cfg.Audio.Provider = DefaultAudioProvider
	}
	if cfg.Audio.Store == "" {
		cfg.Audio.Store = DefaultAudioStore
	}
	if cfg.Audio.LocalDir == "" {
		cfg.Audio.LocalDir = DefaultAudioDir
	}
	if cfg.Audio.BaseURL == "" {
		cfg.Audio.BaseURL = DefaultAudioBaseURL
	}
	if cfg.Audio.RequestTimeout <= 0 {
		cfg.Audio.RequestTimeout = DefaultAudioTimeout
	}
}

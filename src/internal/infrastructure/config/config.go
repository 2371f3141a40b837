package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/persistence"
)

// EnvPrefix 環境變數前綴，例如 JIFEN_AUTH_JWT_SECRET
const EnvPrefix = "JIFEN"

// MinJWTSecretLength 簽名金鑰最短長度（bytes）
const MinJWTSecretLength = 16

// ===========================
// Config
// ===========================

// Config 應用程式設定
type Config struct {
	Server    ServerConfig               `mapstructure:"server"`
	Database  persistence.DatabaseConfig `mapstructure:"database"`
	Auth      AuthConfig                 `mapstructure:"auth"`
	Seed      SeedConfig                 `mapstructure:"seed"`
	RateLimit RateLimitConfig            `mapstructure:"ratelimit"`
	Log       LogConfig                  `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// TrustedProxies 允許設定 X-Forwarded-For 的代理（IP 或 CIDR），
	// 空值表示不信任任何代理，客戶端 IP 一律取連線位址
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// Addr 監聽位址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

// SeedConfig 啟動時寫入的預設資料
type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
	SampleMembers bool   `mapstructure:"sample_members"`
}

// RateLimitConfig 每個用戶端 IP 的限流
type RateLimitConfig struct {
	PublicRPS   float64 `mapstructure:"public_rps"`
	PublicBurst int     `mapstructure:"public_burst"`
	LoginRPS    float64 `mapstructure:"login_rps"`
	LoginBurst  int     `mapstructure:"login_burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | console
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.trusted_proxies", []string{})

	v.SetDefault("database.driver", persistence.DriverSQLite)
	v.SetDefault("database.dsn", "data/jifen.db")
	v.SetDefault("database.reset", false)

	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.issuer", "jifen")

	v.SetDefault("seed.admin_username", "admin")
	v.SetDefault("seed.admin_password", "admin123")
	v.SetDefault("seed.sample_members", false)

	v.SetDefault("ratelimit.public_rps", 20)
	v.SetDefault("ratelimit.public_burst", 40)
	v.SetDefault("ratelimit.login_rps", 1)
	v.SetDefault("ratelimit.login_burst", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load 讀取設定
//
// 優先順序（高到低）：環境變數 > .env > configDir/config.yaml > 預設值。
// config.yaml 與 .env 都是可選的。
func Load(configDir, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	// 沒有預設值的 key 需要明確綁定，Unmarshal 才看得到環境變數
	if err := v.BindEnv("auth.jwt_secret"); err != nil {
		return nil, err
	}

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 啟動前檢查，失敗時程式不應啟動
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret is required (at least %d bytes)", MinJWTSecretLength))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	switch c.Database.Driver {
	case persistence.DriverSQLite, persistence.DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	for _, proxy := range c.Server.TrustedProxies {
		if !validProxy(proxy) {
			errs = append(errs, fmt.Errorf("server.trusted_proxies entry %q is not an IP or CIDR", proxy))
		}
	}
	if c.RateLimit.PublicRPS <= 0 || c.RateLimit.LoginRPS <= 0 {
		errs = append(errs, errors.New("ratelimit rps must be positive"))
	}

	return errors.Join(errs...)
}

func validProxy(value string) bool {
	if strings.Contains(value, "/") {
		_, _, err := net.ParseCIDR(value)
		return err == nil
	}
	return net.ParseIP(value) != nil
}

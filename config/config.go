package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	CorsOrigins string

	DBDriver    string
	MySQLURL    string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	MongoURI    string
	MongoDB     string
	SlowQuery   time.Duration
	ConnTimeout time.Duration

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "")

	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "hotel")
	v.SetDefault("DB_SLOW_QUERY", "1s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "hotel")

	v.SetDefault("JWT_SECRET", "secretkey")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("BCRYPT_COST", 10)
}

// Load reads .env (when present) and the process environment. Environment
// variables win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	mysqlURL := strings.TrimSpace(v.GetString("MYSQL_URL"))
	if mysqlURL == "" {
		mysqlURL = strings.TrimSpace(v.GetString("DATABASE_URL"))
	}

	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CorsOrigins: v.GetString("CORS_ORIGINS"),
		DBDriver:    strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		MySQLURL:    mysqlURL,
		DBUser:      v.GetString("DB_USER"),
		DBPass:      v.GetString("DB_PASS"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		MongoURI:    v.GetString("MONGO_URI"),
		MongoDB:     v.GetString("MONGO_DB"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		BcryptCost:  v.GetInt("BCRYPT_COST"),
	}

	var err error
	if cfg.TokenTTL, err = parseDuration(v, "TOKEN_TTL"); err != nil {
		return nil, err
	}
	if cfg.SlowQuery, err = parseDuration(v, "DB_SLOW_QUERY"); err != nil {
		return nil, err
	}
	if cfg.ConnTimeout, err = parseDuration(v, "DB_CONNECT_TIMEOUT"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

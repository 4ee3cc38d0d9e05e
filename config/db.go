package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-rooms-api/store"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	dsn := mysqldriver.NewConfig()
	if u.RawQuery != "" {
		// let the driver interpret the parameters it knows about
		if dsn, err = mysqldriver.ParseDSN("/?" + u.RawQuery); err != nil {
			return "", fmt.Errorf("invalid mysql url parameters: %w", err)
		}
	}
	if !u.Query().Has("parseTime") {
		dsn.ParseTime = true
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	pass, _ := u.User.Password()

	dsn.User = u.User.Username()
	dsn.Passwd = pass
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(u.Hostname(), port)
	dsn.DBName = dbName
	return dsn.FormatDSN(), nil
}

func baseMySQLConfig() *mysqldriver.Config {
	dsn := mysqldriver.NewConfig()
	dsn.Net = "tcp"
	dsn.ParseTime = true
	return dsn
}

// ResolveMySQLDSN prefers MYSQL_URL / DATABASE_URL (either mysql:// URLs or
// driver DSNs) and falls back to the DB_* settings.
func (c *Config) ResolveMySQLDSN() (string, error) {
	if raw := c.MySQLURL; raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		if _, err := mysqldriver.ParseDSN(raw); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, nil
	}

	dsn := baseMySQLConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPass
	dsn.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	dsn.DBName = c.DBName
	return dsn.FormatDSN(), nil
}

// ConnectDatabase opens the gateway selected by DB_DRIVER and prepares its
// schema or indexes.
func ConnectDatabase(ctx context.Context, cfg *Config, log *zap.Logger) (store.Gateway, error) {
	switch cfg.DBDriver {
	case "", "mysql":
		return connectMySQL(cfg, log)
	case "mongo", "mongodb":
		return connectMongo(ctx, cfg, log)
	case "memory":
		log.Warn("using in-memory storage; data is lost on restart")
		return store.NewMemoryGateway(), nil
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownDriver, cfg.DBDriver)
	}
}

func connectMySQL(cfg *Config, log *zap.Logger) (store.Gateway, error) {
	dsn, err := cfg.ResolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             cfg.SlowQuery,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	gw := store.NewGormGateway(db)
	if err := gw.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("mysql connected and migrated")
	return gw, nil
}

func connectMongo(ctx context.Context, cfg *Config, log *zap.Logger) (store.Gateway, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()

	gw, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}
	if err := gw.EnsureIndexes(ctx); err != nil {
		_ = gw.Close(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	log.Info("mongo connected", zap.String("database", cfg.MongoDB))
	return gw, nil
}

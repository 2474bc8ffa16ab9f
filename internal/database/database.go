package database

import (
	"fmt"
	"strings"

	"iceai_backend/internal/models"

	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialector resolves a database URL (sqlite:, postgres://, mysql://) into a gorm dialector.
func Dialector(rawURL string) (gorm.Dialector, error) {
	u, err := dburl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	switch u.Driver {
	case "sqlite3":
		return sqlite.Open(withForeignKeys(u.DSN)), nil
	case "postgres":
		return postgres.Open(u.DSN), nil
	case "mysql":
		dsn := u.DSN
		if !strings.Contains(dsn, "parseTime") {
			dsn += sep(dsn) + "parseTime=true"
		}
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", u.Driver)
	}
}

// Open connects to the store behind rawURL and checks it answers.
func Open(rawURL string) (*gorm.DB, error) {
	dialector, err := Dialector(rawURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from gorm: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	return db, nil
}

// Models lists every table in creation order; users come first so foreign keys resolve.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Vouch{},
		&models.Ticket{},
		&models.Account{},
		&models.Transaction{},
		&models.Giveaway{},
		&models.Invite{},
		&models.Setting{},
		&models.AutoresponderRule{},
		&models.ScammerReport{},
		&models.MarketAlert{},
		&models.ModLog{},
		&models.WebhookLog{},
	}
}

// Migrate creates every missing table. Safe to run on each start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	return dsn + sep(dsn) + "_foreign_keys=on"
}

func sep(dsn string) string {
	if strings.Contains(dsn, "?") {
		return "&"
	}
	return "?"
}

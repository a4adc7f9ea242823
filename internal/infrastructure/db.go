package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/baccarifarah/spendLog/config"
	"github.com/baccarifarah/spendLog/internal/domain/income"
	"github.com/baccarifarah/spendLog/internal/domain/receipt"
	"github.com/baccarifarah/spendLog/internal/domain/settings"
	"github.com/baccarifarah/spendLog/internal/domain/user"
	"github.com/baccarifarah/spendLog/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Failed to connect to the database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to acquire the underlying database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Running migrations...")

	entities := []interface{}{
		&user.User{},
		&settings.Settings{},
		&receipt.Receipt{},
		&receipt.Item{},
		&income.Income{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("Migrations completed")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *user.User:
		return "User"
	case *settings.Settings:
		return "Settings"
	case *receipt.Receipt:
		return "Receipt"
	case *receipt.Item:
		return "Item"
	case *income.Income:
		return "Income"
	default:
		return "Unknown"
	}
}

package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate-api/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations 执行数据库迁移
// PostgreSQL 执行内嵌 SQL 迁移，SQLite 按模型 AutoMigrate
func RunMigrations(db *gorm.DB, driver string, logger *zap.Logger) error {
	switch driver {
	case "postgres":
		return migratePostgres(db, logger)
	case "sqlite":
		if err := db.AutoMigrate(
			&model.Person{},
			&model.AstronautDetail{},
			&model.AstronautDuty{},
		); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("表结构同步完成", zap.String("driver", driver))
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}

func migratePostgres(db *gorm.DB, logger *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("数据库迁移处于 dirty 状态", zap.Uint("version", version))
	} else {
		logger.Info("数据库迁移完成", zap.Uint("version", version))
	}

	return nil
}

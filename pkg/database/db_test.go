package database

import (
	"testing"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"stargate-api/config"
	"stargate-api/internal/model"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"starbase.db", "starbase.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:mem?mode=memory", "file:mem?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
	}
	for _, tt := range tests {
		if got := SQLiteDSN(tt.path); got != tt.want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGormLogLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"debug":  gormlogger.Info,
		"info":   gormlogger.Warn,
		"warn":   gormlogger.Warn,
		"error":  gormlogger.Error,
		"silent": gormlogger.Silent,
	}
	for level, want := range tests {
		if got := gormLogLevel(level); got != want {
			t.Errorf("gormLogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestNewDB_UnknownDriver(t *testing.T) {
	if _, err := NewDB(&config.DatabaseConfig{Driver: "oracle"}, "info", zap.NewNop()); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}

func TestNewDB_SQLiteMigrations(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         "file:TestNewDB_SQLiteMigrations?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	db, err := NewDB(cfg, "silent", zap.NewNop())
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := RunMigrations(db, cfg.Driver, zap.NewNop()); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	for _, table := range []string{"people", "astronaut_details", "astronaut_duties"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("expected table %s", table)
		}
	}
	if !db.Migrator().HasIndex(&model.AstronautDuty{}, "uq_astronaut_duties_person_title_start") {
		t.Error("expected the duty uniqueness index")
	}

	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if fk != 1 {
		t.Error("expected foreign keys to be enforced")
	}
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	if err := RunMigrations(nil, "oracle", zap.NewNop()); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}

package database

import (
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/model"
	"path/filepath"
	"testing"
)

func TestInitDBSqliteAndMigrate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := InitDB(cfg)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			t.Errorf("table for %T not created", m)
		}
	}
	if !db.Migrator().HasIndex(&model.MoodEntry{}, "idx_mood_user_day") {
		t.Error("missing unique (user_id, day) index on mood entries")
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	if _, err := dialector(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected error")
	}
}

func TestOptionalRedisDisabled(t *testing.T) {
	if rdb := InitOptionalRedis(&config.RedisConfig{Enabled: false}); rdb != nil {
		t.Error("expected nil client when redis is disabled")
	}
}

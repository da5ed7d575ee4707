package testutil

import (
	"os"
	"testing"

	"flagit/internal/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated temp-file sqlite database for one test. A single
// connection keeps concurrent service calls serialized the way a single
// Postgres node would, without SQLITE_BUSY noise in tests.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	f, err := os.CreateTemp("", "flagit-test-*.db")
	if err != nil {
		t.Fatalf("create temp db file: %v", err)
	}
	f.Close()

	gdb, err := gorm.Open(sqlite.Open(f.Name()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		os.Remove(f.Name())
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
		os.Remove(f.Name())
	})
	return gdb
}

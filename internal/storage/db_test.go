package storage

import (
	"path/filepath"
	"testing"
)

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestOpenNilConfig(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open(DefaultConfig(":memory:"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := db.Conn().Exec("CREATE TABLE t (x INTEGER)"); err != nil {
		t.Errorf("Exec: %v", err)
	}
}

func TestOpenAutoMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	config := DefaultConfig(dbPath)
	config.AutoMigrate = true

	db, err := Open(config)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var count int
	err = db.Conn().QueryRow("SELECT COUNT(*) FROM cards").Scan(&count)
	if err != nil {
		t.Errorf("cards table missing after auto-migrate: %v", err)
	}
}

package database

import (
	"testing"

	"github.com/lshigami/Studynest/config"
)

func TestDialectorSelectsDriver(t *testing.T) {
	cases := []struct {
		driver string
		want   string
	}{
		{"", "postgres"},
		{"postgres", "postgres"},
		{"mysql", "mysql"},
		{"sqlite", "sqlite"},
	}
	for _, tc := range cases {
		d, err := Dialector(config.Database{Driver: tc.driver, Path: ":memory:"})
		if err != nil {
			t.Fatalf("driver %q: unexpected error %v", tc.driver, err)
		}
		if got := d.Name(); got != tc.want {
			t.Errorf("driver %q: got dialector %q, want %q", tc.driver, got, tc.want)
		}
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	if _, err := Dialector(config.Database{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNewDatabaseSQLiteMemory(t *testing.T) {
	cfg := &config.Config{Database: config.Database{Driver: "sqlite", Path: ":memory:"}}
	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	if got := RandomOrder(db); got != "RANDOM()" {
		t.Errorf("RandomOrder = %q, want RANDOM()", got)
	}
}

package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Name != "eventrecommender" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "eventrecommender")
	}
	if cfg.Recommend.Threshold != 0.5 {
		t.Errorf("Recommend.Threshold = %v, want 0.5", cfg.Recommend.Threshold)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EVREC_SERVER_PORT", "9090")
	t.Setenv("EVREC_DATABASE_HOST", "db.internal")
	t.Setenv("EVREC_RECOMMEND_THRESHOLD", "0.3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Recommend.Threshold != 0.3 {
		t.Errorf("Recommend.Threshold = %v, want 0.3", cfg.Recommend.Threshold)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("EVREC_RECOMMEND_THRESHOLD", "1.5")
	if _, err := Load(); err == nil {
		t.Error("Load() accepted threshold outside [0,1]")
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "secret", Name: "events", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=postgres password=secret dbname=events sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

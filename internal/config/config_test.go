package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Address != ":8000" {
		t.Errorf("server.address = %q, want :8000", cfg.Server.Address)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("database.port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Admin.Username != "admin" {
		t.Errorf("admin.username = %q, want admin", cfg.Admin.Username)
	}
	if cfg.Web.TemplatesDir == "" || cfg.Web.StaticDir == "" {
		t.Error("web asset directories must have defaults")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want info", cfg.Logging.Level)
	}
}

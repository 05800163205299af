package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if c.Server.Port != 8090 {
		t.Errorf("port = %d, want 8090", c.Server.Port)
	}
	if c.Database.Host != "127.0.0.1" || c.Database.Port != 3306 || c.Database.Name != "jobflow" {
		t.Errorf("database defaults = %+v", c.Database)
	}
	if c.Log.Level != "info" {
		t.Errorf("log level = %q, want info", c.Log.Level)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
database:
  host: db.internal
  user: app
vault:
  key: file-key
`)
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("ENCRYPTION_KEY", "env-key")
	t.Setenv("PORT", "9100")

	c := Load(path)
	if c.Server.Port != 9100 {
		t.Errorf("port = %d, want env override 9100", c.Server.Port)
	}
	if c.Database.Host != "override.internal" {
		t.Errorf("host = %q, want env override", c.Database.Host)
	}
	if c.Database.User != "app" {
		t.Errorf("user = %q, want file value", c.Database.User)
	}
	if c.Vault.Key != "env-key" {
		t.Errorf("vault key = %q, want env override", c.Vault.Key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{Vault: VaultConfig{Key: "k"}, Auth: AuthConfig{Secret: "s"}}, false},
		{"missing vault key", Config{Auth: AuthConfig{Secret: "s"}}, true},
		{"missing auth secret", Config{Vault: VaultConfig{Key: "k"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

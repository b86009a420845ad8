package config

import "testing"

// TestLoadDefaults tests that Load without a file yields working defaults.
func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.App.Addr != ":8080" {
		t.Errorf("unexpected addr: %s", c.App.Addr)
	}
	if c.App.SecretKey != InsecureDefaultSecret {
		t.Errorf("unexpected secret default: %s", c.App.SecretKey)
	}
	if c.Paths.Data != "data" || c.Paths.Translations != "translations" {
		t.Errorf("unexpected paths: %+v", c.Paths)
	}
	if c.IsProduction() {
		t.Error("default env must not be production")
	}
}

// TestSecretKeyEnvAlias tests that the bare SECRET_KEY env var wins.
func TestSecretKeyEnvAlias(t *testing.T) {
	t.Setenv("SECRET_KEY", "super-secret")
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.App.SecretKey != "super-secret" {
		t.Errorf("expected SECRET_KEY alias to apply, got %s", c.App.SecretKey)
	}
}

// TestEnvPrefixOverride tests JUNGLEPARK_* environment overrides.
func TestEnvPrefixOverride(t *testing.T) {
	t.Setenv("JUNGLEPARK_APP_ADDR", ":9000")
	t.Setenv("JUNGLEPARK_PATHS_DATA", "/var/lib/junglepark")
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.App.Addr != ":9000" {
		t.Errorf("expected env override for addr, got %s", c.App.Addr)
	}
	if c.Paths.Data != "/var/lib/junglepark" {
		t.Errorf("expected env override for data dir, got %s", c.Paths.Data)
	}
}

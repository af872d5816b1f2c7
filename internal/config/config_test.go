package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.Scale != 3 || cfg.Render.JPEGQuality != 95 || cfg.Delivery.Mode != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	path := filepath.Join(dir, "proid", "config.toml")
	if GetConfigFilePath() != path {
		t.Fatalf("config path = %s", GetConfigFilePath())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[render]\nscale = 2.0\ntemplate = \"C\"\n\n[delivery]\nmode = \"browser\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.Scale != 2 || cfg.Render.Template != "C" || cfg.Delivery.Mode != "browser" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Render.JPEGQuality != 95 || cfg.Render.Format != "CR80" || cfg.Server.Addr != ":8080" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestPortOverride(t *testing.T) {
	t.Setenv("PORT", "9000")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr = %s", cfg.Server.Addr)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	in := Default()
	in.Render.Template = "D"
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "")
	out, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[render\nscale ="), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestCardConfig(t *testing.T) {
	c := Default()
	c.Render.Format = "CR100 (Oversized)"
	c.Render.Template = "Style B"
	cc, err := c.CardConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cc.Format != "CR100" || cc.Template != "B" || cc.PrimaryColor.Hex() != "#008080" {
		t.Fatalf("card config = %+v", cc)
	}

	c.Render.Template = "Z"
	if _, err := c.CardConfig(); err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}

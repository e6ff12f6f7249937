package config

import (
	"reflect"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "portfolio")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "portfolio")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
	t.Setenv("MINIO_BUCKET", "portfolio")
	t.Setenv("MINIO_SSL", "")
	t.Setenv("SEED_CATEGORIES", "")
	t.Setenv("LAYOUT_CYCLE", "")
	t.Setenv("MAX_UPLOAD_MB", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.SeedCategories, defaultSeedCategories) {
		t.Errorf("seed categories = %v", cfg.SeedCategories)
	}
	if !reflect.DeepEqual(cfg.LayoutCycle, []string{"horizontal", "vertical", "double"}) {
		t.Errorf("layout cycle = %v", cfg.LayoutCycle)
	}
	if cfg.MaxUploadBytes != 50*1024*1024 {
		t.Errorf("max upload = %d, want 50 MiB", cfg.MaxUploadBytes)
	}
	if cfg.MinioSSL {
		t.Error("minio SSL defaulted to true")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SEED_CATEGORIES", " Editorial , Motion ,, ")
	t.Setenv("LAYOUT_CYCLE", "wide,tall")
	t.Setenv("MAX_UPLOAD_MB", "10")
	t.Setenv("MINIO_SSL", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.SeedCategories, []string{"Editorial", "Motion"}) {
		t.Errorf("seed categories = %v", cfg.SeedCategories)
	}
	if !reflect.DeepEqual(cfg.LayoutCycle, []string{"wide", "tall"}) {
		t.Errorf("layout cycle = %v", cfg.LayoutCycle)
	}
	if cfg.MaxUploadBytes != 10*1024*1024 {
		t.Errorf("max upload = %d, want 10 MiB", cfg.MaxUploadBytes)
	}
	if !cfg.MinioSSL {
		t.Error("minio SSL override ignored")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"missing database host", "DB_HOST", ""},
		{"missing minio endpoint", "MINIO_ENDPOINT", ""},
		{"bad ssl flag", "MINIO_SSL", "maybe"},
		{"bad upload limit", "MAX_UPLOAD_MB", "huge"},
		{"zero upload limit", "MAX_UPLOAD_MB", "0"},
		{"empty layout cycle", "LAYOUT_CYCLE", " , ,"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := LoadConfig(); err == nil {
				t.Fatal("LoadConfig accepted invalid environment")
			}
		})
	}
}

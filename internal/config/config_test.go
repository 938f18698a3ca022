package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WIKIFETCH_SOURCE_PROVIDER", "WIKIFETCH_SOURCE_ENDPOINT",
		"WIKIFETCH_SOURCE_API_TOKEN", "WIKIFETCH_SOURCE_PAGE_SIZE",
		"WIKIFETCH_FETCH_LANGUAGE", "WIKIFETCH_FETCH_OUTPUT_DIR",
		"WIKIFETCH_FETCH_SPLIT", "WIKIFETCH_LOG_FORMAT", "WIKIFETCH_LOG_LEVEL",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Source.Provider != "huggingface" {
		t.Fatalf("expected default provider 'huggingface', got %q", cfg.Source.Provider)
	}
	if cfg.Source.PageSize != 100 {
		t.Fatalf("expected default page size 100, got %d", cfg.Source.PageSize)
	}
	if cfg.Fetch.Language != "simple" {
		t.Fatalf("expected default language 'simple', got %q", cfg.Fetch.Language)
	}
	if cfg.Fetch.OutputDir != "data/wikipedia" {
		t.Fatalf("expected default output dir 'data/wikipedia', got %q", cfg.Fetch.OutputDir)
	}
	if cfg.Fetch.Split != "train" {
		t.Fatalf("expected default split 'train', got %q", cfg.Fetch.Split)
	}
	if cfg.Log.Format != "text" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WIKIFETCH_FETCH_LANGUAGE", "en")
	t.Setenv("WIKIFETCH_SOURCE_PAGE_SIZE", "50")
	t.Setenv("WIKIFETCH_LOG_FORMAT", "json")

	cfg := Load()

	if cfg.Fetch.Language != "en" {
		t.Fatalf("expected language 'en', got %q", cfg.Fetch.Language)
	}
	if cfg.Source.PageSize != 50 {
		t.Fatalf("expected page size 50, got %d", cfg.Source.PageSize)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected log format 'json', got %q", cfg.Log.Format)
	}
}

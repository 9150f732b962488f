package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("expected Addr=0.0.0.0:8080, got %s", cfg.Server.Addr())
	}
	if cfg.Dataset.Path != "data/sample_sales_data.csv" {
		t.Errorf("expected default dataset path, got %s", cfg.Dataset.Path)
	}
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.yaml")
	content := `server:
  host: "127.0.0.1"
  port: 9000
dataset:
  path: ""
  url: "https://example.com/sales.csv"`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected Host=127.0.0.1, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected Port=9000, got %d", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "" {
		t.Errorf("expected empty dataset path, got %s", cfg.Dataset.Path)
	}
	if cfg.Dataset.URL != "https://example.com/sales.csv" {
		t.Errorf("expected dataset URL, got %s", cfg.Dataset.URL)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("server: host: bad"), 0o644)
	if err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err = Load(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"T", true, false},
		{"True", true, false},
		{"true", true, false},
		{"1", true, false},
		{"F", false, false},
		{"False", false, false},
		{"false", false, false},
		{"0", false, false},
		{"TRUE", false, true},
		{"yes", false, true},
		{"", false, true},
		{"t", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBool(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBool) {
				t.Errorf("error %v should wrap ErrInvalidBool", err)
			}
			if got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"empty paths get defaults", Config{Lang: "en"}, false},
		{"missing lang", Config{}, true},
		{"lang with separator", Config{Lang: "ja/extra"}, true},
		{"bad log level", Config{Lang: "ja", Logging: LoggingConfig{Level: "loud"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := Config{Lang: "en"}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.RootXMLDir != DefaultRootXMLDir || cfg.Paths.DataDir != DefaultDataDir {
		t.Errorf("defaults not applied: %+v", cfg.Paths)
	}
}

func TestDirs(t *testing.T) {
	cfg := Default()
	if got, want := cfg.InputDir(), filepath.Join("OpenSubtitles", "xml", "ja"); got != want {
		t.Errorf("InputDir() = %q, want %q", got, want)
	}
	if got, want := cfg.OutputDir(), filepath.Join("parsed", "ja"); got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}
	if got, want := cfg.DocxDir(), filepath.Join("docx", "ja"); got != want {
		t.Errorf("DocxDir() = %q, want %q", got, want)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
paths:
  root_xml_dir: "corpus/xml"
  data_dir: "out"
lang: en
overwrite: F
logging:
  level: debug
export:
  docx: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Paths.RootXMLDir != "corpus/xml" || cfg.Paths.DataDir != "out" {
		t.Errorf("Paths = %+v", cfg.Paths)
	}
	if cfg.Lang != "en" {
		t.Errorf("Lang = %q", cfg.Lang)
	}
	if cfg.Overwrite {
		t.Error("Overwrite should be false")
	}
	if !cfg.Export.Docx || cfg.Export.Dir != DefaultDocxDir {
		t.Errorf("Export = %+v", cfg.Export)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Lang != DefaultLang || !bool(cfg.Overwrite) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad bool", "overwrite: yes\n"},
		{"bool as list", "overwrite: [1]\n"},
		{"unknown key", "colour: blue\n"},
		{"broken yaml", "paths: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}

	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestFromArgsDefaults(t *testing.T) {
	cfg, err := FromArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("FromArgs() error = %v", err)
	}
	if cfg.Paths.RootXMLDir != DefaultRootXMLDir || cfg.Lang != DefaultLang ||
		cfg.Paths.DataDir != DefaultDataDir || !bool(cfg.Overwrite) || cfg.Watch || cfg.Export.Docx {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestFromArgsFlags(t *testing.T) {
	cfg, err := FromArgs([]string{
		"--rootXmlDir", "xml/",
		"--lang", "fr",
		"--overwrite", "False",
		"--dataDir", "data/",
		"--watch",
		"--docx",
	}, io.Discard)
	if err != nil {
		t.Fatalf("FromArgs() error = %v", err)
	}
	if cfg.Paths.RootXMLDir != "xml/" || cfg.Lang != "fr" || cfg.Paths.DataDir != "data/" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if bool(cfg.Overwrite) || !cfg.Watch || !cfg.Export.Docx {
		t.Errorf("unexpected flags %+v", cfg)
	}
}

func TestFromArgsFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "lang: en\noverwrite: 0\npaths:\n  data_dir: from-file\n")

	cfg, err := FromArgs([]string{"--config", path, "--lang", "de"}, io.Discard)
	if err != nil {
		t.Fatalf("FromArgs() error = %v", err)
	}
	if cfg.Lang != "de" {
		t.Errorf("Lang = %q, flag should win", cfg.Lang)
	}
	if cfg.Overwrite {
		t.Error("Overwrite from file should survive an unset flag")
	}
	if cfg.Paths.DataDir != "from-file" {
		t.Errorf("DataDir = %q", cfg.Paths.DataDir)
	}
}

func TestFromArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"bad overwrite", []string{"--overwrite", "maybe"}, ErrInvalidBool},
		{"unknown flag", []string{"--verbose"}, nil},
		{"stray argument", []string{"extra"}, nil},
		{"help", []string{"-h"}, flag.ErrHelp},
		{"missing config file", []string{"--config", "nope.yaml"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArgs(tt.args, io.Discard)
			if err == nil {
				t.Fatal("FromArgs() should fail")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load("../../config.example.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("example config should match defaults: %+v", cfg)
	}
}

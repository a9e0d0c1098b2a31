package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
)

// ErrInvalidBool is returned for boolean values outside the accepted literals
var ErrInvalidBool = errors.New("irregular format for boolean")

type Config struct {
	Paths     PathsConfig   `yaml:"paths"`
	Lang      string        `yaml:"lang"`
	Overwrite Bool          `yaml:"overwrite"`
	Watch     bool          `yaml:"watch"`
	Logging   LoggingConfig `yaml:"logging"`
	Export    ExportConfig  `yaml:"export"`
}

type PathsConfig struct {
	RootXMLDir string `yaml:"root_xml_dir"`
	DataDir    string `yaml:"data_dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ExportConfig struct {
	Docx bool   `yaml:"docx"`
	Dir  string `yaml:"dir"`
}

const (
	DefaultRootXMLDir = "OpenSubtitles/xml/"
	DefaultLang       = "ja"
	DefaultDataDir    = "parsed/"
	DefaultDocxDir    = "docx/"
	DefaultLogLevel   = "info"
)

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			RootXMLDir: DefaultRootXMLDir,
			DataDir:    DefaultDataDir,
		},
		Lang:      DefaultLang,
		Overwrite: true,
		Logging:   LoggingConfig{Level: DefaultLogLevel},
		Export:    ExportConfig{Dir: DefaultDocxDir},
	}
}

func (c *Config) Validate() error {
	if c.Lang == "" {
		return fmt.Errorf("lang is required")
	}
	if strings.ContainsAny(c.Lang, `/\`) {
		return fmt.Errorf("lang %q must be a single directory name", c.Lang)
	}

	if c.Paths.RootXMLDir == "" {
		c.Paths.RootXMLDir = DefaultRootXMLDir
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = DefaultDataDir
	}
	if c.Export.Dir == "" {
		c.Export.Dir = DefaultDocxDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// InputDir is the language subtree of the corpus
func (c *Config) InputDir() string {
	return filepath.Join(c.Paths.RootXMLDir, c.Lang)
}

// OutputDir receives one line file per document
func (c *Config) OutputDir() string {
	return filepath.Join(c.Paths.DataDir, c.Lang)
}

// DocxDir receives the optional transcript exports
func (c *Config) DocxDir() string {
	return filepath.Join(c.Export.Dir, c.Lang)
}

// ParseBool accepts T, True, true, 1, F, False, false and 0, nothing else
func ParseBool(s string) (bool, error) {
	switch s {
	case "T", "True", "true", "1":
		return true, nil
	case "F", "False", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
}

// Bool is a YAML boolean that only accepts the ParseBool literals
type Bool bool

func (b *Bool) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d is not a scalar", ErrInvalidBool, value.Line)
	}
	v, err := ParseBool(value.Value)
	if err != nil {
		return err
	}
	*b = Bool(v)
	return nil
}

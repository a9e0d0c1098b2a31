package config

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file on top of the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := loadInto(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func loadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// FromArgs builds the configuration from defaults, an optional --config
// file and then any flags set explicitly on the command line.
func FromArgs(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("extractor", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		configPath = fs.String("config", "", "Optional YAML config file")
		rootXMLDir = fs.String("rootXmlDir", DefaultRootXMLDir, "Path to root directory of xml files")
		lang       = fs.String("lang", DefaultLang, "Language subdirectory to parse")
		dataDir    = fs.String("dataDir", DefaultDataDir, "Path to directory processed data will be saved")
		logLevel   = fs.String("log-level", DefaultLogLevel, "Log level: debug, info, warn, error")
		watch      = fs.Bool("watch", false, "Keep running and extract documents added to the input tree")
		docx       = fs.Bool("docx", false, "Also export each processed document as a DOCX transcript")
		docxDir    = fs.String("docxDir", DefaultDocxDir, "Root directory for DOCX transcripts")
		overwrite  = fs.String("overwrite", "true", "Replace existing outputs (T/True/true/1 or F/False/false/0)")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := Default()
	if *configPath != "" {
		if err := loadInto(cfg, *configPath); err != nil {
			return nil, err
		}
	}

	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rootXmlDir":
			cfg.Paths.RootXMLDir = *rootXMLDir
		case "lang":
			cfg.Lang = *lang
		case "dataDir":
			cfg.Paths.DataDir = *dataDir
		case "overwrite":
			v, err := ParseBool(*overwrite)
			if err != nil {
				visitErr = err
				return
			}
			cfg.Overwrite = Bool(v)
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "watch":
			cfg.Watch = *watch
		case "docx":
			cfg.Export.Docx = *docx
		case "docxDir":
			cfg.Export.Dir = *docxDir
		}
	})
	if visitErr != nil {
		return nil, visitErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Package config provides the configuration management of the icon generator.
// Settings are loaded from YAML files in a hierarchy: built-in defaults,
// system config, the file named on the command line and finally the local
// config next to the executable. Later configurations override earlier ones.
// Environment variables override every file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"icongen/utilities/logger"
)

// ApplicationName is used to build the names of the configuration files.
const ApplicationName = "icongen"

// ErrNotFound is returned when a configuration layer does not exist.
var ErrNotFound = errors.New("configuration file not found")

// Configuration holds the settings of one generator run. The `yaml` tags map
// the keys of the configuration files, the `env` tags the ICONGEN_*
// environment overrides.
type Configuration struct {
	// Source image all icons are derived from
	SourceImage string `yaml:"source_image" env:"ICONGEN_SOURCE_IMAGE"`

	// Directory receiving the PNG set, the .ico and the .icns
	OutputDirectory string `yaml:"output_directory" env:"ICONGEN_OUTPUT_DIRECTORY"`
	IcoFile         string `yaml:"ico_file" env:"ICONGEN_ICO_FILE"`
	IcnsFile        string `yaml:"icns_file" env:"ICONGEN_ICNS_FILE"`

	// Optional icon description file (sizes and file names to produce)
	DescriptionFile string `yaml:"description_file" env:"ICONGEN_DESCRIPTION_FILE"`

	// Image processing
	Resampler     string `yaml:"resampler" env:"ICONGEN_RESAMPLER"`
	FallbackColor string `yaml:"fallback_color" env:"ICONGEN_FALLBACK_COLOR"`
	Workers       int    `yaml:"workers" env:"ICONGEN_WORKERS"`

	// Copy the intermediate .iconset directory here before it is removed
	KeepIconset string `yaml:"keep_iconset" env:"ICONGEN_KEEP_ICONSET"`

	// Logging
	LogLevel     string `yaml:"log_level" env:"ICONGEN_LOG_LEVEL"`
	LogDirectory string `yaml:"log_directory" env:"ICONGEN_LOG_DIRECTORY"`
	Silent       bool   `yaml:"silent" env:"ICONGEN_SILENT"`
}

// Defaults returns the built-in configuration. It reproduces the layout of
// a Tauri icons directory: everything is read from and written to the
// current directory.
func Defaults() Configuration {
	return Configuration{
		SourceImage:     "icon.png",
		OutputDirectory: ".",
		IcoFile:         "icon.ico",
		IcnsFile:        "icon.icns",
		Resampler:       "lanczos",
		FallbackColor:   "#4F46E5",
		Workers:         0,
		LogLevel:        "debug",
	}
}

// LoadConfiguration loads configuration from multiple locations in priority order.
// Configuration files are loaded in this order (later ones override earlier ones):
//  1. Default parameters (hardcoded)
//  2. System config: /etc/icongen.d/config.yaml
//  3. Command-line specified file, or icongen.config.yaml
//  4. Local config: ./config/icongen.yaml (relative to executable)
//
// Missing files are skipped, except for a file explicitly named on the
// command line. ICONGEN_* environment variables are applied last.
func LoadConfiguration(configFileFromCommandLine string) (Configuration, error) {
	explicit := configFileFromCommandLine != ""
	if !explicit {
		configFileFromCommandLine = ApplicationName + ".config"
	}

	layers := []layer{
		{path: "/etc/" + ApplicationName + ".d/config"},
		{path: configFileFromCommandLine, required: explicit},
	}

	if executable, err := os.Executable(); err == nil {
		localConfigurationFile := filepath.Join(filepath.Dir(executable), "config", ApplicationName)
		layers = append(layers, layer{path: localConfigurationFile})
	}

	return load(layers)
}

// layer is one configuration file location.
type layer struct {
	path     string // path with or without .yaml/.yml extension
	required bool   // a missing required layer is an error
}

// load applies the layers on top of the defaults and then the environment.
func load(layers []layer) (Configuration, error) {
	configuration := Defaults()

	for _, l := range layers {
		err := checkForFileAndLoad(l.path, &configuration)
		switch {
		case err == nil:
			logger.Debug("Loaded configuration from %s", l.path)
		case errors.Is(err, ErrNotFound) && !l.required:
			logger.Debug("No configuration at %s", l.path)
		default:
			return configuration, err
		}
	}

	if err := env.Parse(&configuration); err != nil {
		return configuration, fmt.Errorf("parse env: %w", err)
	}

	return configuration, nil
}

// checkForFileAndLoad looks for a YAML configuration file and loads it into
// configuration if found. Without an extension both .yaml and .yml are
// tried, .yaml first.
func checkForFileAndLoad(path string, configuration *Configuration) error {
	candidates := []string{path}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
		candidates = []string{path + ".yaml", path + ".yml"}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return loadYamlFile(candidate, configuration)
	}

	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

// loadYamlFile merges a YAML file into configuration. Keys absent from the
// file keep their current value.
func loadYamlFile(path string, configuration *Configuration) error {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read configuration %s: %w", path, err)
	}

	if err := yaml.Unmarshal(yamlFile, configuration); err != nil {
		return fmt.Errorf("parse configuration %s: %w", path, err)
	}

	return nil
}

// Validate checks the values that cannot be defaulted.
func (c Configuration) Validate() error {
	if c.SourceImage == "" {
		return errors.New("source image is not defined")
	}
	if c.OutputDirectory == "" {
		return errors.New("output directory is not defined")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// OutputPath resolves name against the output directory. Absolute names are
// returned unchanged.
func (c Configuration) OutputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDirectory, name)
}

package configuration

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/fractalglobal/utils/amount"
	"github.com/fractalglobal/utils/logging"
)

// Environment variables overriding the configuration file.
const (
	EnvLogLevel         = "FRACTAL_LOG_LEVEL"
	EnvDisplayPrecision = "FRACTAL_DISPLAY_PRECISION"
	EnvDisplaySymbol    = "FRACTAL_DISPLAY_SYMBOL"
)

// Configuration is the main configuration of the application that corresponds to the *.yaml file
// that holds the configuration.
type Configuration struct {
	Logger  logging.Config       `yaml:"logger"`
	Display amount.DisplayConfig `yaml:"display"`
}

// Default returns the configuration used when no file is given.
func Default() Configuration {
	return Configuration{
		Logger:  logging.Config{Level: "warn"},
		Display: amount.DisplayConfig{Precision: -1},
	}
}

// Read reads the configuration from the file and returns the Configuration with set fields according to the yaml setup.
// Fields missing from the file keep their Default values.
func Read(path string) (Configuration, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, err
	}

	main := Default()
	err = yaml.Unmarshal(buf, &main)
	if err != nil {
		return Configuration{}, fmt.Errorf("in file %q: %w", path, err)
	}

	return main, nil
}

// ApplyEnv overrides cfg with the FRACTAL_* variables found in the given .env files
// and then in the process environment, which takes precedence.
// Missing .env files are skipped.
func ApplyEnv(cfg Configuration, envFiles ...string) (Configuration, error) {
	vars := make(map[string]string)
	for _, f := range envFiles {
		read, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("in env file %q: %w", f, err)
		}
		for k, v := range read {
			vars[k] = v
		}
	}
	for _, k := range []string{EnvLogLevel, EnvDisplayPrecision, EnvDisplaySymbol} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	if v, ok := vars[EnvLogLevel]; ok {
		cfg.Logger.Level = v
	}
	if v, ok := vars[EnvDisplayPrecision]; ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDisplayPrecision, err)
		}
		cfg.Display.Precision = p
	}
	if v, ok := vars[EnvDisplaySymbol]; ok {
		s, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDisplaySymbol, err)
		}
		cfg.Display.ShowSymbol = s
	}
	return cfg, nil
}

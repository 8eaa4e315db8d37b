package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lukehollenback/zebitex/constants"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Zebitex ZebitexConfig `yaml:"zebitex"`
	Log     LogConfig     `yaml:"log"`
}

type ZebitexConfig struct {
	Key     string        `yaml:"key"`
	Secret  string        `yaml:"secret"`
	Dev     bool          `yaml:"dev"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

//
// Default returns the configuration used when nothing else is provided.
//
func Default() *Config {
	return &Config{
		Zebitex: ZebitexConfig{
			Timeout: constants.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  constants.DefaultLogLevel,
			Format: "text",
		},
	}
}

//
// Load builds the configuration in layers: defaults, then the YAML file at path (skipped if path is
// empty), then the dotenv file at envFile, then the process environment. A missing dotenv file is
// only an error if it was not the default one.
//
func Load(path string, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) || envFile != constants.DefaultEnvFile {
				return nil, errors.Wrapf(err, "failed to load env file %s", envFile)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

//
// applyEnv overlays the configuration with whatever ZEBITEX_* variables are set.
//
func (o *Config) applyEnv() error {
	if v, ok := os.LookupEnv(constants.EnvAccessKey); ok {
		o.Zebitex.Key = v
	}

	if v, ok := os.LookupEnv(constants.EnvSecret); ok {
		o.Zebitex.Secret = v
	}

	if v, ok := os.LookupEnv(constants.EnvURL); ok {
		o.Zebitex.URL = v
	}

	if v, ok := os.LookupEnv(constants.EnvLogLevel); ok {
		o.Log.Level = v
	}

	if v, ok := os.LookupEnv(constants.EnvDev); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", constants.EnvDev)
		}

		o.Zebitex.Dev = dev
	}

	return nil
}

//
// HasCredentials reports whether both halves of the API credentials are present.
//
func (o *ZebitexConfig) HasCredentials() bool {
	return o.Key != "" && o.Secret != ""
}

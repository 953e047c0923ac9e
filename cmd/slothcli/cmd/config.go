package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hyperhyperspace/pulsar/codec"
	"github.com/hyperhyperspace/pulsar/config"
)

const defaultConfigFileName = "config.toml"

var (
	defaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "pulsar")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFileName)

	// configKeys are the config.Config fields that can be set from a flag
	// of the same name.
	configKeys = []string{"modulus", "bytelen", "iterations", "progress-interval", "datadir"}
)

func bindFlags(flags *pflag.FlagSet) {
	def := config.DefaultConfig()

	flags.String("config", "", "Path to configuration file (toml, yaml or json)")
	flags.String("preset", "", fmt.Sprintf("Modulus preset by bit length, one of %v", config.Presets()))
	flags.String("logLevel", "info", "log level (debug, info, warn, error, dpanic, panic, fatal)")

	flags.String("modulus", def.Modulus, "The prime modulus in decimal, must be congruent to 3 mod 4")
	flags.Uint("bytelen", 0, "Width of encoded challenges and proofs in bytes (0 for the smallest that holds the modulus)")
	flags.Uint64("iterations", def.Iterations, "Number of sequential square roots per proof")
	flags.Uint64("progress-interval", def.ProgressInterval, "Iterations between progress reports")
	flags.String("datadir", def.DataDir, "Directory proofs are stored in")
}

// loadConfig resolves the config from, in increasing priority: the defaults,
// the config file, the preset and explicitly set flags.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	vip := viper.New()

	def := config.DefaultConfig()
	vip.SetDefault("modulus", def.Modulus)
	vip.SetDefault("iterations", def.Iterations)
	vip.SetDefault("progress-interval", def.ProgressInterval)
	vip.SetDefault("datadir", def.DataDir)

	fileLocation, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	if fileLocation != "" {
		fileLocation = smutil.GetCanonicalPath(fileLocation)
	}
	if err := loadConfigFile(fileLocation, vip); err != nil {
		return config.Config{}, err
	}

	preset, err := flags.GetString("preset")
	if err != nil {
		return config.Config{}, err
	}
	if preset != "" {
		presetCfg, err := config.Preset(preset)
		if err != nil {
			return config.Config{}, err
		}
		vip.Set("modulus", presetCfg.Modulus)
		vip.Set("bytelen", presetCfg.ByteLen)
	}

	// Ensure cli args are higher priority than the config file.
	for _, key := range configKeys {
		if f := flags.Lookup(key); f != nil && f.Changed {
			vip.Set(key, f.Value.String())
		}
	}

	var cfg config.Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DataDir = smutil.GetCanonicalPath(cfg.DataDir)

	if cfg.ByteLen == 0 {
		p, err := cfg.Prime()
		if err != nil {
			return config.Config{}, err
		}
		cfg.ByteLen = uint(codec.ByteLen(p))
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadConfigFile reads the given file into vip. With no file given the
// default location is tried, and its absence is not an error.
func loadConfigFile(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		if _, err := os.Stat(defaultConfigFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		fileLocation = defaultConfigFile
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Package config reads the runtime settings of the example programs from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvScene    = "SPRINGMASS_SCENE"
	EnvSteps    = "SPRINGMASS_STEPS"
	EnvLogEvery = "SPRINGMASS_LOG_EVERY"
	EnvDump     = "SPRINGMASS_DUMP"
	EnvDebug    = "SPRINGMASS_DEBUG"
)

type Config struct {
	// Scene file to load; empty means the program's built-in scene.
	Scene string
	Steps int
	// Log a summary every LogEvery steps, 0 disables.
	LogEvery int
	// Print the final state of every mass.
	Dump bool
	// Log every step from inside the space.
	Debug bool
}

func Default() Config {
	return Config{Steps: 600, LogEvery: 60}
}

// Load reads the env files, if any exist, then the environment.
// Variables already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, fmt.Errorf("config: loading %v: %w", existing, err)
		}
		log.Printf("Loaded environment from %v", existing)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()

	if v, err := GetEnvVariable(EnvScene); err == nil {
		cfg.Scene = v
	}

	var err error
	if cfg.Steps, err = intVar(EnvSteps, cfg.Steps); err != nil {
		return Config{}, err
	}
	if cfg.LogEvery, err = intVar(EnvLogEvery, cfg.LogEvery); err != nil {
		return Config{}, err
	}
	if cfg.Dump, err = boolVar(EnvDump, cfg.Dump); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = boolVar(EnvDebug, cfg.Debug); err != nil {
		return Config{}, err
	}

	if cfg.Steps < 0 || cfg.LogEvery < 0 {
		return Config{}, fmt.Errorf("config: %s and %s must not be negative", EnvSteps, EnvLogEvery)
	}
	return cfg, nil
}

var ErrUnset = errors.New("variable not set")

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("%w: %s", ErrUnset, v)
	}

	return b, nil
}

func intVar(name string, def int) (int, error) {
	s, err := GetEnvVariable(name)
	if err != nil {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", name, err)
	}
	return n, nil
}

func boolVar(name string, def bool) (bool, error) {
	s, err := GetEnvVariable(name)
	if err != nil {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", name, err)
	}
	return b, nil
}

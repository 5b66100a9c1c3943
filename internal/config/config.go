// Package config resolves the developer API key for the CLI.
//
// Resolution order: an explicitly supplied key, the YTWALK_API_KEY
// environment variable (a .env file in the working directory is loaded
// first), then the developer_key entry of the [youtube] section in an INI
// config file. The library itself never reads ambient configuration; it
// takes the key through its constructor, and this package exists so the CLI
// has somewhere to gather one from.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// EnvKey is the environment variable holding the developer key.
const EnvKey = "YTWALK_API_KEY"

// DefaultConfigFile is where ResolveKey looks when no path is given.
const DefaultConfigFile = "config.ini"

// ErrNoKey is returned when no source yields a developer key.
var ErrNoKey = errors.New("api key not provided: pass --key, set " + EnvKey + " or add [youtube] developer_key to " + DefaultConfigFile)

// ResolveKey returns the developer key from the first source that has one.
// configPath may be empty, in which case DefaultConfigFile is tried.
func ResolveKey(explicit, configPath string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	// a missing .env is fine; only the variable matters
	_ = godotenv.Load()
	if key := os.Getenv(EnvKey); key != "" {
		return key, nil
	}

	if configPath == "" {
		configPath = DefaultConfigFile
	}
	if _, err := os.Stat(configPath); err == nil {
		key, err := keyFromINI(configPath)
		if err != nil {
			return "", err
		}
		if key != "" {
			return key, nil
		}
	}

	return "", ErrNoKey
}

func keyFromINI(path string) (string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return cfg.Section("youtube").Key("developer_key").String(), nil
}

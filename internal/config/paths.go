package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "keabank"

// AppDataDir is where the config file and, by default, the data files live
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(configDir, appName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// DataDir resolves storage.dir, falling back to the app data directory
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir == "" {
		return AppDataDir()
	}
	return ExpandPath(c.Storage.Dir)
}

// resolve joins name onto the data directory unless it is already absolute
func (c *Config) resolve(name string) (string, error) {
	name, err := ExpandPath(name)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(name) {
		return name, nil
	}

	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func (c *Config) AccountsPath() (string, error) {
	return c.resolve(c.Storage.AccountsFile)
}

func (c *Config) TransactionsPath() (string, error) {
	return c.resolve(c.Storage.TransactionsFile)
}

func (c *Config) DBPath() (string, error) {
	return c.resolve(c.Storage.DBFile)
}

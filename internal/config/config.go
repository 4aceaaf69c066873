package config

import "github.com/hance08/keabank/internal/constants"

type Config struct {
	Storage    StorageConfig `mapstructure:"storage"`
	Log        LogConfig     `mapstructure:"log"`
	Admin      bool          `mapstructure:"admin"`
	ConfigPath string        `mapstructure:"-"`
}

type StorageConfig struct {
	Backend          string `mapstructure:"backend"`
	Dir              string `mapstructure:"dir"`
	AccountsFile     string `mapstructure:"accounts_file"`
	TransactionsFile string `mapstructure:"transactions_file"`
	DBFile           string `mapstructure:"db_file"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:          constants.BackendFile,
			Dir:              "",
			AccountsFile:     constants.DefaultAccountsFile,
			TransactionsFile: constants.DefaultTransactionsFile,
			DBFile:           constants.DefaultDBFile,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Defaults flattens NewDefault into viper style keys
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"storage.backend":           d.Storage.Backend,
		"storage.dir":               d.Storage.Dir,
		"storage.accounts_file":     d.Storage.AccountsFile,
		"storage.transactions_file": d.Storage.TransactionsFile,
		"storage.db_file":           d.Storage.DBFile,
		"log.level":                 d.Log.Level,
		"log.file":                  d.Log.File,
	}
}

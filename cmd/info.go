package cmd

import (
	"os"

	"github.com/hance08/keabank/internal/config"
	"github.com/hance08/keabank/internal/constants"
	"github.com/hance08/keabank/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, storage paths, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: application.Service.Config,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	var files []views.FileStatus
	if r.cfg.Storage.Backend == constants.BackendSQLite {
		files = append(files, fileStatus("Database", r.cfg.DBPath))
	} else {
		files = append(files,
			fileStatus("Account Store", r.cfg.AccountsPath),
			fileStatus("Transaction Log", r.cfg.TransactionsPath),
		)
	}

	items := views.SystemInfoItem{
		ConfigPath: configPath,
		Backend:    r.cfg.Storage.Backend,
		AppDataDir: getAppDataDirOrUnknown(),
		Files:      files,
		LogLevel:   r.cfg.Log.Level,
	}

	return views.RenderSystemInfo(items)
}

func fileStatus(label string, resolve func() (string, error)) views.FileStatus {
	path, err := resolve()
	if err != nil {
		return views.FileStatus{Label: label, Path: "Unknown"}
	}

	_, statErr := os.Stat(path)
	return views.FileStatus{Label: label, Path: path, Exists: statErr == nil}
}

func getAppDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

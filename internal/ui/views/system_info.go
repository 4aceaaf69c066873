package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath string
	Backend    string
	AppDataDir string
	Files      []FileStatus
	LogLevel   string
}

type FileStatus struct {
	Label  string
	Path   string
	Exists bool
}

func RenderSystemInfo(data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Backend", data.Backend},
		{"AppData Directory", data.AppDataDir},
		{"Log Level", data.LogLevel},
	}

	for _, f := range data.Files {
		status := pterm.Green("Found")
		if !f.Exists {
			status = pterm.Red("Not Found (Will be created)")
		}
		tableData = append(tableData, []string{f.Label, f.Path + "  " + status})
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

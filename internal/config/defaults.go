package config

const (
	defaultStateDir       = "~/.local/share/culler"
	defaultBackupFile     = "culler_backup.json"
	defaultMinSizeMB      = 100
	defaultFuzzyThreshold = 0.85
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

func defaultExtensions() []string {
	return []string{".mkv", ".mp4", ".avi", ".ts", ".m4v", ".mov", ".wmv", ".flv", ".webm"}
}

func defaultExtrasFolders() []string {
	return []string{"extras", "bonus", "behind the scenes", "deleted scenes", "featurettes", "trailers", "samples"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:   defaultStateDir,
			BackupFile: defaultBackupFile,
		},
		Scan: Scan{
			Extensions:    defaultExtensions(),
			ExtrasFolders: defaultExtrasFolders(),
			MinSizeMB:     defaultMinSizeMB,
		},
		Match: Match{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

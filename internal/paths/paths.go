package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "launchicon"
	ConfigFileName = "launchicon.json"
	HistoryDBName  = "history.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// EnsureParent creates the parent directory of path, including any
// missing intermediate directories. An existing directory is not an error.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, DirPerm)
}

// HistoryPath returns the location of the generation history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), HistoryDBName)
}

// DataDir returns the platform-specific data directory for launchicon:
//   - Windows: %APPDATA%\launchicon
//   - Unix:    ~/.config/launchicon
//
// Falls back to os.TempDir()/launchicon if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

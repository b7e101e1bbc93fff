package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
)

// DevDirName is the sandbox directory (under os.TempDir) used by development runs.
const DevDirName = "noteapp-dev"

// DefaultStorePath returns ~/Documents/NoteApp.notes.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "Documents", fs.DefaultFileName), nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveStorePath determines the actual store file based on safety rules.
// With forceTemp the file is re-rooted into the sandbox so development runs
// never touch the user's real notes. Paths already under os.TempDir are kept.
func ResolveStorePath(userPath string, forceTemp bool) string {
	if !forceTemp {
		return userPath
	}

	clean := filepath.Clean(userPath)
	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if userPath == "" || name == "." || name == string(os.PathSeparator) {
		name = fs.DefaultFileName
	}
	return filepath.Join(os.TempDir(), DevDirName, name)
}

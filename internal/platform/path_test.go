package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/noteapp/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStorePath(t *testing.T) {
	t.Parallel()

	devBase := filepath.Join(os.TempDir(), platform.DevDirName)
	insideTemp := filepath.Join(os.TempDir(), "some-test", "NoteApp.notes")

	tests := []struct {
		name      string
		userPath  string
		forceTemp bool
		expected  string
	}{
		{
			name:     "Normal Mode - Specific Path",
			userPath: "/home/user/Documents/NoteApp.notes",
			expected: "/home/user/Documents/NoteApp.notes",
		},
		{
			name:      "Dev Mode - Home Path Is Sandboxed",
			userPath:  "/home/user/Documents/NoteApp.notes",
			forceTemp: true,
			expected:  filepath.Join(devBase, "NoteApp.notes"),
		},
		{
			name:      "Dev Mode - Relative Name",
			userPath:  "../work/my.notes",
			forceTemp: true,
			expected:  filepath.Join(devBase, "my.notes"),
		},
		{
			name:      "Dev Mode - Empty Path",
			userPath:  "",
			forceTemp: true,
			expected:  filepath.Join(devBase, "NoteApp.notes"),
		},
		{
			name:      "Dev Mode - Exception for Temp Dir",
			userPath:  insideTemp,
			forceTemp: true,
			expected:  insideTemp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, platform.ResolveStorePath(tt.userPath, tt.forceTemp))
		})
	}
}

func TestDefaultStorePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path, err := platform.DefaultStorePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Documents", "NoteApp.notes"), path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := platform.ExpandPath("~/notes/x.notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes", "x.notes"), got)

	got, err = platform.ExpandPath("/abs/x.notes")
	require.NoError(t, err)
	assert.Equal(t, "/abs/x.notes", got)
}

func TestIsDevRun(t *testing.T) {
	// Test binaries end in .test, so this is always a dev run.
	assert.True(t, platform.IsDevRun())
}

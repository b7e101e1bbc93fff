package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between test runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execCLI executes the root command against a store in a temp directory.
func execCLI(t *testing.T, store string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	full := append([]string{"--store", store, "--config", filepath.Join(filepath.Dir(store), "none.yaml")}, args...)
	rootCmd.SetArgs(full)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// runCLI is execCLI with both streams combined.
func runCLI(t *testing.T, store string, args ...string) (string, error) {
	t.Helper()
	stdout, stderr, err := execCLI(t, store, args...)
	return stdout + stderr, err
}

func listTitles(t *testing.T, store string) []string {
	t.Helper()
	out, _, err := execCLI(t, store, "list", "--json")
	require.NoError(t, err)

	var views []noteView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	titles := make([]string, len(views))
	for i, v := range views {
		titles[i] = v.Title
	}
	return titles
}

func TestCLI_FirstRun(t *testing.T) {
	store := filepath.Join(t.TempDir(), "NoteApp.notes")

	out, err := runCLI(t, store, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes yet")

	_, statErr := os.Stat(store)
	assert.True(t, os.IsNotExist(statErr), "list must not create the store")
}

func TestCLI_CreateEditDelete(t *testing.T) {
	store := filepath.Join(t.TempDir(), "NoteApp.notes")

	for _, args := range [][]string{
		{"add", "--title", "A", "--category", "work"},
		{"add", "--title", "B", "--category", "Дом", "--content", "b"},
		{"add", "--title", "C"},
	} {
		_, err := runCLI(t, store, args...)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"A", "B", "C"}, listTitles(t, store))

	out, err := runCLI(t, store, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Note deleted: [1] B")
	assert.Equal(t, []string{"A", "C"}, listTitles(t, store))

	out, err = runCLI(t, store, "delete", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing deleted")
	assert.Equal(t, []string{"A", "C"}, listTitles(t, store))

	_, err = runCLI(t, store, "edit", "0", "--title", "A2", "--category", "finance")
	require.NoError(t, err)

	out, err = runCLI(t, store, "list", "--category", "finance")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] A2 (Финансы)")
	assert.NotContains(t, out, "C")

	_, err = runCLI(t, store, "edit", "0", "--title", "  ")
	assert.ErrorIs(t, err, core.ErrEmptyTitle)

	_, err = runCLI(t, store, "add", "--title", "x", "--category", "garden")
	assert.ErrorIs(t, err, core.ErrUnknownCategory)
}

func TestCLI_ShowByID(t *testing.T) {
	store := filepath.Join(t.TempDir(), "NoteApp.notes")
	_, err := runCLI(t, store, "add", "--title", "Groceries", "--category", "home", "--content", "milk, eggs")
	require.NoError(t, err)

	out, _, err := execCLI(t, store, "show", "0", "--json")
	require.NoError(t, err)
	var v noteView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "milk, eggs", v.Content)
	assert.Equal(t, "Дом", v.Category)
	assert.Equal(t, v.CreatedAt, v.UpdatedAt)

	out, err = runCLI(t, store, "show", "--id", v.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "milk, eggs")

	_, err = runCLI(t, store, "delete", "--id", v.ID)
	require.NoError(t, err)
	assert.Empty(t, listTitles(t, store))
}

func TestCLI_CorruptStore(t *testing.T) {
	store := filepath.Join(t.TempDir(), "NoteApp.notes")
	require.NoError(t, os.WriteFile(store, []byte("{broken"), 0644))

	_, err := runCLI(t, store, "list")
	require.ErrorIs(t, err, core.ErrCorruptStore)
	assert.Contains(t, describeError(err), "--recover")

	out, err := runCLI(t, store, "--recover", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "has been moved to")
}

func TestCLI_ReadOnly(t *testing.T) {
	store := filepath.Join(t.TempDir(), "NoteApp.notes")
	_, err := runCLI(t, store, "--read-only", "add", "--title", "x")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, statErr := os.Stat(store)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLI_ExportImport(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "NoteApp.notes")
	_, err := runCLI(t, store, "add", "--title", "Report", "--category", "work", "--content", "Q3")
	require.NoError(t, err)

	yamlPath := filepath.Join(dir, "export.yaml")
	_, err = runCLI(t, store, "export", yamlPath)
	require.NoError(t, err)
	raw, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "category: Работа")

	out, err := runCLI(t, store, "export", "-", "--format", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Report")

	other := filepath.Join(dir, "Other.notes")
	out, err = runCLI(t, other, "import", yamlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 notes.")
	assert.Equal(t, []string{"Report"}, listTitles(t, other))

	_, err = runCLI(t, store, "export", "-")
	assert.Error(t, err)
}

func TestCLI_ImportInvalidFile(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "NoteApp.notes")
	_, err := runCLI(t, store, "add", "--title", "Keep", "--category", "misc")
	require.NoError(t, err)

	bad := filepath.Join(dir, "other.json")
	doc := `{"notes": [{"title": "x", "category": "NotARealCategory", "content": "", "created_at": "2024-01-01T00:00:00", "updated_at": "2024-01-01T00:00:00"}]}`
	require.NoError(t, os.WriteFile(bad, []byte(doc), 0644))

	_, err = runCLI(t, store, "import", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidImport)
	assert.NotErrorIs(t, err, core.ErrCorruptStore)

	msg := describeError(err)
	assert.Contains(t, msg, bad)
	assert.Contains(t, msg, "NotARealCategory")
	assert.NotContains(t, msg, "--recover")
	assert.NotContains(t, msg, "unreadable")

	assert.Equal(t, []string{"Keep"}, listTitles(t, store))
}

func TestCLI_StatusAndCategories(t *testing.T) {
	store := filepath.Join(t.TempDir(), "NoteApp.notes")

	out, _, err := execCLI(t, store, "status")
	require.NoError(t, err)
	var state map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, store, state["file-store"]["path"])
	assert.EqualValues(t, 0, state["service"]["notes"])

	out, _, err = execCLI(t, store, "categories")
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(out, "\n"))
	assert.Contains(t, out, "health     Здоровье и Спорт")
}

func TestParseTarget(t *testing.T) {
	tg, err := parseTarget([]string{"3"}, "")
	require.NoError(t, err)
	assert.Equal(t, target{index: 3}, tg)

	tg, err = parseTarget(nil, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tg.id)

	tg, err = parseTarget([]string{"abc"}, "")
	require.NoError(t, err)
	assert.Equal(t, "abc", tg.id)

	_, err = parseTarget(nil, "")
	assert.Error(t, err)
}

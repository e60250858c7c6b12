package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/packlist/internal/model"
)

// run executes packlist against an isolated data dir.
func run(t *testing.T, dataDir string, argv ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("PACKLIST_CONFIG", filepath.Join(t.TempDir(), "none.toml"))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", dataDir, "--no-color"}, argv...))
	err := root.Execute()
	return out.String(), err
}

func TestListShowsSeed(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekend Trip")
	assert.Contains(t, out, "Business Trip")
	assert.Contains(t, out, "(4 items)")

	_, statErr := os.Stat(filepath.Join(dir, "packing-templates.json"))
	assert.True(t, os.IsNotExist(statErr), "listing must not write")
}

func TestNewAddShowRm(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "new", "Camp")
	require.NoError(t, err)

	_, err = run(t, dir, "new", "Camp")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, dir, "add", "Camp", "Tent")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--category", "clothing", "Camp", "Rain", "jacket")
	require.NoError(t, err)

	out, err := run(t, dir, "show", "Camp")
	require.NoError(t, err)
	assert.Contains(t, out, "Tent")
	assert.Contains(t, out, "[Clothing] Rain jacket")

	out, err = run(t, dir, "show", "Camp", "--filter", "clothing")
	require.NoError(t, err)
	assert.NotContains(t, out, "Tent")
	assert.Contains(t, out, "Rain jacket")

	_, err = run(t, dir, "rm", "Camp", "1")
	require.NoError(t, err)

	out, err = run(t, dir, "show", "Camp")
	require.NoError(t, err)
	assert.NotContains(t, out, "Tent")
	assert.Contains(t, out, "Rain jacket")
}

func TestRmByID(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "Weekend Trip", "Hat")
	require.NoError(t, err)

	out, err := run(t, dir, "export", "Weekend Trip")
	require.NoError(t, err)
	var tpl model.Template
	require.NoError(t, json.Unmarshal([]byte(out), &tpl))
	require.Len(t, tpl.Items, 5)

	_, err = run(t, dir, "rm", "Weekend Trip", tpl.Items[4].ID)
	require.NoError(t, err)

	out, err = run(t, dir, "export", "Weekend Trip")
	require.NoError(t, err)
	assert.NotContains(t, out, "Hat")
}

func TestRmCountsWithinFilter(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "new", "Camp")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "Camp", "Tent")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "-c", "clothing", "Camp", "Jacket")
	require.NoError(t, err)

	out, err := run(t, dir, "show", "Camp", "--filter", "clothing")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, "Jacket")

	_, err = run(t, dir, "rm", "Camp", "1", "--filter", "clothing")
	require.NoError(t, err)

	out, err = run(t, dir, "export", "Camp")
	require.NoError(t, err)
	var tpl model.Template
	require.NoError(t, json.Unmarshal([]byte(out), &tpl))
	require.Len(t, tpl.Items, 1)
	assert.Equal(t, "Tent", tpl.Items[0].Name)
}

func TestItemLinesTruncatesByWidth(t *testing.T) {
	long := strings.Repeat("é", 40) + strings.Repeat("荷", 20)
	lines := itemLines([]model.Item{{ID: "1", Name: long, Category: model.Other, Quantity: 1}}, false)
	require.Len(t, lines, 1)
	assert.True(t, utf8.ValidString(lines[0]))
	assert.Contains(t, lines[0], "...")
	assert.NotContains(t, lines[0], long)

	short := "寝袋"
	lines = itemLines([]model.Item{{ID: "2", Name: short, Category: model.Other, Quantity: 1}}, false)
	assert.Contains(t, lines[0], short)
	assert.NotContains(t, lines[0], "...")
}

func TestRmOutOfRange(t *testing.T) {
	_, err := run(t, t.TempDir(), "rm", "Weekend Trip", "9")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestUnknownTemplateSuggests(t *testing.T) {
	_, err := run(t, t.TempDir(), "show", "Weekend Trp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Weekend Trip"`)
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, t.TempDir(), "show", "Zzzzzz")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestAddRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "--category", "food", "Weekend Trip", "Apple")
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, dir, "add", "Weekend Trip", "   ")
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, dir, "add", "Weekend Trip")
	assert.Equal(t, 2, ExitCode(err))
}

func TestExportFormats(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "export", "Business Trip", "--format", "yaml")
	require.NoError(t, err)
	var tpl model.Template
	require.NoError(t, yaml.Unmarshal([]byte(out), &tpl))
	assert.Equal(t, "Business Trip", tpl.Name)
	assert.Len(t, tpl.Items, 4)

	out, err = run(t, dir, "export", "Business Trip", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[items]]")
	assert.Contains(t, out, "Laptop")

	_, err = run(t, dir, "export", "Business Trip", "--format", "xml")
	assert.Equal(t, 2, ExitCode(err))
}

func TestSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "--storage", "sqlite", "new", "Ski")
	require.NoError(t, err)

	out, err := run(t, dir, "--storage", "sqlite", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ski")

	_, err = os.Stat(filepath.Join(dir, "packlist.sqlite"))
	assert.NoError(t, err)

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Ski", "json backend is separate")
}

func TestBadBackendFlag(t *testing.T) {
	_, err := run(t, t.TempDir(), "--storage", "postgres", "list")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestBadThemeFlag(t *testing.T) {
	_, err := run(t, t.TempDir(), "--theme", "neno", "list")
	require.Error(t, err)
	assert.ErrorContains(t, err, "ui.theme")
	assert.Equal(t, 2, ExitCode(err))
}

func TestFindItem(t *testing.T) {
	items := []model.Item{{ID: "a", Name: "One"}, {ID: "b", Name: "Two"}}
	it, ok := findItem(items, "2")
	assert.True(t, ok)
	assert.Equal(t, "b", it.ID)
	_, ok = findItem(items, "0")
	assert.False(t, ok)
	it, ok = findItem(items, "a")
	assert.True(t, ok)
	assert.Equal(t, "One", it.Name)
	_, ok = findItem(items, "zz")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	s, ok := suggest("camp", []string{"Camp", "Beach"})
	assert.True(t, ok)
	assert.Equal(t, "Camp", s)

	_, ok = suggest("Mountains", []string{"Camp", "Beach"})
	assert.False(t, ok)

	_, ok = suggest("x", nil)
	assert.False(t, ok)
}

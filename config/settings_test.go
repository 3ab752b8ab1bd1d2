package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestWithDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	assert.Empty(t, settings.Exclude)
	assert.Equal(t, "CHANGELOG.md", settings.Changelog.File)
	assert.Equal(t, "# Changelog", settings.Changelog.Title)
}

func TestWithYamlFile_ValidFile(t *testing.T) {
	configContent := `exclude:
  - "*.snap"
  - "vendor/**"
changelog:
  file: docs/CHANGES.md
  title: "# Release notes"
`
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("komp.yml", []byte(configContent), 0644))

	settings := WithYamlFile()

	assert.Equal(t, []string{"*.snap", "vendor/**"}, settings.Exclude)
	assert.Equal(t, "docs/CHANGES.md", settings.Changelog.File)
	assert.Equal(t, "# Release notes", settings.Changelog.Title)
}

func TestWithYamlFile_PartialFileKeepsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("komp.yaml", []byte("exclude: [\"*.pb.go\"]\n"), 0644))

	settings := WithYamlFile()

	assert.Equal(t, []string{"*.pb.go"}, settings.Exclude)
	assert.Equal(t, DefaultChangelogFile, settings.Changelog.File)
	assert.Equal(t, DefaultChangelogTitle, settings.Changelog.Title)
}

func TestWithYamlFile_InvalidFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("komp.yml", []byte("exclude: [unclosed\n"), 0644))

	assert.Equal(t, WithDefaultSettings(), WithYamlFile())
}

func TestWithYamlFile_NoFile(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Equal(t, WithDefaultSettings(), WithYamlFile())
}

func TestWithYamlFile_Subdirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "service"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "service", "komp.yml"), []byte("changelog:\n  file: service/CHANGELOG.md\n"), 0644))
	chdir(t, dir)

	settings := WithYamlFile()

	assert.Equal(t, "service/CHANGELOG.md", settings.Changelog.File)
}

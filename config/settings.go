package config

import (
	"os"
	"path/filepath"

	"github.com/bitrise-io/komp/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultChangelogFile  = "CHANGELOG.md"
	DefaultChangelogTitle = "# Changelog"
)

var settingsFilenames = []string{"komp.yml", "komp.yaml"}

type Changelog struct {
	File  string `yaml:"file"`
	Title string `yaml:"title"`
}

// Settings are the per-repository options read from komp.yml
type Settings struct {
	Exclude   []string  `yaml:"exclude"`
	Changelog Changelog `yaml:"changelog"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Changelog: Changelog{
			File:  DefaultChangelogFile,
			Title: DefaultChangelogTitle,
		},
	}
}

// WithYamlFile loads settings from komp.yml in the working directory, or the
// first one found below it. Missing or invalid files yield the defaults.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	filePath := findSettingsFile()
	if filePath == "" {
		logger.Debugf("No settings file found, using default settings")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read settings file %s: %v", filePath, err)
		return settings
	}

	parsed := WithDefaultSettings()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logger.Warnf("Failed to parse YAML file %s: %v", filePath, err)
		return settings
	}

	if parsed.Changelog.File == "" {
		parsed.Changelog.File = DefaultChangelogFile
	}
	if parsed.Changelog.Title == "" {
		parsed.Changelog.Title = DefaultChangelogTitle
	}

	logger.Infof("Using settings from YAML file: %s", filePath)
	return parsed
}

func findSettingsFile() string {
	for _, name := range settingsFilenames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}

	var filePath string
	_ = filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if filePath != "" {
			return filepath.SkipAll
		}
		if info.IsDir() && info.Name() == ".git" {
			return filepath.SkipDir
		}
		for _, name := range settingsFilenames {
			if !info.IsDir() && info.Name() == name {
				filePath = path
				return filepath.SkipAll
			}
		}
		return nil
	})
	return filePath
}

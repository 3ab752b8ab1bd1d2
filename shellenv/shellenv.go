// Package shellenv persists komp's environment variables for future shells:
// a managed block in the user's shell rc file, or setx on Windows.
package shellenv

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bitrise-io/komp/logger"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

const (
	blockStart = "# >>> komp >>>"
	blockEnd   = "# <<< komp <<<"
)

// RCFile picks the rc file a login shell of the given kind reads
func RCFile(shell, goos string) string {
	switch {
	case strings.Contains(shell, "zsh"):
		return ".zshrc"
	case strings.Contains(shell, "bash") && goos == "darwin":
		return ".bash_profile"
	default:
		return ".bashrc"
	}
}

// Result describes where the values were stored
type Result struct {
	// Path of the rc file, empty on Windows
	Path string
	// RCFile is the rc file name relative to the home directory
	RCFile string
	// Windows values only reach terminals opened afterwards
	RestartRequired bool
}

// Store writes variables to the user's environment
type Store struct {
	Home  string
	Shell string
	GOOS  string
	// Run executes an external command, used for setx
	Run func(name string, args ...string) error
}

// NewStore creates a Store for the current user and platform
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve home directory")
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/bash"
	}

	return &Store{
		Home:  home,
		Shell: shell,
		GOOS:  runtime.GOOS,
		Run: func(name string, args ...string) error {
			out, err := exec.Command(name, args...).CombinedOutput()
			if err != nil {
				return errors.Wrapf(err, "%s failed: %s", name, strings.TrimSpace(string(out)))
			}
			return nil
		},
	}, nil
}

func (s *Store) rcPath() (string, string) {
	name := RCFile(s.Shell, s.GOOS)
	return filepath.Join(s.Home, name), name
}

// Persist stores the values, replacing any earlier komp block
func (s *Store) Persist(values map[string]string) (Result, error) {
	if s.GOOS == "windows" {
		return s.persistWindows(values)
	}

	path, name := s.rcPath()
	result := Result{Path: path, RCFile: name}

	var block strings.Builder
	block.WriteString(blockStart + "\n")
	for _, k := range sortedKeys(values) {
		line, err := exportLine(k, values[k])
		if err != nil {
			return result, err
		}
		block.WriteString(line + "\n")
	}
	block.WriteString(blockEnd + "\n")

	current, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return result, errors.Wrapf(err, "failed to read %s", path)
	}
	if os.IsNotExist(err) {
		logger.Infof("Creating %s", path)
	}

	updated := replaceBlock(string(current), block.String())
	if err := os.WriteFile(path, []byte(updated), 0600); err != nil {
		return result, errors.Wrapf(err, "failed to update %s", path)
	}
	return result, nil
}

func (s *Store) persistWindows(values map[string]string) (Result, error) {
	result := Result{RestartRequired: true}

	for _, k := range sortedKeys(values) {
		logger.Debugf("Running setx for %s", k)
		if err := s.Run("setx", k, values[k]); err != nil {
			return result, errors.Wrapf(err, "failed to set %s", k)
		}
	}
	return result, nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// exportLine renders a single-quoted export, which the shell takes literally
func exportLine(key, value string) (string, error) {
	if strings.ContainsAny(value, "'\n\r") {
		return "", errors.Newf("value for %s must not contain quotes or line breaks", key)
	}
	return "export " + key + "='" + value + "'", nil
}

// Current returns the values from the managed block, if any
func (s *Store) Current() (map[string]string, error) {
	if s.GOOS == "windows" {
		return map[string]string{}, nil
	}

	path, _ := s.rcPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	start, end := blockBounds(string(data))
	if start < 0 {
		return map[string]string{}, nil
	}

	body := string(data)[start+len(blockStart) : end]
	values, err := godotenv.Unmarshal(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse komp block in %s", path)
	}
	return values, nil
}

// blockBounds returns the offsets of the start and end markers, or -1 when
// there is no complete block
func blockBounds(content string) (int, int) {
	start := strings.Index(content, blockStart)
	if start < 0 {
		return -1, -1
	}
	end := strings.Index(content[start:], blockEnd)
	if end < 0 {
		return -1, -1
	}
	return start, start + end
}

func replaceBlock(content, block string) string {
	start, end := blockBounds(content)
	if start < 0 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if content != "" {
			content += "\n"
		}
		return content + block
	}

	rest := content[end+len(blockEnd):]
	rest = strings.TrimPrefix(rest, "\n")
	return content[:start] + block + rest
}

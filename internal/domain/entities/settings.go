package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProvider is the only hosting service registered today.
	DefaultProvider = "github"

	// DefaultMarkerFile marks a repository as a Maven project.
	DefaultMarkerFile = "pom.xml"
)

// Settings is the optional configuration file for bootstrap-ci.
type Settings struct {
	Token        string            `yaml:"token"`         // Inline, ${ENV_VAR}, or file path
	Provider     string            `yaml:"provider"`      // "github"
	MarkerFile   string            `yaml:"marker_file"`   // File that qualifies a repository
	BranchPrefix string            `yaml:"branch_prefix"` // Prefix of the reconciliation branch
	DeferBranch  bool              `yaml:"defer_branch"`  // Create the branch only when a write is needed
	Templates    map[string]string `yaml:"templates"`     // Managed file key -> local template path
	Repositories []string          `yaml:"repositories"`  // Used by the run command
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Token = resolveToken(settings.Token)
	settings.applyDefaults()

	// Template overrides are relative to the config file.
	baseDir := filepath.Dir(path)
	for key, templatePath := range settings.Templates {
		if templatePath != "" && !filepath.IsAbs(templatePath) {
			settings.Templates[key] = filepath.Join(baseDir, templatePath)
		}
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bootstrap-ci.yaml",
		".bootstrap-ci.yml",
		"bootstrap-ci.yaml",
		"bootstrap-ci.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (s *Settings) applyDefaults() {
	if s.Provider == "" {
		s.Provider = DefaultProvider
	}
	if s.MarkerFile == "" {
		s.MarkerFile = DefaultMarkerFile
	}
	if s.BranchPrefix == "" {
		s.BranchPrefix = DefaultBranchPrefix
	}
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func (s *Settings) validate() error {
	if strings.ContainsAny(s.MarkerFile, "/\\") {
		return fmt.Errorf("marker_file %q must be a file at the repository root", s.MarkerFile)
	}
	if strings.ContainsAny(s.BranchPrefix, " ~^:?*[\\") {
		return fmt.Errorf("branch_prefix %q is not a valid git ref prefix", s.BranchPrefix)
	}
	for i, repo := range s.Repositories {
		if _, err := ParseRepositoryName(repo); err != nil {
			return fmt.Errorf("repositories[%d]: %w", i, err)
		}
	}
	return nil
}

// Package config loads the provisioning configuration: permission sets,
// global group rules, role bindings, and the inventory source settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/c2platform/ssoctl/models"
)

// EnvConfigDir overrides the default ~/.config/ssoctl configuration
// directory.
const EnvConfigDir = "SSOCTL_CONFIG_DIR"

var ErrNoConfigFile = errors.New("no config file found")

type Loader struct {
	FS        afero.Fs
	ConfigDir string
}

func NewLoader(fs afero.Fs) (*Loader, error) {
	configDir := getEnv(EnvConfigDir, "")
	if configDir == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(userHome, ".config", "ssoctl")
	}
	return &Loader{FS: fs, ConfigDir: configDir}, nil
}

// Default returns the settings used when no configuration file exists:
// the standard permission sets and bindings, no global groups, and the
// default inventory prefix.
func Default() *models.Settings {
	settings := &models.Settings{}
	applyDefaults(settings)
	return settings
}

// ResolvePath returns the configuration file to load. An explicit path wins;
// otherwise the configuration directory is searched. A missing file is
// ErrNoConfigFile.
func (l *Loader) ResolvePath(path string) (string, error) {
	if path != "" {
		if _, err := l.FS.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}
	return l.findConfigFile()
}

// LoadOrDefault loads the settings from the explicit path or the discovered
// config file. Running without any config file is fine — the defaults apply,
// matching a caller that supplies no overrides. The returned directory
// anchors relative manual-list paths.
func (l *Loader) LoadOrDefault(path string) (*models.Settings, string, error) {
	resolved, err := l.ResolvePath(path)
	if err != nil {
		if path == "" && errors.Is(err, ErrNoConfigFile) {
			return Default(), "", nil
		}
		return nil, "", err
	}

	settings, err := l.Load(resolved)
	if err != nil {
		return nil, "", err
	}
	return settings, filepath.Dir(resolved), nil
}

// Load parses the settings file at path and applies defaults for everything
// it leaves out.
func (l *Loader) Load(path string) (*models.Settings, error) {
	fileData, err := afero.ReadFile(l.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(fileData, &settings); err != nil {
		if jsonErr := json.Unmarshal(fileData, &settings); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&settings)
	return &settings, nil
}

// Rules assembles the resolver input from settings. Slices are copied so a
// resolution pass never aliases the loaded configuration. While automatic
// provisioning is enabled the identity provider owns all principals through
// SCIM and the manual lists are ignored; otherwise they are read relative to
// baseDir and merged in.
func (l *Loader) Rules(settings *models.Settings, baseDir string) (models.AssignmentRules, error) {
	rules := models.AssignmentRules{
		Bindings: append([]models.RoleBinding(nil), settings.Bindings...),
		Groups:   models.GlobalGroupRule{},
	}
	for role, groups := range settings.GlobalGroups {
		rules.Groups[role] = append([]string(nil), groups...)
	}

	if settings.AutomaticProvisioningEnabled {
		return rules, nil
	}

	if settings.ManualGroupsFile != "" {
		manual, err := l.loadManualList(resolvePath(baseDir, settings.ManualGroupsFile))
		if err != nil {
			return models.AssignmentRules{}, err
		}
		for role, names := range manual {
			rules.Groups[role] = append(rules.Groups[role], names...)
		}
	}
	if settings.ManualUsersFile != "" {
		manual, err := l.loadManualList(resolvePath(baseDir, settings.ManualUsersFile))
		if err != nil {
			return models.AssignmentRules{}, err
		}
		if len(manual) > 0 {
			rules.Users = manual
		}
	}
	return rules, nil
}

func (l *Loader) findConfigFile() (string, error) {
	extensions := []string{"config.yml", "config.yaml", "config.json"}

	if _, err := l.FS.Stat(l.ConfigDir); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoConfigFile
		}
		return "", fmt.Errorf("failed to stat directory %s: %w", l.ConfigDir, err)
	}

	for _, ext := range extensions {
		possiblePath := filepath.Join(l.ConfigDir, ext)
		if _, err := l.FS.Stat(possiblePath); err == nil {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}

// loadManualList reads a role -> names mapping used for manually provisioned
// principals.
func (l *Loader) loadManualList(path string) (map[models.GroupRole][]string, error) {
	fileData, err := afero.ReadFile(l.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manual provisioning list %s: %w", path, err)
	}

	var list map[models.GroupRole][]string
	if err := yaml.Unmarshal(fileData, &list); err != nil {
		return nil, fmt.Errorf("failed to parse manual provisioning list %s: %w", path, err)
	}
	return list, nil
}

func applyDefaults(settings *models.Settings) {
	if len(settings.PermissionSets) == 0 {
		settings.PermissionSets = models.DefaultPermissionSets()
	}
	if len(settings.Bindings) == 0 {
		settings.Bindings = models.DefaultBindings()
	}
	if settings.Inventory.SSMPathPrefix == "" {
		settings.Inventory.SSMPathPrefix = models.DefaultSSMPathPrefix
	}
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

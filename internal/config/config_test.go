package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2platform/ssoctl/models"
)

const sampleConfig = `is_automatic_provisioning_enabled: true
global_groups:
  admin:
    - g-admin
  billing:
    - g-finance
permission_sets:
  - name: AdministratorAccess
    description: Full administrative access
    session_duration: 12
    managed_policies:
      - managed_by: aws
        policy_name: AdministratorAccess
inventory:
  ssm_path_prefix: /platform/accounts
  region: eu-west-1
`

func newTestLoader() *Loader {
	return &Loader{FS: afero.NewMemMapFs(), ConfigDir: "/home/user/.config/ssoctl"}
}

func TestNewLoader(t *testing.T) {
	t.Run("default config dir under home", func(t *testing.T) {
		loader, err := NewLoader(afero.NewMemMapFs())

		require.NoError(t, err)
		assert.Contains(t, loader.ConfigDir, filepath.Join(".config", "ssoctl"))
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/etc/ssoctl")

		loader, err := NewLoader(afero.NewMemMapFs())

		require.NoError(t, err)
		assert.Equal(t, "/etc/ssoctl", loader.ConfigDir)
	})
}

func TestLoader_ResolvePath(t *testing.T) {
	loader := newTestLoader()

	t.Run("no config dir", func(t *testing.T) {
		_, err := loader.ResolvePath("")
		assert.ErrorIs(t, err, ErrNoConfigFile)
	})

	t.Run("discovery order prefers yml", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(loader.FS, filepath.Join(loader.ConfigDir, "config.yaml"), []byte("{}"), 0644))
		require.NoError(t, afero.WriteFile(loader.FS, filepath.Join(loader.ConfigDir, "config.yml"), []byte("{}"), 0644))

		path, err := loader.ResolvePath("")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(loader.ConfigDir, "config.yml"), path)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(loader.FS, "/tmp/other.yml", []byte("{}"), 0644))

		path, err := loader.ResolvePath("/tmp/other.yml")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/other.yml", path)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := loader.ResolvePath("/tmp/missing.yml")
		assert.Error(t, err)
	})
}

func TestLoader_Load(t *testing.T) {
	loader := newTestLoader()

	t.Run("yaml settings with defaults for the rest", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(loader.FS, "/cfg/config.yml", []byte(sampleConfig), 0644))

		settings, err := loader.Load("/cfg/config.yml")

		require.NoError(t, err)
		assert.True(t, settings.AutomaticProvisioningEnabled)
		assert.Equal(t, []string{"g-admin"}, settings.GlobalGroups[models.RoleAdmin])
		assert.Equal(t, "/platform/accounts", settings.Inventory.SSMPathPrefix)
		assert.Equal(t, "eu-west-1", settings.Inventory.Region)
		// One permission set configured; bindings fall back to the defaults.
		assert.Len(t, settings.PermissionSets, 1)
		assert.Equal(t, models.DefaultBindings(), settings.Bindings)
	})

	t.Run("json settings", func(t *testing.T) {
		doc := `{"is_automatic_provisioning_enabled": false, "global_groups": {"support": ["g-helpdesk"]}}`
		require.NoError(t, afero.WriteFile(loader.FS, "/cfg/config.json", []byte(doc), 0644))

		settings, err := loader.Load("/cfg/config.json")

		require.NoError(t, err)
		assert.False(t, settings.AutomaticProvisioningEnabled)
		assert.Equal(t, []string{"g-helpdesk"}, settings.GlobalGroups[models.RoleSupport])
		assert.Equal(t, models.DefaultPermissionSets(), settings.PermissionSets)
		assert.Equal(t, models.DefaultSSMPathPrefix, settings.Inventory.SSMPathPrefix)
	})

	t.Run("unparseable settings", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(loader.FS, "/cfg/broken.yml", []byte(":::"), 0644))

		_, err := loader.Load("/cfg/broken.yml")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoader_LoadOrDefault(t *testing.T) {
	t.Run("falls back to defaults without a config file", func(t *testing.T) {
		loader := newTestLoader()

		settings, baseDir, err := loader.LoadOrDefault("")

		require.NoError(t, err)
		assert.Empty(t, baseDir)
		assert.Equal(t, Default(), settings)
	})

	t.Run("explicit missing path stays an error", func(t *testing.T) {
		loader := newTestLoader()

		_, _, err := loader.LoadOrDefault("/missing.yml")

		assert.Error(t, err)
	})

	t.Run("base dir follows the loaded file", func(t *testing.T) {
		loader := newTestLoader()
		require.NoError(t, afero.WriteFile(loader.FS, "/project/config.yml", []byte(sampleConfig), 0644))

		_, baseDir, err := loader.LoadOrDefault("/project/config.yml")

		require.NoError(t, err)
		assert.Equal(t, "/project", baseDir)
	})
}

func TestLoader_Rules(t *testing.T) {
	t.Run("copies configuration slices", func(t *testing.T) {
		loader := newTestLoader()
		settings := Default()
		settings.GlobalGroups = models.GlobalGroupRule{models.RoleAdmin: {"g-admin"}}

		rules, err := loader.Rules(settings, "")

		require.NoError(t, err)
		settings.GlobalGroups[models.RoleAdmin][0] = "mutated"
		settings.Bindings[0].PermissionSetName = "mutated"
		assert.Equal(t, []string{"g-admin"}, rules.Groups[models.RoleAdmin])
		assert.Equal(t, "AdministratorAccess", rules.Bindings[0].PermissionSetName)
	})

	t.Run("manual lists merged while automatic provisioning is off", func(t *testing.T) {
		loader := newTestLoader()
		require.NoError(t, afero.WriteFile(loader.FS, "/project/groups.yml", []byte("admin:\n  - g-manual\n"), 0644))
		require.NoError(t, afero.WriteFile(loader.FS, "/project/users.yml", []byte("billing:\n  - finance@example.org\n"), 0644))

		settings := Default()
		settings.AutomaticProvisioningEnabled = false
		settings.ManualGroupsFile = "groups.yml"
		settings.ManualUsersFile = "users.yml"
		settings.GlobalGroups = models.GlobalGroupRule{models.RoleAdmin: {"g-admin"}}

		rules, err := loader.Rules(settings, "/project")

		require.NoError(t, err)
		assert.Equal(t, []string{"g-admin", "g-manual"}, rules.Groups[models.RoleAdmin])
		assert.Equal(t, []string{"finance@example.org"}, rules.Users[models.RoleBilling])
	})

	t.Run("manual lists ignored while automatic provisioning is on", func(t *testing.T) {
		loader := newTestLoader()

		settings := Default()
		settings.AutomaticProvisioningEnabled = true
		settings.ManualGroupsFile = "does-not-exist.yml"
		settings.ManualUsersFile = "does-not-exist.yml"

		rules, err := loader.Rules(settings, "/project")

		require.NoError(t, err)
		assert.Nil(t, rules.Users)
	})

	t.Run("missing manual list file", func(t *testing.T) {
		loader := newTestLoader()

		settings := Default()
		settings.ManualGroupsFile = "absent.yml"

		_, err := loader.Rules(settings, "/project")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read manual provisioning list")
	})
}

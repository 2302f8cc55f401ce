package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "data/astrogid.db", c.DatabasePath)
	assert.Equal(t, "AstroGid", c.SiteName)
	assert.Equal(t, "info@astrogid.example", c.ContactEmail)
	assert.Equal(t, 50, c.FeedbackRetention)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "data/astrogid.db", cfg.DatabasePath)
	assert.Equal(t, 50, cfg.FeedbackRetention)
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()

	t.Run("loads from flags", func(t *testing.T) {
		path := writeTempJSON(t, dir, "flag.json", map[string]any{
			"database_path":      "/tmp/site.db",
			"contact_email":      "hello@site.example",
			"feedback_retention": 10,
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/tmp/site.db", cfg.DatabasePath)
		assert.Equal(t, "hello@site.example", cfg.ContactEmail)
		assert.Equal(t, 10, cfg.FeedbackRetention)
	})

	t.Run("partial file leaves other fields untouched", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_path": "/tmp/other.db",
		})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
		assert.Equal(t, "AstroGid", cfg.SiteName)
		assert.Equal(t, 50, cfg.FeedbackRetention)
	})

	t.Run("no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabasePath: "keep.db", FeedbackRetention: 42}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, 42, cfg.FeedbackRetention)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("ASTROGID_DB", "/env/site.db")
	t.Setenv("ASTROGID_FEEDBACK_RETENTION", "7")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/env/site.db", cfg.DatabasePath)
	assert.Equal(t, 7, cfg.FeedbackRetention)
	assert.Equal(t, "AstroGid", cfg.SiteName, "unset variables keep defaults")
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-d", "/flag/site.db", "-e", "ops@site.example", "-r", "12"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "/flag/site.db", cfg.DatabasePath)
		assert.Equal(t, "ops@site.example", cfg.ContactEmail)
		assert.Equal(t, 12, cfg.FeedbackRetention)
	})

	t.Run("non-numeric retention panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-r", "abc"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseFlags(cfg) })
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, FileName+".yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	isolateXDG(t)
	v := viper.New()
	Setup(v, "")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromXDGDir(t *testing.T) {
	home := isolateXDG(t)
	writeConfig(t, filepath.Join(home, AppName), "locale: en\noutput: json\nverbose: true\n")

	v := viper.New()
	Setup(v, "")
	assert.Equal(t, filepath.Join(home, AppName), Dir())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Config{Locale: "en", Output: OutputJSON, Verbose: true}, cfg)
}

func TestLoad_ExplicitFileAndEnvOverride(t *testing.T) {
	isolateXDG(t)
	p := writeConfig(t, t.TempDir(), "locale: en\noutput: yaml\n")
	t.Setenv("CSVGUARD_OUTPUT", "json")

	v := viper.New()
	Setup(v, p)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	v := viper.New()
	Setup(v, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MalformedFile(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "locale: [unterminated\n")
	v := viper.New()
	Setup(v, p)

	_, err := Load(v)
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "output: xml\n")
	v := viper.New()
	Setup(v, p)

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "xml")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Default()))
	assert.NoError(t, Validate(Config{Locale: "en-GB", Output: OutputYAML}))
	assert.Error(t, Validate(Config{Locale: "", Output: OutputText}))
	assert.Error(t, Validate(Config{Locale: "not a tag!", Output: OutputText}))
	assert.Error(t, Validate(Config{Locale: "es", Output: ""}))
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/techatnyu/tnyu/pkg/assert"
)

func TestLoadRootConfigFromBytes(t *testing.T) {
	data := []byte(`
[main]
host = production

[staging]
api_root = https://staging.api.tnyu.org/v3
token    = YYY

[production]
api_root = https://api.tnyu.org/v3
token    = XXX
`)
	rootCfg, err := loadRootConfigFromBytes(data)
	assert.NoError(t, err)

	expected := RootConfig{
		ActiveHost: "production",
		Hosts: []Host{
			{Name: "production", ApiRoot: "https://api.tnyu.org/v3", Token: "XXX"},
			{Name: "staging", ApiRoot: "https://staging.api.tnyu.org/v3", Token: "YYY"},
		},
	}
	if diff := cmp.Diff(expected, *rootCfg); diff != "" {
		t.Errorf("Root config is wrong (-want +got):\n%s", diff)
	}
}

func TestSaveAndLoadRootConfig(t *testing.T) {
	expected := RootConfig{
		ActiveHost: "My Name",
		Hosts: []Host{
			{
				Name:    "My Name",
				ApiRoot: "My API Root",
				Token:   "My Token",
			},
		},
	}

	var buffer bytes.Buffer
	err := expected.saveToWriter(&buffer)
	assert.NoError(t, err)

	newRootCfg, err := loadRootConfigFromBytes(buffer.Bytes())
	assert.NoError(t, err)

	if !rootConfigsEqual(&expected, newRootCfg) {
		t.Errorf(
			"Root config is wrong; got %+v, expected %+v",
			newRootCfg,
			expected,
		)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg.Root.Path, path)
	assert.Equal(t, len(cfg.Root.Hosts), 0)
	assert.True(t, cfg.GetActiveHost() == nil)
}

func TestSaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tnyurc")
	cfg, err := Load(path)
	assert.NoError(t, err)

	cfg.SetHost(Host{Name: "b", ApiRoot: "https://b", Token: "2"})
	cfg.SetHost(Host{Name: "a", ApiRoot: "https://a", Token: "1"})
	cfg.SetHost(Host{Name: "b", ApiRoot: "https://b", Token: "3"})
	cfg.Root.ActiveHost = "b"
	assert.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, info.Mode().Perm(), os.FileMode(0600))

	reloaded, err := Load(path)
	assert.NoError(t, err)
	expected := []Host{
		{Name: "a", ApiRoot: "https://a", Token: "1"},
		{Name: "b", ApiRoot: "https://b", Token: "3"},
	}
	if diff := cmp.Diff(expected, reloaded.Root.Hosts); diff != "" {
		t.Errorf("Hosts are wrong (-want +got):\n%s", diff)
	}
	assert.Equal(t, reloaded.GetActiveHost().Token, "3")
}

//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	doc := `
library:
  paths:
    - /opt/amplitude/lib
    - /usr/local/amplitude/lib
log:
  level: debug
pool:
  threads: 4
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/amplitude/lib", "/usr/local/amplitude/lib"}, cfg.Library.Paths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, uint32(4), cfg.Pool.Threads)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("librarypaths: [/tmp]\n"))
	assert.Error(t, err)
}

func TestLoadConfigBadLevel(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("log:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ampgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool:\n  threads: 2\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), cfg.Pool.Threads)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	orig := os.Args
	os.Args = []string{"cmd"}
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.EndpointAddr)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, BlobBackendDisk, cfg.BlobBackend)
	assert.Equal(t, "/tmp/filecab", cfg.BlobDir)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADDRESS", ":8080")
	t.Setenv("FOLDER_PATH", "/var/lib/filecab")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "/var/lib/filecab", cfg.BlobDir)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoadConfig_SubHourTTL(t *testing.T) {
	resetArgs(t)
	t.Setenv("SESSION_TTL", "90m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)

	t.Setenv("SESSION_TTL", "30m")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadConfig_TTLFlag(t *testing.T) {
	orig := os.Args
	os.Args = []string{"cmd", "-t", "45m"}
	t.Cleanup(func() { os.Args = orig })
	t.Setenv("SESSION_TTL", "90m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	orig := os.Args
	os.Args = []string{"cmd", "-a", ":9999", "-k", "s3", "-b", "uploads"}
	t.Cleanup(func() { os.Args = orig })
	t.Setenv("ADDRESS", ":8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, BlobBackendS3, cfg.BlobBackend)
	assert.Equal(t, "uploads", cfg.S3Bucket)
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.BlobBackend = "ftp"

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsZeroTTL(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.SessionTTL = 0

	assert.Error(t, cfg.Validate())
}

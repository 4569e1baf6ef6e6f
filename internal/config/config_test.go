package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BRIGHTROAD_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY",
		"BRIGHTROAD_GCP_PROJECT", "GOOGLE_CLOUD_PROJECT",
		"BRIGHTROAD_BACKEND", "BRIGHTROAD_PORT", "BRIGHTROAD_SESSION_TTL",
	} {
		t.Setenv(k, "")
	}
}

func load(t *testing.T) (*Config, error) {
	t.Helper()
	v := viper.New()
	Bind(v)
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, BackendGemini, cfg.Backend)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelName)
	assert.Equal(t, "us-central1", cfg.GCPLocation)
	assert.True(t, cfg.MapsGrounding)
	assert.False(t, cfg.UseMockLLM)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Empty(t, cfg.APIKey, "a missing key is not a config error")
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRIGHTROAD_PORT", "9090")
	t.Setenv("BRIGHTROAD_SESSION_TTL", "5m")
	t.Setenv("BRIGHTROAD_USE_MOCK_LLM", "true")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.UseMockLLM)
}

func TestLoad_APIKeyFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.APIKey)

	t.Setenv("BRIGHTROAD_API_KEY", "own-key")
	cfg, err = load(t)
	require.NoError(t, err)
	assert.Equal(t, "own-key", cfg.APIKey)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bright-road.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\nmaps_grounding: false\n"), 0o600))

	v := viper.New()
	Bind(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.False(t, cfg.MapsGrounding)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: "8080", Backend: BackendGemini, SessionTTL: time.Minute}
	require.NoError(t, valid.Validate())

	vertex := valid
	vertex.Backend = BackendVertex
	assert.Error(t, vertex.Validate())
	vertex.GCPProjectID = "my-project"
	assert.NoError(t, vertex.Validate())

	unknown := valid
	unknown.Backend = "openai"
	assert.Error(t, unknown.Validate())

	noTTL := valid
	noTTL.SessionTTL = 0
	assert.Error(t, noTTL.Validate())
}

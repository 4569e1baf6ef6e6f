package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "BRIGHTROAD"

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

type Config struct {
	Port string

	APIKey       string
	Backend      string // "gemini" or "vertex"
	GCPProjectID string
	GCPLocation  string
	ModelName    string
	BaseURL      string // optional API endpoint override

	UseMockLLM    bool // true = offline catalog-backed assistant
	MapsGrounding bool

	SessionTTL time.Duration
	LogLevel   string
}

// Bind registers defaults and environment lookups on v. Every key can be
// set as BRIGHTROAD_<KEY>; the API key also falls back to the variables
// the Gemini tooling reads.
func Bind(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("backend", BackendGemini)
	v.SetDefault("gcp_location", "us-central1")
	v.SetDefault("model_name", "gemini-2.5-flash")
	v.SetDefault("use_mock_llm", false)
	v.SetDefault("maps_grounding", true)
	v.SetDefault("session_ttl", "30m")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("api_key", EnvPrefix+"_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("gcp_project", EnvPrefix+"_GCP_PROJECT", "GOOGLE_CLOUD_PROJECT")
}

// Load reads the configuration from v. Bind must have been called on v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port: v.GetString("port"),

		APIKey:       strings.TrimSpace(v.GetString("api_key")),
		Backend:      strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		GCPProjectID: v.GetString("gcp_project"),
		GCPLocation:  v.GetString("gcp_location"),
		ModelName:    v.GetString("model_name"),
		BaseURL:      v.GetString("base_url"),

		UseMockLLM:    v.GetBool("use_mock_llm"),
		MapsGrounding: v.GetBool("maps_grounding"),

		SessionTTL: v.GetDuration("session_ttl"),
		LogLevel:   v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with. A missing API key
// is not an error: the assistant reports itself unavailable instead.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGemini:
	case BackendVertex:
		if c.GCPProjectID == "" {
			return fmt.Errorf("gcp_project must be set for the %s backend", BackendVertex)
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendGemini, BackendVertex)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.Port == "" {
		return fmt.Errorf("port must be set")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

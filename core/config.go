package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName string
		Env     string // DEV (default), TEST, QA, PROD
		Debug   bool

		Server ServerConfig
		API    APIConfig

		// TokenPath is the file holding the persisted session token.
		TokenPath string

		RollbarToken string
	}

	ServerConfig struct {
		Addr string
	}

	// APIConfig holds one base address per backend domain.
	APIConfig struct {
		AuthURL        string
		UserURL        string
		WorkshopURL    string
		QuizURL        string
		AnalyticsURL   string
		CertificateURL string
	}
)

func (c *Config) IsDev() bool  { return c.Env == "DEV" }
func (c *Config) IsTest() bool { return c.Env == "TEST" }

// NewConfig loads configuration from defaults, an optional config/.env.<env>
// file and ENV-prefixed environment variables (eg. DEV_AUTH_API_URL).
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Sukhverse")
	conf.SetDefault("serverAddr", ":3000")
	conf.SetDefault("tokenPath", filepath.Join(Getwd(), "config", ".token"))

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		AppName: conf.GetString("appName"),
		Env:     env,
		Debug:   conf.GetBool("debug"),
		Server: ServerConfig{
			Addr: conf.GetString("serverAddr"),
		},
		API: APIConfig{
			AuthURL:        conf.GetString("auth_api_url"),
			UserURL:        conf.GetString("user_api_url"),
			WorkshopURL:    conf.GetString("workshop_api_url"),
			QuizURL:        conf.GetString("quiz_api_url"),
			AnalyticsURL:   conf.GetString("analytics_api_url"),
			CertificateURL: conf.GetString("certificate_api_url"),
		},
		TokenPath:    conf.GetString("tokenPath"),
		RollbarToken: conf.GetString("rollbar_token"),
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// check ensures every backend domain has a base address.
func (c *Config) check() error {
	for _, api := range []struct{ name, url string }{
		{"auth", c.API.AuthURL},
		{"user", c.API.UserURL},
		{"workshop", c.API.WorkshopURL},
		{"quiz", c.API.QuizURL},
		{"analytics", c.API.AnalyticsURL},
		{"certificate", c.API.CertificateURL},
	} {
		if strings.TrimSpace(api.url) == "" {
			return errors.Errorf("config: missing %s API base URL", api.name)
		}
	}
	return nil
}

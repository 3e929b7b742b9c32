package config

import (
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var App *AppConfig

// AppConfig is one named profile out of config/app.yml, selected by APP_ENV.
type AppConfig struct {
	Listen          string `yaml:"listen"`
	DatabaseDriver  string `yaml:"database_driver"`
	RateLimitMax    int    `yaml:"rate_limit_max"`
	RateLimitWindow int    `yaml:"rate_limit_window"`
	CacheExpiration int    `yaml:"cache_expiration"`
	SummaryInterval uint64 `yaml:"summary_interval"`
}

type profilesFile struct {
	Profiles map[string]*AppConfig `yaml:"profiles"`
}

func LoadAppConfig() error {
	godotenv.Load()

	path := os.Getenv("APP_CONFIG")
	if len(path) == 0 {
		path = "config/app.yml"
	}

	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	f := &profilesFile{}
	if err := yaml.Unmarshal(buf, f); err != nil {
		return err
	}

	profile := os.Getenv("APP_ENV")
	if len(profile) == 0 {
		profile = "development"
	}

	c, found := f.Profiles[profile]
	if !found {
		c = defaultAppConfig()
	}

	App = c

	return nil
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Listen:          ":3000",
		DatabaseDriver:  "sqlite",
		RateLimitMax:    60,
		RateLimitWindow: 60,
		CacheExpiration: 30,
		SummaryInterval: 5,
	}
}

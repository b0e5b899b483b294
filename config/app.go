package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/gookit/validate"
	yaml "gopkg.in/yaml.v2"
)

// AppConfig holds the engine-wide settings. Prices on the wire are integer
// counts of the minimum price increment; PriceExponent converts them to a
// display price (e.g. -4 for a 1/10000 currency unit tick).
type AppConfig struct {
	EngineQueueSize int    `yaml:"engine_queue_size" validate:"min:1"`
	PriceExponent   int32  `yaml:"price_exponent" validate:"max:0"`
	DepthLimit      int    `yaml:"depth_limit" validate:"min:1"`
	StatsInterval   uint64 `yaml:"stats_interval" validate:"min:1"`
}

var App = DefaultAppConfig()

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		EngineQueueSize: 1024,
		PriceExponent:   -4,
		DepthLimit:      300,
		StatsInterval:   10,
	}
}

// LoadAppConfig reads the optional YAML config pointed to by PITCHBOOK_CONFIG.
func LoadAppConfig() error {
	path := os.Getenv("PITCHBOOK_CONFIG")
	if path == "" {
		return nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	v := validate.Struct(cfg)
	if !v.Validate() {
		return v.Errors
	}

	App = cfg
	return nil
}

package region

import (
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config collects the recognized build-settings options of spec §6,
// mirroring the teacher's sample/solomesh.Settings/NewSettings pattern.
type Config struct {
	OuterFactor     int     `yaml:"outer_factor"`
	IndepSetDegree  int     `yaml:"indep_set_degree"`
	EpsilonMidpoint float64 `yaml:"epsilon_midpoint"`
	EpsilonClose    float64 `yaml:"epsilon_close"`
}

// DefaultConfig returns the spec-documented defaults.
func DefaultConfig() Config {
	return Config{
		OuterFactor:     10,
		IndepSetDegree:  8,
		EpsilonMidpoint: 0.01,
		EpsilonClose:    0.01,
	}
}

// LoadConfig reads a YAML build-settings file, as written by `polymap
// config`.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in YAML format.
func SaveConfig(cfg Config, path string) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

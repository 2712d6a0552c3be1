package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var defaultData []byte

// Config selects the registry source. An empty File uses the built-in data.
type Config struct {
	File string `env:"REGISTRY_FILE"`
}

// Parse decodes YAML registry data and builds a Registry from it.
// Unknown keys are rejected so typos in the data file fail at startup.
func Parse(raw []byte) (*Registry, error) {
	var data Data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return New(data)
}

// Load reads and parses the registry file at path.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return Parse(raw)
}

// Default returns the registry compiled into the binary.
// It panics if the embedded data is invalid, which is a build defect.
func Default() *Registry {
	r, err := Parse(defaultData)
	if err != nil {
		panic(err)
	}
	return r
}

// FromConfig loads the registry selected by cfg.
func FromConfig(cfg Config) (*Registry, error) {
	if cfg.File == "" {
		return Parse(defaultData)
	}
	return Load(cfg.File)
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pseudotop/reco"
)

// Sentinel errors for parameter loading.
var (
	// ErrRead indicates the parameter file could not be read.
	ErrRead = errors.New("config: cannot read parameter file")
	// ErrParse indicates the parameter file is not valid YAML.
	ErrParse = errors.New("config: cannot parse parameter file")
)

// Load reads a YAML parameter file on top of reco.DefaultParams.
func Load(path string) (reco.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return reco.Params{}, fmt.Errorf("%w: %q: %v", ErrRead, path, err)
	}

	return Parse(raw)
}

// Parse decodes YAML bytes on top of reco.DefaultParams.
func Parse(raw []byte) (reco.Params, error) {
	p := reco.DefaultParams()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return reco.Params{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return p, nil
}

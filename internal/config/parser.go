package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	adaptererrors "github.com/alexisbeaulieu97/adapterkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadFile reads an adapter configuration file from disk, applies defaults
// and validates it.
func LoadFile(path string) (*AdapterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, adaptererrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes YAML configuration. The name is only used in error messages.
func Parse(name string, data []byte) (*AdapterConfig, error) {
	cfg := &AdapterConfig{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, adaptererrors.NewParseError(name, extractLine(err), err)
	}

	cfg.applyDefaults()

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders a configuration back to YAML.
func Marshal(cfg AdapterConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

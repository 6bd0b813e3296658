// Package config pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

var (
	errInvalidDuration = fmt.Errorf("invalid duration")
)

// LoadFile decodes the JSON config at path into dst.
func LoadFile(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}

// ValidateConfig runs cfg's Validate hook when it has one. Configs
// without a Validator implementation pass through untouched.
func ValidateConfig(cfg interface{}) error {
	if v, ok := cfg.(Validator); ok {
		return v.Validate()
	}

	return nil
}

// LoadAndValidate is the entry point cmd/server uses: decode the file,
// then apply defaults and reject incomplete settings via Validate.
func LoadAndValidate(path string, cfg interface{}) error {
	if err := LoadFile(path, cfg); err != nil {
		return err
	}

	return ValidateConfig(cfg)
}

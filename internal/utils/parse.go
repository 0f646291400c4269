// Package utils holds small file and TOML helpers shared by the config and corpus packages.
package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into target
func LoadTOMLFile(path string, target any) error {
	if _, err := toml.DecodeFile(path, target); err != nil {
		log.Warnf("TOML error in %s: %v. Falling back to partial parse...", path, err)
		return err
	}
	return nil
}

// ParseTOMLSections decodes a TOML file into a loose map so that valid
// sections can still be picked out when the typed decode failed.
func ParseTOMLSections(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sections := make(map[string]any)
	if _, err := toml.Decode(string(data), &sections); err != nil {
		log.Warnf("Could not parse %s at all: %v", path, err)
		return nil, err
	}
	return sections, nil
}

// ExtractSection returns a named table from parsed TOML data
func ExtractSection(data map[string]any, name string) (map[string]any, bool) {
	section, ok := data[name].(map[string]any)
	return section, ok
}

// ExtractInt returns an integer value; TOML decodes integers as int64
func ExtractInt(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractBool returns a boolean value
func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}

// ExtractString returns a string value
func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}

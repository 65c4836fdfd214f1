// Package fileutil holds small shared file and output helpers.
package fileutil

import (
	"bytes"
	"encoding/json"
	"os"
)

// PrintJSON writes value to stdout as indented JSON.
func PrintJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// WriteIfChanged writes data to path unless the file already holds exactly
// that content. It reports whether a write happened.
func WriteIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

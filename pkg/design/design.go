package design

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DesignFile is the file LoadProject reads from a project directory.
const DesignFile = "design.yaml"

type constError string

func (e constError) Error() string { return string(e) }

// ErrEmptyDesign is returned when a design document has no content.
const ErrEmptyDesign = constError("design document is empty")

// Parse decodes a YAML design document. Fields absent from the document keep
// their Default values.
func Parse(data []byte) (Configuration, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Configuration{}, ErrEmptyDesign
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("parsing design YAML: %w", err)
	}
	return cfg, nil
}

// Load reads a design from a YAML file.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("reading design file: %w", err)
	}
	return Parse(data)
}

// LoadProject loads a design from a project directory.
// It looks for design.yaml in the given directory.
func LoadProject(projectDir string) (Configuration, error) {
	return Load(filepath.Join(projectDir, DesignFile))
}

// Marshal encodes a design as YAML.
func Marshal(c Configuration) ([]byte, error) {
	return yaml.Marshal(c)
}

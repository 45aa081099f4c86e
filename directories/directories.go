// Package directories manages the standard working-directory layout of CLI
// applications: inputs/, outputs/, inputs/processed/, inputs/failed/ and
// logs/. A custom layout can be loaded from a YAML file.
package directories

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

type (
	// Layout holds the absolute paths of the created directories.
	Layout struct {
		Inputs    string
		Outputs   string
		Processed string
		Failed    string
		Logs      string
	}

	// Spec describes a layout as relative paths under a base directory.
	Spec struct {
		Inputs    string `yaml:"inputs"`
		Outputs   string `yaml:"outputs"`
		Processed string `yaml:"processed"`
		Failed    string `yaml:"failed"`
		Logs      string `yaml:"logs"`
	}

	LayoutCmd struct {
		Base   string `arg:"" optional:"" name:"Base" default:"." help:"Base directory for the layout."`
		Config string `name:"config" help:"YAML file describing a custom layout."`
	}
)

// DefaultSpec returns the standard layout used by kit tools.
func DefaultSpec() Spec {
	return Spec{
		Inputs:    "inputs",
		Outputs:   "outputs",
		Processed: filepath.Join("inputs", "processed"),
		Failed:    filepath.Join("inputs", "failed"),
		Logs:      "logs",
	}
}

// LoadSpec reads a custom layout spec from a YAML file. Fields left empty in
// the file fall back to the standard layout.
func LoadSpec(path string) (Spec, error) {
	spec := DefaultSpec()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return spec, fmt.Errorf("failed to read layout file %q: %w", path, err)
	}

	if err = yaml.Unmarshal(contents, &spec); err != nil {
		return spec, fmt.Errorf("failed to parse layout file %q: %w", path, err)
	}

	return spec, nil
}

// Setup creates the standard layout under base and returns the resulting
// paths. An empty base means the current working directory.
func Setup(base string) (Layout, error) {
	return SetupSpec(base, DefaultSpec())
}

// SetupSpec creates the layout described by spec under base. Existing
// directories are left alone.
func SetupSpec(base string, spec Spec) (layout Layout, err error) {
	if base == "" {
		base, err = os.Getwd()
		if err != nil {
			return layout, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}

	base, err = filepath.Abs(base)
	if err != nil {
		return layout, fmt.Errorf("failed to resolve base directory %q: %w", base, err)
	}

	layout = Layout{
		Inputs:    filepath.Join(base, spec.Inputs),
		Outputs:   filepath.Join(base, spec.Outputs),
		Processed: filepath.Join(base, spec.Processed),
		Failed:    filepath.Join(base, spec.Failed),
		Logs:      filepath.Join(base, spec.Logs),
	}

	for _, dir := range []string{layout.Inputs, layout.Outputs, layout.Processed, layout.Failed, layout.Logs} {
		if err = os.MkdirAll(dir, 0750); err != nil {
			return layout, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	return layout, nil
}

// Timestamped creates a timestamped subdirectory under base, e.g.
// "output_20260825_131415".
func Timestamped(base, prefix string) (string, error) {
	if prefix == "" {
		prefix = "output"
	}

	dir := filepath.Join(base, fmt.Sprintf("%s_%s", prefix, time.Now().Format("20060102_150405")))

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create timestamped directory %q: %w", dir, err)
	}

	return dir, nil
}

func (c *LayoutCmd) Run() error {
	spec := DefaultSpec()

	if c.Config != "" {
		var err error

		spec, err = LoadSpec(c.Config)
		if err != nil {
			return err
		}
	}

	layout, err := SetupSpec(c.Base, spec)
	if err != nil {
		return err
	}

	for _, dir := range []string{layout.Inputs, layout.Outputs, layout.Processed, layout.Failed, layout.Logs} {
		fmt.Println(dir)
	}

	return nil
}

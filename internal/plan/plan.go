// Package plan encodes and emits the resolved provisioning plan. Encoding is
// deterministic: identical plans produce identical bytes, so downstream
// diffing never sees phantom changes.
package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/c2platform/ssoctl/models"
)

// Format selects the plan encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported plan format %q (expected %s or %s)", value, FormatJSON, FormatYAML)
}

// Encode renders the plan in the requested format. No timestamps and no
// generated identifiers: the output is a pure function of the plan.
func Encode(p models.Plan, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode plan as JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode plan as YAML: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported plan format %q", format)
}

// Writer emits encoded plans to stdout or to a file.
type Writer struct {
	FS  afero.Fs
	Out io.Writer
}

func NewWriter(fs afero.Fs, out io.Writer) *Writer {
	return &Writer{FS: fs, Out: out}
}

// Write encodes p and writes it to outputPath, or to the writer's output
// stream when outputPath is empty.
func (w *Writer) Write(p models.Plan, format Format, outputPath string) error {
	data, err := Encode(p, format)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if _, err := w.Out.Write(data); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := w.FS.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := afero.WriteFile(w.FS, outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan to %s: %w", outputPath, err)
	}
	return nil
}

package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates an export format name.
func ParseFormat(text string) (Format, error) {
	switch f := Format(text); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown dump format %q (want yaml or json)", text)
	}
}

// Write encodes g in the given format.
func Write(w io.Writer, g Graph, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatYAML:
		return WriteYAML(w, g)
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}

// WriteYAML encodes g as YAML.
func WriteYAML(w io.Writer, g Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes g as indented JSON.
func WriteJSON(w io.Writer, g Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

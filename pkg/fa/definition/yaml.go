package definition

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/automata/pkg/errors"
)

// Format identifies the syntax of a definition file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension: .yaml and .yml are
// YAML, anything else is TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseAs decodes data in the given format.
func ParseAs(data []byte, format Format) (*Definition, error) {
	switch format {
	case FormatTOML:
		return Parse(data)
	case FormatYAML:
		return ParseYAML(data)
	}
	return nil, errors.New(errors.ErrCodeInvalidDefinition, "unknown definition format %q", format)
}

// ParseYAML decodes a YAML definition:
//
//	name: ends-with-b
//	alphabet: [a, b]
//	states: [0, 1]
//	initial: [0]
//	final: [1]
//	transition:
//	  - {from: 0, symbol: b, to: 1}
//
// Unknown keys are rejected and validation matches [Parse].
func ParseYAML(data []byte) (*Definition, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode")
	}
	return doc.definition()
}

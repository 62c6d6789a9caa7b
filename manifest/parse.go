package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatOf returns the format implied by name's extension.
func FormatOf(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".hcl":
		return FormatHCL, true
	default:
		return "", false
	}
}

// LoadFile reads and parses the manifest at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes data in the format implied by name and validates it.
func Parse(name string, data []byte) (*Document, error) {
	format, ok := FormatOf(name)
	if !ok {
		return nil, &Error{Source: name, Err: ErrUnknownFormat}
	}

	var (
		doc *Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = parseYAML(data)
	case FormatHCL:
		doc, err = parseHCL(name, data)
	}
	if err != nil {
		return nil, &Error{Source: name, Err: err}
	}
	if err := checkDuplicates(doc); err != nil {
		return nil, &Error{Source: name, Err: err}
	}
	return doc, nil
}

// parseYAML validates the generic tree first so unknown keys are reported.
func parseYAML(data []byte) (*Document, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	if err := Schema().ValidateValue(tree); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return &doc, nil
}

// parseHCL relies on gohcl for unknown attributes and blocks, then validates values.
func parseHCL(name string, data []byte) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var doc Document
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}
	if doc.Commands == nil {
		doc.Commands = []CommandSpec{}
	}
	if err := Schema().ValidateValue(doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func checkDuplicates(doc *Document) error {
	seen := make(map[string]bool, len(doc.Commands))
	for _, c := range doc.Commands {
		if seen[c.Name] {
			return fmt.Errorf("%w %q", ErrDuplicateCommand, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

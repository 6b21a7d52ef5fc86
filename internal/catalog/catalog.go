// Package catalog loads the list of societies the directory is built from.
//
// A catalog document is either a bare list of society records or a mapping
// with a top-level "societies" list. YAML and JSON are both accepted.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"societies/internal/debug"
	"societies/internal/domain"
	appErrors "societies/internal/errors"
)

// Source supplies the society list once at start-up.
type Source interface {
	List(ctx context.Context) ([]domain.Society, error)
}

// Format names a catalog encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var catalogLog = debug.For("catalog")

type record struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Href        string   `yaml:"href" json:"href"`
	Image       string   `yaml:"image" json:"image"`
	Categories  []string `yaml:"categories" json:"categories"`
}

type document struct {
	Societies []record `yaml:"societies" json:"societies"`
}

// FormatForPath infers the encoding from a file extension. Unknown
// extensions are treated as YAML, which also accepts JSON input.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Decode parses a catalog document and validates every record.
func Decode(data []byte, format Format) ([]domain.Society, error) {
	records, err := decodeRecords(data, format)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decode %s catalog", format), err)
	}
	return build(records)
}

func decodeRecords(data []byte, format Format) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if format == FormatJSON {
		if trimmed[0] == '[' {
			var list []record
			err := json.Unmarshal(trimmed, &list)
			return list, err
		}
		var doc document
		err := json.Unmarshal(trimmed, &doc)
		return doc.Societies, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var list []record
		err := node.Decode(&list)
		return list, err
	}
	var doc document
	err := node.Decode(&doc)
	return doc.Societies, err
}

func build(records []record) ([]domain.Society, error) {
	societies := make([]domain.Society, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		society, err := domain.NewSociety(r.Name, r.Description, r.Href, r.Image, r.Categories)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		if _, dup := seen[society.Name()]; dup {
			return nil, domain.DuplicateSocietyError(society.Name())
		}
		seen[society.Name()] = struct{}{}
		societies = append(societies, society)
	}
	return societies, nil
}

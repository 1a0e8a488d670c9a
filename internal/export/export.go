// Package export renders the durable state as a portable document and reads
// such documents back for import.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/storage"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type yamlDocument struct {
	SchemaVersion int             `yaml:"schemaVersion"`
	Payload       storage.Payload `yaml:"payload"`
}

// Write encodes s as a current-version envelope in the given format.
func Write(w io.Writer, s model.State, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		raw, err := storage.EncodeState(s)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("indent export: %w", err)
		}
		buf.WriteByte('\n')
		_, err = w.Write(buf.Bytes())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		doc := yamlDocument{SchemaVersion: storage.SchemaVersion, Payload: storage.PayloadFromState(s)}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ToJSON returns data as JSON so YAML documents can go through the same
// schema validation and decoding as JSON ones.
func ToJSON(data []byte, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml import: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml import: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

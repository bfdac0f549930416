package document

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"sigs.k8s.io/yaml"
)

var (
	ErrInvalidDocument    = fmt.Errorf("invalid SIM document")
	ErrUnsupportedVersion = fmt.Errorf("unsupported SIM document version")
)

type Format string

const (
	JSON      Format = "json"
	YAML      Format = "yaml"
	CANONICAL Format = "canonical"
)

var Formats = []Format{JSON, YAML, CANONICAL}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML, CANONICAL:
		return f, nil
	case "":
		return JSON, nil
	}
	return "", fmt.Errorf("unknown document format %q", s)
}

// Encode serializes a document. The canonical format is the
// JSON canonicalization scheme (RFC 8785) used for comparisons
// and hashing.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case JSON, "":
		return json.MarshalIndent(doc, "", "  ")
	case YAML:
		return yaml.Marshal(doc)
	case CANONICAL:
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return jcs.Transform(data)
	}
	return nil, fmt.Errorf("unknown document format %q", format)
}

// Decode parses a JSON or YAML document. Unknown
// fields are ignored.
func Decode(data []byte) (*Document, error) {
	var doc Document
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc.Type != TYPE {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidDocument, doc.Type)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("%w: version missing", ErrInvalidDocument)
	}
	if doc.Version != VERSION {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Version)
	}
	log.Trace("document decoded", "posis", doc.Geometry.NumPosis)
	return &doc, nil
}

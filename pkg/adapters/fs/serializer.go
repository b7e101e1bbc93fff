package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/noteapp/pkg/core"
	"gopkg.in/yaml.v3"
)

// DefaultCodecs returns the standard set of codecs keyed by file extension.
func DefaultCodecs() map[string]core.Codec {
	return map[string]core.Codec{
		".json":  NewJSONCodec(),
		".notes": NewJSONCodec(),
		".yaml":  NewYAMLCodec(),
		".yml":   NewYAMLCodec(),
		".md":    NewMarkdownCodec(),
	}
}

// CodecFor picks a codec from the extension of path.
func CodecFor(path string) (core.Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := DefaultCodecs()[ext]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no codec for extension %q", ext)
}

// --- JSON Codec ---

// JSONCodec reads and writes the store format: an object with a "notes" array.
type JSONCodec struct {
	Indent string
}

// NewJSONCodec creates a JSON codec using 4-space indentation.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "    "}
}

// jsonDocument distinguishes a missing or null "notes" key from an empty array.
type jsonDocument struct {
	SchemaVersion int                `json:"schema_version"`
	Notes         *[]core.NoteRecord `json:"notes"`
}

func (c *JSONCodec) Encode(doc core.Document) ([]byte, error) {
	if doc.Notes == nil {
		doc.Notes = []core.NoteRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Titles and content are user text; keep <, > and & as typed.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", c.Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *JSONCodec) Decode(data []byte) (core.Document, error) {
	var payload jsonDocument
	if err := json.Unmarshal(data, &payload); err != nil {
		return core.Document{}, fmt.Errorf("%w: invalid json: %w", core.ErrMalformedDocument, err)
	}
	if payload.Notes == nil {
		return core.Document{}, fmt.Errorf("%w: missing \"notes\" array", core.ErrMalformedDocument)
	}
	return core.Document{SchemaVersion: payload.SchemaVersion, Notes: *payload.Notes}, nil
}

// --- YAML Codec ---

// YAMLCodec writes the same document shape as JSONCodec in YAML.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

type yamlDocument struct {
	SchemaVersion int                `yaml:"schema_version"`
	Notes         *[]core.NoteRecord `yaml:"notes"`
}

func (c *YAMLCodec) Encode(doc core.Document) ([]byte, error) {
	if doc.Notes == nil {
		doc.Notes = []core.NoteRecord{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *YAMLCodec) Decode(data []byte) (core.Document, error) {
	var payload yamlDocument
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return core.Document{}, fmt.Errorf("%w: invalid yaml: %w", core.ErrMalformedDocument, err)
	}
	if payload.Notes == nil {
		return core.Document{}, fmt.Errorf("%w: missing \"notes\" list", core.ErrMalformedDocument)
	}
	return core.Document{SchemaVersion: payload.SchemaVersion, Notes: *payload.Notes}, nil
}

// --- Markdown Codec ---

// ErrEncodeOnly is returned by codecs that cannot be read back.
var ErrEncodeOnly = errors.New("format is export-only")

// MarkdownCodec renders each note as a frontmatter block followed by its content.
type MarkdownCodec struct{}

// NewMarkdownCodec creates a new Markdown codec.
func NewMarkdownCodec() *MarkdownCodec {
	return &MarkdownCodec{}
}

type markdownFrontmatter struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Category  string `yaml:"category"`
	CreatedAt string `yaml:"created_at"`
	UpdatedAt string `yaml:"updated_at"`
}

func (c *MarkdownCodec) Encode(doc core.Document) ([]byte, error) {
	var buf bytes.Buffer
	for i, rec := range doc.Notes {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(markdownFrontmatter{
			ID:        rec.ID,
			Title:     rec.Title,
			Category:  rec.Category,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
		buf.WriteString(rec.Content)
		if !strings.HasSuffix(rec.Content, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

func (c *MarkdownCodec) Decode(data []byte) (core.Document, error) {
	return core.Document{}, fmt.Errorf("markdown: %w", ErrEncodeOnly)
}

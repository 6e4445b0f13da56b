package contextfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/xelA/tagify/template"
	"github.com/xelA/tagify/value"
)

// Document is a template file with optional YAML frontmatter between ---
// delimiters. Frontmatter supplies metadata and default context values;
// the body is the template itself.
type Document struct {
	// Name identifies the document.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description says what the rendered text is for.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Context holds default values layered under the host context at
	// render time.
	Context map[string]any `yaml:"context,omitempty" json:"context,omitempty"`

	// Body is the template text after the frontmatter.
	Body string `yaml:"-" json:"-"`
}

// ParseDocument splits frontmatter from body. Input without a leading ---
// line is a document with an empty frontmatter and the whole input as body.
func ParseDocument(src string) (*Document, error) {
	if !strings.HasPrefix(src, "---") {
		return &Document{Body: strings.TrimSpace(src)}, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(src))
	var frontmatterLines []string
	var contentLines []string
	inFrontmatter := false
	foundEnd := false

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 && strings.TrimRight(line, "\r") == "---" {
			inFrontmatter = true
			continue
		}
		if inFrontmatter && strings.TrimRight(line, "\r") == "---" {
			inFrontmatter = false
			foundEnd = true
			continue
		}

		if inFrontmatter {
			frontmatterLines = append(frontmatterLines, line)
		} else if foundEnd {
			contentLines = append(contentLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	if !foundEnd {
		return nil, errors.New("document frontmatter not closed (missing ---)")
	}

	doc := &Document{}
	frontmatter := strings.Join(frontmatterLines, "\n")
	if err := yaml.Unmarshal([]byte(frontmatter), doc); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	doc.Body = strings.TrimSpace(strings.Join(contentLines, "\n"))
	return doc, nil
}

// ParseDocumentFile reads and parses a document from disk.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseDocument(string(data))
}

// Render evaluates the document body against the frontmatter defaults
// with the host context layered on top (host keys win). Each call builds
// a fresh engine, so {% set %} bindings never leak between renders.
func (d *Document) Render(base value.Mapping, opts ...template.Option) (string, error) {
	ctx := value.FromMap(d.Context)
	ctx.Merge(base)
	return template.New(ctx, opts...).Render(d.Body)
}

// DocumentSchema returns the JSON Schema for document frontmatter, for
// editor validation of document files.
func DocumentSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Document{})
}

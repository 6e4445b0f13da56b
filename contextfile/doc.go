// Package contextfile loads render contexts and template documents from
// disk.
//
// Contexts are plain mappings stored as YAML, TOML, or JSON, selected by
// file extension:
//
//	ctx, err := contextfile.Load("context.yaml")
//	engine := template.New(ctx)
//
// A template document is a template file with optional YAML frontmatter
// carrying a name, a description, and default context values:
//
//	---
//	name: greeting
//	context:
//	  name: World
//	---
//	Hi {name}!
//
// Parse with ParseDocument/ParseDocumentFile and render with
// Document.Render, which layers a host context over the frontmatter
// defaults. DocumentSchema exposes a JSON Schema for the frontmatter so
// editors can validate document files.
package contextfile

// Command tagify renders template files from the command line.
//
// Templates may carry YAML frontmatter with default context values; extra
// context files (YAML, TOML, or JSON) layer on top.
//
//	tagify render greeting.txt -c context.yaml
//	tagify watch greeting.txt -c context.yaml
//	tagify schema
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/xelA/tagify/contextfile"
	"github.com/xelA/tagify/template"
	"github.com/xelA/tagify/value"
	"github.com/xelA/tagify/watch"
)

type cli struct {
	Render renderCmd `cmd:"" help:"Render a template file once."`
	Watch  watchCmd  `cmd:"" help:"Render a template file and re-render whenever it changes."`
	Schema schemaCmd `cmd:"" help:"Print the JSON Schema for document frontmatter."`
}

type renderFlags struct {
	Context        []string `short:"c" help:"Context file(s): YAML, TOML, or JSON. Later files win." type:"existingfile"`
	Builtins       bool     `help:"Merge the builtin callables (upper, lower, trim, ...) into the context."`
	NoConditionals bool     `help:"Disable {% if %} processing."`
}

// baseContext builds the host context from flags.
func (f *renderFlags) baseContext() (value.Mapping, error) {
	ctx := value.Mapping{}
	if f.Builtins {
		ctx.Merge(template.Builtins())
	}
	loaded, err := contextfile.LoadAll(f.Context...)
	if err != nil {
		return nil, err
	}
	ctx.Merge(loaded)
	return ctx, nil
}

func (f *renderFlags) options() []template.Option {
	if f.NoConditionals {
		return []template.Option{template.WithoutConditionals()}
	}
	return nil
}

type renderCmd struct {
	renderFlags
	Template string `arg:"" help:"Template file to render." type:"existingfile"`
}

func (r *renderCmd) Run() error {
	base, err := r.baseContext()
	if err != nil {
		return err
	}

	doc, err := contextfile.ParseDocumentFile(r.Template)
	if err != nil {
		return err
	}

	out, err := doc.Render(base, r.options()...)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

type watchCmd struct {
	renderFlags
	Template string `arg:"" help:"Template file to watch." type:"existingfile"`
}

func (w *watchCmd) Run() error {
	base, err := w.baseContext()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := documentRenderer{base: base, opts: w.options()}
	for result := range watch.New(w.Template, renderer).Run(ctx) {
		if result.Err != nil {
			fmt.Fprintln(os.Stderr, "render:", result.Err)
			continue
		}
		fmt.Println(result.Output)
	}
	return nil
}

// documentRenderer re-parses frontmatter on every render so edits to the
// defaults take effect too.
type documentRenderer struct {
	base value.Mapping
	opts []template.Option
}

func (d documentRenderer) Render(src string) (string, error) {
	doc, err := contextfile.ParseDocument(src)
	if err != nil {
		return "", err
	}
	return doc.Render(d.base, d.opts...)
}

type schemaCmd struct{}

func (s *schemaCmd) Run() error {
	data, err := json.MarshalIndent(contextfile.DocumentSchema(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	ktx := kong.Parse(&cli{},
		kong.Name("tagify"),
		kong.Description("Lightweight dynamic text templating."),
		kong.UsageOnError(),
	)
	ktx.FatalIfErrorf(ktx.Run())
}

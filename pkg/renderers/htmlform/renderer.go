// Package htmlform renders a block's form view as plain HTML for admin
// previews and server-rendered editors.
package htmlform

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/commercekit/blockforge/pkg/render"
	rendertemplate "github.com/commercekit/blockforge/pkg/render/template"
	gotemplate "github.com/commercekit/blockforge/pkg/render/template/gotemplate"
	"github.com/commercekit/blockforge/pkg/schema"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer implements render.Renderer producing HTML markup.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer *bluemonday.Policy
}

// New constructs the HTML form renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmlform: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		sanitizer: bluemonday.UGCPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "htmlform"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form markup. Rich text values pass through a UGC
// sanitizer before reaching the template so stored markup cannot smuggle
// scripts into the admin preview.
func (r *Renderer) Render(_ context.Context, view render.FormView, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmlform: template renderer is nil")
	}

	formCtx, err := viewContext(view, options, r.sanitizer)
	if err != nil {
		return nil, fmt.Errorf("htmlform: build template context: %w", err)
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", formCtx)
	if err != nil {
		return nil, fmt.Errorf("htmlform: render template: %w", err)
	}
	return []byte(result), nil
}

// viewContext converts the view to a template context, attaching per-field
// error messages and theme CSS variables where present.
func viewContext(view render.FormView, options render.RenderOptions, sanitizer *bluemonday.Policy) (map[string]any, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return nil, err
	}
	form := map[string]any{}
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, err
	}

	fields, _ := form["fields"].([]any)
	for i, entry := range fields {
		field, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := field["name"].(string)
		if messages := options.Errors[name]; len(messages) > 0 {
			field["errors"] = messages
		}
		if kind, _ := field["type"].(string); kind == string(schema.FieldTypeRichText) {
			if value, ok := field["value"].(string); ok {
				field["value"] = sanitizer.Sanitize(value)
			}
		}
		fields[i] = field
	}

	ctx := map[string]any{
		"form": form,
	}
	if options.Theme != nil {
		ctx["theme"] = map[string]any{
			"name":    options.Theme.Theme,
			"variant": options.Theme.Variant,
			"cssVars": options.Theme.CSSVars,
		}
	}
	return ctx, nil
}

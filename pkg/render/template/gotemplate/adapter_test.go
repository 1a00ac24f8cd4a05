package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	gotemplate "github.com/commercekit/blockforge/pkg/render/template/gotemplate"
)

func TestNewRequiresSource(t *testing.T) {
	t.Parallel()

	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestRenderString(t *testing.T) {
	t.Parallel()

	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("Hello {{ name }}", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hi {{ name }}")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Hi Ada" {
		t.Fatalf("output = %q", out)
	}

	// The explicit extension resolves to the same template.
	again, err := engine.RenderTemplate("greeting.tmpl", map[string]any{"name": "Ada"})
	if err != nil || again != out {
		t.Fatalf("explicit extension mismatch: %q %v", again, err)
	}
}

func TestRenderDispatch(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"page.tmpl": &fstest.MapFile{Data: []byte("from file")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.Render("page", nil)
	if err != nil || out != "from file" {
		t.Fatalf("file dispatch failed: %q %v", out, err)
	}
	out, err = engine.Render("inline {{ name }}", map[string]any{"name": "x"})
	if err != nil || out != "inline x" {
		t.Fatalf("inline dispatch failed: %q %v", out, err)
	}
}

func TestGlobalData(t *testing.T) {
	t.Parallel()

	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{}),
		gotemplate.WithGlobalData(map[string]any{"brand": "CommerceKit"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("by {{ brand }}", nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if !strings.Contains(out, "CommerceKit") {
		t.Fatalf("global data missing: %q", out)
	}
}

func TestStructDataConvertsToContext(t *testing.T) {
	t.Parallel()

	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	payload := struct {
		Title string `json:"title"`
	}{Title: "Hero Banner"}

	out, err := engine.RenderString("{{ title }}", payload)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Hero Banner" {
		t.Fatalf("output = %q", out)
	}
}

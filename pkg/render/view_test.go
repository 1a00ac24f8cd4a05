package render_test

import (
	"strings"
	"testing"

	"github.com/commercekit/blockforge/pkg/catalog"
	"github.com/commercekit/blockforge/pkg/registry"
	"github.com/commercekit/blockforge/pkg/render"
	"github.com/commercekit/blockforge/pkg/schema"
	"github.com/commercekit/blockforge/pkg/widgets"
)

func newRegistries(t *testing.T) (*registry.Registry, *widgets.Registry) {
	t.Helper()
	reg, err := registry.New(catalog.All())
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg, widgets.NewRegistry()
}

func TestBuildViewUnknownType(t *testing.T) {
	t.Parallel()

	reg, widgetReg := newRegistries(t)
	_, err := render.BuildView(reg, widgetReg, "mystery", "", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown block type") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestBuildViewResolvesWidgetsAndVisibility(t *testing.T) {
	t.Parallel()

	reg, widgetReg := newRegistries(t)
	values := schema.Config{"type": "hero", "variant": "classic"}

	view, err := render.BuildView(reg, widgetReg, "hero", "", values)
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	if view.BlockType != "hero" || view.Variant != "classic" {
		t.Fatalf("view identity mismatch: %q %q", view.BlockType, view.Variant)
	}
	if view.Title != "Hero Banner" {
		t.Fatalf("title mismatch: %q", view.Title)
	}

	fields := indexFields(view)

	// ctaUrl is gated on ctaLabel being non-empty; no label was supplied.
	if !fields["ctaUrl"].Hidden {
		t.Fatalf("ctaUrl should be hidden without ctaLabel")
	}
	if fields["headline"].Hidden {
		t.Fatalf("headline should be visible")
	}
	if got := fields["headline"].Widget; got != widgets.WidgetText {
		t.Fatalf("headline widget = %q", got)
	}
	if got := fields["heroImage"].Widget; got != widgets.WidgetMediaPicker {
		t.Fatalf("heroImage widget = %q", got)
	}
}

func TestBuildViewVisibilityFollowsValues(t *testing.T) {
	t.Parallel()

	reg, widgetReg := newRegistries(t)
	values := schema.Config{"ctaLabel": "Shop now"}

	view, err := render.BuildView(reg, widgetReg, "hero", "classic", values)
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	if indexFields(view)["ctaUrl"].Hidden {
		t.Fatalf("ctaUrl should be visible once ctaLabel has a value")
	}
}

func TestBuildViewValuePrecedence(t *testing.T) {
	t.Parallel()

	reg, widgetReg := newRegistries(t)

	// No value supplied: the authored default shows.
	view, err := render.BuildView(reg, widgetReg, "hero", "classic", schema.Config{})
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	if got := indexFields(view)["height"].Value; got != "medium" {
		t.Fatalf("default value missing: %v", got)
	}

	// A supplied value wins over the default.
	view, err = render.BuildView(reg, widgetReg, "hero", "classic", schema.Config{"height": "full"})
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	if got := indexFields(view)["height"].Value; got != "full" {
		t.Fatalf("supplied value did not win: %v", got)
	}
}

func TestBuildViewVariantFromValues(t *testing.T) {
	t.Parallel()

	reg, widgetReg := newRegistries(t)
	values := schema.Config{"variant": "video"}

	view, err := render.BuildView(reg, widgetReg, "hero", "", values)
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	if view.Variant != "video" {
		t.Fatalf("variant not taken from values: %q", view.Variant)
	}
	fields := indexFields(view)
	if _, ok := fields["videoUrl"]; !ok {
		t.Fatalf("video variant field missing")
	}
	if _, ok := fields["heroImage"]; ok {
		t.Fatalf("hidden variant field leaked into the view")
	}
}

func indexFields(view render.FormView) map[string]render.FieldView {
	out := make(map[string]render.FieldView, len(view.Fields))
	for _, field := range view.Fields {
		out[field.Name] = field
	}
	return out
}

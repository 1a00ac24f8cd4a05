package registry_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/commercekit/blockforge/pkg/catalog"
	"github.com/commercekit/blockforge/pkg/registry"
	"github.com/commercekit/blockforge/pkg/schema"
)

func newTestRegistry(t *testing.T, schemas []schema.BlockSchema, options ...registry.Option) *registry.Registry {
	t.Helper()
	reg, err := registry.New(schemas, options...)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func TestNewRejectsDuplicateType(t *testing.T) {
	t.Parallel()

	schemas := []schema.BlockSchema{
		{Type: "hero", Name: "Hero"},
		{Type: "hero", Name: "Hero Again"},
	}
	_, err := registry.New(schemas)
	if err == nil {
		t.Fatalf("expected duplicate type error")
	}
	if !strings.Contains(err.Error(), `duplicate block type "hero"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRejectsEmptyType(t *testing.T) {
	t.Parallel()

	_, err := registry.New([]schema.BlockSchema{{Name: "Anonymous"}})
	if err == nil {
		t.Fatalf("expected empty type error")
	}
}

func TestBaseFieldsMergedOnce(t *testing.T) {
	t.Parallel()

	base := []schema.FieldSchema{
		{Name: "adminLabel", Type: schema.FieldTypeString},
		{Name: "locked", Type: schema.FieldTypeBoolean},
	}
	schemas := []schema.BlockSchema{
		{
			Type:              "hero",
			Name:              "Hero",
			IncludeBaseFields: true,
			Fields:            []schema.FieldSchema{{Name: "headline", Type: schema.FieldTypeString}},
		},
		{
			Type:   "activity-hub",
			Name:   "Activity Hub",
			Fields: []schema.FieldSchema{{Name: "feedSources", Type: schema.FieldTypeMultiSelect}},
		},
	}
	reg := newTestRegistry(t, schemas, registry.WithBaseFields(base))

	hero, ok := reg.Schema("hero")
	if !ok {
		t.Fatalf("hero not registered")
	}
	wantNames := []string{"headline", "adminLabel", "locked"}
	if diff := cmp.Diff(wantNames, fieldNames(hero.Fields)); diff != "" {
		t.Fatalf("merged fields mismatch (-want +got):\n%s", diff)
	}

	// Repeated lookups must not re-append the base fields.
	hero, _ = reg.Schema("hero")
	if got := len(hero.Fields); got != 3 {
		t.Fatalf("base fields merged more than once: %d fields", got)
	}

	hub, _ := reg.Schema("activity-hub")
	if diff := cmp.Diff([]string{"feedSources"}, fieldNames(hub.Fields)); diff != "" {
		t.Fatalf("opted-out schema gained base fields (-want +got):\n%s", diff)
	}
}

func TestSchemaLookupMiss(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())
	if _, ok := reg.Schema("does-not-exist"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestAllPreservesCatalogOrder(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())
	var want []string
	for _, blockSchema := range catalog.All() {
		want = append(want, blockSchema.Type)
	}
	var got []string
	for _, blockSchema := range reg.All() {
		got = append(got, blockSchema.Type)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, reg.Types()); diff != "" {
		t.Fatalf("Types order mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemasByCategory(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())
	commerce := reg.SchemasByCategory("commerce")
	if len(commerce) == 0 {
		t.Fatalf("expected commerce schemas")
	}
	for _, blockSchema := range commerce {
		if blockSchema.Category != "commerce" {
			t.Fatalf("wrong category: %s on %s", blockSchema.Category, blockSchema.Type)
		}
	}
	if got := reg.SchemasByCategory("no-such-category"); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFieldsForBlockVariantResolution(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())

	base := reg.FieldsForBlock("hero", "")
	if len(base) == 0 {
		t.Fatalf("expected base fields")
	}
	baseNames := fieldNames(base)
	if !containsName(baseNames, "heroImage") || !containsName(baseNames, "overlayOpacity") {
		t.Fatalf("base field list missing expected entries: %v", baseNames)
	}

	video := fieldNames(reg.FieldsForBlock("hero", "video"))
	if !containsName(video, "videoUrl") {
		t.Fatalf("video variant missing additional field: %v", video)
	}
	if containsName(video, "heroImage") || containsName(video, "overlayOpacity") {
		t.Fatalf("video variant did not remove hidden fields: %v", video)
	}

	// An unknown variant falls back to the block's own field list.
	fallback := fieldNames(reg.FieldsForBlock("hero", "nope"))
	if diff := cmp.Diff(baseNames, fallback); diff != "" {
		t.Fatalf("unknown variant should fall back (-want +got):\n%s", diff)
	}

	if got := reg.FieldsForBlock("does-not-exist", ""); got != nil {
		t.Fatalf("unknown type should yield nil, got %v", got)
	}
}

func TestFieldsForBlockReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())
	fields := reg.FieldsForBlock("hero", "")
	fields[0].Name = "mutated"

	again := reg.FieldsForBlock("hero", "")
	if again[0].Name == "mutated" {
		t.Fatalf("FieldsForBlock leaked internal state")
	}
}

func TestValidateConfigUnknownType(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())
	got := reg.ValidateConfig("mystery", schema.Config{})
	want := []string{"unknown block type: mystery"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateConfigUsesConfigVariant(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, catalog.All())

	// The video variant adds a required videoUrl field.
	config := schema.Config{
		"type":     "hero",
		"variant":  "video",
		"headline": "Watch our story",
	}
	findings := reg.ValidateConfig("hero", config)
	if !containsName(findings, "Video URL is required") {
		t.Fatalf("expected video variant required finding, got %#v", findings)
	}

	// Same config under the classic variant has no videoUrl requirement.
	config["variant"] = "classic"
	findings = reg.ValidateConfig("hero", config)
	if containsName(findings, "Video URL is required") {
		t.Fatalf("classic variant should not require videoUrl: %#v", findings)
	}
}

func fieldNames(fields []schema.FieldSchema) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}

func containsName(list []string, needle string) bool {
	for _, item := range list {
		if item == needle {
			return true
		}
	}
	return false
}

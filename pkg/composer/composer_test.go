package composer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/commercekit/blockforge/pkg/catalog"
	"github.com/commercekit/blockforge/pkg/composer"
	"github.com/commercekit/blockforge/pkg/registry"
)

// fakeDriver answers prompts from a scripted map keyed by message. Unscripted
// prompts fall back to defaults so tests only script what they assert on.
type fakeDriver struct {
	inputs    map[string]string
	confirms  map[string]bool
	selects   map[string]int
	textAreas map[string]string
	asked     []string
}

func (d *fakeDriver) Input(_ context.Context, cfg composer.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if answer, ok := d.inputs[cfg.Message]; ok {
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				return "", err
			}
		}
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg composer.ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	if answer, ok := d.confirms[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg composer.SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	if answer, ok := d.selects[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.DefaultIndex, nil
}

func (d *fakeDriver) MultiSelect(_ context.Context, cfg composer.SelectConfig) ([]int, error) {
	d.asked = append(d.asked, cfg.Message)
	return cfg.Defaults, nil
}

func (d *fakeDriver) TextArea(_ context.Context, cfg composer.TextAreaConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if answer, ok := d.textAreas[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *fakeDriver) Info(context.Context, string) error { return nil }

func (d *fakeDriver) wasAsked(message string) bool {
	for _, asked := range d.asked {
		if asked == message {
			return true
		}
	}
	return false
}

func newComposer(t *testing.T, driver composer.PromptDriver) *composer.Composer {
	t.Helper()
	reg, err := registry.New(catalog.All())
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return composer.New(reg, composer.WithDriver(driver))
}

func TestComposeUnknownType(t *testing.T) {
	t.Parallel()

	comp := newComposer(t, &fakeDriver{})
	_, err := comp.Compose(context.Background(), "mystery")
	if err == nil || !strings.Contains(err.Error(), "unknown block type") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestComposeHeroClassic(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		inputs: map[string]string{
			"Headline":             "Fall Collection",
			"Primary Button Label": "Shop now",
			"Primary Button Link":  "https://example.com/fall",
		},
	}
	comp := newComposer(t, driver)

	config, err := comp.Compose(context.Background(), "hero")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got := config.BlockType(); got != "hero" {
		t.Fatalf("type mismatch: %q", got)
	}
	if got := config.Variant(); got != "classic" {
		t.Fatalf("variant mismatch: %q", got)
	}
	if got := config["headline"]; got != "Fall Collection" {
		t.Fatalf("headline mismatch: %v", got)
	}
	if got := config["ctaUrl"]; got != "https://example.com/fall" {
		t.Fatalf("ctaUrl mismatch: %v", got)
	}
	if config.ID() == "" {
		t.Fatalf("id missing")
	}
	if !config.Enabled() {
		t.Fatalf("composed block should be enabled")
	}
}

func TestComposeSkipsGatedFields(t *testing.T) {
	t.Parallel()

	// No primary button label, so the gated link fields must not prompt. The
	// headline default comes from the schema's authored defaults.
	driver := &fakeDriver{
		inputs: map[string]string{
			"Primary Button Label": "",
		},
	}
	comp := newComposer(t, driver)

	config, err := comp.Compose(context.Background(), "hero")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if driver.wasAsked("Primary Button Link") {
		t.Fatalf("gated field was prompted")
	}
	if _, ok := config["ctaUrl"]; ok {
		t.Fatalf("gated field value recorded: %v", config["ctaUrl"])
	}
}

func TestComposeNumberParsing(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		inputs: map[string]string{
			"Image Overlay Opacity": "0.5",
		},
	}
	comp := newComposer(t, driver)

	config, err := comp.Compose(context.Background(), "hero")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := config["overlayOpacity"]; got != 0.5 {
		t.Fatalf("number not parsed: %v (%T)", got, got)
	}
}

func TestComposeNumberValidator(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		inputs: map[string]string{
			"Image Overlay Opacity": "half",
		},
	}
	comp := newComposer(t, driver)

	_, err := comp.Compose(context.Background(), "hero")
	if err == nil || !strings.Contains(err.Error(), "must be a number") {
		t.Fatalf("expected number validation error, got %v", err)
	}
}

func TestComposeReportsValidationFindings(t *testing.T) {
	t.Parallel()

	// The banner strip requires a message; answer every prompt with nothing.
	driver := &fakeDriver{
		inputs: map[string]string{"Message": ""},
	}
	comp := newComposer(t, driver)

	config, err := comp.Compose(context.Background(), "banner-strip")
	if err == nil {
		t.Fatalf("expected validation error, got config %#v", config)
	}
	if !strings.Contains(err.Error(), "configuration is invalid") {
		t.Fatalf("unexpected error: %v", err)
	}
	if config == nil {
		t.Fatalf("partial config should be returned alongside the error")
	}
}

func TestComposeVariantSelection(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		selects: map[string]int{"Variant": 2}, // hero video variant
		inputs: map[string]string{
			"Headline":  "Watch our story",
			"Video URL": "https://example.com/clip.mp4",
		},
	}
	comp := newComposer(t, driver)

	config, err := comp.Compose(context.Background(), "hero")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := config.Variant(); got != "video" {
		t.Fatalf("variant mismatch: %q", got)
	}
	if got := config["videoUrl"]; got != "https://example.com/clip.mp4" {
		t.Fatalf("variant field missing: %v", got)
	}
	if driver.wasAsked("Hero Image") {
		t.Fatalf("hidden variant field was prompted")
	}
}

func TestComposeArrayEntries(t *testing.T) {
	t.Parallel()

	driver := &fakeDriver{
		selects: map[string]int{"Product Source": 0}, // manual
		confirms: map[string]bool{
			"Add Products entry? (0 so far)": true,
			"Add Products entry? (1 so far)": true,
			"Add Products entry? (2 so far)": false,
		},
		inputs: map[string]string{
			"Products #1": "sku-100",
			"Products #2": "sku-200",
		},
	}
	comp := newComposer(t, driver)

	config, err := comp.Compose(context.Background(), "featured-products")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	items, ok := config["productIds"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("array entries mismatch: %#v", config["productIds"])
	}
	if fmt.Sprint(items[0]) != "sku-100" || fmt.Sprint(items[1]) != "sku-200" {
		t.Fatalf("array values mismatch: %#v", items)
	}
}

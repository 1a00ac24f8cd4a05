package blockforge_test

import (
	"testing"

	blockforge "github.com/commercekit/blockforge"
)

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg, err := blockforge.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	if len(reg.Types()) != len(blockforge.Catalog()) {
		t.Fatalf("registry misses catalog entries: %d vs %d", len(reg.Types()), len(blockforge.Catalog()))
	}

	hero, ok := reg.Schema("hero")
	if !ok {
		t.Fatalf("hero missing")
	}
	// Base fields are folded in at construction.
	names := make(map[string]bool, len(hero.Fields))
	for _, field := range hero.Fields {
		names[field.Name] = true
	}
	if !names["headline"] || !names["adminLabel"] {
		t.Fatalf("merged schema incomplete: %v", names)
	}
}

func TestRootValidationFlow(t *testing.T) {
	t.Parallel()

	reg, err := blockforge.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	block := reg.CreateBlock("hero", "", blockforge.Config{"headline": "Hello"})
	if findings := reg.ValidateConfig("hero", block); len(findings) != 0 {
		t.Fatalf("unexpected findings: %v", findings)
	}

	clone := blockforge.DuplicateBlock(block)
	if clone.ID() == block.ID() {
		t.Fatalf("duplicate kept the same id")
	}
}

func TestCustomValidatorOption(t *testing.T) {
	t.Parallel()

	validator := blockforge.NewValidator()
	reg, err := blockforge.NewRegistry(blockforge.Catalog(), blockforge.WithValidator(validator))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	findings := reg.ValidateConfig("hero", blockforge.Config{})
	if len(findings) == 0 {
		t.Fatalf("expected required finding for missing headline")
	}
}

// Package overlay loads merchant-supplied catalog overlays from a
// filesystem: extra block schemas and presentation overrides for cataloged
// ones. Overlays never change field semantics, only surface metadata plus
// net-new block types.
package overlay

import "github.com/commercekit/blockforge/pkg/schema"

// Document is the parsed shape of one overlay file.
type Document struct {
	// Blocks registers additional block schemas alongside the built-in
	// catalog. Types must not collide with the catalog or other overlays.
	Blocks []schema.BlockSchema `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	// Overrides adjusts presentation metadata of existing block types, keyed
	// by block type.
	Overrides map[string]Override `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Override replaces presentation metadata on a cataloged block schema. Empty
// values leave the authored metadata untouched.
type Override struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	// IconMarkup is inline SVG shown in the block picker. It is sanitized
	// with a strict SVG-only policy at load time.
	IconMarkup string `json:"iconMarkup,omitempty" yaml:"iconMarkup,omitempty"`
}

package overlay

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/commercekit/blockforge/pkg/schema"
)

// Option configures the loader.
type Option func(*Loader)

// WithLogger attaches a logger; the loader reports each applied overlay file
// at debug level. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader walks a filesystem for overlay documents and applies them to a base
// catalog.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a Loader with the supplied options.
func NewLoader(options ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load walks fsys for *.json, *.yaml, and *.yml overlay files and applies
// each to the base catalog in walk order. The base slice is not mutated; the
// merged result is returned. A nil filesystem returns the base unchanged.
func (l *Loader) Load(fsys fs.FS, base []schema.BlockSchema) ([]schema.BlockSchema, error) {
	merged := make([]schema.BlockSchema, len(base))
	copy(merged, base)
	if fsys == nil {
		return merged, nil
	}

	known := make(map[string]int, len(merged))
	for i, blockSchema := range merged {
		known[blockSchema.Type] = i
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("overlay: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, blockSchema := range doc.Blocks {
			if blockSchema.Type == "" {
				return fmt.Errorf("overlay: file %s declares a block with an empty type", path)
			}
			if _, exists := known[blockSchema.Type]; exists {
				return fmt.Errorf("overlay: duplicate block type %q (file %s)", blockSchema.Type, path)
			}
			blockSchema.Icon = sanitizeIconMarkup(blockSchema.Icon)
			known[blockSchema.Type] = len(merged)
			merged = append(merged, blockSchema)
		}

		for blockType, override := range doc.Overrides {
			idx, exists := known[blockType]
			if !exists {
				return fmt.Errorf("overlay: override for unknown block type %q (file %s)", blockType, path)
			}
			merged[idx] = applyOverride(merged[idx], override)
		}

		l.logger.Debug("applied catalog overlay",
			zap.String("file", path),
			zap.Int("blocks", len(doc.Blocks)),
			zap.Int("overrides", len(doc.Overrides)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

func applyOverride(blockSchema schema.BlockSchema, override Override) schema.BlockSchema {
	if override.Name != "" {
		blockSchema.Name = override.Name
	}
	if override.Description != "" {
		blockSchema.Description = override.Description
	}
	if override.Thumbnail != "" {
		blockSchema.Thumbnail = override.Thumbnail
	}
	if cleaned := sanitizeIconMarkup(override.IconMarkup); cleaned != "" {
		blockSchema.Icon = cleaned
	}
	return blockSchema
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, path string) (Document, error) {
	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("overlay: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("overlay: parse %s: %w", path, err)
	}
	return doc, nil
}

package render

import (
	"context"

	theme "github.com/goliatone/go-theme"
)

// Renderer converts a FormView into a byte representation (HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view FormView, options RenderOptions) ([]byte, error)
}

// RenderOptions describe per-request data renderers can use to customise
// their output without mutating the view pipeline.
type RenderOptions struct {
	// Errors surfaces validation feedback keyed by field name so renderers can
	// attach inline messages next to the offending control.
	Errors map[string][]string
	// Theme carries resolved go-theme tokens and CSS variables. Renderers that
	// ignore theming can leave it nil.
	Theme *theme.RendererConfig
}

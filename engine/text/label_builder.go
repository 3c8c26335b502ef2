package text

import (
	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
)

// LabelBuilderOption is a functional option for configuring a Label via NewLabel.
type LabelBuilderOption func(*label)

// WithStyle replaces the whole rasterisation style.
//
// Parameters:
//   - style: the style to draw with
//
// Returns:
//   - LabelBuilderOption: a function that applies the style
func WithStyle(style Style) LabelBuilderOption {
	return func(l *label) {
		l.style = style
	}
}

// WithFamily selects the font.
//
// Parameters:
//   - family: the font family
//
// Returns:
//   - LabelBuilderOption: a function that applies the font family
func WithFamily(family Family) LabelBuilderOption {
	return func(l *label) {
		l.style.Family = family
	}
}

// WithAlign sets the line alignment.
//
// Parameters:
//   - align: the alignment
//
// Returns:
//   - LabelBuilderOption: a function that applies the alignment
func WithAlign(align Align) LabelBuilderOption {
	return func(l *label) {
		l.style.Align = align
	}
}

// WithLineHeight sets the world height of one line.
//
// Parameters:
//   - h: line height in world units
//
// Returns:
//   - LabelBuilderOption: a function that applies the line height
func WithLineHeight(h float32) LabelBuilderOption {
	return func(l *label) {
		l.lineHeight = h
	}
}

// WithMaxWidth wraps text wider than w world units.
//
// Parameters:
//   - w: wrap width in world units
//
// Returns:
//   - LabelBuilderOption: a function that applies the wrap width
func WithMaxWidth(w float32) LabelBuilderOption {
	return func(l *label) {
		l.wrapWidth = w
	}
}

// WithColor sets the text colour.
//
// Parameters:
//   - hex: "#RRGGBB" colour
//
// Returns:
//   - LabelBuilderOption: a function that applies the colour
func WithColor(hex string) LabelBuilderOption {
	return func(l *label) {
		l.color = common.MustHexColor(hex)
	}
}

// WithOverlay draws the label with the overlay pipeline, on top of all scene geometry.
//
// Returns:
//   - LabelBuilderOption: a function that applies the overlay pipeline
func WithOverlay() LabelBuilderOption {
	return func(l *label) {
		l.pipeline = material.PipelineHUD
	}
}

// WithObjectOptions forwards options to the underlying GameObject, such as its position.
//
// Parameters:
//   - options: the GameObject options
//
// Returns:
//   - LabelBuilderOption: a function that records the GameObject options
func WithObjectOptions(options ...game_object.GameObjectBuilderOption) LabelBuilderOption {
	return func(l *label) {
		l.objOptions = append(l.objOptions, options...)
	}
}

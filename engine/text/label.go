package text

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
)

// unitPlane is shared by every label; the label scale carries its size.
var unitPlane = sync.OnceValue(func() model.Model {
	return model.NewPlane(1, 1)
})

type label struct {
	game_object.GameObject

	mu         *sync.Mutex
	text       string
	style      Style
	lineHeight float32
	color      [4]float32
	pipeline   string
	wrapWidth  float32
	objOptions []game_object.GameObjectBuilderOption
}

// Label is a GameObject that displays a string on a camera-facing plane.
// The plane is sized so one line is LineHeight world units tall and keeps the aspect
// ratio of the rasterised text. The first rasterisation runs as the object's preload
// work; SetText re-rasterises immediately.
type Label interface {
	game_object.GameObject

	// Text returns the current string.
	//
	// Returns:
	//   - string: the displayed text
	Text() string

	// SetText replaces the string and re-rasterises when it changed.
	//
	// Parameters:
	//   - s: the new text
	//
	// Returns:
	//   - error: an error if rasterisation failed
	SetText(s string) error

	// SetColor replaces the text tint.
	//
	// Parameters:
	//   - hex: "#RRGGBB" colour
	SetColor(hex string)

	// LineHeight returns the world height of one line.
	//
	// Returns:
	//   - float32: height in world units
	LineHeight() float32

	// SetLineHeight resizes the label so one line is h world units tall. Wrapped labels
	// re-rasterise because the wrap width is measured in lines.
	//
	// Parameters:
	//   - h: the new line height in world units, ignored when not positive
	//
	// Returns:
	//   - error: an error if re-rasterisation failed
	SetLineHeight(h float32) error
}

var _ Label = &label{}

// NewLabel creates a label showing s. Defaults to white 0.3 unit high centred Go Regular text
// drawn with the label pipeline.
//
// Parameters:
//   - s: the initial text
//   - options: functional options to configure the label
//
// Returns:
//   - Label: the new label
func NewLabel(s string, options ...LabelBuilderOption) Label {
	l := &label{
		mu:         &sync.Mutex{},
		text:       s,
		style:      DefaultStyle,
		lineHeight: 0.3,
		color:      [4]float32{1, 1, 1, 1},
		pipeline:   material.PipelineLabel,
	}
	for _, opt := range options {
		opt(l)
	}
	if l.wrapWidth > 0 && l.lineHeight > 0 {
		l.style.MaxWidthLines = l.wrapWidth / l.lineHeight
	}

	mat := material.NewMaterial(
		material.WithName("label"),
		material.WithBaseColor(l.color),
		material.WithPipelineKey(l.pipeline),
		material.WithUnlit(),
	)
	objOptions := append([]game_object.GameObjectBuilderOption{
		game_object.WithName("label"),
	}, l.objOptions...)
	objOptions = append(objOptions,
		game_object.WithModel(unitPlane()),
		game_object.WithMaterial(mat),
	)
	l.GameObject = game_object.NewGameObject(objOptions...)
	l.objOptions = nil
	l.GameObject.SetPreload(l.render)
	return l
}

func (l *label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

func (l *label) SetText(s string) error {
	l.mu.Lock()
	if s == l.text {
		l.mu.Unlock()
		return nil
	}
	l.text = s
	l.mu.Unlock()
	return l.render()
}

func (l *label) SetColor(hex string) {
	c := common.MustHexColor(hex)
	mat := l.Material()
	c[3] = mat.BaseColor()[3]
	mat.SetBaseColor(c)
}

func (l *label) LineHeight() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lineHeight
}

func (l *label) SetLineHeight(h float32) error {
	l.mu.Lock()
	if h <= 0 || h == l.lineHeight {
		l.mu.Unlock()
		return nil
	}
	ratio := h / l.lineHeight
	l.lineHeight = h
	wrapped := l.wrapWidth > 0
	if wrapped {
		l.style.MaxWidthLines = l.wrapWidth / h
	}
	l.mu.Unlock()

	if tex, _ := l.Material().Texture(); tex == nil {
		return nil
	}
	if wrapped {
		return l.render()
	}
	s := l.Scale()
	l.SetScale(common.Vec3{s[0] * ratio, s[1] * ratio, 1})
	return nil
}

// render rasterises the current text onto the material and resizes the plane.
func (l *label) render() error {
	l.mu.Lock()
	s, style := l.text, l.style
	l.mu.Unlock()

	r, err := Rasterize(s, style)
	if err != nil {
		return err
	}

	l.mu.Lock()
	lineHeight := l.lineHeight
	l.mu.Unlock()
	h := lineHeight * float32(r.Texture.Height) / float32(r.LineHeight)
	w := h * float32(r.Texture.Width) / float32(r.Texture.Height)
	l.Material().SetTexture(&r.Texture)
	l.SetScale(common.Vec3{w, h, 1})
	return nil
}

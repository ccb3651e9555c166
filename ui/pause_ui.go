package ui

import (
	"bytes"
	stdimage "image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// PauseUI is the in-game overlay holding the pause button. Taps that land on
// the button never reach the gameplay.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnToggle func()

	button *widget.Button
	face   text.Face
}

// NewPauseUI creates the pause button anchored to the top-right corner.
func NewPauseUI(size int, onToggle func()) *PauseUI {
	pui := &PauseUI{OnToggle: onToggle}
	pui.loadFonts()
	pui.buildUI(size)
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	pui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (pui *PauseUI) buildUI(size int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
	)

	pui.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(size, size),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("II", &pui.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if pui.OnToggle != nil {
				pui.OnToggle()
			}
		}),
	)
	rootContainer.AddChild(pui.button)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 200})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 220})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 160})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Contains reports whether a screen point is on the pause button.
func (pui *PauseUI) Contains(x, y int) bool {
	if pui.button == nil {
		return false
	}
	return stdimage.Pt(x, y).In(pui.button.GetWidget().Rect)
}

// SetPaused updates the button label.
func (pui *PauseUI) SetPaused(paused bool) {
	if textWidget := pui.button.Text(); textWidget != nil {
		if paused {
			textWidget.Label = ">"
		} else {
			textWidget.Label = "II"
		}
	}
}

// SetEnabled disables the button once the round is over.
func (pui *PauseUI) SetEnabled(enabled bool) {
	pui.button.GetWidget().Disabled = !enabled
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}

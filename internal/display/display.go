// Package display shows the rendered figure in a desktop window.
package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying the figure and blocks until the window
// closes. Escape or Q also closes it.
func Show(img image.Image, title string) error {
	bounds := img.Bounds()
	v := &viewer{
		img:    ebiten.NewImageFromImage(img),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

type viewer struct {
	img    *ebiten.Image
	width  int
	height int
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

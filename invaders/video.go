package invaders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorGreen = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Framebuffer renders video RAM (0x2400-0x3fff) into a 224x256 RGBA image,
// undoing the cabinet's physical 90-degree counter-clockwise mount and
// applying the red/green cellophane overlay strips glued directly onto the
// monitor on real hardware.
func (m *Machine) Framebuffer() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, screenW, screenH))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBlack), image.Point{}, draw.Src)

	for i := 0; i < screenW*screenH/8; i++ {
		x := i / (screenH / 8)
		yBase := screenH - 1 - (i*8)%screenH

		c := colorWhite
		switch {
		case yBase >= 32 && yBase < 64:
			c = colorRed
		case yBase >= 184:
			c = colorGreen
			if yBase >= 240 && (x < 16 || x >= 134) {
				c = colorWhite
			}
		}

		pixels := m.mem.Read(uint16(vramBase + i))
		for bit := 0; bit < 8; bit++ {
			if pixels&(1<<uint(bit)) != 0 {
				img.Set(x, yBase-bit, c)
			}
		}
	}
	return img
}

// DrawHUD overlays a one-line status bar reporting credits and elapsed core
// cycles using a fixed bitmap font, instrumentation the original cabinet
// never had.
func DrawHUD(img *image.RGBA, credits int, cycles uint64) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorWhite),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, screenH-2),
	}
	d.DrawString(fmt.Sprintf("CREDIT %d  CYCLES %d", credits, cycles))
}

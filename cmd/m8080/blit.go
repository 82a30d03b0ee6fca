package main

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// blit pokes img directly into surface's pixel buffer, replicating each
// source pixel scale times in both dimensions. Like the VCS host's
// fastImage, this writes raw bytes instead of going through Surface.Set to
// avoid the color.Color conversion overhead on every pixel.
func blit(img *image.RGBA, surface *sdl.Surface, scale int) {
	pixels := surface.Pixels()
	bpp := int32(surface.Format.BytesPerPixel)
	pitch := surface.Pitch

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					dx := int32(x*scale + sx)
					dy := int32(y*scale + sy)
					i := dy*pitch + dx*bpp
					if i < 0 || int(i+bpp) > len(pixels) {
						continue
					}
					pixels[i+0] = c.B
					pixels[i+1] = c.G
					pixels[i+2] = c.R
					pixels[i+3] = c.A
				}
			}
		}
	}
}

package preview

import "image"

// fitSize computes aspect-correct dimensions to fit in the target area.
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if maxW == 0 || maxH == 0 || srcW == 0 || srcH == 0 {
		return srcW, srcH
	}

	// compare srcW/srcH against maxW/maxH without floats
	if srcW*maxH > maxW*srcH {
		return maxW, maxW * srcH / srcW
	}
	return maxH * srcW / srcH, maxH
}

// scaleToRGBA scales an image with bilinear sampling and returns raw RGBA bytes.
func scaleToRGBA(src image.Image, dstW, dstH int) []byte {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	rgba := make([]byte, dstW*dstH*4)
	if srcW == 0 || srcH == 0 {
		return rgba
	}

	for dstY := 0; dstY < dstH; dstY++ {
		sy := (float64(dstY)+0.5)*float64(srcH)/float64(dstH) - 0.5
		y0, y1, yFrac := neighbours(sy, srcH)

		for dstX := 0; dstX < dstW; dstX++ {
			sx := (float64(dstX)+0.5)*float64(srcW)/float64(dstW) - 0.5
			x0, x1, xFrac := neighbours(sx, srcW)

			c00 := pixel(src, bounds.Min.X+x0, bounds.Min.Y+y0)
			c10 := pixel(src, bounds.Min.X+x1, bounds.Min.Y+y0)
			c01 := pixel(src, bounds.Min.X+x0, bounds.Min.Y+y1)
			c11 := pixel(src, bounds.Min.X+x1, bounds.Min.Y+y1)

			idx := (dstY*dstW + dstX) * 4
			for ch := 0; ch < 4; ch++ {
				v := (1-xFrac)*(1-yFrac)*c00[ch] +
					xFrac*(1-yFrac)*c10[ch] +
					(1-xFrac)*yFrac*c01[ch] +
					xFrac*yFrac*c11[ch]
				rgba[idx+ch] = uint8(v / 256)
			}
		}
	}

	return rgba
}

// neighbours returns the two source indices around pos and the weight of the second
func neighbours(pos float64, size int) (int, int, float64) {
	i0 := int(pos)
	if i0 < 0 {
		i0 = 0
	}
	i1 := min(i0+1, size-1)

	frac := pos - float64(i0)
	if frac < 0 {
		frac = 0
	}
	return i0, i1, frac
}

func pixel(img image.Image, x, y int) [4]float64 {
	r, g, b, a := img.At(x, y).RGBA()
	return [4]float64{float64(r), float64(g), float64(b), float64(a)}
}

package media

import "github.com/vk/deckgen/internal/pptx"

// Fit returns the largest rectangle with the image's aspect ratio that fits
// inside box, centred in it. Degenerate input returns box unchanged.
func Fit(box pptx.Rect, imgW, imgH int) pptx.Rect {
	if imgW <= 0 || imgH <= 0 || box.W <= 0 || box.H <= 0 {
		return box
	}

	// Compare aspect ratios by cross-multiplying to stay in integers.
	if int64(box.W)*int64(imgH) > int64(box.H)*int64(imgW) {
		// Box is wider than the image: full height, narrower width.
		w := pptx.EMU(int64(box.H) * int64(imgW) / int64(imgH))
		return pptx.Rect{X: box.X + (box.W-w)/2, Y: box.Y, W: w, H: box.H}
	}
	h := pptx.EMU(int64(box.W) * int64(imgH) / int64(imgW))
	return pptx.Rect{X: box.X, Y: box.Y + (box.H-h)/2, W: box.W, H: h}
}

// Package undertone classifies skin undertones from decoded images.
package undertone

import "image"

// Undertone is the detected skin undertone category.
type Undertone string

const (
	Warm    Undertone = "warm"
	Cool    Undertone = "cool"
	Neutral Undertone = "neutral"
)

// Skin detection range, inclusive on every channel.
const (
	skinRedMin, skinRedMax     = 80, 255
	skinGreenMin, skinGreenMax = 50, 200
	skinBlueMin, skinBlueMax   = 40, 180
)

// Classification margins. Red must exceed blue by WarmMargin for a warm
// result; blue must exceed red by CoolMargin for a cool one.
const (
	WarmMargin = 10
	CoolMargin = 5
)

// Classify detects the skin undertone of img. Pixels inside the skin
// detection range are averaged per channel and the channel balance decides
// the category. Images with no qualifying pixels (including a nil image)
// classify as Neutral. Classify is a pure function and never fails.
func Classify(img image.Image) Undertone {
	if img == nil {
		return Neutral
	}

	var sumR, sumG, sumB float64
	count := 0

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r := int(r16 >> 8)
			g := int(g16 >> 8)
			b := int(b16 >> 8)
			if !isSkinPixel(r, g, b) {
				continue
			}
			sumR += float64(r)
			sumG += float64(g)
			sumB += float64(b)
			count++
		}
	}

	if count == 0 {
		return Neutral
	}

	meanR := sumR / float64(count)
	meanG := sumG / float64(count)
	meanB := sumB / float64(count)

	// The warm branch is deliberately stricter than the cool one: red must
	// clear blue by the margin AND beat green. A grid that clears the warm
	// margin but loses to green falls through to the cool check.
	if meanR > meanB+WarmMargin && meanR > meanG {
		return Warm
	}
	if meanB > meanR+CoolMargin {
		return Cool
	}
	return Neutral
}

func isSkinPixel(r, g, b int) bool {
	return r >= skinRedMin && r <= skinRedMax &&
		g >= skinGreenMin && g <= skinGreenMax &&
		b >= skinBlueMin && b <= skinBlueMax
}

// Valid reports whether u is one of the known undertone categories.
func Valid(u Undertone) bool {
	switch u {
	case Warm, Cool, Neutral:
		return true
	}
	return false
}

package palette

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"sort"
)

// Defaults shared by every call site. The moodboard uses a 40px canvas, the
// outfit tracker 60px - both are passed in, nothing is hard-coded here.
const (
	DefaultCanvasSize = 40
	DefaultQuantStep  = 32
	DefaultMaxColors  = 5
)

// DecodeImage - decode PNG/JPEG/WebP bytes. Undecodable input yields
// (nil, false) rather than an error; palette extraction treats that as an
// empty palette.
func DecodeImage(data []byte) (image.Image, bool) {
	if len(data) == 0 {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	return img, true
}

// Extract - dominant colors of img as "#RRGGBB" strings, most frequent
// first.
//
// The image is stretched to a canvasSize x canvasSize grid (images smaller
// than the canvas are upsampled, never rejected), each channel is quantized
// down to the nearest lower multiple of quantStep, and buckets are counted
// over an x-outer / y-inner scan. Equal-frequency buckets keep that scan
// order, so the result is fully deterministic for identical pixel input.
func Extract(img image.Image, canvasSize, quantStep, maxColors int) []string {
	if img == nil || maxColors <= 0 {
		return []string{}
	}
	if canvasSize <= 0 {
		canvasSize = DefaultCanvasSize
	}
	if quantStep <= 0 {
		quantStep = DefaultQuantStep
	}

	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()
	if srcWidth == 0 || srcHeight == 0 {
		return []string{}
	}

	step := uint32(quantStep)
	counts := make(map[uint32]int)
	firstSeen := make(map[uint32]int)
	scanIndex := 0

	for x := 0; x < canvasSize; x++ {
		for y := 0; y < canvasSize; y++ {
			// Nearest-neighbor sample from the source image
			srcX := bounds.Min.X + x*srcWidth/canvasSize
			srcY := bounds.Min.Y + y*srcHeight/canvasSize

			r, g, b, _ := img.At(srcX, srcY).RGBA()

			// Quantize each channel down to its bucket floor, alpha discarded
			qr := (uint32(r>>8) / step) * step
			qg := (uint32(g>>8) / step) * step
			qb := (uint32(b>>8) / step) * step

			key := (qr << 16) | (qg << 8) | qb
			if _, seen := counts[key]; !seen {
				firstSeen[key] = scanIndex
			}
			counts[key]++
			scanIndex++
		}
	}

	keys := make([]uint32, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		if counts[keys[a]] != counts[keys[b]] {
			return counts[keys[a]] > counts[keys[b]]
		}
		return firstSeen[keys[a]] < firstSeen[keys[b]]
	})

	if len(keys) > maxColors {
		keys = keys[:maxColors]
	}

	colors := make([]string, 0, len(keys))
	for _, key := range keys {
		colors = append(colors, fmt.Sprintf("#%06X", key))
	}
	return colors
}

// ExtractFromBytes - decode then extract; undecodable bytes yield an empty
// palette, never an error.
func ExtractFromBytes(data []byte, canvasSize, quantStep, maxColors int) []string {
	img, ok := DecodeImage(data)
	if !ok {
		return []string{}
	}
	return Extract(img, canvasSize, quantStep, maxColors)
}

package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxProfileSide = 512
	webpQuality    = 85
)

// ProcessProfilePicture decodifica JPEG/PNG, reduz para caber em
// 512x512 mantendo a proporção e reencoda como WebP.
func ProcessProfilePicture(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxProfileSide || h > maxProfileSide {
		scale := float64(maxProfileSide) / float64(max(w, h))
		dw := int(float64(w) * scale)
		dh := int(float64(h) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Package imaging is the image-acquisition collaborator: it turns raw image
// bytes into a ready-to-store payload. The core never decodes images itself;
// it only receives finished payloads from this package.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/astrogid/astrogid/internal/errs"
	"github.com/astrogid/astrogid/internal/model"
)

const (
	// MaxUploadSize caps raw input files before decoding.
	MaxUploadSize = 10 << 20 // 10MB

	maxWidth    = 800
	jpegQuality = 80
)

// Process decodes an image from src, downscales it to maxWidth when wider,
// and re-encodes it as JPEG. A decode failure is a validation error, not a
// storage one.
func Process(src io.Reader) (model.ImagePayload, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return model.ImagePayload{}, fmt.Errorf("%w: decode image: %w", errs.ErrValidation, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return model.ImagePayload{}, fmt.Errorf("encode jpeg: %w", err)
	}

	return model.ImagePayload{Data: buf.Bytes(), Width: w, Height: h}, nil
}

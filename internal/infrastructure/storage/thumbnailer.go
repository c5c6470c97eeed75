package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/blacha370/Image-Service/internal/domain"
)

const JPEGQuality = 85

type ThumbnailerImpl struct {
	quality int
}

func NewThumbnailer() *ThumbnailerImpl {
	return &ThumbnailerImpl{quality: JPEGQuality}
}

// Resize scales the source to the target height, preserving aspect ratio:
// ratio = srcHeight/targetHeight, width = ceil(srcWidth/ratio). Output is
// encoded as jpeg when the asset name ends in "jpg", png otherwise.
func (t *ThumbnailerImpl) Resize(data []byte, assetName string, targetHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrImageDecode
	}

	bounds := img.Bounds()
	ratio := float64(bounds.Dy()) / float64(targetHeight)
	width := int(math.Ceil(float64(bounds.Dx()) / ratio))

	resized := imaging.Resize(img, width, targetHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if strings.HasSuffix(assetName, "jpg") {
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: t.quality}); err != nil {
			return nil, fmt.Errorf("encoding jpeg: %w", err)
		}
	} else {
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("encoding png: %w", err)
		}
	}

	return buf.Bytes(), nil
}

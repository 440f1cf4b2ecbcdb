package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage is returned for files no registered decoder accepts.
var ErrInvalidImage = errors.New("invalid image")

// embeddable lists formats written into documents unchanged; everything
// else is re-encoded as PNG.
var embeddable = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

type picture struct {
	data          []byte
	mime          string
	width, height int
}

func (p picture) aspect() float64 {
	if p.height == 0 {
		return 1
	}
	return float64(p.width) / float64(p.height)
}

// loadImage reads a logo and converts it to a format every backend embeds.
func loadImage(path string) (picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return picture{}, fmt.Errorf("failed to read image: %w", err)
	}
	return decodeImage(data)
}

func decodeImage(data []byte) (picture, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return picture{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return picture{}, fmt.Errorf("%w: empty %s image", ErrInvalidImage, format)
	}
	if mime, ok := embeddable[format]; ok {
		return picture{data: data, mime: mime, width: cfg.Width, height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return picture{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return picture{}, fmt.Errorf("failed to re-encode %s image: %w", format, err)
	}
	return picture{data: buf.Bytes(), mime: "image/png", width: cfg.Width, height: cfg.Height}, nil
}

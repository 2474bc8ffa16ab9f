package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ImageSize is a bounding box for thumbnails.
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

// SizeThumbnail is the preview shown on marketplace cards.
var SizeThumbnail = ImageSize{Name: "thumb", Width: 320, Height: 180}

// DefaultMaxDimension caps either side of an uploaded image.
const DefaultMaxDimension = 4096

var (
	ErrUndecodable  = errors.New("image could not be decoded")
	ErrTooLarge     = errors.New("image dimensions exceed the limit")
	ErrEmptyPicture = errors.New("image has no pixels")
)

// Info describes an image without decoding its pixels.
type Info struct {
	Format string
	Width  int
	Height int
}

type Processor struct {
	quality      int // JPEG quality (1-100)
	maxDimension int
}

func NewProcessor(quality, maxDimension int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Processor{
		quality:      quality,
		maxDimension: maxDimension,
	}
}

// Inspect reads only the image header. jpeg, png, gif and webp are understood.
func (p *Processor) Inspect(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	info := Info{Format: format, Width: cfg.Width, Height: cfg.Height}
	if info.Width <= 0 || info.Height <= 0 {
		return info, ErrEmptyPicture
	}
	if info.Width > p.maxDimension || info.Height > p.maxDimension {
		return info, fmt.Errorf("%w: %dx%d > %d", ErrTooLarge, info.Width, info.Height, p.maxDimension)
	}
	return info, nil
}

// Thumbnail scales the image to fit size, keeping the aspect ratio, and encodes it as JPEG.
// Images already inside the box are re-encoded at their own size.
func (p *Processor) Thumbnail(data []byte, size ImageSize) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	resized := p.resize(img, size.Width, size.Height)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		newWidth, newHeight = maxWidth, maxHeight
		if float64(maxWidth)/float64(maxHeight) > ratio {
			newWidth = int(float64(maxHeight) * ratio)
		} else {
			newHeight = int(float64(maxWidth) / ratio)
		}
		newWidth, newHeight = max(newWidth, 1), max(newHeight, 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

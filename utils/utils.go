package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image types understood by the PDF writer.
const (
	TypeJPEG = "JPG"
	TypePNG  = "PNG"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// GetImageSize returns the pixel dimensions of the image at filePath without
// decoding its pixels.
func GetImageSize(filePath string) (int, int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("error opening image file: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, decodeError(filePath, err)
	}
	return cfg.Width, cfg.Height, nil
}

// EncodeForPDF returns image bytes the PDF writer can embed, along with their
// type. JPEG data is passed through untouched. Any other decodable format is
// re-encoded as 8-bit PNG.
func EncodeForPDF(filePath string) ([]byte, string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("error reading image file: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", decodeError(filePath, err)
	}
	if format == "jpeg" && cfg.ColorModel != color.CMYKModel {
		return data, TypeJPEG, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", decodeError(filePath, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, to8Bit(img)); err != nil {
		return nil, "", fmt.Errorf("error encoding %s as PNG: %w", filePath, err)
	}
	return buf.Bytes(), TypePNG, nil
}

// to8Bit returns img unchanged when the PNG encoder writes it with 8 bits per
// sample, and an NRGBA copy otherwise.
func to8Bit(img image.Image) image.Image {
	switch img.(type) {
	case *image.Gray, *image.NRGBA, *image.RGBA, *image.Paletted:
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func decodeError(filePath string, err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("error decoding %s: %w", filePath, ErrUnsupportedImage)
	}
	return fmt.Errorf("error decoding %s: %w", filePath, err)
}

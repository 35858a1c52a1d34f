// Package banner renders the text banners used as launcher grid images
// for content that has no artwork.
package banner

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/cwalker/chimera/pkg/errors"
	"github.com/cwalker/chimera/pkg/logging"
	"github.com/cwalker/chimera/pkg/types"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
)

// Steam grid thumbnail size
const (
	Width  = 460
	Height = 215
)

// DefaultFontSize is the text size in pixels
const DefaultFontSize = 24

// Ellipsis is appended to text cut to fit the banner
const Ellipsis = "..."

// truncateStep is how many runes each fitting pass drops before the ellipsis
const truncateStep = 4

// Options configures a Renderer
type Options struct {
	// FontPath is a TTF/OTF file; empty selects the embedded Go Mono Bold
	FontPath string
	// FontSize in pixels; zero selects DefaultFontSize
	FontSize float64
}

// Renderer draws white text centered on a black Width x Height canvas
type Renderer struct {
	fs   types.FS
	face font.Face
}

// NewRenderer loads the configured font. Font files are read through fs.
func NewRenderer(fs types.FS, opts Options) (*Renderer, error) {
	data := gomonobold.TTF
	if opts.FontPath != "" {
		var err error
		data, err = fs.ReadFile(opts.FontPath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrBannerFont, "failed to read font %s", opts.FontPath)
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBannerFont, "failed to parse font %q", opts.FontPath)
	}

	size := opts.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBannerFont, "failed to create font face")
	}

	return &Renderer{fs: fs, face: face}, nil
}

// Close releases the font face
func (r *Renderer) Close() error {
	return r.face.Close()
}

// measure returns the rendered width of text in whole pixels
func (r *Renderer) measure(text string) int {
	return font.MeasureString(r.face, text).Ceil()
}

// Fit shortens text until it fits the banner width, returning the text and
// its width. Each pass drops the last four runes and appends the ellipsis.
// It stops at the bare ellipsis even if that is still too wide.
func (r *Renderer) Fit(text string) (string, int) {
	width := r.measure(text)
	for width > Width {
		runes := []rune(text)
		if len(runes) <= len([]rune(Ellipsis)) {
			break
		}
		cut := len(runes) - truncateStep
		if cut < 0 {
			cut = 0
		}
		text = string(runes[:cut]) + Ellipsis
		width = r.measure(text)
	}
	return text, width
}

// Render draws the fitted text centered on a new canvas
func (r *Renderer) Render(text string) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	text, textWidth := r.Fit(text)
	metrics := r.face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	x := Width/2 - textWidth/2
	top := Height/2 - textHeight/2

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(top) + metrics.Ascent},
	}
	drawer.DrawString(text)

	return canvas
}

// Generate renders text and writes it to path in the format its extension
// names (.png, .jpg, .jpeg, .bmp, .tif, .tiff). The parent directory is
// created when missing.
func (r *Renderer) Generate(text, path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := encode(&buf, r.Render(text)); err != nil {
		return errors.Wrapf(err, errors.ErrBannerEncode, "failed to encode banner %s", path)
	}

	if err := r.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create banner directory for %s", path)
	}
	if err := r.fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write banner %s", path)
	}

	logger := logging.GetLogger("banner")
	logger.Debug().Str("path", path).Int("bytes", buf.Len()).Msg("Wrote banner")
	return nil
}

type encoder func(io.Writer, image.Image) error

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, errors.Newf(errors.ErrBannerFormat, "unsupported banner format %q", ext).
			WithDetail("path", path)
	}
}

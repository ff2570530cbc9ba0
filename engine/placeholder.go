package engine

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MaxPlaceholderSide bounds both dimensions of a generated placeholder
const MaxPlaceholderSide = 2000

var (
	// ErrBadSize is returned for sizes that are not WIDTHxHEIGHT within bounds
	ErrBadSize = errors.New("invalid placeholder size")
	// ErrBadColor is returned for colours that are not 3 or 6 hex digits
	ErrBadColor = errors.New("invalid placeholder colour")
)

var (
	defaultBackground = color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}
	defaultForeground = color.NRGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF}
)

// Placeholder describes a generated image that stands in for real photography
type Placeholder struct {
	Width      int
	Height     int
	Text       string
	Background color.NRGBA
	Foreground color.NRGBA
}

// ParsePlaceholder builds a Placeholder from request values. size is
// WIDTHxHEIGHT; bg and fg are optional hex colours.
func ParsePlaceholder(size, text, bg, fg string) (Placeholder, error) {
	w, h, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return Placeholder{}, fmt.Errorf("%w: %q", ErrBadSize, size)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil ||
		width < 1 || height < 1 || width > MaxPlaceholderSide || height > MaxPlaceholderSide {
		return Placeholder{}, fmt.Errorf("%w: %q", ErrBadSize, size)
	}

	p := Placeholder{Width: width, Height: height, Text: text, Background: defaultBackground, Foreground: defaultForeground}
	if p.Text == "" {
		p.Text = fmt.Sprintf("%dx%d", width, height)
	}
	var err error
	if bg != "" {
		if p.Background, err = parseHexColor(bg); err != nil {
			return Placeholder{}, err
		}
	}
	if fg != "" {
		if p.Foreground, err = parseHexColor(fg); err != nil {
			return Placeholder{}, err
		}
	}
	return p, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// Image renders the placeholder: a flat background with the text centred,
// scaled up in whole steps to fill about a third of the height
func (p Placeholder) Image() *image.NRGBA {
	canvas := imaging.New(p.Width, p.Height, p.Background)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, p.Text).Ceil()
	textHeight := face.Metrics().Height.Ceil()
	if textWidth == 0 || textWidth > p.Width || textHeight > p.Height {
		return canvas
	}

	label := imaging.New(textWidth, textHeight, color.NRGBA{})
	d := &font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(p.Foreground),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(p.Text)

	scale := min(p.Width*9/10/textWidth, p.Height/3/textHeight)
	if scale > 1 {
		label = imaging.Resize(label, textWidth*scale, textHeight*scale, imaging.NearestNeighbor)
	}
	return imaging.OverlayCenter(canvas, label, 1.0)
}

// RenderPlaceholder writes the placeholder as a PNG
func RenderPlaceholder(w io.Writer, p Placeholder) error {
	return imaging.Encode(w, p.Image(), imaging.PNG)
}

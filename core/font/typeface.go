package font

import (
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Typeface is a loaded font-family resource. It is parsed once from an
// outline-font file and immutable afterwards; concrete font instances are
// derived from it.
type Typeface struct {
	Fontname string
	Filepath string     // file path, or "internal" for packaged fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// FontInstance is a concrete renderable variant of a typeface at a certain
// style and point size.
type FontInstance struct {
	parent *Typeface
	face   xfont.Face // Go uses 'face' and 'font' in an inverse manner
	style  Style
	size   float64
}

// LoadTypeface reads an outline-font file and parses it into a typeface.
func LoadTypeface(fontfile string) (*Typeface, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	tf, err := ParseTypeface(bytez)
	if err != nil {
		return nil, err
	}
	tf.Filepath = fontfile
	return tf, nil
}

// ParseTypeface parses TrueType-compatible font data into a typeface.
func ParseTypeface(fbytes []byte) (tf *Typeface, err error) {
	tf = &Typeface{Binary: fbytes}
	tf.SFNT, err = sfnt.Parse(tf.Binary)
	if err != nil {
		return nil, err
	}
	tf.Fontname, _ = tf.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// Family returns the font's family name, as recorded in the font's naming
// table. It may differ from the logical name a typeface is registered under.
func (tf *Typeface) Family() string {
	fam, err := tf.SFNT.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return fam
}

// Subfamily returns the font's subfamily entry ("Regular", "Bold Italic", …).
func (tf *Typeface) Subfamily() string {
	sub, err := tf.SFNT.Name(nil, sfnt.NameIDSubfamily)
	if err != nil {
		return ""
	}
	return sub
}

// Derive produces a font instance from tf at the requested style and size.
// The style is recorded on the instance; glyph rendering uses the outlines
// of the parsed file (no synthetic emboldening or shearing).
func (tf *Typeface) Derive(style Style, size float64) (*FontInstance, error) {
	if size < 5.0 || size > 500.0 {
		tracer().Errorf("font size must be 5pt < size < 500pt, is %g (set to 10pt)", size)
		size = 10.0
	}
	options := &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	}
	face, err := opentype.NewFace(tf.SFNT, options)
	if err != nil {
		return nil, err
	}
	instance := &FontInstance{
		parent: tf,
		face:   face,
		style:  style,
		size:   size,
	}
	return instance, nil
}

// Parent returns the typeface an instance has been derived from.
func (fi *FontInstance) Parent() *Typeface {
	return fi.parent
}

// Face returns the renderable face of an instance.
func (fi *FontInstance) Face() xfont.Face {
	return fi.face
}

// Style returns the style an instance has been derived at.
func (fi *FontInstance) Style() Style {
	return fi.style
}

// PtSize returns the point size of an instance.
func (fi *FontInstance) PtSize() float64 {
	return fi.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a typeface to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *Typeface {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *Typeface

func loadFallbackFont() *Typeface {
	var err error
	gofont := &Typeface{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

package font

import (
	"path"
	"strings"
)

// Style denotes the styling of a font instance. Bold and italic are flags
// and may be combined, resulting in a four-way enumeration.
type Style int

// Font styles, combinable as bit flags.
const (
	StylePlain  Style = 0
	StyleBold   Style = 1 << 0
	StyleItalic Style = 1 << 1

	StyleBoldItalic Style = StyleBold | StyleItalic
)

// Bold is true for StyleBold and StyleBoldItalic.
func (s Style) Bold() bool {
	return s&StyleBold != 0
}

// Italic is true for StyleItalic and StyleBoldItalic.
func (s Style) Italic() bool {
	return s&StyleItalic != 0
}

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	}
	return "unknown-style"
}

// ParseSubfamily classifies a subfamily entry of a font's naming table
// ("Regular", "Bold", "Bold Italic", "Oblique", …) as a Style.
func ParseSubfamily(subfamily string) Style {
	subfamily = strings.ToLower(subfamily)
	s := StylePlain
	if strings.Contains(subfamily, "bold") || strings.Contains(subfamily, "black") {
		s |= StyleBold
	}
	if strings.Contains(subfamily, "italic") || strings.Contains(subfamily, "obliq") {
		s |= StyleItalic
	}
	return s
}

// GuessStyle trys to guess a font's style from the font's file name.
func GuessStyle(fontfilename string) Style {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "normal", "medium", "regular", "r":
			return StylePlain
		case "bold", "b":
			return StyleBold
		case "italic", "i":
			return StyleItalic
		case "bolditalic", "bi":
			return StyleBoldItalic
		}
	}
	return ParseSubfamily(fontfilename)
}

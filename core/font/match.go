package font

// Descriptor describes a font file found on the platform, before it has
// been loaded.
type Descriptor struct {
	Family    string // family name from the font's naming table
	Subfamily string // variant entry ("Regular", "Bold Italic", …)
	Path      string // location of the font file
}

// MatchConfidence is a type for expressing the confidence level of font
// matching.
type MatchConfidence int

const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font descriptors and returns the closest
// match for a family name and style. Family names have to match exactly
// (case-sensitive); among the matching variants the one closest to the
// requested style wins. If no variant matches, returns NoConfidence.
func ClosestMatch(fdescs []Descriptor, family string, style Style) (match Descriptor, confidence MatchConfidence) {
	for _, fdesc := range fdescs {
		if fdesc.Family != family {
			continue
		}
		variant := ParseSubfamily(fdesc.Subfamily)
		if fdesc.Subfamily == "" {
			variant = GuessStyle(fdesc.Path)
		}
		if c := MatchStyle(variant, style); c > confidence {
			confidence = c
			match = fdesc
		}
	}
	return
}

// MatchStyle rates how well a variant's style serves a requested style.
func MatchStyle(variant Style, style Style) MatchConfidence {
	switch {
	case variant == style:
		return PerfectConfidence
	case style != StylePlain && variant&style != 0:
		return HighConfidence
	case variant == StylePlain:
		return LowConfidence
	}
	return NoConfidence
}

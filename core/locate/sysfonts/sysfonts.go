package sysfonts

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"

	"github.com/asolon17/CodeDriver-SDK/core"
	"github.com/asolon17/CodeDriver-SDK/core/font"
)

// Env is the platform font environment. The zero value is ready to use.
type Env struct{}

// New creates a platform font environment.
func New() *Env {
	return &Env{}
}

// FontFamilies returns the family names of all usable fonts installed on
// the platform, sorted and without duplicates. The platform's font
// directories are walked on every call.
func (e *Env) FontFamilies() []string {
	return familiesOf(descriptors(findfont.List()))
}

// NewFont constructs an instance of an installed font family at the given
// style and size. The family name has to match a platform family exactly
// (case-sensitive); among the family's font files the variant closest to
// the requested style is selected.
func (e *Env) NewFont(family string, style font.Style, size float64) (*font.FontInstance, error) {
	match, confidence := font.ClosestMatch(descriptors(findfont.List()), family, style)
	if confidence == font.NoConfidence {
		return nil, core.Error(core.EMISSING, "platform font not found: %s", family)
	}
	tracer().Debugf("closest platform match for %s %s is %s", family, style, match.Path)
	tf, err := font.LoadTypeface(match.Path)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID,
			"platform font cannot be loaded: %s", match.Path)
	}
	return tf.Derive(style, size)
}

// descriptors reads the naming tables of the given font files. Files which
// cannot be parsed are skipped; platform font directories routinely contain
// formats we do not support.
func descriptors(paths []string) []font.Descriptor {
	descs := make([]font.Descriptor, 0, len(paths))
	ttc := 0
	for _, fontpath := range paths {
		switch strings.ToLower(filepath.Ext(fontpath)) {
		case ".ttf", ".otf":
		case ".ttc":
			ttc++
			continue
		default:
			continue
		}
		tf, err := font.LoadTypeface(fontpath)
		if err != nil {
			tracer().Debugf("skipping platform font %s: %v", fontpath, err)
			continue
		}
		descs = append(descs, font.Descriptor{
			Family:    tf.Family(),
			Subfamily: tf.Subfamily(),
			Path:      fontpath,
		})
	}
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not yet supported", ttc)
	}
	return descs
}

// familiesOf collects the unique family names of a list of descriptors.
func familiesOf(descs []font.Descriptor) []string {
	seen := make(map[string]bool)
	families := make([]string, 0, len(descs))
	for _, desc := range descs {
		if desc.Family == "" || seen[desc.Family] {
			continue
		}
		seen[desc.Family] = true
		families = append(families, desc.Family)
	}
	sort.Strings(families)
	return families
}

package fontfactory

import (
	"sync"

	"github.com/magiconair/properties"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"

	"github.com/asolon17/CodeDriver-SDK/core/font"
	"github.com/asolon17/CodeDriver-SDK/core/locate/sysfonts"
)

// DefaultConfigFile is the location the font configuration is read from,
// relative to the working directory of the application, unless overridden
// by configuration key 'font-config-file'.
const DefaultConfigFile = "config/fonts.properties"

// Environment is the platform font environment a factory falls back to for
// names not registered with it.
type Environment interface {
	// FontFamilies returns the family names of the fonts installed on the
	// platform. It is queried live on every call.
	FontFamilies() []string
	// NewFont constructs an instance of an installed font family.
	NewFont(family string, style font.Style, size float64) (*font.FontInstance, error)
}

// Factory is a registry of typefaces loaded from a configuration file,
// keyed by logical font name.
//
// All operations touching the registered fonts serialize through a single
// lock. ReloadFonts holds the lock for the duration of the rebuild,
// including file I/O, so readers never observe a partially rebuilt registry.
type Factory struct {
	sync.Mutex
	loadedFonts map[string]*font.Typeface
	configFile  string
	env         Environment
}

var globalFactory *Factory

var globalFactoryCreation sync.Once

// Global is an application-wide singleton factory, backed by the platform
// font environment. It loads the font configuration once, before it becomes
// reachable for clients.
func Global(conf schuko.Configuration) *Factory {
	globalFactoryCreation.Do(func() {
		globalFactory = New(conf, sysfonts.New())
	})
	return globalFactory
}

// New creates a factory and performs the initial load of the font
// configuration. conf may be nil, in which case the configuration file is
// expected at DefaultConfigFile.
func New(conf schuko.Configuration, env Environment) *Factory {
	configFile := DefaultConfigFile
	if conf != nil {
		if path := conf.GetString("font-config-file"); path != "" {
			configFile = path
		}
	}
	f := &Factory{
		configFile: configFile,
		env:        env,
	}
	f.ReloadFonts()
	return f
}

// RegisteredFontNames returns the logical names of all fonts currently
// registered with the factory, in no particular order. All returned values
// are valid names to use with CreateFont.
func (f *Factory) RegisteredFontNames() []string {
	f.Lock()
	defer f.Unlock()
	names := make([]string, 0, len(f.loadedFonts))
	for name := range f.loadedFonts {
		names = append(names, name)
	}
	return names
}

// SystemFontNames returns the family names of the fonts installed on the
// platform. All returned values are valid names to use with CreateFont.
func (f *Factory) SystemFontNames() []string {
	return f.env.FontFamilies()
}

// CreateFont creates a font instance with the given name, style and size.
// Fonts registered with the factory are checked before the platform fonts:
// a registered logical name shadows an identically-named platform family.
// Platform family names have to match exactly (case-sensitive).
//
// The second return value is false if no font with the given name exists,
// in the factory or on the platform.
func (f *Factory) CreateFont(name string, style font.Style, size float64) (*font.FontInstance, bool) {
	f.Lock()
	if tf, ok := f.loadedFonts[name]; ok {
		instance, err := tf.Derive(style, size)
		f.Unlock()
		if err != nil {
			tracer().Errorf("cannot derive %s instance of font %q: %v", style, name, err)
			return nil, false
		}
		return instance, true
	}
	f.Unlock()
	for _, family := range f.env.FontFamilies() {
		if family == name {
			instance, err := f.env.NewFont(name, style, size)
			if err != nil {
				tracer().Errorf("cannot create platform font %q: %v", name, err)
				return nil, false
			}
			return instance, true
		}
	}
	return nil, false
}

// ReloadFonts re-loads the fonts associated with the factory. The registry
// is rebuilt from scratch: fonts no longer named in the configuration file
// are dropped, and readers see either the old or the new registry, never a
// mix of both.
func (f *Factory) ReloadFonts() {
	f.Lock()
	defer f.Unlock()
	f.loadedFonts = f.loadFonts()
}

// loadFonts builds a fresh registry from the configuration file. A missing
// or unreadable configuration yields an empty registry; a font file that
// cannot be loaded is skipped. Both are reported as warnings, neither is
// fatal.
func (f *Factory) loadFonts() map[string]*font.Typeface {
	fonts := make(map[string]*font.Typeface)
	config, err := properties.LoadFile(f.configFile, properties.UTF8)
	if err != nil {
		tracer().Errorf("failed to load font configuration: %v", err)
		return fonts
	}
	config.DisableExpansion = true
	for _, key := range config.Keys() {
		fontfile, _ := config.Get(key)
		tf, err := font.LoadTypeface(fontfile)
		if err != nil {
			tracer().Errorf("failed to load font %q: %v", key, err)
			continue
		}
		tracer().Debugf("factory stores font %s as %q", tf.Fontname, key)
		fonts[key] = tf
	}
	return fonts
}

// LogFontList is a helper function to dump the list of registered fonts to
// the trace-file (log-level Info).
func (f *Factory) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	f.Lock()
	for name, tf := range f.loadedFonts {
		tracer().Infof("font [%s] = %v", name, tf.Fontname)
	}
	f.Unlock()
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

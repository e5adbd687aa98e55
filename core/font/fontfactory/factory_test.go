package fontfactory

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/asolon17/CodeDriver-SDK/core/font"
)

// --- Test Suite Preparation ------------------------------------------------

type FactoryTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestFactoryOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cdsdk.fonts")
	defer teardown()
	suite.Run(t, new(FactoryTestEnviron))
}

// fakeEnv is a platform font environment under test control. It records
// whether the family list has been consulted.
type fakeEnv struct {
	families []string
	queried  bool
}

func (e *fakeEnv) FontFamilies() []string {
	e.queried = true
	return e.families
}

func (e *fakeEnv) NewFont(family string, style font.Style, size float64) (*font.FontInstance, error) {
	tf, err := font.ParseTypeface(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return tf.Derive(style, size)
}

func (env *FactoryTestEnviron) writeFont(dir, name string, data []byte) string {
	fontfile := filepath.Join(dir, name)
	env.Require().NoError(os.WriteFile(fontfile, data, 0644))
	return fontfile
}

func (env *FactoryTestEnviron) writeConfig(dir string, lines ...string) string {
	configFile := filepath.Join(dir, "fonts.properties")
	content := strings.Join(lines, "\n") + "\n"
	env.Require().NoError(os.WriteFile(configFile, []byte(content), 0644))
	return configFile
}

func (env *FactoryTestEnviron) newFactory(configFile string, platform Environment) *Factory {
	conf := testconfig.Conf{"font-config-file": configFile}
	return New(conf, platform)
}

// --- Tests -----------------------------------------------------------------

func (env *FactoryTestEnviron) TestLoadSkipsBrokenEntries() {
	dir := env.T().TempDir()
	heading := env.writeFont(dir, "Header.ttf", goregular.TTF)
	missing := filepath.Join(dir, "missing.ttf")
	configFile := env.writeConfig(dir,
		"# CodeDriver SDK font configuration",
		"heading = "+heading,
		"body = "+missing,
	)
	platform := &fakeEnv{families: []string{"Arial"}}
	f := env.newFactory(configFile, platform)
	env.ElementsMatch([]string{"heading"}, f.RegisteredFontNames(),
		"only fonts which loaded without error may be registered")
	_, ok := f.CreateFont("body", font.StylePlain, 12)
	env.False(ok, "expected 'body' to be absent")
	env.True(platform.queried, "expected 'body' to fall through to platform matching")
}

func (env *FactoryTestEnviron) TestRegisteredShadowsPlatform() {
	dir := env.T().TempDir()
	custom := env.writeFont(dir, "Custom.ttf", gobold.TTF)
	configFile := env.writeConfig(dir, "custom = "+custom)
	platform := &fakeEnv{families: []string{"custom"}}
	f := env.newFactory(configFile, platform)
	instance, ok := f.CreateFont("custom", font.StyleBold, 14)
	env.Require().True(ok, "expected 'custom' to be found")
	env.Equal(custom, instance.Parent().Filepath,
		"expected instance to derive from the loaded file, not the platform family")
	env.Equal(font.StyleBold, instance.Style())
	env.Equal(14.0, instance.PtSize())
	env.False(platform.queried,
		"platform font list must not be consulted for a registered name")
}

func (env *FactoryTestEnviron) TestMissingConfiguration() {
	configFile := filepath.Join(env.T().TempDir(), "fonts.properties")
	platform := &fakeEnv{families: []string{"Arial"}}
	f := env.newFactory(configFile, platform)
	env.Empty(f.RegisteredFontNames(),
		"a missing configuration file must yield an empty registry")
	_, ok := f.CreateFont("Arial", font.StylePlain, 10)
	env.True(ok, "expected 'Arial' to resolve as platform font")
	_, ok = f.CreateFont("Bodoni", font.StylePlain, 10)
	env.False(ok, "expected unknown font to be absent")
}

func (env *FactoryTestEnviron) TestPlatformMatchIsCaseSensitive() {
	configFile := filepath.Join(env.T().TempDir(), "fonts.properties")
	platform := &fakeEnv{families: []string{"Arial"}}
	f := env.newFactory(configFile, platform)
	_, ok := f.CreateFont("arial", font.StylePlain, 10)
	env.False(ok, "platform family names have to match exactly")
}

func (env *FactoryTestEnviron) TestReloadDropsStaleNames() {
	dir := env.T().TempDir()
	first := env.writeFont(dir, "First.ttf", goregular.TTF)
	second := env.writeFont(dir, "Second.ttf", gobold.TTF)
	configFile := env.writeConfig(dir, "first = "+first)
	f := env.newFactory(configFile, &fakeEnv{})
	env.ElementsMatch([]string{"first"}, f.RegisteredFontNames())
	env.writeConfig(dir, "second = "+second)
	f.ReloadFonts()
	env.ElementsMatch([]string{"second"}, f.RegisteredFontNames(),
		"names no longer configured must not survive a reload")
}

func (env *FactoryTestEnviron) TestReloadIsIdempotent() {
	dir := env.T().TempDir()
	heading := env.writeFont(dir, "Header.ttf", goregular.TTF)
	body := env.writeFont(dir, "Body.ttf", gobold.TTF)
	configFile := env.writeConfig(dir, "heading = "+heading, "body = "+body)
	f := env.newFactory(configFile, &fakeEnv{})
	names := f.RegisteredFontNames()
	f.ReloadFonts()
	env.ElementsMatch(names, f.RegisteredFontNames())
}

func (env *FactoryTestEnviron) TestConfigComments() {
	dir := env.T().TempDir()
	heading := env.writeFont(dir, "Header.ttf", goregular.TTF)
	configFile := env.writeConfig(dir,
		"# hash comment",
		"! bang comment",
		"heading = "+heading,
	)
	f := env.newFactory(configFile, &fakeEnv{})
	env.ElementsMatch([]string{"heading"}, f.RegisteredFontNames())
}

func (env *FactoryTestEnviron) TestSystemFontNames() {
	configFile := filepath.Join(env.T().TempDir(), "fonts.properties")
	platform := &fakeEnv{families: []string{"Arial", "Helvetica"}}
	f := env.newFactory(configFile, platform)
	env.Equal([]string{"Arial", "Helvetica"}, f.SystemFontNames())
}

func (env *FactoryTestEnviron) TestReloadIsAtomic() {
	dir := env.T().TempDir()
	heading := env.writeFont(dir, "Header.ttf", goregular.TTF)
	configFile := env.writeConfig(dir, "heading = "+heading)
	f := env.newFactory(configFile, &fakeEnv{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				names := f.RegisteredFontNames()
				env.Equal([]string{"heading"}, names,
					"readers must see either the old or the new registry, never a mix")
				if _, ok := f.CreateFont("heading", font.StylePlain, 12); !ok {
					env.Fail("expected 'heading' to stay resolvable during reloads")
				}
			}
		}()
	}
	for j := 0; j < 10; j++ {
		f.ReloadFonts()
	}
	wg.Wait()
}

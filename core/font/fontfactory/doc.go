/*
Package fontfactory manages a registry of fonts loaded from a configuration
file.

The factory maps logical font names, taken from the keys of the
configuration file, to loaded typefaces. Clients create font instances by
logical name; names not registered with the factory fall back to the fonts
installed on the platform. Fonts loaded by the factory are checked before
the platform fonts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Alexander C. Solon

*/
package fontfactory

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'cdsdk.fonts'
func tracer() tracing.Trace {
	return tracing.Select("cdsdk.fonts")
}

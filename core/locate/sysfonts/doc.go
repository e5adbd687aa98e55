/*
Package sysfonts locates fonts installed on the platform.

It is the default platform font environment for the font factory: fonts are
discovered by walking the host's font directories and reading the naming
tables of the font files found there. Nothing is cached; every query
reflects the platform's current state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Alexander C. Solon

*/
package sysfonts

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'cdsdk.sysfonts'.
func tracer() tracing.Trace {
	return tracing.Select("cdsdk.sysfonts")
}

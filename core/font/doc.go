/*
Package font handles typeface resources and font instances.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a loaded font-family resource, parsed once from an
outline-font file (TrueType-compatible). An example is "Helvetica".

* A "font instance" is a concrete renderable variant of a typeface at a
certain style and point size. An example is "Helvetica bold 11pt".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Alexander C. Solon

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'cdsdk.fonts'
func tracer() tracing.Trace {
	return tracing.Select("cdsdk.fonts")
}

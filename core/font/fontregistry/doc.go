/*
Package fontregistry selects and caches decoded stroke-font tables.

A VectorFont value is the closed construction surface for the supported
font families: one identifier per Borland .CHR typeface, one per classical
Hershey typeface, and the single NewStroke table. The value holds the raw
container bytes (where the family needs any) and memoizes its decoded
font.Table: decoding happens lazily on first use and exactly once per
value. Constructing a fresh value forces a re-decode—callers wanting
amortized cost must reuse the value.

This package is the sole seam between the layout engine and the
format-specific decoders.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'vectext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("vectext.fonts")
}
